package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"rosternorm/pkg/contracts/domain"
)

// DOCXExtractor pulls the largest table out of a word-processor document.
// A .docx file is a zip archive whose word/document.xml holds the content
// as WordprocessingML; tables are w:tbl elements with w:tr rows, w:tc
// cells and w:t text runs. When a document carries several tables, the one
// with the most rows is taken as the roster.
type DOCXExtractor struct{}

func NewDOCXExtractor() *DOCXExtractor {
	return &DOCXExtractor{}
}

func (e *DOCXExtractor) Extract(ctx context.Context, data []byte, source string) (*domain.RawTable, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", source, err)
	}

	var docXML []byte
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				return nil, fmt.Errorf("open document.xml in %s: %w", source, err)
			}
			docXML, err = io.ReadAll(rc)
			rc.Close()
			if err != nil {
				return nil, fmt.Errorf("read document.xml in %s: %w", source, err)
			}
			break
		}
	}
	if docXML == nil {
		return nil, ErrNoTable
	}

	tables, err := parseTables(ctx, docXML)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", source, err)
	}
	var best [][]string
	for _, t := range tables {
		if len(t) > len(best) {
			best = t
		}
	}
	if len(best) == 0 {
		return nil, ErrNoTable
	}
	return tableFromRows(source, best)
}

// parseTables walks the WordprocessingML token stream and collects every
// table, including tables nested inside cells. Cell text joins the text
// runs of each paragraph, and non-blank paragraphs with newlines, the way
// the content reads in the document.
func parseTables(ctx context.Context, docXML []byte) ([][][]string, error) {
	// A table can sit inside another table's cell, so the enclosing cell
	// state is saved on the table stack and restored when the inner table
	// closes. Without that, an inner table's last cell would end the outer
	// cell too and drop any outer paragraphs after it.
	type tableState struct {
		rows        [][]string
		savedInCell bool
		savedParas  []string
	}

	dec := xml.NewDecoder(bytes.NewReader(docXML))
	var (
		tables    [][][]string
		stack     []*tableState
		cellParas []string
		paraText  strings.Builder
		inCell    bool
		inPara    bool
		inText    bool
	)

	flushPara := func() {
		if t := strings.TrimSpace(paraText.String()); t != "" {
			cellParas = append(cellParas, t)
		}
		paraText.Reset()
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "tbl":
				stack = append(stack, &tableState{
					savedInCell: inCell,
					savedParas:  cellParas,
				})
				inCell = false
				cellParas = nil
			case "tr":
				if len(stack) > 0 {
					cur := stack[len(stack)-1]
					cur.rows = append(cur.rows, nil)
				}
			case "tc":
				inCell = true
				cellParas = nil
			case "p":
				if inCell {
					inPara = true
					paraText.Reset()
				}
			case "t":
				if inPara {
					inText = true
				}
			}
		case xml.CharData:
			if inText {
				paraText.Write(el)
			}
		case xml.EndElement:
			switch el.Name.Local {
			case "t":
				inText = false
			case "p":
				if inPara {
					flushPara()
					inPara = false
				}
			case "tc":
				if inCell && len(stack) > 0 {
					cur := stack[len(stack)-1]
					if n := len(cur.rows); n > 0 {
						cur.rows[n-1] = append(cur.rows[n-1], strings.Join(cellParas, "\n"))
					}
				}
				inCell = false
			case "tbl":
				if len(stack) > 0 {
					done := stack[len(stack)-1]
					stack = stack[:len(stack)-1]
					tables = append(tables, done.rows)
					inCell = done.savedInCell
					cellParas = done.savedParas
				}
			}
		}
	}
	return tables, nil
}
