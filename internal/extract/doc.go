// Package extract turns uploaded container files (CSV, XLSX, DOCX) into
// raw tables of string cells. Each container format has its own
// RawTableExtractor; the rest of the pipeline never depends on a specific
// format.
package extract
