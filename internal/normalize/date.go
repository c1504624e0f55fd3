package normalize

import (
	"strings"
	"time"
)

// nullTokens are literal strings that mean "no value" in exported
// spreadsheets.
var nullTokens = map[string]bool{
	"nan":  true,
	"none": true,
	"null": true,
}

// dateLayouts are tried in order; day-first layouts come before any
// month-first layout so an ambiguous 03/04/2012 is read as 3 April.
// Month-first numeric layouts sit at the end as a fallback, so a
// US-formatted 5/13/2012 (impossible day-first) still parses instead of
// dropping the whole column. ISO output ("2006-01-02") is in the list,
// which makes Date idempotent on its own output.
var dateLayouts = []string{
	"2/1/2006",
	"2-1-2006",
	"2.1.2006",
	"2006-01-02",
	"2006-1-2",
	"2006/01/02",
	"2 January 2006",
	"2 Jan 2006",
	"2-Jan-2006",
	"2-Jan-06",
	"January 2, 2006",
	"Jan 2, 2006",
	"2/1/06",
	"2-1-06",
	"2006-01-02 15:04:05",
	"2/1/2006 15:04:05",
	"2006-01-02T15:04:05",
	"1/2/2006",
	"1-2-2006",
	"1.2.2006",
	"1/2/06",
	"1-2-06",
	"1/2/2006 15:04:05",
}

// Date parses the human-entered date formats seen in rosters (slash, dash
// or dotted numeric forms, textual months, trailing times) preferring the
// day-first reading, and renders the result as ISO YYYY-MM-DD. Blank input,
// explicit null tokens and unparseable values are absent.
func Date(raw string) string {
	v := strings.TrimSpace(raw)
	if v == "" || nullTokens[strings.ToLower(v)] {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return ""
}
