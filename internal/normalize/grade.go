package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

// gradePattern finds an optional G/g prefix (with optional separator)
// followed by one or two digits, anywhere in the cell. "Grade 5", "G5",
// "G-5" and "5" all capture 5.
var gradePattern = regexp.MustCompile(`(?:[Gg][- ]?)?(\d{1,2})`)

// GradeMin and GradeMax bound the accepted school grades.
const (
	GradeMin = 1
	GradeMax = 12
)

// Grade extracts the numeric grade from its many representations. Values
// outside [1,12] and cells with no digits are absent, reported as 0.
func Grade(raw string) int {
	v := strings.TrimSpace(raw)
	if v == "" {
		return 0
	}
	m := gradePattern.FindStringSubmatch(v)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < GradeMin || n > GradeMax {
		return 0
	}
	return n
}
