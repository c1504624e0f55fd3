package normalize

import (
	"strconv"
	"strings"
)

// Pattern is the convention a school uses for section labels.
type Pattern string

const (
	PatternLetters Pattern = "letters"
	PatternNumbers Pattern = "numbers"
)

// Mode selects how the target pattern for a table is chosen.
type Mode string

const (
	ModeAuto    Mode = "auto"
	ModeLetters Mode = "letters"
	ModeNumbers Mode = "numbers"
)

// ParseMode validates a section mode string.
func ParseMode(s string) (Mode, bool) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeAuto, "":
		return ModeAuto, true
	case ModeLetters:
		return ModeLetters, true
	case ModeNumbers:
		return ModeNumbers, true
	}
	return "", false
}

// advancedSection is preserved unchanged regardless of the target pattern.
const advancedSection = "ADV"

// Section cleans one section token: trimmed, internal hyphens and spaces
// removed, uppercased. Empty results are absent.
func Section(raw string) string {
	v := strings.TrimSpace(raw)
	v = strings.ReplaceAll(v, "-", "")
	v = strings.ReplaceAll(v, " ", "")
	return strings.ToUpper(v)
}

// DetectSectionPattern classifies a cleaned section column by majority
// vote. Only single-letter and single-digit tokens vote; "ADV" and
// multi-character tokens are ignored for the tally (though they are still
// converted afterwards). Ties resolve to letters.
func DetectSectionPattern(values []string) Pattern {
	letters, numbers := 0, 0
	for _, v := range values {
		if v == "" || strings.ToUpper(v) == advancedSection {
			continue
		}
		switch {
		case isSingleLetter(v):
			letters++
		case isSingleDigit(v):
			numbers++
		}
	}
	if letters >= numbers {
		return PatternLetters
	}
	return PatternNumbers
}

// ConvertSection rewrites one cleaned token to the target pattern. For
// letters, a single digit 1-26 maps positionally onto A-Z and everything
// else is uppercased unchanged; for numbers, a single letter maps onto its
// position and everything else passes through. "ADV" and absent values are
// untouched.
func ConvertSection(value string, target Pattern) string {
	if value == "" {
		return ""
	}
	if strings.ToUpper(value) == advancedSection {
		return advancedSection
	}
	switch target {
	case PatternLetters:
		if isSingleDigit(value) {
			n := int(value[0] - '0')
			if n >= 1 {
				return string(rune('A' + n - 1))
			}
		}
		return strings.ToUpper(value)
	case PatternNumbers:
		if isSingleLetter(value) {
			c := strings.ToUpper(value)[0]
			return strconv.Itoa(int(c-'A') + 1)
		}
	}
	return value
}

// ReconcileSections runs the two-phase classify-then-convert algorithm over
// a whole column. The target pattern is not knowable until the full column
// has been seen, so classification completes before any token is rewritten.
func ReconcileSections(values []string, mode Mode) []string {
	target := TargetPattern(values, mode)
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = ConvertSection(v, target)
	}
	return out
}

// TargetPattern resolves the pattern for a column under the given mode.
func TargetPattern(values []string, mode Mode) Pattern {
	switch mode {
	case ModeLetters:
		return PatternLetters
	case ModeNumbers:
		return PatternNumbers
	default:
		return DetectSectionPattern(values)
	}
}

func isSingleLetter(s string) bool {
	if len(s) != 1 {
		return false
	}
	c := s[0]
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isSingleDigit(s string) bool {
	return len(s) == 1 && s[0] >= '0' && s[0] <= '9'
}
