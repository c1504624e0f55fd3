package normalize

import (
	"regexp"
	"strings"
)

const uaeCallingCode = "971"

// phoneDelimiters splits cells holding several numbers ("050..., 04...").
var phoneDelimiters = regexp.MustCompile(`[;,/\s]+`)

// nonPhoneRunes strips everything but digits and a plus sign.
var nonPhoneRunes = regexp.MustCompile(`[^\d+]`)

// Phone normalizes a phone cell to E.164 where possible. Cells may hold
// several candidate numbers; the first one that yields digits wins.
//
// A "+"-prefixed candidate is assumed to already be international and is
// returned with separators removed. Otherwise the digit string is shaped:
// 05XXXXXXXX and 5XXXXXXXX mobiles become +9715…, a 0-prefixed 8/9-digit
// landline drops the zero under +971, a bare 971… gains the plus, and any
// other digit string is returned as a best-effort +digits. A cell with no
// digits at all is absent.
func Phone(raw string) string {
	v := strings.TrimSpace(raw)
	if v == "" {
		return ""
	}
	for _, part := range phoneDelimiters.Split(v, -1) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if strings.HasPrefix(part, "+") {
			return nonPhoneRunes.ReplaceAllString(part, "")
		}
		digits := extractDigits(part)
		if digits == "" {
			continue
		}
		switch {
		case strings.HasPrefix(digits, "05"):
			if len(digits) == 10 {
				return "+" + uaeCallingCode + digits[1:]
			}
		case strings.HasPrefix(digits, "5") && len(digits) == 9:
			return "+" + uaeCallingCode + digits
		case strings.HasPrefix(digits, "0") && (len(digits) == 8 || len(digits) == 9):
			// Landline with leading zero (02..., 04..., 06...).
			return "+" + uaeCallingCode + digits[1:]
		case strings.HasPrefix(digits, uaeCallingCode):
			return "+" + digits
		}
		// Best effort for anything else that still carries digits.
		return "+" + digits
	}
	return ""
}

func extractDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
