package normalize

import (
	"sort"
	"strings"
	"unicode"
)

// honorifics are the leading titles stripped from names. Sorted longest
// first at init so that more specific entries win ("sheikha" before
// "sheikh", "mrs." never matched as "mr.").
var honorifics = []string{
	"mr.", "mr ", "mrs.", "mrs ", "ms.", "ms ", "dr.", "dr ",
	"prof.", "prof ", "eng.", "eng ", "sheikh", "sheik", "sheikha",
	"miss ", "sir ", "madam ", "engineer ", "doctor ",
}

func init() {
	sort.SliceStable(honorifics, func(i, j int) bool {
		return len(honorifics[i]) > len(honorifics[j])
	})
}

// Name normalizes a person's name: the leading honorific is removed,
// whitespace runs collapse to single spaces, and each space-separated token
// is capitalized per hyphen-separated sub-token, so "mary-jane o'neil"
// becomes "Mary-Jane O'neil". A name is never absent, only blank: empty
// input yields "".
func Name(raw string) string {
	name := strings.TrimSpace(raw)
	if name == "" {
		return ""
	}
	lower := strings.ToLower(name)
	for _, hon := range honorifics {
		if strings.HasPrefix(lower, hon) {
			name = strings.TrimLeft(name[len(hon):], " \t")
			break
		}
	}
	name = whitespaceRun.ReplaceAllString(name, " ")
	parts := strings.Split(name, " ")
	for i, part := range parts {
		parts[i] = capitalizeHyphenated(part)
	}
	return strings.Join(parts, " ")
}

// capitalizeHyphenated capitalizes each hyphen-separated sub-token
// independently: first rune upper, remainder lower.
func capitalizeHyphenated(s string) string {
	subs := strings.Split(s, "-")
	for i, sub := range subs {
		subs[i] = capitalize(sub)
	}
	return strings.Join(subs, "-")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// Gender maps m/male to "Male" and f/female to "Female", case-insensitive.
// Anything else is absent.
func Gender(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "m", "male":
		return "Male"
	case "f", "female":
		return "Female"
	}
	return ""
}

// emiratiLabels are the nationality spellings collapsed to "UAE".
var emiratiLabels = map[string]bool{
	"uae":                  true,
	"united arab emirates": true,
	"emirati":              true,
}

// Nationality collapses Emirati labels to the canonical "UAE" and keeps any
// other non-blank value verbatim (trimmed).
func Nationality(raw string) string {
	v := strings.TrimSpace(raw)
	if v == "" {
		return ""
	}
	if emiratiLabels[strings.ToLower(v)] {
		return "UAE"
	}
	return v
}

// Email trims and lowercases an email address. No syntactic validation:
// a bad address degrades downstream, it is never rejected here.
func Email(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// FreeText trims fields that are carried as-is (Emirate ID, passport,
// home address, the Arabic name).
func FreeText(raw string) string {
	return strings.TrimSpace(raw)
}
