package normalize

import (
	"regexp"
	"strings"

	"rosternorm/pkg/contracts/domain"
)

// synonyms maps normalized header text (lowercased, whitespace collapsed)
// to canonical fields. Single-token entries like "id", "g" and "mobile"
// are deliberately literal so the mapping stays deterministic and auditable;
// "mobile" is ambiguous in the wild but is treated as the student phone.
var synonyms = map[string]domain.CanonicalField{
	"student number":   domain.FieldStudentNo,
	"student no":       domain.FieldStudentNo,
	"student id":       domain.FieldStudentNo,
	"id":               domain.FieldStudentNo,
	"std no":           domain.FieldStudentNo,
	"std num":          domain.FieldStudentNo,
	"admission no":     domain.FieldStudentNo,
	"admission number": domain.FieldStudentNo,

	"student name (english)": domain.FieldStudentName,
	"student name":           domain.FieldStudentName,
	"name":                   domain.FieldStudentName,
	"full name":              domain.FieldStudentName,
	"studentname":            domain.FieldStudentName,

	"student name (arabic)": domain.FieldStudentNameArabic,
	"arabic name":           domain.FieldStudentNameArabic,
	"student arabic name":   domain.FieldStudentNameArabic,

	"gender":    domain.FieldGender,
	"sex":       domain.FieldGender,
	"m/f":       domain.FieldGender,
	"sex (m/f)": domain.FieldGender,

	"date of birth": domain.FieldDateOfBirth,
	"dob":           domain.FieldDateOfBirth,
	"birthdate":     domain.FieldDateOfBirth,
	"birth date":    domain.FieldDateOfBirth,
	"dateofbirth":   domain.FieldDateOfBirth,

	"place of birth": domain.FieldPlaceOfBirth,
	"pob":            domain.FieldPlaceOfBirth,
	"birth place":    domain.FieldPlaceOfBirth,

	"nationality":      domain.FieldNationality,
	"nationality (en)": domain.FieldNationality,
	"country":          domain.FieldNationality,

	"citizenship status": domain.FieldCitizenship,
	"citizenship":        domain.FieldCitizenship,
	"citizenship group":  domain.FieldCitizenship,
	"residency status":   domain.FieldCitizenship,
	"nationality group":  domain.FieldCitizenship,

	"grade":       domain.FieldGrade,
	"class":       domain.FieldGrade,
	"year":        domain.FieldGrade,
	"grade level": domain.FieldGrade,
	"g":           domain.FieldGrade,
	"g.":          domain.FieldGrade,

	"section":             domain.FieldSection,
	"section / home room": domain.FieldSection,
	"homeroom":            domain.FieldSection,
	"homeroom (section)":  domain.FieldSection,
	"classroom":           domain.FieldSection,

	"cycle": domain.FieldCycle,

	"emirates id":        domain.FieldEmirateID,
	"emirates id number": domain.FieldEmirateID,
	"emirate id":         domain.FieldEmirateID,
	"eid":                domain.FieldEmirateID,
	"eid number":         domain.FieldEmirateID,

	"passport":        domain.FieldPassport,
	"passport no":     domain.FieldPassport,
	"passport number": domain.FieldPassport,

	"address":      domain.FieldHomeAddress,
	"home address": domain.FieldHomeAddress,
	"address home": domain.FieldHomeAddress,

	"student mobile number": domain.FieldStudentPhone,
	"student mobile":        domain.FieldStudentPhone,
	"student phone":         domain.FieldStudentPhone,
	"student phone number":  domain.FieldStudentPhone,
	"mobile":                domain.FieldStudentPhone,
	"phone":                 domain.FieldStudentPhone,

	"parent mobile number": domain.FieldParentPhone,
	"parent mobile":        domain.FieldParentPhone,
	"parent phone":         domain.FieldParentPhone,
	"parent phone number":  domain.FieldParentPhone,

	"student email":  domain.FieldStudentEmail,
	"student e-mail": domain.FieldStudentEmail,
	"student mail":   domain.FieldStudentEmail,

	"parent email":  domain.FieldParentEmail,
	"parent e-mail": domain.FieldParentEmail,

	"email":  domain.FieldEmail,
	"e-mail": domain.FieldEmail,
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// ResolveHeader maps one raw header string to its canonical field. The
// lookup key is the header lowercased, trimmed and with internal whitespace
// runs collapsed to single spaces. Unknown headers return ok=false and are
// kept as extra columns by the caller; no header is ever an error.
func ResolveHeader(raw string) (domain.CanonicalField, bool) {
	key := whitespaceRun.ReplaceAllString(strings.TrimSpace(raw), " ")
	field, ok := synonyms[strings.ToLower(key)]
	return field, ok
}

// ResolvedColumn ties a column index to either a canonical field or, for
// unrecognized headers, the original header text.
type ResolvedColumn struct {
	Index  int
	Field  domain.CanonicalField
	Header string
	Known  bool
}

// ResolveColumns resolves every header of a table in one pass.
func ResolveColumns(header []string) []ResolvedColumn {
	cols := make([]ResolvedColumn, 0, len(header))
	for i, h := range header {
		field, ok := ResolveHeader(h)
		cols = append(cols, ResolvedColumn{Index: i, Field: field, Header: h, Known: ok})
	}
	return cols
}

// Synonyms returns a copy of the header synonym table, keyed by normalized
// header text. Used by the schema listing endpoint.
func Synonyms() map[string]domain.CanonicalField {
	out := make(map[string]domain.CanonicalField, len(synonyms))
	for k, v := range synonyms {
		out[k] = v
	}
	return out
}
