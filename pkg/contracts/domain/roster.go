package domain

// CanonicalField is one of the fixed internal field names that arbitrary
// input columns are resolved onto before normalization.
type CanonicalField string

const (
	FieldStudentNo         CanonicalField = "Student No"
	FieldStudentName       CanonicalField = "Student Name"
	FieldStudentNameArabic CanonicalField = "Student Name (Arabic)"
	FieldGender            CanonicalField = "Gender"
	FieldDateOfBirth       CanonicalField = "Date Of Birth"
	FieldPlaceOfBirth      CanonicalField = "Place of Birth"
	FieldGrade             CanonicalField = "Grade"
	FieldSection           CanonicalField = "Section"
	FieldNationality       CanonicalField = "Nationality"
	FieldCitizenship       CanonicalField = "Citizenship Status"
	FieldCycle             CanonicalField = "Cycle"
	FieldParentPhone       CanonicalField = "Parent Phone"
	FieldStudentPhone      CanonicalField = "Student Phone"
	FieldEmirateID         CanonicalField = "Emirate Id"
	FieldPassport          CanonicalField = "Passport"
	FieldHomeAddress       CanonicalField = "Home Address"
	FieldStudentEmail      CanonicalField = "Student Email"
	FieldParentEmail       CanonicalField = "Parent Email"
	FieldEmail             CanonicalField = "Email"
)

// RawTable is a table of string cells as extracted from an uploaded file.
// The first extracted row becomes Header; every row in Rows has exactly
// len(Header) cells (extractors pad short rows with empty strings).
type RawTable struct {
	Source string     `json:"source"`
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
}

// NormalizedRecord is one student row after per-field normalization and
// derivation. String fields use "" for an absent value; Grade uses 0
// because valid grades are constrained to 1-12. Student Name is the one
// field that is never absent, only blank.
type NormalizedRecord struct {
	StudentNo    string `json:"student_no"`
	Name         string `json:"name"`
	NameArabic   string `json:"name_arabic"`
	Gender       string `json:"gender"`
	DateOfBirth  string `json:"date_of_birth"`
	Grade        int    `json:"grade"`
	Section      string `json:"section"`
	Nationality  string `json:"nationality"`
	Citizenship  string `json:"citizenship"`
	Cycle        string `json:"cycle"`
	ParentPhone  string `json:"parent_phone"`
	StudentPhone string `json:"student_phone"`
	EmirateID    string `json:"emirate_id"`
	Passport     string `json:"passport"`
	HomeAddress  string `json:"home_address"`
	StudentEmail string `json:"student_email"`
	ParentEmail  string `json:"parent_email"`
	GenericEmail string `json:"generic_email"`
	ContactEmail string `json:"contact_email"`

	// Extra carries input columns that did not resolve to a canonical
	// field. They are preserved verbatim so nothing is silently dropped.
	Extra map[string]string `json:"extra,omitempty"`
}

// ImportColumns is the fixed output contract of the import template.
// Order and spelling are exact; the serialized CSV header must match.
var ImportColumns = []string{
	"Student No",
	"Student Name",
	"Student Name (Arabic)",
	"Grade",
	"Section / Home Room",
	"Gender",
	"Nationality Group / Citizenship Status",
	"Nationality",
	"Date Of Birth",
	"Parent Phone",
	"Student Phone",
	"Emirate Id",
	"Passport",
	"Home Address",
	"Email",
}

// ImportRecord is one output row keyed by import column name. Values are
// always present; an absent normalized value is rendered as "".
type ImportRecord map[string]string

// Values returns the record's cells in ImportColumns order.
func (r ImportRecord) Values() []string {
	out := make([]string, len(ImportColumns))
	for i, col := range ImportColumns {
		out[i] = r[col]
	}
	return out
}
