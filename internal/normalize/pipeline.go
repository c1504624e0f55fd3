package normalize

import (
	"rosternorm/pkg/contracts/domain"
)

// Table runs the full normalization pipeline over one raw table: resolve
// headers, clean every field of every row, reconcile the section column to
// one pattern, then derive the dependent fields. The input table is not
// mutated.
//
// Section reconciliation is the pipeline's only join point: the majority
// classification needs the whole column before any row's section can be
// finalized, so rows are cleaned first and rewritten in a second pass.
func Table(table *domain.RawTable, mode Mode) []domain.NormalizedRecord {
	cols := ResolveColumns(table.Header)
	records := make([]domain.NormalizedRecord, 0, len(table.Rows))

	for _, row := range table.Rows {
		records = append(records, normalizeRow(cols, row))
	}

	sections := make([]string, len(records))
	for i := range records {
		sections[i] = records[i].Section
	}
	sections = ReconcileSections(sections, mode)
	for i := range records {
		records[i].Section = sections[i]
	}

	for i := range records {
		derive(&records[i])
	}
	return records
}

// normalizeRow maps one raw row through the per-field cleaners. When a
// table carries duplicate columns resolving to the same field, the first
// column wins; unrecognized columns are preserved verbatim under their
// original headers.
func normalizeRow(cols []ResolvedColumn, row []string) domain.NormalizedRecord {
	raw := make(map[domain.CanonicalField]string, len(cols))
	var rec domain.NormalizedRecord
	for _, col := range cols {
		if col.Index >= len(row) {
			continue
		}
		cell := row[col.Index]
		if !col.Known {
			if rec.Extra == nil {
				rec.Extra = make(map[string]string)
			}
			rec.Extra[col.Header] = cell
			continue
		}
		if _, seen := raw[col.Field]; !seen {
			raw[col.Field] = cell
		}
	}

	rec.StudentNo = FreeText(raw[domain.FieldStudentNo])
	rec.Name = Name(raw[domain.FieldStudentName])
	rec.NameArabic = FreeText(raw[domain.FieldStudentNameArabic])
	rec.Gender = Gender(raw[domain.FieldGender])
	rec.DateOfBirth = Date(raw[domain.FieldDateOfBirth])
	rec.Grade = Grade(raw[domain.FieldGrade])
	rec.Section = Section(raw[domain.FieldSection])
	rec.Nationality = Nationality(raw[domain.FieldNationality])
	rec.ParentPhone = Phone(raw[domain.FieldParentPhone])
	rec.StudentPhone = Phone(raw[domain.FieldStudentPhone])
	rec.EmirateID = FreeText(raw[domain.FieldEmirateID])
	rec.Passport = FreeText(raw[domain.FieldPassport])
	rec.HomeAddress = FreeText(raw[domain.FieldHomeAddress])
	rec.StudentEmail = Email(raw[domain.FieldStudentEmail])
	rec.ParentEmail = Email(raw[domain.FieldParentEmail])
	rec.GenericEmail = Email(raw[domain.FieldEmail])
	return rec
}

// derive fills the fields computed from other normalized fields. Input
// citizenship or cycle columns are ignored on purpose: derived values are
// authoritative so the output stays internally consistent.
func derive(rec *domain.NormalizedRecord) {
	rec.Citizenship = CitizenshipStatus(rec.Nationality)
	rec.Cycle = CycleForGrade(rec.Grade)
	rec.ContactEmail = ContactEmail(rec.StudentEmail, rec.ParentEmail, rec.GenericEmail)
}
