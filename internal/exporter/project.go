package exporter

import (
	"strconv"

	"rosternorm/pkg/contracts/domain"
)

// Project maps one normalized record onto the fixed import template.
// Every column is present; absent values render as empty strings and the
// grade renders as its decimal form.
func Project(rec domain.NormalizedRecord) domain.ImportRecord {
	grade := ""
	if rec.Grade != 0 {
		grade = strconv.Itoa(rec.Grade)
	}
	return domain.ImportRecord{
		"Student No":                             rec.StudentNo,
		"Student Name":                           rec.Name,
		"Student Name (Arabic)":                  rec.NameArabic,
		"Grade":                                  grade,
		"Section / Home Room":                    rec.Section,
		"Gender":                                 rec.Gender,
		"Nationality Group / Citizenship Status": rec.Citizenship,
		"Nationality":                            rec.Nationality,
		"Date Of Birth":                          rec.DateOfBirth,
		"Parent Phone":                           rec.ParentPhone,
		"Student Phone":                          rec.StudentPhone,
		"Emirate Id":                             rec.EmirateID,
		"Passport":                               rec.Passport,
		"Home Address":                           rec.HomeAddress,
		"Email":                                  rec.ContactEmail,
	}
}

// ProjectAll projects a whole table of normalized records.
func ProjectAll(recs []domain.NormalizedRecord) []domain.ImportRecord {
	out := make([]domain.ImportRecord, 0, len(recs))
	for _, rec := range recs {
		out = append(out, Project(rec))
	}
	return out
}

// Rows renders import records as CSV cells in the template column order.
func Rows(recs []domain.ImportRecord) [][]string {
	out := make([][]string, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.Values())
	}
	return out
}
