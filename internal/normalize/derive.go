package normalize

// CitizenshipStatus derives the import label from a normalized nationality:
// "UAE" becomes "UAE National", any other non-absent nationality becomes
// "Resident", absent stays absent.
func CitizenshipStatus(nationality string) string {
	switch nationality {
	case "":
		return ""
	case "UAE":
		return "UAE National"
	}
	return "Resident"
}

// CycleForGrade derives the educational cycle from a normalized grade.
// Grades are already range-constrained to 1-12, so only C1-C3 are
// reachable; an absent grade (0) derives an absent cycle.
func CycleForGrade(grade int) string {
	switch {
	case grade >= 1 && grade <= 4:
		return "C1"
	case grade >= 5 && grade <= 8:
		return "C2"
	case grade >= 9 && grade <= 12:
		return "C3"
	}
	return ""
}

// ContactEmail picks the single email carried into the import row: the
// student address if present, then the parent address, then the generic
// one. Inputs are already trimmed and lowercased.
//
// TODO: confirm whether an @ese.gov.ae student address should outrank a
// personal student address. Today any non-empty student email wins, which
// makes the two cases indistinguishable.
func ContactEmail(student, parent, generic string) string {
	if student != "" {
		return student
	}
	if parent != "" {
		return parent
	}
	return generic
}
