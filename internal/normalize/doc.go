// Package normalize implements the field normalization pipeline for student
// roster tables: header-to-canonical-field resolution, per-field cleaning
// (names, dates, gender, phones, grades, sections, nationality), the
// majority-vote section pattern reconciliation, and derivation of fields
// that depend on other normalized fields.
//
// Every cleaning function is pure and total: malformed input degrades to
// the field's absent value, it never errors and never fabricates a default.
package normalize
