package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCitizenshipStatus(t *testing.T) {
	assert.Equal(t, "UAE National", CitizenshipStatus("UAE"))
	assert.Equal(t, "Resident", CitizenshipStatus("Egypt"))
	assert.Equal(t, "Resident", CitizenshipStatus("India"))
	assert.Equal(t, "", CitizenshipStatus(""))
}

func TestCycleForGrade(t *testing.T) {
	tests := []struct {
		grade int
		want  string
	}{
		{1, "C1"},
		{4, "C1"},
		{5, "C2"},
		{8, "C2"},
		{9, "C3"},
		{12, "C3"},
		{0, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CycleForGrade(tt.grade), "grade %d", tt.grade)
	}
}

func TestContactEmail(t *testing.T) {
	tests := []struct {
		name                     string
		student, parent, generic string
		want                     string
	}{
		{"student wins", "s@x.com", "p@x.com", "g@x.com", "s@x.com"},
		{"parent when no student", "", "p@x.com", "g@x.com", "p@x.com"},
		{"generic last", "", "", "g@x.com", "g@x.com"},
		{"all absent", "", "", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ContactEmail(tt.student, tt.parent, tt.generic))
		})
	}
}
