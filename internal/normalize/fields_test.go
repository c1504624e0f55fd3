package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "honorific and whitespace and apostrophe",
			input: "  dr. john o'brien-smith ",
			want:  "John O'brien-Smith",
		},
		{
			name:  "simple honorific",
			input: "mr. ali khan",
			want:  "Ali Khan",
		},
		{
			name:  "honorific without dot",
			input: "mrs fatima hassan",
			want:  "Fatima Hassan",
		},
		{
			name:  "sheikha not truncated to sheikh",
			input: "sheikha maryam",
			want:  "Maryam",
		},
		{
			name:  "internal whitespace runs collapse",
			input: "ali    bin   rashid",
			want:  "Ali Bin Rashid",
		},
		{
			name:  "hyphenated tokens capitalize per part",
			input: "mary-jane o'neil",
			want:  "Mary-Jane O'neil",
		},
		{
			name:  "already clean is unchanged",
			input: "Ali Khan",
			want:  "Ali Khan",
		},
		{
			name:  "uppercase input is recased",
			input: "ALI KHAN",
			want:  "Ali Khan",
		},
		{
			name:  "blank stays blank",
			input: "   ",
			want:  "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Name(tt.input))
		})
	}
}

func TestNameIdempotent(t *testing.T) {
	inputs := []string{"  dr. john o'brien-smith ", "mr. ali khan", "mary-jane o'neil"}
	for _, in := range inputs {
		once := Name(in)
		assert.Equal(t, once, Name(once), "input %q", in)
	}
}

func TestGender(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"M", "Male"},
		{"m", "Male"},
		{"male", "Male"},
		{"MALE", "Male"},
		{"F", "Female"},
		{"female", "Female"},
		{" f ", "Female"},
		{"boy", ""},
		{"", ""},
		{"unknown", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Gender(tt.input), "input %q", tt.input)
	}
}

func TestNationality(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Emirati", "UAE"},
		{"UAE", "UAE"},
		{"uae", "UAE"},
		{"United Arab Emirates", "UAE"},
		{"united arab emirates", "UAE"},
		{"Egypt", "Egypt"},
		{" India ", "India"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Nationality(tt.input), "input %q", tt.input)
	}
}

func TestEmail(t *testing.T) {
	assert.Equal(t, "ali@example.com", Email("  Ali@Example.COM "))
	assert.Equal(t, "", Email("   "))
	assert.Equal(t, "not-an-address", Email("Not-An-Address"))
}

func TestFreeText(t *testing.T) {
	assert.Equal(t, "784-2010-1234567-1", FreeText(" 784-2010-1234567-1 "))
	assert.Equal(t, "", FreeText("  "))
}
