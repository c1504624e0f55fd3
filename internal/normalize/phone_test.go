package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"local mobile with zero", "0501234567", "+971501234567"},
		{"mobile without zero", "501234567", "+971501234567"},
		{"landline with zero", "022345678", "+97122345678"},
		{"nine digit landline", "041234567", "+97141234567"},
		{"already international", "+97141234567", "+97141234567"},
		{"international with separators", "+971-50-123-4567", "+971501234567"},
		{"country code without plus", "971501234567", "+971501234567"},
		{"separators stripped", "050-123-4567", "+971501234567"},
		{"multiple candidates first wins", "0501234567; 042345678", "+971501234567"},
		{"comma separated", "0501234567, 0502222222", "+971501234567"},
		{"foreign number best effort", "123456", "+123456"},
		{"wrong length 05 best effort", "0512345", "+0512345"},
		{"no digits at all", "call me", ""},
		{"blank", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Phone(tt.input))
		})
	}
}

func TestPhoneIdempotent(t *testing.T) {
	inputs := []string{"0501234567", "022345678", "+97141234567"}
	for _, in := range inputs {
		once := Phone(in)
		assert.NotEmpty(t, once)
		assert.Equal(t, once, Phone(once), "input %q", in)
	}
}
