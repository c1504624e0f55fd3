package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"slash day first", "15/03/2012", "2012-03-15"},
		{"ambiguous reads day first", "03/04/2012", "2012-04-03"},
		{"single digit day and month", "5/3/2012", "2012-03-05"},
		{"dash separated", "15-03-2012", "2012-03-15"},
		{"dotted", "15.03.2012", "2012-03-15"},
		{"iso passes through", "2012-03-15", "2012-03-15"},
		{"iso with single digits", "2012-3-5", "2012-03-05"},
		{"textual month", "15 March 2012", "2012-03-15"},
		{"abbreviated month", "15 Mar 2012", "2012-03-15"},
		{"month first textual", "March 15, 2012", "2012-03-15"},
		{"dashed textual", "15-Mar-2012", "2012-03-15"},
		{"two digit year", "15/3/12", "2012-03-15"},
		{"month first when day first impossible", "5/13/2012", "2012-05-13"},
		{"us format zero padded", "03/15/2012", "2012-03-15"},
		{"month first dashed", "5-13-2012", "2012-05-13"},
		{"month first dotted", "5.13.2012", "2012-05-13"},
		{"month first two digit year", "5/13/12", "2012-05-13"},
		{"datetime suffix dropped", "2012-03-15 00:00:00", "2012-03-15"},
		{"blank is absent", "  ", ""},
		{"nan token is absent", "NaN", ""},
		{"none token is absent", "None", ""},
		{"null token is absent", "null", ""},
		{"garbage is absent", "not a date", ""},
		{"out of range day is absent", "45/01/2012", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Date(tt.input))
		})
	}
}

func TestDateIdempotent(t *testing.T) {
	inputs := []string{"15/03/2012", "5 Jan 2009", "2010-12-01"}
	for _, in := range inputs {
		once := Date(in)
		assert.NotEmpty(t, once)
		assert.Equal(t, once, Date(once), "input %q", in)
	}
}
