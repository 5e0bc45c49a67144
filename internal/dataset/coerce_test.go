package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   float64
		wantOK bool
	}{
		{name: "integer", in: "3", want: 3, wantOK: true},
		{name: "float", in: "18.5", want: 18.5, wantOK: true},
		{name: "negative", in: "-2", want: -2, wantOK: true},
		{name: "surrounding whitespace", in: " 10 ", want: 10, wantOK: true},
		{name: "zero points", in: "0.0", want: 0, wantOK: true},
		{name: "retired code", in: "R", wantOK: false},
		{name: "disqualified code", in: "D", wantOK: false},
		{name: "withdrawn code", in: "W", wantOK: false},
		{name: "ergast null marker", in: `\N`, wantOK: false},
		{name: "empty", in: "", wantOK: false},
		{name: "only whitespace", in: "   ", wantOK: false},
		{name: "trailing garbage", in: "3rd", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseNumber(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
