package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLeaveDays(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{name: "single day", start: "2024-03-05", end: "2024-03-05", want: 1},
		{name: "inclusive range", start: "2024-03-15", end: "2024-03-17", want: 3},
		{name: "spans month boundary", start: "2024-02-28", end: "2024-03-01", want: 3},
		{name: "maternity span", start: "2024-06-01", end: "2024-09-01", want: 93},
		{name: "inverted range counts one day", start: "2024-03-10", end: "2024-03-01", want: 1},
		{name: "unparseable start", start: "not-a-date", end: "2024-03-01", want: 1},
		{name: "unparseable end", start: "2024-03-01", end: "soon", want: 1},
		{name: "empty inputs", start: "", end: "", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LeaveDays(tt.start, tt.end))
		})
	}
}
