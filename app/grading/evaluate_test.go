package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"plain number", "42", 42},
		{"split marks", "80+18", 98},
		{"split with spaces", "70 + 5.5", 75.5},
		{"empty", "", 0},
		{"non numeric", "abc", 0},
		{"bad term skipped", "7+x+3", 10},
		{"decimal", "12.5", 12.5},
		{"trailing plus", "40+", 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(tt.input))
		})
	}
}
