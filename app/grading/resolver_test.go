package grading

import (
	"testing"

	"github.com/apra1107-crypto/erp-sub002/app/models"

	"github.com/stretchr/testify/assert"
)

var testRules = []models.GradingRule{
	{Grade: "C", Min: 50, Max: 69.99},
	{Grade: "A", Min: 80, Max: 100},
	{Grade: "B", Min: 70, Max: 79.99},
	{Grade: "F", Min: 0, Max: 39.99},
}

func TestResolveGrade(t *testing.T) {
	rules := SortRules(testRules)

	tests := []struct {
		percentage float64
		wantGrade  string
		wantOK     bool
	}{
		{85, "A", true},
		{100, "A", true},
		{80, "A", true},
		{79.99, "B", true},
		{70, "B", true},
		{50, "C", true},
		{0, "F", true},
		{45, "", false},  // gap between F and C
		{101, "", false}, // above every band
	}

	for _, tt := range tests {
		grade, ok := ResolveGrade(tt.percentage, rules)
		assert.Equal(t, tt.wantOK, ok, "percentage %v", tt.percentage)
		assert.Equal(t, tt.wantGrade, grade, "percentage %v", tt.percentage)
	}
}

func TestSortRulesOrdersByMinDescending(t *testing.T) {
	sorted := SortRules(testRules)

	assert.Equal(t, "A", sorted[0].Grade)
	assert.Equal(t, "B", sorted[1].Grade)
	assert.Equal(t, "C", sorted[2].Grade)
	assert.Equal(t, "F", sorted[3].Grade)

	// Input slice is left untouched.
	assert.Equal(t, "C", testRules[0].Grade)
}

func TestResolveGradeOverlappingBands(t *testing.T) {
	// When bands overlap, the band with the higher minimum wins.
	rules := SortRules([]models.GradingRule{
		{Grade: "Pass", Min: 40, Max: 100},
		{Grade: "Distinction", Min: 85, Max: 100},
	})

	grade, ok := ResolveGrade(90, rules)
	assert.True(t, ok)
	assert.Equal(t, "Distinction", grade)

	grade, ok = ResolveGrade(60, rules)
	assert.True(t, ok)
	assert.Equal(t, "Pass", grade)
}

func TestResolveGradeEmptyRules(t *testing.T) {
	grade, ok := ResolveGrade(50, nil)
	assert.False(t, ok)
	assert.Equal(t, "", grade)
}
