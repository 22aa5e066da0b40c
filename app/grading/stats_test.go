package grading

import (
	"testing"

	"github.com/apra1107-crypto/erp-sub002/app/models"

	"github.com/stretchr/testify/assert"
)

func testBlueprint() *models.ExamBlueprint {
	return &models.ExamBlueprint{
		Name: "Half Yearly",
		Subjects: models.SubjectBlueprintList{
			{Name: "Mathematics", MaxTheory: 80, MaxPractical: 20, PassingMarks: 33},
			{Name: "Science", MaxTheory: 80, MaxPractical: 20, PassingMarks: 33},
		},
		GradingRules: SortRules([]models.GradingRule{
			{Grade: "A", Min: 80, Max: 100},
			{Grade: "B", Min: 60, Max: 79.99},
			{Grade: "C", Min: 33, Max: 59.99},
			{Grade: "F", Min: 0, Max: 32.99},
		}),
	}
}

func TestSubjectTotal(t *testing.T) {
	entry := models.MarksEntry{Subject: "Mathematics", Theory: "70+5", Practical: "18"}
	assert.Equal(t, 93.0, SubjectTotal(entry))

	blank := models.MarksEntry{Subject: "Science"}
	assert.Equal(t, 0.0, SubjectTotal(blank))
}

func TestComputeStats(t *testing.T) {
	bp := testBlueprint()
	marks := models.MarksList{
		{Subject: "Mathematics", Theory: "70+5", Practical: "18"}, // 93
		{Subject: "Science", Theory: "60", Practical: ""},         // 60
	}

	stats := ComputeStats(bp, marks)
	assert.Equal(t, 153.0, stats.Total)
	assert.Equal(t, 76.5, stats.Percentage)
	assert.Equal(t, "B", stats.Grade)
}

func TestComputeStatsEmptyMarks(t *testing.T) {
	bp := testBlueprint()
	stats := ComputeStats(bp, nil)

	assert.Equal(t, 0.0, stats.Total)
	assert.Equal(t, 0.0, stats.Percentage)
	assert.Equal(t, "F", stats.Grade)
}

func TestComputeStatsZeroMaxTotal(t *testing.T) {
	bp := &models.ExamBlueprint{Name: "Empty"}
	stats := ComputeStats(bp, models.MarksList{
		{Subject: "Ghost", Theory: "10"},
	})

	// No subjects means no denominator; percentage stays zero and no grade
	// band can apply.
	assert.Equal(t, 10.0, stats.Total)
	assert.Equal(t, 0.0, stats.Percentage)
	assert.Equal(t, "", stats.Grade)
}

func TestSubjectGrade(t *testing.T) {
	bp := testBlueprint()
	subject := bp.Subjects[0]

	grade, ok := SubjectGrade(models.MarksEntry{Theory: "70+5", Practical: "18"}, subject, bp.GradingRules)
	assert.True(t, ok)
	assert.Equal(t, "A", grade) // 93/100

	grade, ok = SubjectGrade(models.MarksEntry{Theory: "20"}, subject, bp.GradingRules)
	assert.True(t, ok)
	assert.Equal(t, "F", grade)

	// A zero-max subject cannot produce a percentage.
	_, ok = SubjectGrade(models.MarksEntry{Theory: "10"}, models.SubjectBlueprint{Name: "None"}, bp.GradingRules)
	assert.False(t, ok)
}

func TestSubjectGradeRuleGap(t *testing.T) {
	rules := SortRules([]models.GradingRule{
		{Grade: "A", Min: 80, Max: 100},
		{Grade: "F", Min: 0, Max: 39.99},
	})
	subject := models.SubjectBlueprint{Name: "Mathematics", MaxTheory: 100}

	grade, ok := SubjectGrade(models.MarksEntry{Theory: "50"}, subject, rules)
	assert.False(t, ok)
	assert.Equal(t, "", grade)
}
