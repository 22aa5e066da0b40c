package document

import (
	"testing"

	"github.com/apra1107-crypto/erp-sub002/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reportBlueprint() *models.ExamBlueprint {
	return &models.ExamBlueprint{
		Name: "Half Yearly Examination",
		Subjects: models.SubjectBlueprintList{
			{Name: "Mathematics", MaxTheory: 80, MaxPractical: 20, PassingMarks: 33},
			{Name: "Science", MaxTheory: 80, MaxPractical: 20, PassingMarks: 33},
		},
		GradingRules: models.GradingRuleList{
			{Grade: "A", Min: 80, Max: 100},
			{Grade: "B", Min: 60, Max: 79.99},
		},
		Stats: models.ManualStats{"Mathematics": "98"},
	}
}

func reportResult() *models.StudentResult {
	return &models.StudentResult{
		Marks: models.MarksList{
			{Subject: "Mathematics", Theory: "70+5", Practical: "18", Grade: "A"},
			{Subject: "Science", Theory: "60", Practical: "", Grade: "B"},
		},
		Stats: models.CalculatedStats{Total: 153, Percentage: 76.5, Grade: "B"},
	}
}

func TestBuildReportCard(t *testing.T) {
	doc, err := BuildReportCard(reportBlueprint(), reportResult(), testInstitute(), testStudent())
	require.NoError(t, err)

	assert.Equal(t, "Half Yearly Examination", doc.ExamName)
	assert.Equal(t, "Aarav Sharma", doc.StudentName)
	assert.Equal(t, 153.0, doc.Total)
	assert.Equal(t, 200.0, doc.MaxTotal)
	assert.Equal(t, 76.5, doc.Percentage)
	assert.Equal(t, "B", doc.Grade)

	require.Len(t, doc.Rows, 2)
	math := doc.Rows[0]
	assert.Equal(t, "Mathematics", math.Subject)
	assert.Equal(t, "70+5", math.Theory)
	assert.Equal(t, 93.0, math.Obtained)
	assert.Equal(t, "A", math.Grade)
	assert.Equal(t, "98", math.Highest)
}

func TestBuildReportCardFollowsBlueprintOrder(t *testing.T) {
	result := reportResult()
	// Marks saved in reverse order still render in blueprint order.
	result.Marks[0], result.Marks[1] = result.Marks[1], result.Marks[0]

	doc, err := BuildReportCard(reportBlueprint(), result, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "Mathematics", doc.Rows[0].Subject)
	assert.Equal(t, "Science", doc.Rows[1].Subject)
}

func TestBuildReportCardMissingMarksRow(t *testing.T) {
	result := reportResult()
	result.Marks = result.Marks[:1] // only Mathematics entered

	doc, err := BuildReportCard(reportBlueprint(), result, nil, nil)
	require.NoError(t, err)

	science := doc.Rows[1]
	assert.Equal(t, "Science", science.Subject)
	assert.Equal(t, "", science.Theory)
	assert.Equal(t, 0.0, science.Obtained)
	assert.Equal(t, "-", science.Grade)
}

func TestBuildReportCardStaleMarksIgnored(t *testing.T) {
	result := reportResult()
	result.Marks = append(result.Marks, models.MarksEntry{Subject: "Removed Subject", Theory: "50"})

	doc, err := BuildReportCard(reportBlueprint(), result, nil, nil)
	require.NoError(t, err)

	assert.Len(t, doc.Rows, 2)
}

func TestBuildReportCardGradePlaceholder(t *testing.T) {
	result := reportResult()
	result.Stats.Grade = "" // rule gap at save time

	doc, err := BuildReportCard(reportBlueprint(), result, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "-", doc.Grade)
}

func TestBuildReportCardRequiresInputs(t *testing.T) {
	_, err := BuildReportCard(nil, reportResult(), nil, nil)
	assert.Error(t, err)

	_, err = BuildReportCard(reportBlueprint(), nil, nil, nil)
	assert.Error(t, err)
}
