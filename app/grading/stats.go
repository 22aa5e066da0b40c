package grading

import (
	"math"

	"github.com/apra1107-crypto/erp-sub002/app/models"
)

// SubjectTotal is the obtained mark for one subject row: theory plus
// practical, each resolved through Evaluate.
func SubjectTotal(entry models.MarksEntry) float64 {
	return Evaluate(entry.Theory.String()) + Evaluate(entry.Practical.String())
}

// ComputeStats derives the persisted totals for a student's result:
// total = sum of subject totals, percentage = total / blueprint max * 100
// rounded to 2 decimals, grade = first matching grading rule. A percentage
// with no matching rule leaves the grade empty; views show a placeholder.
func ComputeStats(blueprint *models.ExamBlueprint, marks models.MarksList) models.CalculatedStats {
	var total float64
	for _, entry := range marks {
		total += SubjectTotal(entry)
	}

	maxTotal := blueprint.MaxTotal()
	var percentage float64
	if maxTotal > 0 {
		percentage = math.Round(total/maxTotal*100*100) / 100
	}

	grade, _ := ResolveGrade(percentage, blueprint.GradingRules)
	return models.CalculatedStats{
		Total:      total,
		Percentage: percentage,
		Grade:      grade,
	}
}

// SubjectGrade resolves the per-subject grade from the subject percentage,
// used on every keystroke in the entry grid and again at save time with the
// same rule table so displayed and saved grades cannot diverge.
func SubjectGrade(entry models.MarksEntry, subject models.SubjectBlueprint, rules []models.GradingRule) (string, bool) {
	max := subject.MaxTheory + subject.MaxPractical
	if max <= 0 {
		return "", false
	}
	pct := math.Round(SubjectTotal(entry)/max*100*100) / 100
	return ResolveGrade(pct, rules)
}
