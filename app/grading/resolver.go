package grading

import (
	"sort"

	"github.com/apra1107-crypto/erp-sub002/app/models"
)

// SortRules orders grading rules by descending minimum percentage. The sort
// is stable so rules with equal minimums keep their original (creation)
// order. Callers should sort once at load time and reuse the slice.
func SortRules(rules []models.GradingRule) []models.GradingRule {
	sorted := make([]models.GradingRule, len(rules))
	copy(sorted, rules)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Min > sorted[j].Min
	})
	return sorted
}

// ResolveGrade returns the grade of the first rule (highest minimum first)
// whose [min, max] band contains the percentage. The second return is false
// when no band matches (a gap in the table or out-of-range data); the
// caller renders a placeholder instead of failing.
func ResolveGrade(percentage float64, rules []models.GradingRule) (string, bool) {
	for _, r := range SortRules(rules) {
		if percentage >= r.Min && percentage <= r.Max {
			return r.Grade, true
		}
	}
	return "", false
}
