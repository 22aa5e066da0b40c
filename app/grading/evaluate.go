package grading

import (
	"strconv"
	"strings"
)

// Evaluate resolves a mark expression to its numeric value. The input may be
// a plain number ("42"), an additive expression ("80+18" -> 98), or empty.
// Non-numeric tokens count as 0, so a malformed entry degrades instead of
// failing. This is the single implementation used by both the live entry
// grid and the persisted stats calculation.
func Evaluate(value string) float64 {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}
	var sum float64
	for _, token := range strings.Split(value, "+") {
		n, err := strconv.ParseFloat(strings.TrimSpace(token), 64)
		if err != nil {
			continue
		}
		sum += n
	}
	return sum
}
