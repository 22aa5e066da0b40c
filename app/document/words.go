package document

import (
	"math"
	"strings"
)

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen",
	"Sixteen", "Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// NumberToWords spells a non-negative amount in the Indian numbering system:
// Crore/Lakh/Thousand/Hundred groups (the 2-2-2-1-2 digit split, not the
// Western 3-digit grouping). The fractional part is ignored. Zero, negative
// and NaN inputs return "Zero"; anything past 9 digits returns
// "Amount too large".
func NumberToWords(amount float64) string {
	if math.IsNaN(amount) || amount <= 0 {
		return "Zero"
	}
	num := int64(math.Floor(amount))
	if num == 0 {
		return "Zero"
	}
	if num > 999999999 {
		return "Amount too large"
	}
	return strings.TrimSpace(spell(num))
}

func spell(num int64) string {
	switch {
	case num == 0:
		return ""
	case num < 20:
		return ones[num]
	case num < 100:
		return strings.TrimSpace(tens[num/10] + " " + ones[num%10])
	case num < 1000:
		return joinGroup(ones[num/100]+" Hundred", num%100)
	case num < 100000:
		return joinGroup(spell(num/1000)+" Thousand", num%1000)
	case num < 10000000:
		return joinGroup(spell(num/100000)+" Lakh", num%100000)
	default:
		return joinGroup(spell(num/10000000)+" Crore", num%10000000)
	}
}

func joinGroup(head string, remainder int64) string {
	if remainder == 0 {
		return head
	}
	return head + " " + spell(remainder)
}

// AmountInWords is the sentence printed under the receipt total,
// e.g. "One Thousand Five Hundred Rupees Only".
func AmountInWords(amount float64) string {
	words := NumberToWords(amount)
	if words == "Amount too large" {
		return words
	}
	return words + " Rupees Only"
}
