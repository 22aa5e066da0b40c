package document

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumberToWords(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "Zero"},
		{-100, "Zero"},
		{5, "Five"},
		{18, "Eighteen"},
		{42, "Forty Two"},
		{100, "One Hundred"},
		{105, "One Hundred Five"},
		{999, "Nine Hundred Ninety Nine"},
		{1000, "One Thousand"},
		{1500, "One Thousand Five Hundred"},
		{20000, "Twenty Thousand"},
		{99999, "Ninety Nine Thousand Nine Hundred Ninety Nine"},
		{100000, "One Lakh"},
		{123456, "One Lakh Twenty Three Thousand Four Hundred Fifty Six"},
		{2500000, "Twenty Five Lakh"},
		{10000000, "One Crore"},
		{12345678, "One Crore Twenty Three Lakh Forty Five Thousand Six Hundred Seventy Eight"},
		{999999999, "Ninety Nine Crore Ninety Nine Lakh Ninety Nine Thousand Nine Hundred Ninety Nine"},
		{1000000000, "Amount too large"},
		{1200.75, "One Thousand Two Hundred"}, // paise ignored
		{0.99, "Zero"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NumberToWords(tt.amount), "amount %v", tt.amount)
	}
}

func TestNumberToWordsNaN(t *testing.T) {
	assert.Equal(t, "Zero", NumberToWords(math.NaN()))
}

func TestAmountInWords(t *testing.T) {
	assert.Equal(t, "One Thousand Two Hundred Rupees Only", AmountInWords(1200))
	assert.Equal(t, "Zero Rupees Only", AmountInWords(0))
	assert.Equal(t, "Amount too large", AmountInWords(2000000000))
}
