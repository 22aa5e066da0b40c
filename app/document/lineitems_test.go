package document

import (
	"encoding/json"
	"testing"

	"github.com/apra1107-crypto/erp-sub002/app/models"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestParseBreakdownPreservesKeyOrder(t *testing.T) {
	raw := json.RawMessage(`{"Tuition Fee": 800, "Transport": 400, "Library": 100}`)

	items := ParseBreakdown(raw)
	assert.Equal(t, []LineItem{
		{Name: "Tuition Fee", Amount: 800},
		{Name: "Transport", Amount: 400},
		{Name: "Library", Amount: 100},
	}, items)
}

func TestParseBreakdownStringAmounts(t *testing.T) {
	raw := json.RawMessage(`{"Tuition": "800", "Transport": "400.50"}`)

	items := ParseBreakdown(raw)
	assert.Equal(t, 800.0, items[0].Amount)
	assert.Equal(t, 400.5, items[1].Amount)
}

func TestParseBreakdownDoubleEncoded(t *testing.T) {
	// Some rows store the object serialized into a JSON string.
	raw := json.RawMessage(`"{\"Tuition\": 800, \"Transport\": 400}"`)

	items := ParseBreakdown(raw)
	assert.Equal(t, []LineItem{
		{Name: "Tuition", Amount: 800},
		{Name: "Transport", Amount: 400},
	}, items)
}

func TestParseBreakdownMalformed(t *testing.T) {
	assert.Nil(t, ParseBreakdown(nil))
	assert.Nil(t, ParseBreakdown(json.RawMessage(``)))
	assert.Nil(t, ParseBreakdown(json.RawMessage(`[1,2,3]`)))
	assert.Nil(t, ParseBreakdown(json.RawMessage(`not json`)))
	assert.Nil(t, ParseBreakdown(json.RawMessage(`"not an object"`)))
}

func TestParseBreakdownNonNumericAmount(t *testing.T) {
	raw := json.RawMessage(`{"Tuition": "eight hundred", "Transport": 400}`)

	items := ParseBreakdown(raw)
	assert.Equal(t, []LineItem{
		{Name: "Tuition", Amount: 0},
		{Name: "Transport", Amount: 400},
	}, items)
}

func TestSplitDelimited(t *testing.T) {
	items := SplitDelimited("Picnic + Uniform", "500 + 300")
	assert.Equal(t, []LineItem{
		{Name: "Picnic", Amount: 500},
		{Name: "Uniform", Amount: 300},
	}, items)
}

func TestSplitDelimitedMissingAmounts(t *testing.T) {
	items := SplitDelimited("Picnic + Uniform + Books", "500")
	assert.Equal(t, []LineItem{
		{Name: "Picnic", Amount: 500},
		{Name: "Uniform", Amount: 0},
		{Name: "Books", Amount: 0},
	}, items)
}

func TestSplitDelimitedEmpty(t *testing.T) {
	assert.Nil(t, SplitDelimited("", "500"))
	assert.Nil(t, SplitDelimited("   ", ""))
}

func TestSplitDelimitedSingleItem(t *testing.T) {
	items := SplitDelimited("Admission Fee", "1500")
	assert.Equal(t, []LineItem{{Name: "Admission Fee", Amount: 1500}}, items)
}

func TestNormalizeLineItemsPrefersBreakdown(t *testing.T) {
	fee := &models.Fee{
		Breakdown:       json.RawMessage(`{"Tuition": 800}`),
		Items:           strPtr("Picnic"),
		AmountBreakdown: strPtr("500"),
	}

	items := NormalizeLineItems(fee)
	assert.Equal(t, []LineItem{{Name: "Tuition", Amount: 800}}, items)
}

func TestNormalizeLineItemsFallsBackToDelimited(t *testing.T) {
	fee := &models.Fee{
		Breakdown:       json.RawMessage(`garbage`),
		Items:           strPtr("Picnic + Uniform"),
		AmountBreakdown: strPtr("500 + 300"),
	}

	items := NormalizeLineItems(fee)
	assert.Len(t, items, 2)
	assert.Equal(t, "Picnic", items[0].Name)
}

func TestNormalizeLineItemsNothing(t *testing.T) {
	assert.Nil(t, NormalizeLineItems(&models.Fee{}))
}
