package document

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/apra1107-crypto/erp-sub002/app/models"
)

// LineItem is one named amount on a fee document.
type LineItem struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// delimiter used by occasional fees to join parallel item/amount strings.
const itemDelimiter = " + "

// ParseBreakdown decodes a jsonb breakdown object into an ordered line-item
// list. Key order of the original object is preserved by walking decoder
// tokens instead of unmarshalling into a map. The raw value may also be a
// JSON-encoded string containing the object (double-encoded rows exist in
// the wild); that level is unwrapped first. Malformed input degrades to an
// empty list, never an error.
func ParseBreakdown(raw json.RawMessage) []LineItem {
	if len(raw) == 0 {
		return nil
	}

	data := bytes.TrimSpace(raw)
	if len(data) > 0 && data[0] == '"' {
		var inner string
		if err := json.Unmarshal(data, &inner); err != nil {
			return nil
		}
		data = []byte(inner)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil
	}

	var items []LineItem
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return items
		}
		key, ok := keyTok.(string)
		if !ok {
			return items
		}
		var amount amountValue
		if err := dec.Decode(&amount); err != nil {
			return items
		}
		items = append(items, LineItem{Name: key, Amount: float64(amount)})
	}
	return items
}

// amountValue tolerates amounts written as numbers or numeric strings.
type amountValue float64

func (a *amountValue) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*a = amountValue(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*a = 0
		return nil
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		n = 0
	}
	*a = amountValue(n)
	return nil
}

// SplitDelimited zips "+"-joined parallel item and amount strings into line
// items. Positions without a matching amount default to 0; surplus amounts
// are dropped with their items absent.
func SplitDelimited(items, amounts string) []LineItem {
	if strings.TrimSpace(items) == "" {
		return nil
	}
	names := strings.Split(items, itemDelimiter)
	values := strings.Split(amounts, itemDelimiter)

	result := make([]LineItem, 0, len(names))
	for i, name := range names {
		item := LineItem{Name: strings.TrimSpace(name)}
		if i < len(values) {
			if n, err := strconv.ParseFloat(strings.TrimSpace(values[i]), 64); err == nil {
				item.Amount = n
			}
		}
		result = append(result, item)
	}
	return result
}

// NormalizeLineItems resolves the two fee representations (structured
// breakdown object or delimited parallel strings) into one canonical
// ordered list. The structured form wins when both are present.
func NormalizeLineItems(fee *models.Fee) []LineItem {
	if items := ParseBreakdown(fee.Breakdown); len(items) > 0 {
		return items
	}
	if fee.Items != nil {
		amounts := ""
		if fee.AmountBreakdown != nil {
			amounts = *fee.AmountBreakdown
		}
		return SplitDelimited(*fee.Items, amounts)
	}
	return nil
}
