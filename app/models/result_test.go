package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkValueUnmarshalJSON(t *testing.T) {
	var entry MarksEntry

	// Marks may arrive as strings (split-marks expressions), numbers or null.
	require.NoError(t, json.Unmarshal([]byte(`{"subject":"Maths","theory":"80+18","practical":15}`), &entry))
	assert.Equal(t, "80+18", entry.Theory.String())
	assert.Equal(t, "15", entry.Practical.String())

	require.NoError(t, json.Unmarshal([]byte(`{"subject":"Maths","theory":null}`), &entry))
	assert.Equal(t, "", entry.Theory.String())

	require.NoError(t, json.Unmarshal([]byte(`{"subject":"Maths","theory":72.5}`), &entry))
	assert.Equal(t, "72.5", entry.Theory.String())
}

func TestMarksListScan(t *testing.T) {
	var list MarksList
	raw := `[{"subject":"Science","theory":"60","practical":"20","grade":"A"}]`

	require.NoError(t, list.Scan([]byte(raw)))
	require.Len(t, list, 1)
	assert.Equal(t, "Science", list[0].Subject)
	assert.Equal(t, "A", list[0].Grade)
}

func TestFeeIsCounterPayment(t *testing.T) {
	counter := CounterPaymentPrefix + "abc"
	online := "mt-12345"

	assert.True(t, (&Fee{PaymentID: &counter}).IsCounterPayment())
	assert.False(t, (&Fee{PaymentID: &online}).IsCounterPayment())
	assert.False(t, (&Fee{}).IsCounterPayment())
}

func TestFeeMarkPaid(t *testing.T) {
	collector := "Office"
	fee := &Fee{Status: FeeUnpaid}
	fee.MarkPaid("COUNTER_xyz", &collector)

	assert.True(t, fee.IsPaid())
	assert.NotNil(t, fee.PaidAt)
	assert.Equal(t, "COUNTER_xyz", *fee.PaymentID)
	assert.Equal(t, "Office", *fee.CollectedBy)
}

func TestStudentClassLabel(t *testing.T) {
	assert.Equal(t, "VI - B", (&Student{Class: "VI", Section: "B"}).ClassLabel())
	assert.Equal(t, "VI", (&Student{Class: "VI"}).ClassLabel())
}

func TestInstituteFullAddress(t *testing.T) {
	inst := &Institute{Address: "12 MG Road", District: "Pune", State: "Maharashtra", Pincode: "411001"}
	assert.Equal(t, "12 MG Road, Pune, Maharashtra, 411001", inst.FullAddress())

	sparse := &Institute{District: "Pune"}
	assert.Equal(t, "Pune", sparse.FullAddress())
}

func TestExamBlueprintMaxTotal(t *testing.T) {
	bp := &ExamBlueprint{Subjects: SubjectBlueprintList{
		{Name: "Maths", MaxTheory: 80, MaxPractical: 20},
		{Name: "Science", MaxTheory: 70, MaxPractical: 30},
	}}
	assert.Equal(t, 200.0, bp.MaxTotal())
	assert.Equal(t, 0.0, (&ExamBlueprint{}).MaxTotal())
}
