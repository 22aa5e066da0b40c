package document

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/apra1107-crypto/erp-sub002/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paidMonthlyFee() *models.Fee {
	paidAt := time.Date(2026, 4, 15, 10, 30, 0, 0, time.UTC)
	return &models.Fee{
		ID:          "fee-1",
		FeeType:     models.FeeMonthly,
		MonthYear:   "April 2026",
		Breakdown:   json.RawMessage(`{"Tuition Fee": 800, "Transport": 400}`),
		TotalAmount: 1200,
		Status:      models.FeePaid,
		PaymentID:   strPtr(models.CounterPaymentPrefix + "abc123"),
		ReceiptNo:   strPtr("RCPT-2026-000042"),
		PaidAt:      &paidAt,
		CollectedBy: strPtr("Office Desk 1"),
	}
}

func testInstitute() *models.Institute {
	return &models.Institute{
		Name:        "Gurukul Public School",
		Affiliation: "CBSE Affiliation No. 12345",
		Address:     "12 MG Road",
		District:    "Pune",
		State:       "Maharashtra",
		Pincode:     "411001",
		Mobile:      "9800012345",
		Email:       "office@gurukul.example",
	}
}

func testStudent() *models.Student {
	return &models.Student{
		Name:       "Aarav Sharma",
		Class:      "VI",
		Section:    "B",
		RollNo:     "14",
		FatherName: "Rakesh Sharma",
	}
}

func TestBuildReceiptCounterPayment(t *testing.T) {
	doc, err := BuildReceipt(paidMonthlyFee(), testInstitute(), testStudent())
	require.NoError(t, err)

	assert.Equal(t, "RCPT-2026-000042", doc.ReceiptNo)
	assert.Equal(t, "15 Apr 2026", doc.Date)
	assert.Equal(t, "April 2026", doc.MonthYear)
	assert.Equal(t, "Aarav Sharma", doc.StudentName)
	assert.Equal(t, "VI - B", doc.ClassName)
	assert.Equal(t, PaymentModeCounter, doc.PaymentMode)
	assert.Equal(t, "Office Desk 1", doc.CollectedBy)
	assert.Equal(t, "1200.00", doc.GrandTotalLabel())
	assert.Equal(t, "One Thousand Two Hundred Rupees Only", doc.AmountInWords)
	assert.Equal(t, []LineItem{
		{Name: "Tuition Fee", Amount: 800},
		{Name: "Transport", Amount: 400},
	}, doc.LineItems)
	assert.Contains(t, doc.Address, "12 MG Road")
	assert.Contains(t, doc.Address, "Maharashtra")
}

func TestBuildReceiptOnlinePayment(t *testing.T) {
	fee := paidMonthlyFee()
	fee.PaymentID = strPtr("mt-9f8e7d6c")
	fee.CollectedBy = nil

	doc, err := BuildReceipt(fee, testInstitute(), testStudent())
	require.NoError(t, err)

	assert.Equal(t, PaymentModeOnline, doc.PaymentMode)
	assert.Equal(t, CollectorOnline, doc.CollectedBy)
	assert.Equal(t, "mt-9f8e7d6c", doc.PaymentID)
}

func TestBuildReceiptOccasionalFee(t *testing.T) {
	paidAt := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	fee := &models.Fee{
		ID:              "fee-2",
		FeeType:         models.FeeOccasional,
		Items:           strPtr("Picnic + Uniform"),
		AmountBreakdown: strPtr("500 + 300"),
		TotalAmount:     800,
		Status:          models.FeePaid,
		PaymentID:       strPtr(models.CounterPaymentPrefix + "xyz"),
		PaidAt:          &paidAt,
		CollectedBy:     strPtr("Office"),
	}

	doc, err := BuildReceipt(fee, testInstitute(), testStudent())
	require.NoError(t, err)

	assert.Equal(t, []LineItem{
		{Name: "Picnic", Amount: 500},
		{Name: "Uniform", Amount: 300},
	}, doc.LineItems)
	assert.Equal(t, "800.00", doc.GrandTotalLabel())
	assert.Equal(t, "", doc.MonthYear)
}

func TestBuildReceiptUnpaidFee(t *testing.T) {
	fee := paidMonthlyFee()
	fee.Status = models.FeeUnpaid

	doc, err := BuildReceipt(fee, testInstitute(), testStudent())
	assert.Nil(t, doc)
	assert.ErrorIs(t, err, ErrFeeNotPaid)
}

func TestBuildReceiptNilFee(t *testing.T) {
	_, err := BuildReceipt(nil, testInstitute(), testStudent())
	assert.Error(t, err)
}

func TestBuildReceiptMissingContext(t *testing.T) {
	fee := paidMonthlyFee()
	fee.PaidAt = nil
	fee.ReceiptNo = nil

	doc, err := BuildReceipt(fee, nil, nil)
	require.NoError(t, err)

	// Missing context degrades to blanks, never an error.
	assert.Equal(t, "N/A", doc.Date)
	assert.Equal(t, "", doc.ReceiptNo)
	assert.Equal(t, "", doc.StudentName)
	assert.Equal(t, "", doc.InstituteName)
}

func TestBuildReceiptTotalDisagreesWithItems(t *testing.T) {
	fee := paidMonthlyFee()
	fee.TotalAmount = 1500 // authoritative even when items sum to 1200

	doc, err := BuildReceipt(fee, testInstitute(), testStudent())
	require.NoError(t, err)

	assert.Equal(t, "1500.00", doc.GrandTotalLabel())
	assert.Equal(t, "One Thousand Five Hundred Rupees Only", doc.AmountInWords)
}

func TestBuildReceiptMalformedBreakdown(t *testing.T) {
	fee := paidMonthlyFee()
	fee.Breakdown = json.RawMessage(`{broken`)

	doc, err := BuildReceipt(fee, testInstitute(), testStudent())
	require.NoError(t, err)

	assert.Empty(t, doc.LineItems)
	assert.Equal(t, "1200.00", doc.GrandTotalLabel())
}
