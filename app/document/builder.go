package document

import (
	"errors"
	"fmt"

	"github.com/apra1107-crypto/erp-sub002/app/models"
)

// Payment mode labels printed on receipts.
const (
	PaymentModeCounter = "Counter Cash / Manual"
	PaymentModeOnline  = "Online / Digital"
	CollectorOnline    = "System / Online"
)

const receiptDateLayout = "02 Jan 2006"

// ErrFeeNotPaid is returned when a receipt is requested for a fee that has
// not completed payment. Receipts always carry the PAID watermark, so one is
// only ever built from a paid record.
var ErrFeeNotPaid = errors.New("fee is not paid; receipt unavailable")

// ReceiptDocument is the render-agnostic model of a fee receipt. Both the
// HTML artifact and the preview page consume it, so the business content
// (item order, totals, mode, watermark) cannot diverge between outputs.
type ReceiptDocument struct {
	ReceiptNo     string
	Date          string
	MonthYear     string
	StudentName   string
	ClassName     string
	RollNo        string
	FatherName    string
	LineItems     []LineItem
	GrandTotal    float64
	AmountInWords string
	PaymentMode   string
	CollectedBy   string
	PaymentID     string

	InstituteName string
	LogoURL       string
	Affiliation   string
	Address       string
	Mobile        string
	Email         string
}

// GrandTotalLabel is the total row value, always the authoritative
// total_amount formatted to 2 decimals. Never the line-item sum, which is
// allowed to disagree.
func (d *ReceiptDocument) GrandTotalLabel() string {
	return fmt.Sprintf("%.2f", d.GrandTotal)
}

// BuildReceipt normalizes a fee, its institute and its student into a
// ReceiptDocument. The transform is pure: malformed breakdowns degrade to an
// empty item list and missing context fields render as empty strings. The
// only failure is requesting a receipt for an unpaid fee.
func BuildReceipt(fee *models.Fee, institute *models.Institute, student *models.Student) (*ReceiptDocument, error) {
	if fee == nil {
		return nil, errors.New("fee is required")
	}
	if !fee.IsPaid() {
		return nil, ErrFeeNotPaid
	}

	doc := &ReceiptDocument{
		MonthYear:  fee.MonthYear,
		LineItems:  NormalizeLineItems(fee),
		GrandTotal: fee.TotalAmount,
		Date:       "N/A",
	}

	if fee.ReceiptNo != nil {
		doc.ReceiptNo = *fee.ReceiptNo
	}
	if fee.PaymentID != nil {
		doc.PaymentID = *fee.PaymentID
	}
	if fee.PaidAt != nil {
		doc.Date = fee.PaidAt.Format(receiptDateLayout)
	}

	if fee.IsCounterPayment() {
		doc.PaymentMode = PaymentModeCounter
		if fee.CollectedBy != nil {
			doc.CollectedBy = *fee.CollectedBy
		}
	} else {
		doc.PaymentMode = PaymentModeOnline
		doc.CollectedBy = CollectorOnline
	}

	doc.AmountInWords = AmountInWords(fee.TotalAmount)

	if student != nil {
		doc.StudentName = student.Name
		doc.ClassName = student.ClassLabel()
		doc.RollNo = student.RollNo
		doc.FatherName = student.FatherName
	}
	if institute != nil {
		doc.InstituteName = institute.Name
		doc.LogoURL = institute.LogoURL
		doc.Affiliation = institute.Affiliation
		doc.Address = institute.FullAddress()
		doc.Mobile = institute.Mobile
		doc.Email = institute.Email
	}

	return doc, nil
}
