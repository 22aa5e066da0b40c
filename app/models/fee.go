package models

import (
	"encoding/json"
	"strings"
	"time"
)

// Fee represents one billing instance for a student.
//
// Monthly fees carry a jsonb breakdown object of component name -> amount.
// Occasional fees instead carry "+"-joined parallel strings in Items and
// AmountBreakdown. Both shapes normalize to the same ordered line-item list
// at document-build time; TotalAmount stays authoritative regardless.
type Fee struct {
	ID              string          `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	StudentID       string          `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	InstituteID     string          `json:"institute_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	FeeType         FeeType         `json:"fee_type" gorm:"not null;type:varchar(20)" validate:"required,oneof=monthly occasional"`
	MonthYear       string          `json:"month_year,omitempty"`
	Breakdown       json.RawMessage `json:"breakdown,omitempty" gorm:"type:jsonb"`
	Items           *string         `json:"items,omitempty"`
	AmountBreakdown *string         `json:"amount_breakdown,omitempty"`
	TotalAmount     float64         `json:"total_amount" gorm:"not null;type:decimal(10,2)" validate:"gte=0"`
	Status          FeeStatus       `json:"status" gorm:"not null;default:'unpaid';index;type:varchar(20)"`
	PaymentID       *string         `json:"payment_id,omitempty" gorm:"index"`
	ReceiptNo       *string         `json:"receipt_no,omitempty" gorm:"uniqueIndex"`
	PaidAt          *time.Time      `json:"paid_at,omitempty" gorm:"index"`
	CollectedBy     *string         `json:"collected_by,omitempty"`
	CreatedAt       time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt       *time.Time      `json:"deleted_at,omitempty" gorm:"index"`

	Student   *Student   `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
	Institute *Institute `json:"institute,omitempty" gorm:"foreignKey:InstituteID;references:ID"`
}

// IsPaid returns true once the fee has transitioned to paid.
func (f *Fee) IsPaid() bool {
	return f.Status == FeePaid
}

// IsCounterPayment reports whether the fee was collected manually at the
// office counter rather than through the online gateway.
func (f *Fee) IsCounterPayment() bool {
	return f.PaymentID != nil && strings.HasPrefix(*f.PaymentID, CounterPaymentPrefix)
}

// MarkPaid stamps the one-time unpaid -> paid transition. The record is
// immutable afterwards except for corrective admin action.
func (f *Fee) MarkPaid(paymentID string, collectedBy *string) {
	f.Status = FeePaid
	f.PaymentID = &paymentID
	f.CollectedBy = collectedBy
	now := time.Now()
	f.PaidAt = &now
}

// FeeStructure is the per-class template used to publish monthly fees.
type FeeStructure struct {
	ID          string          `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	InstituteID string          `json:"institute_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Class       string          `json:"class" gorm:"not null" validate:"required"`
	Breakdown   json.RawMessage `json:"breakdown" gorm:"type:jsonb" validate:"required"`
	TotalAmount float64         `json:"total_amount" gorm:"not null;type:decimal(10,2)" validate:"gt=0"`
	IsActive    bool            `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt   *time.Time      `json:"deleted_at,omitempty" gorm:"index"`
}
