package models

// FeeType defines the kind of charge a fee record represents.
type FeeType string

const (
	FeeMonthly    FeeType = "monthly"
	FeeOccasional FeeType = "occasional"
)

// FeeStatus defines the payment state of a fee record.
type FeeStatus string

const (
	FeePaid   FeeStatus = "paid"
	FeeUnpaid FeeStatus = "unpaid"
)

// CounterPaymentPrefix marks payment ids issued for manual/cash collection
// at the office counter, as opposed to gateway transaction ids.
const CounterPaymentPrefix = "COUNTER_"

// PaymentStatus defines the status of a gateway payment attempt.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)
