package services

import (
	"testing"

	"github.com/apra1107-crypto/erp-sub002/app/models"

	"github.com/stretchr/testify/assert"
)

func TestMapGatewayStatus(t *testing.T) {
	tests := []struct {
		transaction string
		fraud       string
		want        models.PaymentStatus
	}{
		{"settlement", "", models.PaymentCompleted},
		{"capture", "accept", models.PaymentCompleted},
		{"capture", "challenge", models.PaymentPending},
		{"capture", "deny", models.PaymentFailed},
		{"pending", "", models.PaymentPending},
		{"deny", "", models.PaymentFailed},
		{"cancel", "", models.PaymentFailed},
		{"expire", "", models.PaymentFailed},
		{"SETTLEMENT", "", models.PaymentCompleted},
		{"Capture", "Accept", models.PaymentCompleted},
		{"", "", models.PaymentFailed},
	}

	for _, tt := range tests {
		got := MapGatewayStatus(tt.transaction, tt.fraud)
		assert.Equal(t, tt.want, got, "%s/%s", tt.transaction, tt.fraud)
	}
}

func TestCreateFeeOrderRejectsBadInput(t *testing.T) {
	_, _, err := CreateFeeOrder(&models.Fee{TotalAmount: 0}, nil, nil)
	assert.Error(t, err)

	paid := &models.Fee{TotalAmount: 500, Status: models.FeePaid}
	_, _, err = CreateFeeOrder(paid, nil, nil)
	assert.Error(t, err)
}
