package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/apra1107-crypto/erp-sub002/app/models"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

var snapClient snap.Client

// InitMidtrans must be called at bootstrap before any order is created.
// useProduction selects the live environment over the sandbox.
func InitMidtrans(serverKey string, useProduction bool) {
	if useProduction {
		snapClient.New(serverKey, midtrans.Production)
	} else {
		snapClient.New(serverKey, midtrans.Sandbox)
	}
}

// CreateFeeOrder opens a Snap transaction for an unpaid fee and returns the
// gateway token and redirect URL. The fee id doubles as the gateway order
// id, which is what the webhook reports back.
func CreateFeeOrder(fee *models.Fee, student *models.Student, institute *models.Institute) (string, string, error) {
	if fee.TotalAmount <= 0 {
		return "", "", errors.New("invalid fee amount")
	}
	if fee.IsPaid() {
		return "", "", errors.New("fee is already paid")
	}

	description := fee.MonthYear
	if description == "" {
		description = string(fee.FeeType) + " fee"
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  fee.ID,
			GrossAmt: int64(fee.TotalAmount),
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:       fee.ID,
				Price:    int64(fee.TotalAmount),
				Qty:      1,
				Name:     truncate(fmt.Sprintf("School Fee - %s", description), 50),
				Category: strings.ToUpper(string(fee.FeeType)),
			},
		},
	}

	if student != nil {
		req.CustomerDetail = &midtrans.CustomerDetails{
			FName: student.Name,
		}
		if institute != nil {
			req.CustomerDetail.Email = institute.Email
			req.CustomerDetail.Phone = institute.Mobile
		}
	}

	resp, err := snapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}

// MapGatewayStatus translates a gateway notification into the payment state
// the fee lifecycle understands. Settlement (and capture accepted by fraud
// review) means paid; pending stays pending; everything else is a failure
// the caller records but does not retry.
func MapGatewayStatus(transactionStatus, fraudStatus string) models.PaymentStatus {
	switch strings.ToLower(transactionStatus) {
	case "capture":
		if strings.ToLower(fraudStatus) == "accept" {
			return models.PaymentCompleted
		}
		if strings.ToLower(fraudStatus) == "challenge" {
			return models.PaymentPending
		}
		return models.PaymentFailed
	case "settlement":
		return models.PaymentCompleted
	case "pending":
		return models.PaymentPending
	default:
		// deny / cancel / expire / failure
		return models.PaymentFailed
	}
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[:n]
}
