package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway abstracts the mobile-money provider.
//
// The confirmation job calls it once per payment. A providerStatus other than
// "approved" is treated as a failed payment.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
