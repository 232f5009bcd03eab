package request

import "strings"

// PaymentRequest starts a simulated mobile-money push for a quote. Fields are
// validated by the use case so phone errors are reported before amount errors.
type PaymentRequest struct {
	QuoteID string  `json:"quote_id"`
	Amount  float64 `json:"amount"`
	Phone   string  `json:"phone"`
}

func (r PaymentRequest) ResolveQuoteID() string {
	return strings.TrimSpace(r.QuoteID)
}
