package entities

import "time"

// PaymentStatus represents the simulated mobile-money transaction outcome.
//
// A payment is created as initiated and is mutated exactly once, by the
// delayed confirmation job, to completed or failed.

type PaymentStatus string

const (
	PaymentStatusInitiated PaymentStatus = "initiated"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// Payment is a mobile-money transaction tied to one quote.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
//
// ConfirmationCode is the provider reference, only set once completed.
type Payment struct {
	ID               string        `json:"id"`
	UserID           string        `json:"user_id"`
	QuoteID          string        `json:"quote_id"`
	Amount           float64       `json:"amount"`
	Phone            string        `json:"phone"`
	ConfirmationCode string        `json:"confirmation_code,omitempty"`
	FailureReason    string        `json:"failure_reason,omitempty"`
	Status           PaymentStatus `json:"status"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}
