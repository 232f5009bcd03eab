package response

import (
	"meshguard_api/internal/domain/entities"
	"time"
)

type PaymentResponse struct {
	PaymentID        string    `json:"payment_id"`
	ID               string    `json:"id"`
	QuoteID          string    `json:"quote_id"`
	Amount           float64   `json:"amount"`
	Phone            string    `json:"phone"`
	Status           string    `json:"status"`
	ConfirmationCode string    `json:"confirmation_code,omitempty"`
	FailureReason    string    `json:"failure_reason,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:        p.ID,
		ID:               p.ID,
		QuoteID:          p.QuoteID,
		Amount:           p.Amount,
		Phone:            p.Phone,
		Status:           string(p.Status),
		ConfirmationCode: p.ConfirmationCode,
		FailureReason:    p.FailureReason,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func FromPayments(payments []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromPayment(p))
	}
	return out
}
