package interfaces

import (
	"context"
	"meshguard_api/internal/domain/entities"
)

// IPaymentRepository abstracts persistence for Payment.
//
// CompleteWithQuote is the only multi-row mutation in the system: the payment
// becomes completed and its quote becomes paid in one transaction, or neither
// changes. It must only succeed while the payment is still initiated.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Payment, error)
	List(ctx context.Context) ([]entities.Payment, error)
	CompleteWithQuote(ctx context.Context, paymentID, confirmationCode string) (entities.Payment, error)
	MarkFailed(ctx context.Context, paymentID, reason string) (entities.Payment, error)
}
