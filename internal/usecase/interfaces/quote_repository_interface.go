package interfaces

import (
	"context"
	"meshguard_api/internal/domain/entities"
)

// IQuoteRepository abstracts persistence for Quote.
//
// The quote lifecycle needs to:
//   - create a priced quote with status pending
//   - list quotes for one user and for the admin panel
//   - update quote status by ID (admin action)

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Quote, error)
	List(ctx context.Context) ([]entities.Quote, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error)
}
