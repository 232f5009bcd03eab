package usecase

import (
	"context"
	"math"
	"meshguard_api/internal/domain/entities"
	"meshguard_api/internal/usecase/interfaces"
)

// Stats is the admin dashboard summary.
type Stats struct {
	Users             int
	Quotes            int
	QuotesByStatus    map[entities.QuoteStatus]int
	Payments          int
	PaymentsByStatus  map[entities.PaymentStatus]int
	CompletedRevenue  float64
	OutstandingQuotes float64
}

type IAdminUseCase interface {
	Stats(ctx context.Context, actor entities.Actor) (Stats, error)
}

type AdminUseCase struct {
	users    interfaces.IUserRepository
	quotes   interfaces.IQuoteRepository
	payments interfaces.IPaymentRepository
}

var _ IAdminUseCase = (*AdminUseCase)(nil)

func NewAdminUseCase(users interfaces.IUserRepository, quotes interfaces.IQuoteRepository, payments interfaces.IPaymentRepository) *AdminUseCase {
	return &AdminUseCase{users: users, quotes: quotes, payments: payments}
}

// Stats aggregates in memory; volumes are a single installer's books.
func (u *AdminUseCase) Stats(ctx context.Context, actor entities.Actor) (Stats, error) {
	if !actor.IsAdmin() {
		return Stats{}, ErrForbidden
	}

	users, err := u.users.List(ctx)
	if err != nil {
		return Stats{}, err
	}
	quotes, err := u.quotes.List(ctx)
	if err != nil {
		return Stats{}, err
	}
	payments, err := u.payments.List(ctx)
	if err != nil {
		return Stats{}, err
	}

	s := Stats{
		Users:            len(users),
		Quotes:           len(quotes),
		QuotesByStatus:   make(map[entities.QuoteStatus]int, len(entities.QuoteStatuses())),
		Payments:         len(payments),
		PaymentsByStatus: make(map[entities.PaymentStatus]int, 3),
	}
	for _, st := range entities.QuoteStatuses() {
		s.QuotesByStatus[st] = 0
	}
	for _, q := range quotes {
		s.QuotesByStatus[q.Status]++
		if q.Status == entities.QuoteStatusPending || q.Status == entities.QuoteStatusConfirmed {
			s.OutstandingQuotes += q.TotalPrice
		}
	}
	for _, p := range payments {
		s.PaymentsByStatus[p.Status]++
		if p.Status == entities.PaymentStatusCompleted {
			s.CompletedRevenue += p.Amount
		}
	}
	s.CompletedRevenue = math.Round(s.CompletedRevenue*100) / 100
	s.OutstandingQuotes = math.Round(s.OutstandingQuotes*100) / 100
	return s, nil
}
