package usecase

import (
	"context"
	"errors"
	"log"
	"meshguard_api/internal/domain/entities"
	"meshguard_api/internal/domain/pricing"
	"meshguard_api/internal/usecase/interfaces"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrQuoteNotFound         = errors.New("quote not found")
	ErrInvalidQuoteID        = errors.New("invalid quote id")
	ErrInvalidQuoteInput     = errors.New("invalid quote input")
	ErrInvalidQuoteStatus    = errors.New("invalid quote status")
	ErrQuoteDocumentsOffline = errors.New("quote document generator not configured")
)

// SubmitQuoteInput is the quote form. Mesh and material are free strings: values outside
// the price table are accepted and priced at the default unit price.
type SubmitQuoteInput struct {
	Width        float64
	Height       float64
	WindowCount  int
	MeshType     string
	MaterialType string
	Location     string
	Notes        string
}

// IQuoteUseCase exposes the quote lifecycle.
//
// States: pending -> {confirmed, paid, completed}. Admins may set any state; the
// payment confirmation job moves a quote to paid.
type IQuoteUseCase interface {
	SubmitQuote(ctx context.Context, actor entities.Actor, in SubmitQuoteInput) (entities.Quote, error)
	ListMyQuotes(ctx context.Context, actor entities.Actor) ([]entities.Quote, error)
	GetQuote(ctx context.Context, actor entities.Actor, quoteID string) (entities.Quote, error)
	ListAllQuotes(ctx context.Context, actor entities.Actor) ([]entities.QuoteWithOwner, error)
	SetQuoteStatus(ctx context.Context, actor entities.Actor, quoteID string, status entities.QuoteStatus) (entities.QuoteWithOwner, error)
	RenderQuotePDF(ctx context.Context, actor entities.Actor, quoteID string) ([]byte, error)
}

type QuoteUseCase struct {
	repo       interfaces.IQuoteRepository
	userRepo   interfaces.IUserRepository
	calculator *pricing.Calculator
	notifier   interfaces.INotifier
	documents  interfaces.IQuoteDocumentGenerator
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(
	repo interfaces.IQuoteRepository,
	userRepo interfaces.IUserRepository,
	calculator *pricing.Calculator,
	notifier interfaces.INotifier,
	documents interfaces.IQuoteDocumentGenerator,
) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, userRepo: userRepo, calculator: calculator, notifier: notifier, documents: documents}
}

func (u *QuoteUseCase) SubmitQuote(ctx context.Context, actor entities.Actor, in SubmitQuoteInput) (entities.Quote, error) {
	if actor.UserID == "" {
		return entities.Quote{}, ErrForbidden
	}
	mesh := strings.ToLower(strings.TrimSpace(in.MeshType))
	material := strings.ToLower(strings.TrimSpace(in.MaterialType))
	if in.Width <= 0 || in.Height <= 0 || in.WindowCount < 1 || mesh == "" || material == "" {
		log.Printf("[quote][usecase] submit rejected user_id=%s width=%v height=%v count=%d", actor.UserID, in.Width, in.Height, in.WindowCount)
		return entities.Quote{}, ErrInvalidQuoteInput
	}

	total := u.calculator.Calculate(pricing.Input{
		Mesh:     pricing.MeshType(mesh),
		Material: pricing.MaterialType(material),
		Width:    in.Width,
		Height:   in.Height,
		Count:    in.WindowCount,
	})

	now := time.Now().UTC()
	q := entities.Quote{
		ID:           uuid.NewString(),
		UserID:       actor.UserID,
		Width:        in.Width,
		Height:       in.Height,
		WindowCount:  in.WindowCount,
		MeshType:     mesh,
		MaterialType: material,
		TotalPrice:   total,
		Status:       entities.QuoteStatusPending,
		Location:     strings.TrimSpace(in.Location),
		Notes:        strings.TrimSpace(in.Notes),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		log.Printf("[quote][usecase] create failed user_id=%s err=%v", actor.UserID, err)
		return entities.Quote{}, err
	}
	log.Printf("[quote][usecase] submit success quote_id=%s user_id=%s total=%.2f", created.ID, created.UserID, created.TotalPrice)

	u.notify(ctx, interfaces.EventNewQuote, map[string]any{
		"quote_id":    created.ID,
		"user_email":  actor.Email,
		"mesh_type":   created.MeshType,
		"material":    created.MaterialType,
		"windows":     created.WindowCount,
		"total_price": created.TotalPrice,
		"location":    created.Location,
	})
	return created, nil
}

func (u *QuoteUseCase) ListMyQuotes(ctx context.Context, actor entities.Actor) ([]entities.Quote, error) {
	if actor.UserID == "" {
		return nil, ErrForbidden
	}
	quotes, err := u.repo.ListByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	sortQuotesNewestFirst(quotes)
	return quotes, nil
}

func (u *QuoteUseCase) GetQuote(ctx context.Context, actor entities.Actor, quoteID string) (entities.Quote, error) {
	q, err := u.load(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if !actor.CanAccess(q.UserID) {
		return entities.Quote{}, ErrForbidden
	}
	return q, nil
}

func (u *QuoteUseCase) ListAllQuotes(ctx context.Context, actor entities.Actor) ([]entities.QuoteWithOwner, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	quotes, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	users, err := u.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	owners := make(map[string]entities.User, len(users))
	for _, usr := range users {
		owners[usr.ID] = usr
	}

	sortQuotesNewestFirst(quotes)
	out := make([]entities.QuoteWithOwner, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, withOwner(q, owners[q.UserID]))
	}
	return out, nil
}

func (u *QuoteUseCase) SetQuoteStatus(ctx context.Context, actor entities.Actor, quoteID string, status entities.QuoteStatus) (entities.QuoteWithOwner, error) {
	if !actor.IsAdmin() {
		return entities.QuoteWithOwner{}, ErrForbidden
	}
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.QuoteWithOwner{}, ErrInvalidQuoteID
	}
	if !status.Valid() {
		return entities.QuoteWithOwner{}, ErrInvalidQuoteStatus
	}

	updated, err := u.repo.UpdateStatusByID(ctx, quoteID, status)
	if err != nil {
		return entities.QuoteWithOwner{}, err
	}
	if updated.ID == "" {
		return entities.QuoteWithOwner{}, ErrQuoteNotFound
	}
	log.Printf("[quote][usecase] status updated quote_id=%s status=%s by=%s", updated.ID, updated.Status, actor.UserID)

	owner, err := u.userRepo.GetByID(ctx, updated.UserID)
	if err != nil {
		log.Printf("[quote][usecase] owner lookup failed quote_id=%s err=%v", updated.ID, err)
	}
	res := withOwner(updated, owner)

	u.notify(ctx, interfaces.EventQuoteStatusUpdate, map[string]any{
		"quote_id":    res.ID,
		"status":      string(res.Status),
		"owner_email": res.OwnerEmail,
		"owner_name":  res.OwnerName,
	})
	return res, nil
}

func (u *QuoteUseCase) RenderQuotePDF(ctx context.Context, actor entities.Actor, quoteID string) ([]byte, error) {
	if u.documents == nil {
		return nil, ErrQuoteDocumentsOffline
	}
	q, err := u.GetQuote(ctx, actor, quoteID)
	if err != nil {
		return nil, err
	}
	owner, err := u.userRepo.GetByID(ctx, q.UserID)
	if err != nil {
		return nil, err
	}
	return u.documents.Generate(withOwner(q, owner))
}

func (u *QuoteUseCase) load(ctx context.Context, quoteID string) (entities.Quote, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	q, err := u.repo.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) notify(ctx context.Context, event interfaces.EventType, payload map[string]any) {
	if u.notifier == nil {
		return
	}
	_ = u.notifier.Notify(ctx, event, payload)
}

func withOwner(q entities.Quote, owner entities.User) entities.QuoteWithOwner {
	return entities.QuoteWithOwner{
		Quote:      q,
		OwnerName:  owner.Name,
		OwnerEmail: owner.Email,
		OwnerPhone: owner.Phone,
	}
}

func sortQuotesNewestFirst(quotes []entities.Quote) {
	sort.SliceStable(quotes, func(i, j int) bool { return quotes[i].CreatedAt.After(quotes[j].CreatedAt) })
}
