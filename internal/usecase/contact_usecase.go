package usecase

import (
	"context"
	"errors"
	"log"
	"meshguard_api/internal/domain/entities"
	"meshguard_api/internal/domain/phone"
	"meshguard_api/internal/usecase/interfaces"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

const maxContactMessageLength = 5000

var ErrInvalidContactMessage = errors.New("invalid contact message")

type ContactMessageInput struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

type IContactUseCase interface {
	Submit(ctx context.Context, in ContactMessageInput) (entities.ContactMessage, error)
	List(ctx context.Context, actor entities.Actor) ([]entities.ContactMessage, error)
}

type ContactUseCase struct {
	repo     interfaces.IContactMessageRepository
	notifier interfaces.INotifier
}

var _ IContactUseCase = (*ContactUseCase)(nil)

func NewContactUseCase(repo interfaces.IContactMessageRepository, notifier interfaces.INotifier) *ContactUseCase {
	return &ContactUseCase{repo: repo, notifier: notifier}
}

func (u *ContactUseCase) Submit(ctx context.Context, in ContactMessageInput) (entities.ContactMessage, error) {
	name := strings.TrimSpace(in.Name)
	email := normalizeEmail(in.Email)
	message := strings.TrimSpace(in.Message)
	if name == "" || !isEmail(email) || message == "" || len(message) > maxContactMessageLength {
		log.Printf("[contact][usecase] submit rejected email=%q len=%d", email, len(message))
		return entities.ContactMessage{}, ErrInvalidContactMessage
	}

	// Phone is optional here; keep it normalized when it parses, raw otherwise.
	contactPhone := strings.TrimSpace(in.Phone)
	if p, err := phone.Normalize(contactPhone); err == nil {
		contactPhone = p
	}

	m := entities.ContactMessage{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Phone:     contactPhone,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
	created, err := u.repo.Create(ctx, m)
	if err != nil {
		log.Printf("[contact][usecase] create failed email=%s err=%v", email, err)
		return entities.ContactMessage{}, err
	}
	log.Printf("[contact][usecase] submit success message_id=%s", created.ID)

	if u.notifier != nil {
		_ = u.notifier.Notify(ctx, interfaces.EventContactMessage, map[string]any{
			"name":    created.Name,
			"email":   created.Email,
			"phone":   created.Phone,
			"message": created.Message,
		})
	}
	return created, nil
}

func (u *ContactUseCase) List(ctx context.Context, actor entities.Actor) ([]entities.ContactMessage, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	msgs, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(msgs, func(i, j int) bool { return msgs[i].CreatedAt.After(msgs[j].CreatedAt) })
	return msgs, nil
}
