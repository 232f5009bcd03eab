package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"meshguard_api/internal/domain/entities"
	"meshguard_api/internal/domain/phone"
	"meshguard_api/internal/usecase/interfaces"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultPaymentConfirmationDelay = 3 * time.Second
	PaymentConfirmationJob          = "payment_confirmation"

	providerStatusApproved = "approved"
	mobileMoneyMethodID    = "mpesa"
)

var (
	ErrPaymentNotFound          = errors.New("payment not found")
	ErrInvalidPaymentID         = errors.New("invalid payment id")
	ErrInvalidPaymentAmount     = errors.New("invalid payment amount")
	ErrInvalidPaymentQuoteID    = errors.New("invalid quote_id")
	ErrPaymentGatewayRejected   = errors.New("payment gateway rejected payment")
	ErrPaymentGatewayBadRequest = errors.New("payment gateway bad request")
	ErrPaymentGatewayAuth       = errors.New("payment gateway unauthorized")
	ErrPaymentNotCompletable    = errors.New("payment can no longer be completed")
)

type InitiatePaymentInput struct {
	QuoteID string
	Amount  float64
	Phone   string
}

// IPaymentUseCase simulates a mobile-money push.
//
// Requested behavior:
//   - InitiatePayment persists an initiated payment and returns at once
//   - a delayed job completes it (payment completed + quote paid) or marks it failed
//   - GetPaymentStatus reads whatever state the job has reached

type IPaymentUseCase interface {
	InitiatePayment(ctx context.Context, actor entities.Actor, in InitiatePaymentInput) (entities.Payment, error)
	GetPaymentStatus(ctx context.Context, actor entities.Actor, paymentID string) (entities.Payment, error)
	ListMyPayments(ctx context.Context, actor entities.Actor) ([]entities.Payment, error)
	ConfirmPayment(ctx context.Context, paymentID, payerEmail string) error
}

type PaymentUseCase struct {
	repo      interfaces.IPaymentRepository
	quoteRepo interfaces.IQuoteRepository
	gateway   interfaces.IPaymentGateway
	scheduler interfaces.IScheduler
	notifier  interfaces.INotifier
	delay     time.Duration
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	repo interfaces.IPaymentRepository,
	quoteRepo interfaces.IQuoteRepository,
	gateway interfaces.IPaymentGateway,
	scheduler interfaces.IScheduler,
	notifier interfaces.INotifier,
	delay time.Duration,
) *PaymentUseCase {
	if delay < 0 {
		delay = DefaultPaymentConfirmationDelay
	}
	return &PaymentUseCase{
		repo:      repo,
		quoteRepo: quoteRepo,
		gateway:   gateway,
		scheduler: scheduler,
		notifier:  notifier,
		delay:     delay,
	}
}

func (u *PaymentUseCase) InitiatePayment(ctx context.Context, actor entities.Actor, in InitiatePaymentInput) (entities.Payment, error) {
	log.Printf("[payment][usecase] initiate start user_id=%s raw_quote_id=%q amount=%.2f", actor.UserID, in.QuoteID, in.Amount)
	if actor.UserID == "" {
		return entities.Payment{}, ErrForbidden
	}

	normalizedPhone, err := phone.Normalize(in.Phone)
	if err != nil {
		log.Printf("[payment][usecase] invalid phone user_id=%s", actor.UserID)
		return entities.Payment{}, phone.ErrInvalidPhone
	}
	if math.IsNaN(in.Amount) || math.IsInf(in.Amount, 0) || in.Amount <= 0 {
		log.Printf("[payment][usecase] invalid amount user_id=%s amount=%v", actor.UserID, in.Amount)
		return entities.Payment{}, ErrInvalidPaymentAmount
	}
	quoteID := strings.TrimSpace(in.QuoteID)
	if quoteID == "" {
		return entities.Payment{}, ErrInvalidPaymentQuoteID
	}

	q, err := u.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		log.Printf("[payment][usecase] failed loading quote quote_id=%s err=%v", quoteID, err)
		return entities.Payment{}, err
	}
	if q.ID == "" {
		log.Printf("[payment][usecase] quote not found quote_id=%s", quoteID)
		return entities.Payment{}, ErrQuoteNotFound
	}
	if !actor.CanAccess(q.UserID) {
		log.Printf("[payment][usecase] quote not owned quote_id=%s user_id=%s", quoteID, actor.UserID)
		return entities.Payment{}, ErrForbidden
	}

	// Payments belong to the quote owner, also when an admin starts them.
	now := time.Now().UTC()
	p := entities.Payment{
		ID:        uuid.NewString(),
		UserID:    q.UserID,
		QuoteID:   q.ID,
		Amount:    in.Amount,
		Phone:     normalizedPhone,
		Status:    entities.PaymentStatusInitiated,
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] payment repository create failed quote_id=%s err=%v", quoteID, err)
		return entities.Payment{}, err
	}

	if u.scheduler != nil {
		paymentID, payerEmail := created.ID, actor.Email
		jobID := u.scheduler.Schedule(PaymentConfirmationJob, u.delay, func(jobCtx context.Context) error {
			return u.ConfirmPayment(jobCtx, paymentID, payerEmail)
		})
		log.Printf("[payment][usecase] confirmation scheduled payment_id=%s job_id=%s delay=%s", created.ID, jobID, u.delay)
	} else {
		log.Printf("[payment][usecase] scheduler not configured; payment stays initiated payment_id=%s", created.ID)
	}

	log.Printf("[payment][usecase] initiate success payment_id=%s quote_id=%s status=%s", created.ID, created.QuoteID, created.Status)
	return created, nil
}

// ConfirmPayment is the delayed completion job. It is not retried: any failure
// marks the payment failed and is returned for the scheduler to record.
func (u *PaymentUseCase) ConfirmPayment(ctx context.Context, paymentID, payerEmail string) error {
	log.Printf("[payment][job] confirm start payment_id=%s", paymentID)
	p, err := u.repo.GetByID(ctx, paymentID)
	if err != nil {
		log.Printf("[payment][job] failed loading payment payment_id=%s err=%v", paymentID, err)
		return err
	}
	if p.ID == "" {
		return ErrPaymentNotFound
	}
	if p.Status != entities.PaymentStatusInitiated {
		log.Printf("[payment][job] payment already settled payment_id=%s status=%s", p.ID, p.Status)
		return nil
	}

	if u.gateway == nil {
		return u.fail(ctx, p, errors.New("payment gateway not configured"))
	}

	payload, err := buildGatewayPayload(p, payerEmail)
	if err != nil {
		return u.fail(ctx, p, err)
	}
	providerPaymentID, providerStatus, _, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[payment][job] payment gateway failed payment_id=%s err=%v", p.ID, err)
		return u.fail(ctx, p, classifyGatewayError(err))
	}
	if !strings.EqualFold(providerStatus, providerStatusApproved) {
		return u.fail(ctx, p, fmt.Errorf("%w: status=%s", ErrPaymentGatewayRejected, providerStatus))
	}
	log.Printf("[payment][job] payment gateway success payment_id=%s provider_payment_id=%s provider_status=%s", p.ID, providerPaymentID, providerStatus)

	code := confirmationCode(providerPaymentID, p.ID)
	completed, err := u.repo.CompleteWithQuote(ctx, p.ID, code)
	if err != nil {
		log.Printf("[payment][job] completion transaction failed payment_id=%s err=%v", p.ID, err)
		return u.fail(ctx, p, err)
	}
	if completed.ID == "" {
		return u.fail(ctx, p, ErrPaymentNotCompletable)
	}
	log.Printf("[payment][job] confirm success payment_id=%s quote_id=%s code=%s", completed.ID, completed.QuoteID, completed.ConfirmationCode)

	u.notify(ctx, interfaces.EventPaymentConfirmation, map[string]any{
		"payment_id":        completed.ID,
		"quote_id":          completed.QuoteID,
		"amount":            completed.Amount,
		"phone":             completed.Phone,
		"confirmation_code": completed.ConfirmationCode,
		"user_email":        payerEmail,
	})
	return nil
}

func (u *PaymentUseCase) fail(ctx context.Context, p entities.Payment, cause error) error {
	reason := cause.Error()
	if _, err := u.repo.MarkFailed(ctx, p.ID, reason); err != nil {
		log.Printf("[payment][job] mark failed errored payment_id=%s err=%v", p.ID, err)
	}
	log.Printf("[payment][job] payment failed payment_id=%s reason=%q", p.ID, reason)
	u.notify(ctx, interfaces.EventPaymentFailed, map[string]any{
		"payment_id": p.ID,
		"quote_id":   p.QuoteID,
		"amount":     p.Amount,
		"reason":     reason,
	})
	return fmt.Errorf("confirm payment %s: %w", p.ID, cause)
}

func (u *PaymentUseCase) GetPaymentStatus(ctx context.Context, actor entities.Actor, paymentID string) (entities.Payment, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, paymentID)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	if !actor.CanAccess(p.UserID) {
		return entities.Payment{}, ErrForbidden
	}
	return p, nil
}

func (u *PaymentUseCase) ListMyPayments(ctx context.Context, actor entities.Actor) ([]entities.Payment, error) {
	if actor.UserID == "" {
		return nil, ErrForbidden
	}
	payments, err := u.repo.ListByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(payments, func(i, j int) bool { return payments[i].CreatedAt.After(payments[j].CreatedAt) })
	return payments, nil
}

func (u *PaymentUseCase) notify(ctx context.Context, event interfaces.EventType, payload map[string]any) {
	if u.notifier == nil {
		return
	}
	_ = u.notifier.Notify(ctx, event, payload)
}

// buildGatewayPayload follows the Mercado Pago payment request shape; the quote id
// travels as external_reference so provider events can be reconciled.
func buildGatewayPayload(p entities.Payment, payerEmail string) (json.RawMessage, error) {
	payer := map[string]any{"type": "customer"}
	if len(p.Phone) > 3 {
		payer["phone"] = map[string]any{
			"area_code": p.Phone[:3],
			"number":    p.Phone[3:],
		}
	}
	if email := strings.TrimSpace(payerEmail); email != "" {
		payer["email"] = email
	}
	req := map[string]any{
		"transaction_amount": p.Amount,
		"description":        fmt.Sprintf("Quote %s", p.QuoteID),
		"external_reference": p.QuoteID,
		"payment_method_id":  mobileMoneyMethodID,
		"installments":       1,
		"payer":              payer,
	}
	return json.Marshal(req)
}

func confirmationCode(providerPaymentID, paymentID string) string {
	code := strings.ToUpper(strings.TrimSpace(providerPaymentID))
	if code == "" {
		code = strings.ToUpper(strings.ReplaceAll(paymentID, "-", ""))
		if len(code) > 10 {
			code = code[:10]
		}
	}
	return code
}

func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayAuth, err)
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayBadRequest, err)
	default:
		return err
	}
}
