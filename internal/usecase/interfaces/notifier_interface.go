package interfaces

import "context"

type EventType string

const (
	EventNewQuote            EventType = "new_quote"
	EventPaymentConfirmation EventType = "payment_confirmation"
	EventPaymentFailed       EventType = "payment_failed"
	EventQuoteStatusUpdate   EventType = "quote_status_update"
	EventContactMessage      EventType = "contact_message"
)

// NotifyResult reports what happened to a notification. Callers may ignore it.
type NotifyResult struct {
	Delivered bool
	Subject   string
	Err       error
}

// INotifier is a best-effort, fire-and-forget sink. Notify never panics and its
// result must never influence transactional state.
type INotifier interface {
	Notify(ctx context.Context, event EventType, payload map[string]any) NotifyResult
}
