package notifications

import (
	"context"
	"fmt"
	"testing"

	"meshguard_api/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogNotifier_RendersEvents(t *testing.T) {
	n := NewLogNotifier()
	var lines []string
	n.logf = func(format string, args ...any) { lines = append(lines, fmt.Sprintf(format, args...)) }

	res := n.Notify(context.Background(), interfaces.EventPaymentConfirmation, map[string]any{
		"payment_id":        "p-1",
		"quote_id":          "q-1",
		"amount":            11520.0,
		"phone":             "254712345678",
		"confirmation_code": "QK7ABC12DE",
	})
	require.True(t, res.Delivered)
	require.NoError(t, res.Err)
	assert.Equal(t, "Payment received for quote q-1", res.Subject)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "KES 11520.00")
	assert.Contains(t, lines[0], "QK7ABC12DE")
}

func TestLogNotifier_EveryEventHasTemplate(t *testing.T) {
	n := NewLogNotifier()
	for _, ev := range []interfaces.EventType{
		interfaces.EventNewQuote,
		interfaces.EventPaymentConfirmation,
		interfaces.EventPaymentFailed,
		interfaces.EventQuoteStatusUpdate,
		interfaces.EventContactMessage,
	} {
		_, ok := n.templates[ev]
		assert.True(t, ok, "missing template for %s", ev)
	}
}

func TestLogNotifier_NeverPanics(t *testing.T) {
	n := NewLogNotifier()

	var res interfaces.NotifyResult
	assert.NotPanics(t, func() {
		res = n.Notify(context.Background(), interfaces.EventNewQuote, map[string]any{"total_price": "oops"})
	})
	assert.NoError(t, res.Err)

	res = n.Notify(context.Background(), "unknown_event", nil)
	assert.True(t, res.Delivered)
	assert.Equal(t, "Notification: unknown_event", res.Subject)

	n.logf = func(string, ...any) { panic("sink down") }
	assert.NotPanics(t, func() {
		res = n.Notify(context.Background(), interfaces.EventContactMessage, map[string]any{"name": "Ann"})
	})
	assert.False(t, res.Delivered)
	assert.Error(t, res.Err)
}
