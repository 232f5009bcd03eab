// Package notifications turns domain events into human readable messages.
//
// Nothing is sent: messages are rendered and written to the log. Notify never
// panics and never returns an error to the caller's control flow.
package notifications

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"meshguard_api/internal/infrastructure/metrics"
	"meshguard_api/internal/usecase/interfaces"
	"text/template"
)

// Message is what a channel would deliver for one event.
type Message struct {
	Subject string
	Body    string
}

type templatePair struct {
	subject *template.Template
	body    *template.Template
}

var defaultTemplates = map[interfaces.EventType][2]string{
	interfaces.EventNewQuote: {
		"New quote request {{.quote_id}}",
		"{{.user_email}} requested {{.windows}} {{.mesh_type}} screen(s) in {{.material}}. Total: KES {{printf \"%.2f\" .total_price}}. Location: {{.location}}",
	},
	interfaces.EventPaymentConfirmation: {
		"Payment received for quote {{.quote_id}}",
		"Payment {{.payment_id}} of KES {{printf \"%.2f\" .amount}} from {{.phone}} confirmed. Code: {{.confirmation_code}}",
	},
	interfaces.EventPaymentFailed: {
		"Payment failed for quote {{.quote_id}}",
		"Payment {{.payment_id}} of KES {{printf \"%.2f\" .amount}} failed: {{.reason}}",
	},
	interfaces.EventQuoteStatusUpdate: {
		"Quote {{.quote_id}} is now {{.status}}",
		"Hi {{.owner_name}}, your quote {{.quote_id}} status changed to {{.status}}.",
	},
	interfaces.EventContactMessage: {
		"New contact message from {{.name}}",
		"{{.name}} <{{.email}}> {{.phone}} wrote: {{.message}}",
	},
}

// LogNotifier renders events with text/template and logs them.
type LogNotifier struct {
	templates map[interfaces.EventType]templatePair
	logf      func(format string, args ...any)
}

var _ interfaces.INotifier = (*LogNotifier)(nil)

func NewLogNotifier() *LogNotifier {
	n := &LogNotifier{templates: map[interfaces.EventType]templatePair{}, logf: log.Printf}
	for event, src := range defaultTemplates {
		n.templates[event] = templatePair{
			subject: template.Must(template.New(string(event) + "_subject").Option("missingkey=zero").Parse(src[0])),
			body:    template.Must(template.New(string(event) + "_body").Option("missingkey=zero").Parse(src[1])),
		}
	}
	return n
}

func (n *LogNotifier) Notify(ctx context.Context, event interfaces.EventType, payload map[string]any) (res interfaces.NotifyResult) {
	defer func() {
		if r := recover(); r != nil {
			res = interfaces.NotifyResult{Err: fmt.Errorf("notify %s panicked: %v", event, r)}
			metrics.NotificationsTotal.WithLabelValues(string(event), "panic").Inc()
			log.Printf("[notify] recovered panic event=%s err=%v", event, r)
		}
	}()

	msg, err := n.Render(event, payload)
	if err != nil {
		metrics.NotificationsTotal.WithLabelValues(string(event), "error").Inc()
		n.logf("[notify] render failed event=%s err=%v", event, err)
		return interfaces.NotifyResult{Err: err}
	}

	n.logf("[notify] event=%s subject=%q body=%q", event, msg.Subject, msg.Body)
	metrics.NotificationsTotal.WithLabelValues(string(event), "delivered").Inc()
	return interfaces.NotifyResult{Delivered: true, Subject: msg.Subject}
}

// Render maps an event to its subject and body. Unknown events get a generic message.
func (n *LogNotifier) Render(event interfaces.EventType, payload map[string]any) (Message, error) {
	tp, ok := n.templates[event]
	if !ok {
		return Message{Subject: fmt.Sprintf("Notification: %s", event), Body: fmt.Sprintf("%v", payload)}, nil
	}
	if payload == nil {
		payload = map[string]any{}
	}

	var subject, body bytes.Buffer
	if err := tp.subject.Execute(&subject, payload); err != nil {
		return Message{}, err
	}
	if err := tp.body.Execute(&body, payload); err != nil {
		return Message{}, err
	}
	return Message{Subject: subject.String(), Body: body.String()}, nil
}
