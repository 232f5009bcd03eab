package response

import (
	"meshguard_api/internal/domain/entities"
	"meshguard_api/internal/usecase"
	"time"
)

type ServiceAreaResponse struct {
	Location string `json:"location"`
	Served   bool   `json:"served"`
	Matched  string `json:"matched,omitempty"`
	Estimate string `json:"estimate,omitempty"`
	Message  string `json:"message"`
}

func FromServiceArea(r usecase.ServiceAreaResult) ServiceAreaResponse {
	return ServiceAreaResponse{
		Location: r.Location,
		Served:   r.Served,
		Matched:  r.Matched,
		Estimate: r.Estimate,
		Message:  r.Message,
	}
}

type ContactMessageResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func FromContactMessage(m entities.ContactMessage) ContactMessageResponse {
	return ContactMessageResponse{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
	}
}

func FromContactMessages(msgs []entities.ContactMessage) []ContactMessageResponse {
	out := make([]ContactMessageResponse, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, FromContactMessage(m))
	}
	return out
}

type StatsResponse struct {
	Users             int            `json:"users"`
	Quotes            int            `json:"quotes"`
	QuotesByStatus    map[string]int `json:"quotes_by_status"`
	Payments          int            `json:"payments"`
	PaymentsByStatus  map[string]int `json:"payments_by_status"`
	CompletedRevenue  float64        `json:"completed_revenue"`
	OutstandingQuotes float64        `json:"outstanding_quotes_value"`
}

func FromStats(s usecase.Stats) StatsResponse {
	res := StatsResponse{
		Users:             s.Users,
		Quotes:            s.Quotes,
		QuotesByStatus:    make(map[string]int, len(s.QuotesByStatus)),
		Payments:          s.Payments,
		PaymentsByStatus:  make(map[string]int, len(s.PaymentsByStatus)),
		CompletedRevenue:  s.CompletedRevenue,
		OutstandingQuotes: s.OutstandingQuotes,
	}
	for k, v := range s.QuotesByStatus {
		res.QuotesByStatus[string(k)] = v
	}
	for k, v := range s.PaymentsByStatus {
		res.PaymentsByStatus[string(k)] = v
	}
	return res
}
