package response

import (
	"meshguard_api/internal/domain/entities"
	"time"
)

// QuoteResponse carries quote_id next to id; the quote form reads quote_id and
// total_price right after submission.
type QuoteResponse struct {
	QuoteID      string    `json:"quote_id"`
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Width        float64   `json:"width"`
	Height       float64   `json:"height"`
	WindowCount  int       `json:"window_count"`
	MeshType     string    `json:"mesh_type"`
	MaterialType string    `json:"material_type"`
	TotalPrice   float64   `json:"total_price"`
	Status       string    `json:"status"`
	Location     string    `json:"location,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	OwnerName  string `json:"owner_name,omitempty"`
	OwnerEmail string `json:"owner_email,omitempty"`
	OwnerPhone string `json:"owner_phone,omitempty"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		QuoteID:      q.ID,
		ID:           q.ID,
		UserID:       q.UserID,
		Width:        q.Width,
		Height:       q.Height,
		WindowCount:  q.WindowCount,
		MeshType:     q.MeshType,
		MaterialType: q.MaterialType,
		TotalPrice:   q.TotalPrice,
		Status:       string(q.Status),
		Location:     q.Location,
		Notes:        q.Notes,
		CreatedAt:    q.CreatedAt,
		UpdatedAt:    q.UpdatedAt,
	}
}

func FromQuotes(quotes []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}
	return out
}

func FromQuoteWithOwner(q entities.QuoteWithOwner) QuoteResponse {
	res := FromQuote(q.Quote)
	res.OwnerName = q.OwnerName
	res.OwnerEmail = q.OwnerEmail
	res.OwnerPhone = q.OwnerPhone
	return res
}

func FromQuotesWithOwner(quotes []entities.QuoteWithOwner) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuoteWithOwner(q))
	}
	return out
}
