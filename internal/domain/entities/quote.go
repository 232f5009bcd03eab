package entities

import "time"

// QuoteStatus represents the lifecycle of an installation quote.
//
// Domain notes:
//   - pending is the only initial state.
//   - paid is reached through a completed payment (or an admin override).
//   - completed is terminal in practice, but admins may still edit it.

type QuoteStatus string

const (
	QuoteStatusPending   QuoteStatus = "pending"
	QuoteStatusConfirmed QuoteStatus = "confirmed"
	QuoteStatusPaid      QuoteStatus = "paid"
	QuoteStatusCompleted QuoteStatus = "completed"
)

// Valid reports whether s is one of the four known quote states.
func (s QuoteStatus) Valid() bool {
	switch s {
	case QuoteStatusPending, QuoteStatusConfirmed, QuoteStatusPaid, QuoteStatusCompleted:
		return true
	}
	return false
}

// QuoteStatuses lists every state in lifecycle order.
func QuoteStatuses() []QuoteStatus {
	return []QuoteStatus{QuoteStatusPending, QuoteStatusConfirmed, QuoteStatusPaid, QuoteStatusCompleted}
}

// Quote is a priced request for mesh installation.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
//
// Monetary representation:
//   - TotalPrice is computed once at submission and never recomputed.
type Quote struct {
	ID           string      `json:"id"`
	UserID       string      `json:"user_id"`
	Width        float64     `json:"width"`
	Height       float64     `json:"height"`
	WindowCount  int         `json:"window_count"`
	MeshType     string      `json:"mesh_type"`
	MaterialType string      `json:"material_type"`
	TotalPrice   float64     `json:"total_price"`
	Status       QuoteStatus `json:"status"`
	Location     string      `json:"location"`
	Notes        string      `json:"notes,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// QuoteWithOwner is the admin view of a quote joined with its owner contact data.
type QuoteWithOwner struct {
	Quote
	OwnerName  string `json:"owner_name"`
	OwnerEmail string `json:"owner_email"`
	OwnerPhone string `json:"owner_phone"`
}
