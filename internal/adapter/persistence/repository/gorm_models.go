package repository

import (
	"time"

	"meshguard_api/internal/domain/entities"

	"gorm.io/gorm"
)

// SQL row models. Money is stored as float64 like the DynamoDB items (which
// keep it as a decimal string); amounts never go below cent precision.

type userRow struct {
	ID           string `gorm:"primaryKey;size:36"`
	Name         string `gorm:"size:255;not null"`
	Email        string `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Phone        string `gorm:"size:20"`
	Role         string `gorm:"size:20;not null;default:user"`
	CreatedAt    time.Time
}

func (userRow) TableName() string { return "users" }

type quoteRow struct {
	ID           string  `gorm:"primaryKey;size:36"`
	UserID       string  `gorm:"index;size:36;not null"`
	Width        float64 `gorm:"not null"`
	Height       float64 `gorm:"not null"`
	WindowCount  int     `gorm:"not null"`
	MeshType     string  `gorm:"size:50;not null"`
	MaterialType string  `gorm:"size:50;not null"`
	TotalPrice   float64 `gorm:"not null"`
	Status       string  `gorm:"size:20;not null;default:pending"`
	Location     string  `gorm:"size:255"`
	Notes        string  `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (quoteRow) TableName() string { return "quotes" }

type paymentRow struct {
	ID               string  `gorm:"primaryKey;size:36"`
	UserID           string  `gorm:"index;size:36;not null"`
	QuoteID          string  `gorm:"index;size:36;not null"`
	Amount           float64 `gorm:"not null"`
	Phone            string  `gorm:"size:20;not null"`
	ConfirmationCode string  `gorm:"size:64"`
	FailureReason    string  `gorm:"type:text"`
	Status           string  `gorm:"size:20;not null;default:initiated"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (paymentRow) TableName() string { return "payments" }

type contactMessageRow struct {
	ID        string `gorm:"primaryKey;size:36"`
	Name      string `gorm:"size:255;not null"`
	Email     string `gorm:"size:255;not null"`
	Phone     string `gorm:"size:20"`
	Message   string `gorm:"type:text;not null"`
	CreatedAt time.Time
}

func (contactMessageRow) TableName() string { return "contact_messages" }

// AutoMigrate creates or updates the SQL schema.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&userRow{}, &quoteRow{}, &paymentRow{}, &contactMessageRow{})
}

func toUserRow(u entities.User) userRow {
	return userRow{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Phone:        u.Phone,
		Role:         string(u.Role),
		CreatedAt:    u.CreatedAt.UTC(),
	}
}

func (r userRow) entity() entities.User {
	return entities.User{
		ID:           r.ID,
		Name:         r.Name,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		Phone:        r.Phone,
		Role:         entities.Role(r.Role),
		CreatedAt:    r.CreatedAt.UTC(),
	}
}

func toQuoteRow(q entities.Quote) quoteRow {
	return quoteRow{
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
		CreatedAt:    q.CreatedAt.UTC(),
		UpdatedAt:    q.UpdatedAt.UTC(),
	}
}

func (r quoteRow) entity() entities.Quote {
	return entities.Quote{
		ID:           r.ID,
		UserID:       r.UserID,
		Width:        r.Width,
		Height:       r.Height,
		WindowCount:  r.WindowCount,
		MeshType:     r.MeshType,
		MaterialType: r.MaterialType,
		TotalPrice:   r.TotalPrice,
		Status:       entities.QuoteStatus(r.Status),
		Location:     r.Location,
		Notes:        r.Notes,
		CreatedAt:    r.CreatedAt.UTC(),
		UpdatedAt:    r.UpdatedAt.UTC(),
	}
}

func toPaymentRow(p entities.Payment) paymentRow {
	return paymentRow{
		ID:               p.ID,
		UserID:           p.UserID,
		QuoteID:          p.QuoteID,
		Amount:           p.Amount,
		Phone:            p.Phone,
		ConfirmationCode: p.ConfirmationCode,
		FailureReason:    p.FailureReason,
		Status:           string(p.Status),
		CreatedAt:        p.CreatedAt.UTC(),
		UpdatedAt:        p.UpdatedAt.UTC(),
	}
}

func (r paymentRow) entity() entities.Payment {
	return entities.Payment{
		ID:               r.ID,
		UserID:           r.UserID,
		QuoteID:          r.QuoteID,
		Amount:           r.Amount,
		Phone:            r.Phone,
		ConfirmationCode: r.ConfirmationCode,
		FailureReason:    r.FailureReason,
		Status:           entities.PaymentStatus(r.Status),
		CreatedAt:        r.CreatedAt.UTC(),
		UpdatedAt:        r.UpdatedAt.UTC(),
	}
}
