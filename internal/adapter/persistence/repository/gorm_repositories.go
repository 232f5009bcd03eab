package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"meshguard_api/internal/domain/entities"
	"meshguard_api/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// The SQL repositories follow the same contract as the DynamoDB ones: lookups
// that match nothing return a zero-value entity and a nil error.

type UserGormRepository struct{ db *gorm.DB }

var _ interfaces.IUserRepository = (*UserGormRepository)(nil)

func NewUserGormRepository(db *gorm.DB) *UserGormRepository { return &UserGormRepository{db: db} }

func (r *UserGormRepository) Create(ctx context.Context, u entities.User) (entities.User, error) {
	row := toUserRow(u)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.User{}, translateGormError(err)
	}
	return row.entity(), nil
}

func (r *UserGormRepository) GetByID(ctx context.Context, id string) (entities.User, error) {
	var row userRow
	found, err := first(r.db.WithContext(ctx).Where("id = ?", id), &row)
	if err != nil || !found {
		return entities.User{}, err
	}
	return row.entity(), nil
}

func (r *UserGormRepository) GetByEmail(ctx context.Context, email string) (entities.User, error) {
	var row userRow
	found, err := first(r.db.WithContext(ctx).Where("email = ?", email), &row)
	if err != nil || !found {
		return entities.User{}, err
	}
	return row.entity(), nil
}

func (r *UserGormRepository) UpdateRole(ctx context.Context, id string, role entities.Role) (entities.User, error) {
	res := r.db.WithContext(ctx).Model(&userRow{}).Where("id = ?", id).Update("role", string(role))
	if res.Error != nil {
		return entities.User{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.User{}, nil
	}
	return r.GetByID(ctx, id)
}

func (r *UserGormRepository) List(ctx context.Context) ([]entities.User, error) {
	var rows []userRow
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.User, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.entity())
	}
	return out, nil
}

type QuoteGormRepository struct{ db *gorm.DB }

var _ interfaces.IQuoteRepository = (*QuoteGormRepository)(nil)

func NewQuoteGormRepository(db *gorm.DB) *QuoteGormRepository { return &QuoteGormRepository{db: db} }

func (r *QuoteGormRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	row := toQuoteRow(q)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.Quote{}, translateGormError(err)
	}
	return row.entity(), nil
}

func (r *QuoteGormRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	var row quoteRow
	found, err := first(r.db.WithContext(ctx).Where("id = ?", id), &row)
	if err != nil || !found {
		return entities.Quote{}, err
	}
	return row.entity(), nil
}

func (r *QuoteGormRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Quote, error) {
	return r.find(r.db.WithContext(ctx).Where("user_id = ?", userID))
}

func (r *QuoteGormRepository) List(ctx context.Context) ([]entities.Quote, error) {
	return r.find(r.db.WithContext(ctx))
}

func (r *QuoteGormRepository) UpdateStatusByID(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error) {
	res := r.db.WithContext(ctx).Model(&quoteRow{}).Where("id = ?", id).Updates(map[string]any{
		"status":     string(status),
		"updated_at": time.Now().UTC(),
	})
	if res.Error != nil {
		return entities.Quote{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Quote{}, nil
	}
	return r.GetByID(ctx, id)
}

func (r *QuoteGormRepository) find(tx *gorm.DB) ([]entities.Quote, error) {
	var rows []quoteRow
	if err := tx.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Quote, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.entity())
	}
	return out, nil
}

// PaymentGormRepository runs the completion cascade inside db.Transaction.
type PaymentGormRepository struct{ db *gorm.DB }

var _ interfaces.IPaymentRepository = (*PaymentGormRepository)(nil)

func NewPaymentGormRepository(db *gorm.DB) *PaymentGormRepository {
	return &PaymentGormRepository{db: db}
}

func (r *PaymentGormRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	row := toPaymentRow(p)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.Payment{}, translateGormError(err)
	}
	return row.entity(), nil
}

func (r *PaymentGormRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	var row paymentRow
	found, err := first(r.db.WithContext(ctx).Where("id = ?", id), &row)
	if err != nil || !found {
		return entities.Payment{}, err
	}
	return row.entity(), nil
}

func (r *PaymentGormRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Payment, error) {
	return r.find(r.db.WithContext(ctx).Where("user_id = ?", userID))
}

func (r *PaymentGormRepository) List(ctx context.Context) ([]entities.Payment, error) {
	return r.find(r.db.WithContext(ctx))
}

var errCascadeAborted = errors.New("payment cascade aborted")

func (r *PaymentGormRepository) CompleteWithQuote(ctx context.Context, paymentID, confirmationCode string) (entities.Payment, error) {
	var completed paymentRow
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row paymentRow
		if err := tx.Where("id = ?", paymentID).First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errCascadeAborted
			}
			return err
		}
		now := time.Now().UTC()

		res := tx.Model(&paymentRow{}).
			Where("id = ? AND status = ?", paymentID, string(entities.PaymentStatusInitiated)).
			Updates(map[string]any{
				"status":            string(entities.PaymentStatusCompleted),
				"confirmation_code": confirmationCode,
				"updated_at":        now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errCascadeAborted
		}

		res = tx.Model(&quoteRow{}).Where("id = ?", row.QuoteID).Updates(map[string]any{
			"status":     string(entities.QuoteStatusPaid),
			"updated_at": now,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errCascadeAborted
		}

		return tx.Where("id = ?", paymentID).First(&completed).Error
	})
	if err != nil {
		if errors.Is(err, errCascadeAborted) {
			return entities.Payment{}, nil
		}
		return entities.Payment{}, err
	}
	return completed.entity(), nil
}

func (r *PaymentGormRepository) MarkFailed(ctx context.Context, paymentID, reason string) (entities.Payment, error) {
	res := r.db.WithContext(ctx).Model(&paymentRow{}).
		Where("id = ? AND status = ?", paymentID, string(entities.PaymentStatusInitiated)).
		Updates(map[string]any{
			"status":         string(entities.PaymentStatusFailed),
			"failure_reason": reason,
			"updated_at":     time.Now().UTC(),
		})
	if res.Error != nil {
		return entities.Payment{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Payment{}, nil
	}
	return r.GetByID(ctx, paymentID)
}

func (r *PaymentGormRepository) find(tx *gorm.DB) ([]entities.Payment, error) {
	var rows []paymentRow
	if err := tx.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Payment, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.entity())
	}
	return out, nil
}

type ContactMessageGormRepository struct{ db *gorm.DB }

var _ interfaces.IContactMessageRepository = (*ContactMessageGormRepository)(nil)

func NewContactMessageGormRepository(db *gorm.DB) *ContactMessageGormRepository {
	return &ContactMessageGormRepository{db: db}
}

func (r *ContactMessageGormRepository) Create(ctx context.Context, m entities.ContactMessage) (entities.ContactMessage, error) {
	row := contactMessageRow{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Message:   m.Message,
		CreatedAt: m.CreatedAt.UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.ContactMessage{}, translateGormError(err)
	}
	return m, nil
}

func (r *ContactMessageGormRepository) List(ctx context.Context) ([]entities.ContactMessage, error) {
	var rows []contactMessageRow
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.ContactMessage, 0, len(rows))
	for _, row := range rows {
		out = append(out, entities.ContactMessage{
			ID:        row.ID,
			Name:      row.Name,
			Email:     row.Email,
			Phone:     row.Phone,
			Message:   row.Message,
			CreatedAt: row.CreatedAt.UTC(),
		})
	}
	return out, nil
}

func first(tx *gorm.DB, dst any) (bool, error) {
	if err := tx.First(dst).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func translateGormError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errDuplicate(err)
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key") {
		return errDuplicate(err)
	}
	return err
}
