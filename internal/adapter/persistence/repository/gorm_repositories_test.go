package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"meshguard_api/internal/domain/entities"
	"meshguard_api/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, AutoMigrate(db))
	return db
}

func seedQuote(t *testing.T, repo *QuoteGormRepository, id, userID string, createdAt time.Time) entities.Quote {
	t.Helper()
	q, err := repo.Create(context.Background(), entities.Quote{
		ID:           id,
		UserID:       userID,
		Width:        1.2,
		Height:       1.5,
		WindowCount:  2,
		MeshType:     "roller",
		MaterialType: "polyester",
		TotalPrice:   11520,
		Status:       entities.QuoteStatusPending,
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	})
	require.NoError(t, err)
	return q
}

func TestUserGormRepository_CreateAndLookup(t *testing.T) {
	ctx := context.Background()
	repo := NewUserGormRepository(newSQLiteDB(t))

	u := entities.User{ID: "u-1", Name: "Amina", Email: "amina@example.com", PasswordHash: "h", Role: entities.RoleUser, CreatedAt: time.Now()}
	_, err := repo.Create(ctx, u)
	require.NoError(t, err)

	byEmail, err := repo.GetByEmail(ctx, "amina@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u-1", byEmail.ID)
	assert.Equal(t, "h", byEmail.PasswordHash)

	missing, err := repo.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)

	_, err = repo.Create(ctx, entities.User{ID: "u-2", Name: "Other", Email: "amina@example.com", PasswordHash: "h", Role: entities.RoleUser})
	require.Error(t, err)
	assert.True(t, errors.Is(err, interfaces.ErrDuplicateKey))

	promoted, err := repo.UpdateRole(ctx, "u-1", entities.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, entities.RoleAdmin, promoted.Role)

	none, err := repo.UpdateRole(ctx, "ghost", entities.RoleAdmin)
	require.NoError(t, err)
	assert.Empty(t, none.ID)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestQuoteGormRepository_ListAndUpdate(t *testing.T) {
	ctx := context.Background()
	repo := NewQuoteGormRepository(newSQLiteDB(t))
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	seedQuote(t, repo, "q-1", "u-1", base)
	seedQuote(t, repo, "q-2", "u-1", base.Add(time.Hour))
	seedQuote(t, repo, "q-3", "u-2", base.Add(2*time.Hour))

	mine, err := repo.ListByUserID(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "q-2", mine[0].ID)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	got, err := repo.GetByID(ctx, "q-1")
	require.NoError(t, err)
	assert.InDelta(t, 11520, got.TotalPrice, 0.001)
	assert.Equal(t, entities.QuoteStatusPending, got.Status)

	updated, err := repo.UpdateStatusByID(ctx, "q-1", entities.QuoteStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, entities.QuoteStatusConfirmed, updated.Status)

	missing, err := repo.UpdateStatusByID(ctx, "q-404", entities.QuoteStatusPaid)
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}

func TestPaymentGormRepository_CompleteWithQuote(t *testing.T) {
	ctx := context.Background()
	db := newSQLiteDB(t)
	quotes := NewQuoteGormRepository(db)
	payments := NewPaymentGormRepository(db)
	seedQuote(t, quotes, "q-1", "u-1", time.Now())

	_, err := payments.Create(ctx, entities.Payment{
		ID: "p-1", UserID: "u-1", QuoteID: "q-1", Amount: 11520, Phone: "254712345678",
		Status: entities.PaymentStatusInitiated, CreatedAt: time.Now(), UpdatedAt: time.Now(),
	})
	require.NoError(t, err)

	completed, err := payments.CompleteWithQuote(ctx, "p-1", "ABC123XYZ0")
	require.NoError(t, err)
	assert.Equal(t, entities.PaymentStatusCompleted, completed.Status)
	assert.Equal(t, "ABC123XYZ0", completed.ConfirmationCode)

	q, err := quotes.GetByID(ctx, "q-1")
	require.NoError(t, err)
	assert.Equal(t, entities.QuoteStatusPaid, q.Status)

	again, err := payments.CompleteWithQuote(ctx, "p-1", "OTHER")
	require.NoError(t, err)
	assert.Empty(t, again.ID)

	failed, err := payments.MarkFailed(ctx, "p-1", "late failure")
	require.NoError(t, err)
	assert.Empty(t, failed.ID)
}

func TestPaymentGormRepository_CompleteRollsBackWhenQuoteMissing(t *testing.T) {
	ctx := context.Background()
	payments := NewPaymentGormRepository(newSQLiteDB(t))

	_, err := payments.Create(ctx, entities.Payment{
		ID: "p-1", UserID: "u-1", QuoteID: "q-gone", Amount: 100, Phone: "254712345678",
		Status: entities.PaymentStatusInitiated, CreatedAt: time.Now(), UpdatedAt: time.Now(),
	})
	require.NoError(t, err)

	res, err := payments.CompleteWithQuote(ctx, "p-1", "CODE")
	require.NoError(t, err)
	assert.Empty(t, res.ID)

	p, err := payments.GetByID(ctx, "p-1")
	require.NoError(t, err)
	assert.Equal(t, entities.PaymentStatusInitiated, p.Status)
	assert.Empty(t, p.ConfirmationCode)
}

func TestPaymentGormRepository_MarkFailedAndList(t *testing.T) {
	ctx := context.Background()
	payments := NewPaymentGormRepository(newSQLiteDB(t))
	now := time.Now()

	for _, id := range []string{"p-1", "p-2"} {
		_, err := payments.Create(ctx, entities.Payment{
			ID: id, UserID: "u-1", QuoteID: "q-1", Amount: 50, Phone: "254712345678",
			Status: entities.PaymentStatusInitiated, CreatedAt: now, UpdatedAt: now,
		})
		require.NoError(t, err)
		now = now.Add(time.Minute)
	}

	failed, err := payments.MarkFailed(ctx, "p-1", "gateway rejected")
	require.NoError(t, err)
	assert.Equal(t, entities.PaymentStatusFailed, failed.Status)
	assert.Equal(t, "gateway rejected", failed.FailureReason)

	mine, err := payments.ListByUserID(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "p-2", mine[0].ID)

	other, err := payments.ListByUserID(ctx, "u-9")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestContactMessageGormRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewContactMessageGormRepository(newSQLiteDB(t))

	_, err := repo.Create(ctx, entities.ContactMessage{ID: "m-1", Name: "Otieno", Email: "o@example.com", Message: "Do you serve Ruaka?", CreatedAt: time.Now()})
	require.NoError(t, err)

	msgs, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "Do you serve Ruaka?", msgs[0].Message)
}
