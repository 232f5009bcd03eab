package main

import (
	"context"
	"testing"

	"meshguard_api/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewPasswordHasher_UsesWorkFactor12(t *testing.T) {
	hash, err := newPasswordHasher().Hash("secret123")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, cost, 12)
	assert.True(t, newPasswordHasher().Compare(hash, "secret123"))
}

func TestOpenStores_SQLiteMigrates(t *testing.T) {
	ctx := context.Background()
	st, err := openStores(ctx, config.Config{StorageDriver: config.StorageSQLite, DatabaseDSN: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.close() })

	require.NoError(t, st.migrate(ctx))
	users, err := st.users.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestOpenStores_UnknownDriver(t *testing.T) {
	_, err := openStores(context.Background(), config.Config{StorageDriver: "mongo"})
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
