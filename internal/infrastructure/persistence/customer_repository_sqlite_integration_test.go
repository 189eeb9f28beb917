//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"github.com/bangazon/bangazon-api/internal/pkg/apperrors"
	"github.com/bangazon/bangazon-api/internal/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerSqliteRepository_GetByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	customer := CreateTestCustomer(t, ctx)

	fetched, err := ctx.CustomerRepo.GetByID(context.Background(), customer.ID)
	require.NoError(t, err)
	assert.Equal(t, customer.Username, fetched.Username)
	assert.True(t, fetched.IsActive)
	assert.True(t, customer.DateJoined.Equal(fetched.DateJoined))
}

func TestCustomerSqliteRepository_GetByUsername(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	customer := CreateTestCustomer(t, ctx)

	fetched, err := ctx.CustomerRepo.GetByUsername(context.Background(), customer.Username)
	require.NoError(t, err)
	assert.Equal(t, customer.ID, fetched.ID)

	_, err = ctx.CustomerRepo.GetByUsername(context.Background(), "nobody")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestCustomerSqliteRepository_GetByID_NotFound(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	_, err := ctx.CustomerRepo.GetByID(context.Background(), 8)
	assert.True(t, apperrors.IsNotFound(err))
}
