//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"github.com/bangazon/bangazon-api/internal/domain/categories"
	"github.com/bangazon/bangazon-api/internal/pkg/apperrors"
	"github.com/bangazon/bangazon-api/internal/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategorySqliteRepository_CreateAndGetByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	category := &categories.Category{Label: TestLabelToys}
	require.NoError(t, ctx.CategoryRepo.Create(context.Background(), category))
	require.NotZero(t, category.ID)

	fetched, err := ctx.CategoryRepo.GetByID(context.Background(), category.ID)
	require.NoError(t, err)
	assert.Equal(t, category, fetched)
}

func TestCategorySqliteRepository_List(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	for _, label := range []string{"Toys", "Books", "Garden"} {
		require.NoError(t, ctx.CategoryRepo.Create(context.Background(), &categories.Category{Label: label}))
	}

	list, err := ctx.CategoryRepo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 3)

	seen := map[uint]bool{}
	for _, c := range list {
		assert.False(t, seen[c.ID], "duplicate id %d", c.ID)
		seen[c.ID] = true
	}
}

func TestCategorySqliteRepository_GetByID_NotFound(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	category, err := ctx.CategoryRepo.GetByID(context.Background(), 404)
	assert.Nil(t, category)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestCategorySqliteRepository_GetByLabel(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	require.NoError(t, ctx.CategoryRepo.Create(context.Background(), &categories.Category{Label: "Books"}))

	category, err := ctx.CategoryRepo.GetByLabel(context.Background(), "Books")
	require.NoError(t, err)
	assert.Equal(t, "Books", category.Label)

	_, err = ctx.CategoryRepo.GetByLabel(context.Background(), "Music")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestCategoryRepository_Create_ValidationError(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	err := ctx.CategoryRepo.Create(context.Background(), &categories.Category{})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindInvalid, apperrors.KindOf(err))
}
