//go:build unit
// +build unit

package app

import (
	"context"
	"errors"
	"testing"

	"github.com/bangazon/bangazon-api/internal/domain/categories"
	"github.com/bangazon/bangazon-api/internal/pkg/apperrors"
	"github.com/bangazon/bangazon-api/internal/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCategoryService_List(t *testing.T) {
	repo := new(MockCategoryRepository)
	service, err := NewCategoryService(repo, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	expected := []*categories.Category{{ID: 1, Label: "Toys"}, {ID: 2, Label: "Books"}}
	repo.On("List", mock.Anything).Return(expected, nil)

	list, err := service.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, expected, list)
	repo.AssertExpectations(t)
}

func TestCategoryService_List_Error(t *testing.T) {
	repo := new(MockCategoryRepository)
	service, err := NewCategoryService(repo, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	repo.On("List", mock.Anything).Return(nil, errors.New("db down"))

	list, err := service.List(context.Background())
	assert.Nil(t, list)
	assert.EqualError(t, err, "db down")
}

func TestCategoryService_GetByID_NotFound(t *testing.T) {
	repo := new(MockCategoryRepository)
	service, err := NewCategoryService(repo, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	repo.On("GetByID", mock.Anything, uint(9)).Return(nil, apperrors.NotFound(categories.NotFoundMessage))

	category, err := service.GetByID(context.Background(), 9)
	assert.Nil(t, category)
	assert.True(t, apperrors.IsNotFound(err))
}
