package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop_backend/internal/feature/supplier/domain/entity"
	"shop_backend/internal/feature/supplier/usecase"
	"shop_backend/internal/platform/db/dbtest"
)

func TestSupplierRepository(t *testing.T) {
	db := dbtest.Open(t, &entity.Supplier{})
	repo := NewSupplierRepository(db)
	ctx := context.Background()

	owner := uint(3)
	s := &entity.Supplier{UserID: &owner, Name: "Acme", Location: "Tashkent"}
	require.NoError(t, repo.Create(ctx, s))
	require.NoError(t, repo.Create(ctx, &entity.Supplier{Name: "Globex", Location: "Andijan"}))

	got, err := repo.FindByID(ctx, s.ID)
	require.NoError(t, err)
	assert.False(t, got.Verified)
	assert.True(t, got.OwnedBy(3))

	require.NoError(t, repo.SetVerified(ctx, s.ID, true))
	got, err = repo.FindByID(ctx, s.ID)
	require.NoError(t, err)
	assert.True(t, got.Verified)
	assert.ErrorIs(t, repo.SetVerified(ctx, 404, true), usecase.ErrSupplierNotFound)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	require.NoError(t, repo.Delete(ctx, s.ID))
	_, err = repo.FindByID(ctx, s.ID)
	assert.ErrorIs(t, err, usecase.ErrSupplierNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, s.ID), usecase.ErrSupplierNotFound)
}
