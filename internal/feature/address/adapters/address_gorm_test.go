package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop_backend/internal/feature/address/domain/entity"
	"shop_backend/internal/feature/address/usecase"
	"shop_backend/internal/platform/db/dbtest"
)

func newAddress(userID uint, line string) *entity.Address {
	return &entity.Address{
		UserID:       userID,
		AddressLine1: line,
		City:         "Tashkent",
		State:        "Tashkent",
		ZipCode:      "100000",
		Country:      "UZ",
	}
}

func TestAddressRepository_ScopedToUser(t *testing.T) {
	db := dbtest.Open(t, &entity.Address{})
	repo := NewAddressRepository(db)
	ctx := context.Background()

	mine := newAddress(1, "1 Main St")
	line2 := "flat 4"
	mine.AddressLine2 = &line2
	theirs := newAddress(2, "9 Side St")
	require.NoError(t, repo.Create(ctx, mine))
	require.NoError(t, repo.Create(ctx, theirs))
	require.NoError(t, repo.Create(ctx, newAddress(1, "2 Main St")))

	list, err := repo.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	_, err = repo.FindByID(ctx, 1, theirs.ID)
	assert.ErrorIs(t, err, usecase.ErrAddressNotFound)

	got, err := repo.FindByID(ctx, 1, mine.ID)
	require.NoError(t, err)
	require.NotNil(t, got.AddressLine2)
	assert.Equal(t, "flat 4", *got.AddressLine2)

	got.AddressLine2 = nil
	got.City = "Bukhara"
	require.NoError(t, repo.Update(ctx, got))
	got, err = repo.FindByID(ctx, 1, mine.ID)
	require.NoError(t, err)
	assert.Nil(t, got.AddressLine2)
	assert.Equal(t, "Bukhara", got.City)

	theirs.UserID = 1
	assert.ErrorIs(t, repo.Update(ctx, theirs), usecase.ErrAddressNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, 1, theirs.ID), usecase.ErrAddressNotFound)
	require.NoError(t, repo.Delete(ctx, 1, mine.ID))
	assert.ErrorIs(t, repo.Delete(ctx, 1, mine.ID), usecase.ErrAddressNotFound)
}
