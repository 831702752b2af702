package usecase

import (
	"context"

	"shop_backend/internal/feature/address/domain/entity"
)

// AddressRepository persists addresses. Every lookup is scoped to userID.
type AddressRepository interface {
	List(ctx context.Context, userID uint) ([]entity.Address, error)
	FindByID(ctx context.Context, userID, id uint) (*entity.Address, error)
	Create(ctx context.Context, a *entity.Address) error
	Update(ctx context.Context, a *entity.Address) error
	Delete(ctx context.Context, userID, id uint) error
}

// AddressInput holds the editable address fields.
type AddressInput struct {
	AddressLine1 string
	AddressLine2 *string
	City         string
	State        string
	ZipCode      string
	Country      string
}

type addressUsecase struct {
	addresses AddressRepository
}

func NewAddressUsecase(addresses AddressRepository) *addressUsecase {
	return &addressUsecase{addresses: addresses}
}

func (u *addressUsecase) List(ctx context.Context, userID uint) ([]entity.Address, error) {
	return u.addresses.List(ctx, userID)
}

func (u *addressUsecase) Get(ctx context.Context, userID, id uint) (*entity.Address, error) {
	return u.addresses.FindByID(ctx, userID, id)
}

func (u *addressUsecase) Create(ctx context.Context, userID uint, in AddressInput) (*entity.Address, error) {
	a := &entity.Address{UserID: userID}
	apply(a, in)
	if err := u.addresses.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (u *addressUsecase) Update(ctx context.Context, userID, id uint, in AddressInput) (*entity.Address, error) {
	a, err := u.addresses.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	apply(a, in)
	if err := u.addresses.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (u *addressUsecase) Delete(ctx context.Context, userID, id uint) error {
	return u.addresses.Delete(ctx, userID, id)
}

func apply(a *entity.Address, in AddressInput) {
	a.AddressLine1 = in.AddressLine1
	a.AddressLine2 = in.AddressLine2
	if a.AddressLine2 != nil && *a.AddressLine2 == "" {
		a.AddressLine2 = nil
	}
	a.City = in.City
	a.State = in.State
	a.ZipCode = in.ZipCode
	a.Country = in.Country
}
