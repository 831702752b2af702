package usecase

import (
	"context"

	"shop_backend/internal/feature/supplier/domain/entity"
)

type SupplierRepository interface {
	List(ctx context.Context) ([]entity.Supplier, error)
	FindByID(ctx context.Context, id uint) (*entity.Supplier, error)
	Create(ctx context.Context, s *entity.Supplier) error
	Delete(ctx context.Context, id uint) error
	SetVerified(ctx context.Context, id uint, verified bool) error
}

type supplierUsecase struct {
	suppliers SupplierRepository
}

func NewSupplierUsecase(suppliers SupplierRepository) *supplierUsecase {
	return &supplierUsecase{suppliers: suppliers}
}

func (u *supplierUsecase) List(ctx context.Context) ([]entity.Supplier, error) {
	return u.suppliers.List(ctx)
}

// Create registers a supplier owned by the caller. New suppliers are unverified.
func (u *supplierUsecase) Create(ctx context.Context, userID uint, name, location string) (*entity.Supplier, error) {
	s := &entity.Supplier{UserID: &userID, Name: name, Location: location}
	if err := u.suppliers.Create(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Get returns the caller's own supplier.
func (u *supplierUsecase) Get(ctx context.Context, userID, id uint) (*entity.Supplier, error) {
	s, err := u.suppliers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.OwnedBy(userID) {
		return nil, ErrSupplierNotFound
	}
	return s, nil
}

func (u *supplierUsecase) Delete(ctx context.Context, userID, id uint) error {
	if _, err := u.Get(ctx, userID, id); err != nil {
		return err
	}
	return u.suppliers.Delete(ctx, id)
}

// Verify sets the verified flag. Callers must be admins.
func (u *supplierUsecase) Verify(ctx context.Context, id uint, verified bool) (*entity.Supplier, error) {
	if err := u.suppliers.SetVerified(ctx, id, verified); err != nil {
		return nil, err
	}
	return u.suppliers.FindByID(ctx, id)
}
