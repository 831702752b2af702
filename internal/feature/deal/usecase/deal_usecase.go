package usecase

import (
	"context"
	"fmt"
	"time"

	"shop_backend/internal/feature/deal/domain/entity"
)

// DealRepository persists deals.
type DealRepository interface {
	// ListActive returns the deals whose date range contains day.
	ListActive(ctx context.Context, day time.Time) ([]entity.Deal, error)
	List(ctx context.Context) ([]entity.Deal, error)
	Create(ctx context.Context, d *entity.Deal) error
	Delete(ctx context.Context, id uint) error
}

// DealInput is a new deal as submitted by an admin.
type DealInput struct {
	StartTime    time.Time
	EndTime      time.Time
	PhoneName    string
	ImageURL     string
	Discount     entity.Discount
	DiscountTime string
}

type dealUsecase struct {
	deals DealRepository
	loc   *time.Location
	now   func() time.Time
}

// NewDealUsecase creates a deal usecase. "Today" is evaluated in loc.
func NewDealUsecase(deals DealRepository, loc *time.Location) *dealUsecase {
	if loc == nil {
		loc = time.UTC
	}
	return &dealUsecase{deals: deals, loc: loc, now: time.Now}
}

// Active returns the deals running today.
func (u *dealUsecase) Active(ctx context.Context) ([]entity.Deal, error) {
	return u.deals.ListActive(ctx, entity.Today(u.now(), u.loc))
}

func (u *dealUsecase) All(ctx context.Context) ([]entity.Deal, error) {
	return u.deals.List(ctx)
}

// Discounts returns today's best discount per product name.
func (u *dealUsecase) Discounts(ctx context.Context) (entity.Discounts, error) {
	deals, err := u.Active(ctx)
	if err != nil {
		return nil, err
	}
	return entity.NewDiscounts(deals), nil
}

func (u *dealUsecase) Create(ctx context.Context, in DealInput) (*entity.Deal, error) {
	d := &entity.Deal{
		StartTime:    entity.Date(in.StartTime),
		EndTime:      entity.Date(in.EndTime),
		PhoneName:    in.PhoneName,
		ImageURL:     in.ImageURL,
		Discount:     in.Discount,
		DiscountTime: in.DiscountTime,
	}
	if d.Discount == "" {
		d.Discount = entity.NoDiscount
	}
	if err := validate(d); err != nil {
		return nil, err
	}
	if err := u.deals.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (u *dealUsecase) Delete(ctx context.Context, id uint) error {
	return u.deals.Delete(ctx, id)
}

func validate(d *entity.Deal) error {
	if d.EndTime.Before(d.StartTime) {
		return fmt.Errorf("%w: end_time is before start_time", ErrInvalidDeal)
	}
	if !d.Discount.Valid() {
		return fmt.Errorf("%w: unknown discount %q", ErrInvalidDeal, d.Discount)
	}
	if _, err := time.Parse(time.TimeOnly, d.DiscountTime); err != nil {
		return fmt.Errorf("%w: discount_time must be HH:MM:SS", ErrInvalidDeal)
	}
	return nil
}
