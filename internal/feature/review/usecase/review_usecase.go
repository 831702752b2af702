package usecase

import (
	"context"
	"math"

	"shop_backend/internal/feature/review/domain/entity"
)

type ReviewRepository interface {
	// List returns reviews newest first, filtered by product when productID is set.
	List(ctx context.Context, productID *uint) ([]entity.Review, error)
	// Create returns ErrAlreadyReviewed on a duplicate (user, product).
	Create(ctx context.Context, r *entity.Review) error
	Summary(ctx context.Context, productID uint) (count int64, avg float64, err error)
}

// ProductChecker reports whether a product exists.
type ProductChecker interface {
	ProductExists(ctx context.Context, id uint) (bool, error)
}

type reviewUsecase struct {
	reviews  ReviewRepository
	products ProductChecker
}

func NewReviewUsecase(reviews ReviewRepository, products ProductChecker) *reviewUsecase {
	return &reviewUsecase{reviews: reviews, products: products}
}

func (u *reviewUsecase) List(ctx context.Context, productID *uint) ([]entity.Review, error) {
	return u.reviews.List(ctx, productID)
}

func (u *reviewUsecase) Create(ctx context.Context, userID, productID uint, rating int, comment string) (*entity.Review, error) {
	if rating < entity.MinRating || rating > entity.MaxRating {
		return nil, ErrInvalidRating
	}
	if err := u.requireProduct(ctx, productID); err != nil {
		return nil, err
	}
	r := &entity.Review{UserID: userID, ProductID: productID, Rating: rating, Comment: comment}
	if err := u.reviews.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// Rating returns the review count and the average rounded to two decimals.
func (u *reviewUsecase) Rating(ctx context.Context, productID uint) (*entity.Rating, error) {
	if err := u.requireProduct(ctx, productID); err != nil {
		return nil, err
	}
	count, avg, err := u.reviews.Summary(ctx, productID)
	if err != nil {
		return nil, err
	}
	return &entity.Rating{
		ProductID: productID,
		Count:     count,
		Average:   math.Round(avg*100) / 100,
	}, nil
}

func (u *reviewUsecase) requireProduct(ctx context.Context, id uint) error {
	ok, err := u.products.ProductExists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrProductNotFound
	}
	return nil
}
