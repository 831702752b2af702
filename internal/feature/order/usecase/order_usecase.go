package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	deal "shop_backend/internal/feature/deal/domain/entity"
	"shop_backend/internal/feature/order/domain/entity"
)

// OrderTx is the set of writes checkout and status changes run atomically.
type OrderTx interface {
	CartLines(ctx context.Context, userID uint) ([]entity.CartLine, error)
	// DecrementStock returns ErrInsufficientStock when fewer than qty units remain.
	DecrementStock(ctx context.Context, productID uint, qty int) error
	IncrementStock(ctx context.Context, productID uint, qty int) error
	CreateOrder(ctx context.Context, o *entity.Order) error
	ClearCart(ctx context.Context, userID uint) error
	// LockOrder loads the order with its items and holds it until commit.
	LockOrder(ctx context.Context, id uint) (*entity.Order, error)
	SetStatus(ctx context.Context, id uint, status entity.Status) error
}

type OrderRepository interface {
	// WithinTx runs fn in one transaction, rolled back when fn fails.
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx OrderTx) error) error
	List(ctx context.Context, userID uint) ([]entity.Order, error)
	FindByID(ctx context.Context, id uint) (*entity.Order, error)
}

// DiscountSource returns today's deal discounts.
type DiscountSource interface {
	Discounts(ctx context.Context) (deal.Discounts, error)
}

// Publisher sends order events. Failures are logged, never returned.
type Publisher interface {
	Publish(ctx context.Context, key string, payload any) error
}

// CacheInvalidator drops cached product reads after stock changes.
type CacheInvalidator interface {
	Invalidate(ctx context.Context)
}

const publishTimeout = 5 * time.Second

// maxOrderTotal is the exclusive bound of the numeric(10,2) total column.
var maxOrderTotal = decimal.New(1, 8)

type orderUsecase struct {
	orders    OrderRepository
	discounts DiscountSource
	events    Publisher
	cache     CacheInvalidator
	now       func() time.Time
}

// NewOrderUsecase creates an order usecase. cache may be nil.
func NewOrderUsecase(orders OrderRepository, discounts DiscountSource, events Publisher, cache CacheInvalidator) *orderUsecase {
	return &orderUsecase{orders: orders, discounts: discounts, events: events, cache: cache, now: time.Now}
}

// Checkout turns the caller's cart into a pending order. Stock is taken,
// prices are fixed with today's deals and the cart is emptied, all in one
// transaction.
func (u *orderUsecase) Checkout(ctx context.Context, userID uint) (*entity.Order, error) {
	discounts, err := u.discounts.Discounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("load discounts: %w", err)
	}

	var order *entity.Order
	err = u.orders.WithinTx(ctx, func(ctx context.Context, tx OrderTx) error {
		lines, err := tx.CartLines(ctx, userID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return ErrEmptyCart
		}

		o := &entity.Order{UserID: userID, Status: entity.StatusPending, TotalPrice: decimal.Zero}
		for _, l := range lines {
			if err := tx.DecrementStock(ctx, l.ProductID, l.Quantity); err != nil {
				return fmt.Errorf("%w for %q", err, l.Name)
			}
			unit := discounts.Apply(l.Name, l.Price)
			o.Items = append(o.Items, entity.OrderItem{ProductID: l.ProductID, Quantity: l.Quantity, Price: unit})
			o.TotalPrice = o.TotalPrice.Add(unit.Mul(decimal.NewFromInt(int64(l.Quantity))))
		}
		if o.TotalPrice.Round(2).GreaterThanOrEqual(maxOrderTotal) {
			return fmt.Errorf("%w: %s", ErrOrderTooLarge, o.TotalPrice.StringFixed(2))
		}

		if err := tx.CreateOrder(ctx, o); err != nil {
			return err
		}
		if err := tx.ClearCart(ctx, userID); err != nil {
			return err
		}
		order = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("order placed", "order_id", order.ID, "user_id", userID, "total", order.TotalPrice.StringFixed(2), "items", len(order.Items))
	u.afterStockChange(ctx)
	u.publish(ctx, entity.EventPlaced, order)
	return order, nil
}

func (u *orderUsecase) List(ctx context.Context, userID uint) ([]entity.Order, error) {
	return u.orders.List(ctx, userID)
}

// Get returns one of the caller's orders. Other users' orders are not found.
func (u *orderUsecase) Get(ctx context.Context, userID, id uint) (*entity.Order, error) {
	o, err := u.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o.UserID != userID {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

// Cancel cancels one of the caller's pending orders and puts the stock back.
func (u *orderUsecase) Cancel(ctx context.Context, userID, id uint) (*entity.Order, error) {
	o, err := u.transition(ctx, id, entity.StatusCancelled, &userID)
	if err != nil {
		return nil, err
	}
	u.afterStockChange(ctx)
	u.publish(ctx, entity.EventCancelled, o)
	return o, nil
}

// Complete marks a pending order as completed. Callers must be admins.
func (u *orderUsecase) Complete(ctx context.Context, id uint) (*entity.Order, error) {
	o, err := u.transition(ctx, id, entity.StatusCompleted, nil)
	if err != nil {
		return nil, err
	}
	u.publish(ctx, entity.EventCompleted, o)
	return o, nil
}

// transition moves order id to next. A non-nil ownerID restricts it to that
// user's orders. Cancelling returns the items to stock.
func (u *orderUsecase) transition(ctx context.Context, id uint, next entity.Status, ownerID *uint) (*entity.Order, error) {
	var order *entity.Order
	err := u.orders.WithinTx(ctx, func(ctx context.Context, tx OrderTx) error {
		o, err := tx.LockOrder(ctx, id)
		if err != nil {
			return err
		}
		if ownerID != nil && o.UserID != *ownerID {
			return ErrOrderNotFound
		}
		if !o.Status.CanTransition(next) {
			return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, o.Status, next)
		}
		if next == entity.StatusCancelled {
			for _, it := range o.Items {
				if err := tx.IncrementStock(ctx, it.ProductID, it.Quantity); err != nil {
					return err
				}
			}
		}
		if err := tx.SetStatus(ctx, id, next); err != nil {
			return err
		}
		o.Status = next
		order = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	slog.Info("order status changed", "order_id", id, "status", next)
	return order, nil
}

func (u *orderUsecase) afterStockChange(ctx context.Context) {
	if u.cache != nil {
		u.cache.Invalidate(ctx)
	}
}

func (u *orderUsecase) publish(ctx context.Context, typ string, o *entity.Order) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	ev := entity.NewEvent(typ, o, u.now())
	if err := u.events.Publish(ctx, strconv.FormatUint(uint64(o.ID), 10), ev); err != nil {
		slog.Warn("order event not published", "type", typ, "order_id", o.ID, "error", err)
	}
}
