// Package entity defines orders, their items and lifecycle events.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// CanTransition reports whether an order may move from s to next.
// Only pending orders change state.
func (s Status) CanTransition(next Status) bool {
	return s == StatusPending && (next == StatusCompleted || next == StatusCancelled)
}

type Order struct {
	ID         uint            `gorm:"primaryKey"`
	UserID     uint            `gorm:"index;not null"`
	TotalPrice decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Status     Status          `gorm:"size:50;index;not null;default:pending"`
	Items      []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// OrderItem records the unit price paid, after any deal discount.
type OrderItem struct {
	ID        uint            `gorm:"primaryKey"`
	OrderID   uint            `gorm:"index;not null"`
	ProductID uint            `gorm:"index;not null"`
	Quantity  int             `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:numeric(10,2);not null"`
}

// CartLine is a cart row read during checkout.
type CartLine struct {
	ProductID uint
	Name      string
	Price     decimal.Decimal
	Quantity  int
}

// Event types published on the order topic.
const (
	EventPlaced    = "order.placed"
	EventCancelled = "order.cancelled"
	EventCompleted = "order.completed"
)

// Event is the JSON record published for an order state change.
type Event struct {
	Type       string          `json:"type"`
	OrderID    uint            `json:"order_id"`
	UserID     uint            `json:"user_id"`
	Status     Status          `json:"status"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Items      []EventItem     `json:"items"`
	OccurredAt time.Time       `json:"occurred_at"`
}

type EventItem struct {
	ProductID uint            `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// NewEvent describes o as an event of type typ.
func NewEvent(typ string, o *Order, at time.Time) Event {
	items := make([]EventItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, EventItem{ProductID: it.ProductID, Quantity: it.Quantity, Price: it.Price})
	}
	return Event{
		Type:       typ,
		OrderID:    o.ID,
		UserID:     o.UserID,
		Status:     o.Status,
		TotalPrice: o.TotalPrice,
		Items:      items,
		OccurredAt: at.UTC(),
	}
}
