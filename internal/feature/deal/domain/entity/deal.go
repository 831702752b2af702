// Package entity defines time-boxed product deals and the discounts they grant.
package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Discount is the percentage a deal takes off the price.
type Discount string

const (
	NoDiscount Discount = "no_discount"
	Discount10 Discount = "10%"
	Discount15 Discount = "15%"
	Discount25 Discount = "25%"
	Discount40 Discount = "40%"
)

var percents = map[Discount]int{
	NoDiscount: 0,
	Discount10: 10,
	Discount15: 15,
	Discount25: 25,
	Discount40: 40,
}

// Valid reports whether d is one of the known discounts.
func (d Discount) Valid() bool {
	_, ok := percents[d]
	return ok
}

// Percent returns the discount as a whole percentage, 0 for unknown values.
func (d Discount) Percent() int {
	return percents[d]
}

// Deal discounts products named PhoneName between StartTime and EndTime,
// both inclusive. Dates are stored at UTC midnight.
type Deal struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	StartTime    time.Time `gorm:"type:date;index;not null" json:"start_time"`
	EndTime      time.Time `gorm:"type:date;index;not null" json:"end_time"`
	PhoneName    string    `gorm:"size:30;not null;default:''" json:"phone_name"`
	ImageURL     string    `gorm:"size:1024;not null" json:"image_url"`
	Discount     Discount  `gorm:"size:20;not null;default:no_discount" json:"discount"`
	DiscountTime string    `gorm:"size:8;not null" json:"discount_time"`
	CreatedAt    time.Time `json:"created_at"`
}

// ActiveOn reports whether day falls inside the deal.
func (d *Deal) ActiveOn(day time.Time) bool {
	day = Date(day)
	return !day.Before(d.StartTime) && !day.After(d.EndTime)
}

// Date truncates t to midnight UTC of its calendar date.
func Date(t time.Time) time.Time {
	y, m, dd := t.Date()
	return time.Date(y, m, dd, 0, 0, 0, 0, time.UTC)
}

// Today returns the current calendar date in loc as a UTC midnight.
func Today(now time.Time, loc *time.Location) time.Time {
	return Date(now.In(loc))
}

// Discounts maps a lower-cased product name to the best active percentage.
type Discounts map[string]int

// NewDiscounts collects the highest discount per phone name.
func NewDiscounts(deals []Deal) Discounts {
	out := make(Discounts, len(deals))
	for _, d := range deals {
		name := strings.ToLower(strings.TrimSpace(d.PhoneName))
		if name == "" {
			continue
		}
		if p := d.Discount.Percent(); p > out[name] {
			out[name] = p
		}
	}
	return out
}

// Percent returns the discount for a product name.
func (d Discounts) Percent(name string) int {
	return d[strings.ToLower(strings.TrimSpace(name))]
}

// Apply returns price reduced by the discount for name, rounded to cents.
func (d Discounts) Apply(name string, price decimal.Decimal) decimal.Decimal {
	p := d.Percent(name)
	if p == 0 {
		return price
	}
	factor := decimal.NewFromInt(int64(100 - p)).Div(decimal.NewFromInt(100))
	return price.Mul(factor).Round(2)
}
