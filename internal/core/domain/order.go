package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type OrderStatus string

const (
	OrderStatusCreated       OrderStatus = "created"
	OrderStatusTriggered     OrderStatus = "triggered"
	OrderStatusTriggerFailed OrderStatus = "trigger_failed"
)

// CanTransitionTo reports whether the transition s -> next is allowed.
// Orders only move forward: created -> triggered | trigger_failed.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s != OrderStatusCreated {
		return false
	}
	return next == OrderStatusTriggered || next == OrderStatusTriggerFailed
}

type LineItem struct {
	Product   string
	Quantity  int32
	UnitPrice decimal.Decimal
}

type Order struct {
	ID             string
	Customer       string
	Items          []LineItem
	Status         OrderStatus
	IdempotencyKey string
	CreatedAt      time.Time
}

// Validate checks the order invariants before the order reaches storage.
func (o *Order) Validate() error {
	if o.Customer == "" {
		return ErrOrderNoCustomer
	}
	if len(o.Items) == 0 {
		return ErrOrderNoItems
	}
	for _, item := range o.Items {
		if item.Product == "" {
			return ErrOrderBadProduct
		}
		if item.Quantity <= 0 {
			return ErrOrderBadQuantity
		}
		if item.UnitPrice.Cmp(decimal.Zero) <= 0 {
			return ErrOrderBadPrice
		}
	}
	return nil
}
