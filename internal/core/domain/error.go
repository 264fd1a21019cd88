package domain

import (
	"errors"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound    = errors.New("data not found")
	ErrConflictingData = errors.New("data conflicts with existing data in unique column")
	ErrPersistence     = errors.New("durable write failed")

	// * Communication errors.
	ErrBadRequest = errors.New("error parsing request")

	// * Business errors.
	ErrOrderNoCustomer  = errors.New("order customer reference is empty")
	ErrOrderNoItems     = errors.New("order has no line items")
	ErrOrderBadProduct  = errors.New("line item product reference is empty")
	ErrOrderBadQuantity = errors.New("line item quantity is not positive")
	ErrOrderBadPrice    = errors.New("line item unit price is not positive")
	ErrOrderBadStatus   = errors.New("order status is unknown")

	// * Status transition errors.
	ErrOrderStatusTransition = errors.New("order status transition is not allowed")
)
