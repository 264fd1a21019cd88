package domain

import (
	"time"

	"github.com/govalues/decimal"
)

// ProductPerformance aggregates sales per product over all orders.
type ProductPerformance struct {
	Product    string
	OrderCount int64
	TotalSales decimal.Decimal
	AvgSales   decimal.Decimal
}

// DailyTrend aggregates order volume per calendar day.
type DailyTrend struct {
	Date       time.Time
	OrderCount int64
	TotalSales decimal.Decimal
}
