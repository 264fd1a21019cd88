package port

import (
	"context"

	"github.com/MikeRez0/orderingest/internal/core/domain"
)

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock

type Repository interface {
	// Order
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	ReadOrder(ctx context.Context, orderID string) (*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) error
	ListOrdersByStatus(ctx context.Context, statuses []domain.OrderStatus) ([]*domain.Order, error)

	// Reports
	ProductPerformance(ctx context.Context) ([]*domain.ProductPerformance, error)
	DailyTrends(ctx context.Context) ([]*domain.DailyTrend, error)
}
