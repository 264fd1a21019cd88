package port

import (
	"context"

	"github.com/MikeRez0/orderingest/internal/core/domain"
)

//go:generate mockgen -source=service.go -destination=mock/service.go -package=mock

type Service interface {
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetOrder(ctx context.Context, orderID string) (*domain.Order, error)
	ListOrdersByStatus(ctx context.Context, status domain.OrderStatus) ([]*domain.Order, error)

	ProductPerformance(ctx context.Context) ([]*domain.ProductPerformance, error)
	DailyTrends(ctx context.Context) ([]*domain.DailyTrend, error)
}
