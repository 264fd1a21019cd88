package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/MikeRez0/orderingest/internal/core/domain"
	"github.com/MikeRez0/orderingest/internal/core/port"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const reportCacheTTL = 5 * time.Minute

type Service struct {
	repo     port.Repository
	workflow port.WorkflowSchedulerClient
	cache    port.Cache
	logger   *zap.Logger
}

// NewService wires the order service. cache may be nil, reports then
// always hit the repository.
func NewService(repo port.Repository, workflow port.WorkflowSchedulerClient,
	cache port.Cache, logger *zap.Logger) (*Service, error) {
	return &Service{
		repo:     repo,
		workflow: workflow,
		cache:    cache,
		logger:   logger,
	}, nil
}

// CreateOrder validates and durably persists the order, then hands it
// to the workflow scheduler. The scheduling happens off the request
// path: its outcome lands in the order status, never in the result of
// this call.
func (s *Service) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if err := order.Validate(); err != nil {
		return nil, err
	}

	order.ID = uuid.NewString()
	order.Status = domain.OrderStatusCreated
	order.CreatedAt = time.Now()

	newOrder, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		if errors.Is(err, domain.ErrConflictingData) {
			return nil, domain.ErrConflictingData
		}
		s.logger.Error("Create order", zap.Error(err))
		return nil, domain.ErrPersistence
	}

	go s.workflow.ScheduleOrderTrigger(newOrder.ID)

	return newOrder, nil
}

func (s *Service) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := s.repo.ReadOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrDataNotFound
		}
		s.logger.Error("Read order", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return order, nil
}

func (s *Service) ListOrdersByStatus(ctx context.Context, status domain.OrderStatus) ([]*domain.Order, error) {
	list, err := s.repo.ListOrdersByStatus(ctx, []domain.OrderStatus{status})
	if err != nil {
		s.logger.Error("List orders", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return list, nil
}

// UpdateOrderStatus records a workflow trigger outcome. A transition
// refused by the repository means the order already reached a terminal
// status, which happens when a trigger is re-delivered; that is not an
// error for the caller.
func (s *Service) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) error {
	err := s.repo.UpdateOrderStatus(ctx, orderID, status)
	if err != nil {
		if errors.Is(err, domain.ErrOrderStatusTransition) {
			s.logger.Debug("Order already in terminal status",
				zap.String("order", orderID), zap.String("status", string(status)))
			return nil
		}
		return err
	}
	return nil
}

func (s *Service) ProductPerformance(ctx context.Context) ([]*domain.ProductPerformance, error) {
	key := s.cacheKey("report", "products")

	var cached []*domain.ProductPerformance
	if s.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	list, err := s.repo.ProductPerformance(ctx)
	if err != nil {
		s.logger.Error("Product performance report", zap.Error(err))
		return nil, domain.ErrInternal
	}

	s.cacheSet(ctx, key, list)

	return list, nil
}

func (s *Service) DailyTrends(ctx context.Context) ([]*domain.DailyTrend, error) {
	key := s.cacheKey("report", "daily")

	var cached []*domain.DailyTrend
	if s.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	list, err := s.repo.DailyTrends(ctx)
	if err != nil {
		s.logger.Error("Daily trends report", zap.Error(err))
		return nil, domain.ErrInternal
	}

	s.cacheSet(ctx, key, list)

	return list, nil
}

func (s *Service) cacheKey(operation, key string) string {
	if s.cache == nil {
		return ""
	}
	return s.cache.GenerateKey(operation, key)
}

// cacheGet loads a cached report into target. Cache failures only
// degrade to a repository read.
func (s *Service) cacheGet(ctx context.Context, key string, target any) bool {
	if s.cache == nil {
		return false
	}
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("Report cache read", zap.Error(err))
		return false
	}
	if raw == "" {
		return false
	}
	if err := json.Unmarshal([]byte(raw), target); err != nil {
		s.logger.Warn("Report cache decode", zap.Error(err))
		return false
	}
	return true
}

func (s *Service) cacheSet(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		s.logger.Warn("Report cache encode", zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, key, string(data), reportCacheTTL); err != nil {
		s.logger.Warn("Report cache write", zap.Error(err))
	}
}
