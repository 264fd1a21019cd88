package workflow

import (
	"context"

	"github.com/MikeRez0/orderingest/internal/core/domain"
	"github.com/MikeRez0/orderingest/internal/core/port"
)

// RecallOrders re-schedules orders that never left the created status,
// e.g. after a crash between persistence and trigger dispatch.
func RecallOrders(ctx context.Context, repo port.Repository, workflow port.WorkflowSchedulerClient) error {
	orders, err := repo.ListOrdersByStatus(ctx, []domain.OrderStatus{domain.OrderStatusCreated})
	if err != nil {
		return err
	}
	for _, order := range orders {
		workflow.ScheduleOrderTrigger(order.ID)
	}

	return nil
}
