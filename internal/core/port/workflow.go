package port

import (
	"context"

	"github.com/MikeRez0/orderingest/internal/core/domain"
)

//go:generate mockgen -source=workflow.go -destination=mock/workflow.go -package=mock

// WorkflowSchedulerClient queues orders for the external workflow
// orchestrator. Scheduling never blocks on the remote system.
type WorkflowSchedulerClient interface {
	ScheduleOrderTrigger(orderID string)
}

// OrderStatusUpdater records the outcome of a workflow trigger attempt.
type OrderStatusUpdater interface {
	UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) error
}
