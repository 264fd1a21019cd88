package workflow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/MikeRez0/orderingest/internal/adapter/config"
	"github.com/MikeRez0/orderingest/internal/core/domain"
	"github.com/MikeRez0/orderingest/internal/core/port"
	"go.uber.org/zap"
)

// Outcome classifies a single trigger attempt against the orchestrator.
type Outcome int

const (
	// OutcomeTriggered - the orchestrator accepted the DAG run.
	OutcomeTriggered Outcome = iota
	// OutcomeUnreachable - network failure, timeout or a 5xx answer.
	// Retryable.
	OutcomeUnreachable
	// OutcomeRejected - the orchestrator refused the request (4xx).
	// Not retryable.
	OutcomeRejected
)

type triggerJob struct {
	orderID string
	attempt int
}

// Client schedules workflow runs for created orders. Orders are queued
// on a channel and processed by worker goroutines, so scheduling never
// waits for the orchestrator.
type Client struct {
	logger        *zap.Logger
	host          string
	dagID         string
	httpClient    *http.Client
	retryDelay    time.Duration
	retryAttempts int
	orderQueue    chan triggerJob
}

func NewWorkflowClient(cfg *config.Workflow, log *zap.Logger) (*Client, error) {
	return &Client{
		logger:        log,
		host:          cfg.HostString,
		dagID:         cfg.DagID,
		httpClient:    &http.Client{Timeout: cfg.RequestTimeout},
		retryDelay:    cfg.RetryDelay,
		retryAttempts: cfg.RetryAttempts,
		orderQueue:    make(chan triggerJob, 64),
	}, nil
}

func (c *Client) ScheduleOrderTrigger(orderID string) {
	c.logger.Debug("> put order in queue (schedule)", zap.String("order", orderID))
	c.orderQueue <- triggerJob{orderID: orderID, attempt: 1}
	c.logger.Debug("< put order in queue (schedule)", zap.String("order", orderID))
}

// StartTriggerWorkers launches the worker pool consuming the order
// queue. Workers stop when ctx is canceled.
func (c *Client) StartTriggerWorkers(ctx context.Context, updater port.OrderStatusUpdater, workers int) {
	for i := 0; i < workers; i++ {
		go func(queue chan triggerJob) {
			for {
				select {
				case job := <-queue:
					c.processJob(ctx, job, updater)
				case <-ctx.Done():
					c.logger.Debug("Finished worker")
					return
				}
			}
		}(c.orderQueue)
	}
}

func (c *Client) processJob(ctx context.Context, job triggerJob, updater port.OrderStatusUpdater) {
	c.logger.Debug("Start processing order trigger",
		zap.String("order", job.orderID), zap.Int("attempt", job.attempt))

	switch c.Trigger(ctx, job.orderID) {
	case OutcomeTriggered:
		c.updateStatus(ctx, updater, job.orderID, domain.OrderStatusTriggered)
	case OutcomeRejected:
		c.updateStatus(ctx, updater, job.orderID, domain.OrderStatusTriggerFailed)
	case OutcomeUnreachable:
		if job.attempt < c.retryAttempts {
			go c.retryTrigger(job)
			return
		}
		c.logger.Error("Workflow system unreachable, no attempts left",
			zap.String("order", job.orderID))
		c.updateStatus(ctx, updater, job.orderID, domain.OrderStatusTriggerFailed)
	}

	c.logger.Debug("Finished processing order trigger",
		zap.String("order", job.orderID))
}

func (c *Client) updateStatus(ctx context.Context, updater port.OrderStatusUpdater,
	orderID string, status domain.OrderStatus) {
	err := updater.UpdateOrderStatus(ctx, orderID, status)
	if err != nil {
		// The order stays in created; the startup recall re-schedules it.
		c.logger.Error("Order status update after trigger",
			zap.String("order", orderID), zap.Error(err))
	}
}

func (c *Client) retryTrigger(job triggerJob) {
	r := time.NewTimer(c.retryDelay)
	<-r.C

	c.logger.Debug("> put order in queue (retry)", zap.String("order", job.orderID))
	c.orderQueue <- triggerJob{orderID: job.orderID, attempt: job.attempt + 1}
	c.logger.Debug("< put order in queue (retry)", zap.String("order", job.orderID))
}

type dagRunRequest struct {
	DagRunID string         `json:"dag_run_id"`
	Conf     map[string]any `json:"conf"`
}

// Trigger fires one DAG run request for the order. The request timeout
// is bounded by the HTTP client; hitting it counts as Unreachable.
func (c *Client) Trigger(ctx context.Context, orderID string) Outcome {
	body, err := json.Marshal(dagRunRequest{
		DagRunID: "order-" + orderID,
		Conf:     map[string]any{"order_id": orderID},
	})
	if err != nil {
		c.logger.Error("Trigger request encode", zap.Error(err))
		return OutcomeRejected
	}

	requestStr := fmt.Sprintf("http://%s/api/v1/dags/%s/dagRuns", c.host, c.dagID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestStr, bytes.NewReader(body))
	if err != nil {
		c.logger.Error("Trigger request build", zap.String("url", requestStr), zap.Error(err))
		return OutcomeRejected
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug("Fire trigger request", zap.String("order", orderID))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("Trigger request failed", zap.String("order", orderID), zap.Error(err))
		return OutcomeUnreachable
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices:
		return OutcomeTriggered
	case resp.StatusCode >= http.StatusBadRequest && resp.StatusCode < http.StatusInternalServerError:
		c.logger.Error("Trigger rejected by workflow system",
			zap.String("order", orderID), zap.Int("status", resp.StatusCode))
		return OutcomeRejected
	default:
		c.logger.Error("Unexpected status for trigger request",
			zap.String("order", orderID), zap.Int("status", resp.StatusCode))
		return OutcomeUnreachable
	}
}
