package http

import (
	"net/http"
	"time"

	"github.com/MikeRez0/orderingest/internal/core/domain"
	"github.com/MikeRez0/orderingest/internal/core/port"
	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

const idempotencyHeader = "Idempotency-Key"

type OrderHandler struct {
	Handler
	service port.Service
}

func NewOrderHandler(service port.Service, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type lineItemRequest struct {
	Product   string  `json:"product"`
	Quantity  int32   `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

type orderRequest struct {
	Customer string            `json:"customer"`
	Items    []lineItemRequest `json:"items"`
}

type orderCreatedResponse struct {
	ID string `json:"id"`
}

func (oh *OrderHandler) CreateOrder(ctx *gin.Context) {
	req := orderRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	items := make([]domain.LineItem, 0, len(req.Items))
	for _, item := range req.Items {
		price, err := decimal.NewFromFloat64(item.UnitPrice)
		if err != nil {
			oh.handleValidationError(ctx, err)
			return
		}
		items = append(items, domain.LineItem{
			Product:   item.Product,
			Quantity:  item.Quantity,
			UnitPrice: price,
		})
	}

	order := &domain.Order{
		Customer:       req.Customer,
		Items:          items,
		IdempotencyKey: ctx.GetHeader(idempotencyHeader),
	}

	newOrder, err := oh.service.CreateOrder(ctx, order)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, orderCreatedResponse{ID: newOrder.ID}, http.StatusCreated)
}

type lineItemResp struct {
	Product   string          `json:"product"`
	Quantity  int32           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type orderResp struct {
	ID        string         `json:"id"`
	Customer  string         `json:"customer"`
	Items     []lineItemResp `json:"items"`
	Status    string         `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
}

func newOrderResp(o *domain.Order) orderResp {
	items := make([]lineItemResp, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, lineItemResp{
			Product:   item.Product,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	return orderResp{
		ID:        o.ID,
		Customer:  o.Customer,
		Items:     items,
		Status:    string(o.Status),
		CreatedAt: o.CreatedAt,
	}
}

func (oh *OrderHandler) GetOrder(ctx *gin.Context) {
	orderID := ctx.Param("order")

	order, err := oh.service.GetOrder(ctx, orderID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResp(order))
}

func (oh *OrderHandler) ListOrders(ctx *gin.Context) {
	status := domain.OrderStatus(ctx.Query("status"))
	switch status {
	case domain.OrderStatusCreated, domain.OrderStatusTriggered, domain.OrderStatusTriggerFailed:
	default:
		oh.handleError(ctx, domain.ErrOrderBadStatus)
		return
	}

	list, err := oh.service.ListOrdersByStatus(ctx, status)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	result := make([]orderResp, 0, len(list))
	for _, o := range list {
		result = append(result, newOrderResp(o))
	}

	oh.handleSuccess(ctx, result)
}
