package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MikeRez0/orderingest/internal/core/domain"
	"github.com/MikeRez0/orderingest/internal/core/port/mock"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testOrderID = "7c9e6679-7425-40de-944b-e07fc1f90ae7"

func newTestRouter(t *testing.T, service *mock.MockService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	orderHandler, err := NewOrderHandler(service, zap.NewNop())
	require.NoError(t, err)
	reportHandler, err := NewReportHandler(service, zap.NewNop())
	require.NoError(t, err)

	router := gin.New()
	api := router.Group("/api")
	orders := api.Group("/orders")
	orders.POST("", orderHandler.CreateOrder)
	orders.GET("", orderHandler.ListOrders)
	orders.GET("/:order", orderHandler.GetOrder)
	reports := api.Group("/reports")
	reports.GET("/products", reportHandler.ProductPerformance)
	reports.GET("/daily", reportHandler.DailyTrends)

	return router
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	const goodBody = `{"customer":"C1","items":[{"product":"P1","quantity":2,"unit_price":10}]}`

	persisted := &domain.Order{
		ID:       testOrderID,
		Customer: "C1",
		Status:   domain.OrderStatusCreated,
	}

	tests := []struct {
		name       string
		body       string
		serviceErr error
		expStatus  int
		expSubstr  string
	}{
		{
			name:      "Order created",
			body:      goodBody,
			expStatus: http.StatusCreated,
			expSubstr: `"id":"` + testOrderID + `"`,
		},
		{
			name:       "Validation fault",
			body:       `{"customer":"C1","items":[{"product":"P1","quantity":0,"unit_price":10}]}`,
			serviceErr: domain.ErrOrderBadQuantity,
			expStatus:  http.StatusBadRequest,
		},
		{
			name:       "Duplicate idempotency key",
			body:       goodBody,
			serviceErr: domain.ErrConflictingData,
			expStatus:  http.StatusConflict,
		},
		{
			name:       "Storage unavailable",
			body:       goodBody,
			serviceErr: domain.ErrPersistence,
			expStatus:  http.StatusBadGateway,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			service := mock.NewMockService(mockCtrl)
			if test.serviceErr != nil {
				service.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
					Return(nil, test.serviceErr)
			} else {
				service.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
					Return(persisted, nil)
			}

			router := newTestRouter(t, service)

			req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(test.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, test.expStatus, rec.Code)
			if test.expSubstr != "" {
				assert.Contains(t, rec.Body.String(), test.expSubstr)
			}
		})
	}

	t.Run("Malformed body", func(t *testing.T) {
		service := mock.NewMockService(mockCtrl)
		router := newTestRouter(t, service)

		req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(`{"customer":`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Idempotency key reaches the service", func(t *testing.T) {
		service := mock.NewMockService(mockCtrl)

		var gotKey string
		service.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
			Do(func(_ context.Context, order *domain.Order) {
				gotKey = order.IdempotencyKey
			}).
			Return(persisted, nil)

		router := newTestRouter(t, service)

		req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(goodBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(idempotencyHeader, "idem-1")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "idem-1", gotKey)
	})
}

func TestOrderHandler_GetOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	order := &domain.Order{
		ID:       testOrderID,
		Customer: "C1",
		Items: []domain.LineItem{
			{Product: "P1", Quantity: 2, UnitPrice: decimal.MustParse("10")},
		},
		Status:    domain.OrderStatusTriggered,
		CreatedAt: time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC),
	}

	t.Run("Order found", func(t *testing.T) {
		service := mock.NewMockService(mockCtrl)
		service.EXPECT().GetOrder(gomock.Any(), testOrderID).Return(order, nil)

		router := newTestRouter(t, service)

		req := httptest.NewRequest(http.MethodGet, "/api/orders/"+testOrderID, nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"triggered"`)
		assert.Contains(t, rec.Body.String(), `"product":"P1"`)
	})

	t.Run("Order not found", func(t *testing.T) {
		service := mock.NewMockService(mockCtrl)
		service.EXPECT().GetOrder(gomock.Any(), "unknown").Return(nil, domain.ErrDataNotFound)

		router := newTestRouter(t, service)

		req := httptest.NewRequest(http.MethodGet, "/api/orders/unknown", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestOrderHandler_ListOrders(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	t.Run("List by status", func(t *testing.T) {
		service := mock.NewMockService(mockCtrl)
		service.EXPECT().
			ListOrdersByStatus(gomock.Any(), domain.OrderStatusTriggerFailed).
			Return([]*domain.Order{{ID: testOrderID, Customer: "C1", Status: domain.OrderStatusTriggerFailed}}, nil)

		router := newTestRouter(t, service)

		req := httptest.NewRequest(http.MethodGet, "/api/orders?status=trigger_failed", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"trigger_failed"`)
	})

	t.Run("Unknown status", func(t *testing.T) {
		service := mock.NewMockService(mockCtrl)
		router := newTestRouter(t, service)

		req := httptest.NewRequest(http.MethodGet, "/api/orders?status=pending", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestReportHandler(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	t.Run("Product performance", func(t *testing.T) {
		service := mock.NewMockService(mockCtrl)
		service.EXPECT().ProductPerformance(gomock.Any()).Return([]*domain.ProductPerformance{
			{
				Product:    "P1",
				OrderCount: 3,
				TotalSales: decimal.MustParse("60"),
				AvgSales:   decimal.MustParse("20"),
			},
		}, nil)

		router := newTestRouter(t, service)

		req := httptest.NewRequest(http.MethodGet, "/api/reports/products", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"product":"P1"`)
		assert.Contains(t, rec.Body.String(), `"order_count":3`)
	})

	t.Run("Daily trends", func(t *testing.T) {
		service := mock.NewMockService(mockCtrl)
		service.EXPECT().DailyTrends(gomock.Any()).Return([]*domain.DailyTrend{
			{
				Date:       time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
				OrderCount: 5,
				TotalSales: decimal.MustParse("125.50"),
			},
		}, nil)

		router := newTestRouter(t, service)

		req := httptest.NewRequest(http.MethodGet, "/api/reports/daily", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"date":"2025-01-10"`)
	})

	t.Run("Report failure", func(t *testing.T) {
		service := mock.NewMockService(mockCtrl)
		service.EXPECT().ProductPerformance(gomock.Any()).Return(nil, domain.ErrInternal)

		router := newTestRouter(t, service)

		req := httptest.NewRequest(http.MethodGet, "/api/reports/products", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
