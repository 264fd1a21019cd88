package http

import (
	"time"

	"github.com/MikeRez0/orderingest/internal/core/port"
	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

type ReportHandler struct {
	Handler
	service port.Service
}

func NewReportHandler(service port.Service, logger *zap.Logger) (*ReportHandler, error) {
	return &ReportHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type productPerformanceResp struct {
	Product    string          `json:"product"`
	OrderCount int64           `json:"order_count"`
	TotalSales decimal.Decimal `json:"total_sales"`
	AvgSales   decimal.Decimal `json:"avg_sales"`
}

func (rh *ReportHandler) ProductPerformance(ctx *gin.Context) {
	list, err := rh.service.ProductPerformance(ctx)
	if err != nil {
		rh.handleError(ctx, err)
		return
	}

	result := make([]productPerformanceResp, 0, len(list))
	for _, row := range list {
		result = append(result, productPerformanceResp{
			Product:    row.Product,
			OrderCount: row.OrderCount,
			TotalSales: row.TotalSales,
			AvgSales:   row.AvgSales,
		})
	}

	rh.handleSuccess(ctx, result)
}

type dailyTrendResp struct {
	Date       string          `json:"date"`
	OrderCount int64           `json:"order_count"`
	TotalSales decimal.Decimal `json:"total_sales"`
}

func (rh *ReportHandler) DailyTrends(ctx *gin.Context) {
	list, err := rh.service.DailyTrends(ctx)
	if err != nil {
		rh.handleError(ctx, err)
		return
	}

	result := make([]dailyTrendResp, 0, len(list))
	for _, row := range list {
		result = append(result, dailyTrendResp{
			Date:       row.Date.Format(time.DateOnly),
			OrderCount: row.OrderCount,
			TotalSales: row.TotalSales,
		})
	}

	rh.handleSuccess(ctx, result)
}
