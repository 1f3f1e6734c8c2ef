package repo

import (
	"github.com/rogerio-castellano/sales-tracker/internal/models"
	"github.com/shopspring/decimal"
)

// Metrics is the shop dashboard aggregate.
type Metrics struct {
	TotalProducts int                   `json:"total_products"`
	TotalClients  int                   `json:"total_clients"`
	TotalSales    int                   `json:"total_sales"`
	Revenue       decimal.Decimal       `json:"revenue"`
	TopSellers    []models.ProductSales `json:"top_sellers"`
}

type MetricsRepository interface {
	GetDashboardMetrics() (Metrics, error)
}
