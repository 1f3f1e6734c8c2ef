package repo

import (
	"context"
	"database/sql"
	"time"
)

const topSellersCount = 5

type PostgresMetricsRepository struct {
	db    *sql.DB
	sales *PostgresSaleRepository
}

func NewPostgresMetricsRepository(db *sql.DB) *PostgresMetricsRepository {
	return &PostgresMetricsRepository{db: db, sales: NewPostgresSaleRepository(db)}
}

func (r *PostgresMetricsRepository) GetDashboardMetrics() (Metrics, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var m Metrics

	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&m.TotalProducts); err != nil {
		return Metrics{}, err
	}
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM clients`).Scan(&m.TotalClients); err != nil {
		return Metrics{}, err
	}
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sales`).Scan(&m.TotalSales); err != nil {
		return Metrics{}, err
	}

	revenue, err := r.sales.TotalRevenue()
	if err != nil {
		return Metrics{}, err
	}
	m.Revenue = revenue

	m.TopSellers, err = r.sales.BestSelling(topSellersCount)
	if err != nil {
		return Metrics{}, err
	}
	return m, nil
}
