package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rogerio-castellano/sales-tracker/internal/models"
	"github.com/shopspring/decimal"
)

type PostgresSaleRepository struct {
	db *sql.DB
}

func NewPostgresSaleRepository(db *sql.DB) *PostgresSaleRepository {
	return &PostgresSaleRepository{db: db}
}

// Commit validates the cart against current stock, prices every line from
// the persisted sale price, and writes header, lines and stock decrements in
// one transaction. The products are read FOR UPDATE so a concurrent commit
// against the same product cannot interleave, and the decrement itself is
// guarded so stock can never go negative even outside that lock.
func (r *PostgresSaleRepository) Commit(clientID *int, lines []CartLine) (models.Sale, error) {
	if len(lines) == 0 {
		return models.Sale{}, ErrEmptyCart
	}
	for _, l := range lines {
		if l.Quantity <= 0 {
			return models.Sale{}, ErrInvalidQuantity
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Sale{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	total := decimal.Zero
	prices := make([]decimal.Decimal, len(lines))
	for i, l := range lines {
		var price decimal.Decimal
		var stock int
		err := tx.QueryRowContext(ctx,
			`SELECT sale_price, quantity FROM products WHERE id = $1 FOR UPDATE`,
			l.ProductID).Scan(&price, &stock)
		if errors.Is(err, sql.ErrNoRows) {
			return models.Sale{}, ErrProductNotFound
		}
		if err != nil {
			return models.Sale{}, err
		}
		if stock < l.Quantity {
			return models.Sale{}, ErrInsufficientStock
		}
		prices[i] = price
		total = total.Add(price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}

	sale := models.Sale{Total: total, ClientID: clientID}
	err = tx.QueryRowContext(ctx,
		`INSERT INTO sales (total, client_id) VALUES ($1, $2) RETURNING id, created_at`,
		total, clientID).Scan(&sale.ID, &sale.Timestamp)
	if err != nil {
		return models.Sale{}, fmt.Errorf("failed to insert sale: %w", err)
	}

	for i, l := range lines {
		line := models.SaleLine{
			SaleID:    sale.ID,
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitPrice: prices[i],
		}
		err = tx.QueryRowContext(ctx,
			`INSERT INTO sale_lines (sale_id, product_id, quantity, unit_price) VALUES ($1, $2, $3, $4) RETURNING id`,
			line.SaleID, line.ProductID, line.Quantity, line.UnitPrice).Scan(&line.ID)
		if err != nil {
			return models.Sale{}, fmt.Errorf("failed to insert sale line: %w", err)
		}

		res, err := tx.ExecContext(ctx,
			`UPDATE products SET quantity = quantity - $1 WHERE id = $2 AND quantity - $1 >= 0`,
			l.Quantity, l.ProductID)
		if err != nil {
			return models.Sale{}, err
		}
		// Zero rows here means another line of this cart already consumed
		// the stock (duplicate product in the cart).
		if rowsAffected, _ := res.RowsAffected(); rowsAffected == 0 {
			return models.Sale{}, ErrInsufficientStock
		}

		sale.Lines = append(sale.Lines, line)
	}

	if err := tx.Commit(); err != nil {
		return models.Sale{}, fmt.Errorf("failed to commit sale: %w", err)
	}
	return sale, nil
}

func (r *PostgresSaleRepository) GetByID(id int) (models.Sale, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var sale models.Sale
	err := r.db.QueryRowContext(ctx,
		`SELECT id, created_at, total, client_id FROM sales WHERE id = $1`, id).
		Scan(&sale.ID, &sale.Timestamp, &sale.Total, &sale.ClientID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Sale{}, ErrSaleNotFound
	}
	if err != nil {
		return models.Sale{}, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, sale_id, product_id, quantity, unit_price FROM sale_lines WHERE sale_id = $1 ORDER BY id`, id)
	if err != nil {
		return models.Sale{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var line models.SaleLine
		if err := rows.Scan(&line.ID, &line.SaleID, &line.ProductID, &line.Quantity, &line.UnitPrice); err != nil {
			return models.Sale{}, err
		}
		sale.Lines = append(sale.Lines, line)
	}
	return sale, rows.Err()
}

func (r *PostgresSaleRepository) GetAllSummaries() ([]models.SaleSummary, error) {
	query := `
		SELECT s.id, s.created_at, s.total, COALESCE(c.name, $1)
		FROM sales s
		LEFT JOIN clients c ON s.client_id = c.id
		ORDER BY s.created_at DESC, s.id DESC
	`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, models.WalkInClientName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []models.SaleSummary
	for rows.Next() {
		var s models.SaleSummary
		if err := rows.Scan(&s.ID, &s.Timestamp, &s.Total, &s.ClientName); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

func (r *PostgresSaleRepository) TotalRevenue() (decimal.Decimal, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var total decimal.Decimal
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(total), 0) FROM sales`).Scan(&total)
	return total, err
}

// BestSelling aggregates quantities over all sale lines, most sold first.
// Lines whose product was deleted from the catalog drop out of the join.
func (r *PostgresSaleRepository) BestSelling(limit int) ([]models.ProductSales, error) {
	query := `
		SELECT p.name, SUM(sl.quantity) AS sold
		FROM sale_lines sl
		JOIN products p ON sl.product_id = p.id
		GROUP BY p.name
		ORDER BY sold DESC, p.name
		LIMIT $1
	`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ranking []models.ProductSales
	for rows.Next() {
		var ps models.ProductSales
		if err := rows.Scan(&ps.Name, &ps.QuantitySold); err != nil {
			return nil, err
		}
		ranking = append(ranking, ps)
	}
	return ranking, rows.Err()
}
