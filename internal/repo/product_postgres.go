package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/rogerio-castellano/sales-tracker/internal/idgen"
	"github.com/rogerio-castellano/sales-tracker/internal/models"
)

type PostgresProductRepository struct {
	db    *sql.DB
	codes idgen.Generator
}

func NewPostgresProductRepository(db *sql.DB, codes idgen.Generator) *PostgresProductRepository {
	return &PostgresProductRepository{db: db, codes: codes}
}

// maxCodeAttempts bounds the collision-retry loop when assigning product codes.
const maxCodeAttempts = 5

func (r *PostgresProductRepository) Create(p models.Product) (models.Product, error) {
	query := `INSERT INTO products (id, name, description, purchase_price, sale_price, quantity)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	p.Name = models.NormalizeName(p.Name)

	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		p.ID = r.codes.NewCode()

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		_, err := r.db.ExecContext(ctx, query, p.ID, p.Name, p.Description, p.PurchasePrice, p.SalePrice, p.Quantity)
		cancel()

		if err == nil {
			return p, nil
		}
		if constraint, ok := uniqueViolation(err); ok {
			if constraint == "products_pkey" {
				continue
			}
			return models.Product{}, ErrDuplicatedValueUnique
		}
		return models.Product{}, err
	}
	return models.Product{}, ErrCodeExhausted
}

func (r *PostgresProductRepository) GetByID(id string) (models.Product, error) {
	query := `SELECT id, name, description, purchase_price, sale_price, quantity FROM products WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var p models.Product
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&p.ID, &p.Name, &p.Description, &p.PurchasePrice, &p.SalePrice, &p.Quantity)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

// Update modifies name, description, sale price and stock. The code and the
// purchase price are immutable after creation.
func (r *PostgresProductRepository) Update(p models.Product) (models.Product, error) {
	query := `UPDATE products SET name = $1, description = $2, sale_price = $3, quantity = $4 WHERE id = $5`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	p.Name = models.NormalizeName(p.Name)
	res, err := r.db.ExecContext(ctx, query, p.Name, p.Description, p.SalePrice, p.Quantity, p.ID)
	if err != nil {
		if _, ok := uniqueViolation(err); ok {
			return models.Product{}, ErrDuplicatedValueUnique
		}
		return models.Product{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Product{}, ErrProductNotFound
	}
	return r.GetByID(p.ID)
}

// Delete removes a product unconditionally. Sale lines referencing it keep
// their captured quantity and unit price.
func (r *PostgresProductRepository) Delete(id string) error {
	query := `DELETE FROM products WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *PostgresProductRepository) Filter(pf ProductFilter) ([]models.Product, error) {
	query := `SELECT id, name, description, purchase_price, sale_price, quantity FROM products
	          WHERE name ILIKE '%' || $1 || '%'`
	if pf.InStock {
		query += ` AND quantity > 0`
	}
	query += ` ORDER BY name`

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, pf.Name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.PurchasePrice, &p.SalePrice, &p.Quantity); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
