package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/rogerio-castellano/sales-tracker/internal/models"
)

type PostgresClientRepository struct {
	db *sql.DB
}

func NewPostgresClientRepository(db *sql.DB) *PostgresClientRepository {
	return &PostgresClientRepository{db: db}
}

func (r *PostgresClientRepository) Create(c models.Client) (models.Client, error) {
	query := `INSERT INTO clients (name, contact) VALUES ($1, $2) RETURNING id, bonus_points`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	c.Name = models.NormalizeName(c.Name)
	err := r.db.QueryRowContext(ctx, query, c.Name, c.Contact).Scan(&c.ID, &c.BonusPoints)
	return c, err
}

func (r *PostgresClientRepository) GetByID(id int) (models.Client, error) {
	query := `SELECT id, name, contact, bonus_points FROM clients WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var c models.Client
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.Contact, &c.BonusPoints)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Client{}, ErrClientNotFound
	}
	return c, err
}

func (r *PostgresClientRepository) GetAll() ([]models.Client, error) {
	query := `SELECT id, name, contact, bonus_points FROM clients ORDER BY name`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []models.Client
	for rows.Next() {
		var c models.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Contact, &c.BonusPoints); err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

func (r *PostgresClientRepository) Update(c models.Client) (models.Client, error) {
	query := `UPDATE clients SET name = $1, contact = $2 WHERE id = $3`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	c.Name = models.NormalizeName(c.Name)
	res, err := r.db.ExecContext(ctx, query, c.Name, c.Contact, c.ID)
	if err != nil {
		return models.Client{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Client{}, ErrClientNotFound
	}
	return r.GetByID(c.ID)
}

// Delete removes a client unconditionally. Sales referencing it are left in
// place and list as walk-in afterwards.
func (r *PostgresClientRepository) Delete(id int) error {
	query := `DELETE FROM clients WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrClientNotFound
	}
	return nil
}

// FindOrCreate resolves a client by (normalized name, contact), creating the
// record on first sight. Repeat buyers supplying the same identity always
// resolve to the same id.
func (r *PostgresClientRepository) FindOrCreate(name, contact string) (int, error) {
	name = models.NormalizeName(name)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var id int
	err := r.db.QueryRowContext(ctx, `SELECT id FROM clients WHERE name = $1 AND contact = $2 ORDER BY id LIMIT 1`, name, contact).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, err
	}

	err = r.db.QueryRowContext(ctx, `INSERT INTO clients (name, contact) VALUES ($1, $2) RETURNING id`, name, contact).Scan(&id)
	return id, err
}

func (r *PostgresClientRepository) IncrementBonus(id int) error {
	query := `UPDATE clients SET bonus_points = bonus_points + 1 WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrClientNotFound
	}
	return nil
}

func (r *PostgresClientRepository) GetContact(id int) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var contact string
	err := r.db.QueryRowContext(ctx, `SELECT contact FROM clients WHERE id = $1`, id).Scan(&contact)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrClientNotFound
	}
	return contact, err
}
