package repo

import "github.com/rogerio-castellano/sales-tracker/internal/models"

// ProductRepository defines the interface for catalog data operations.
// Create assigns the product code itself, retrying on collision.
type ProductRepository interface {
	Create(product models.Product) (models.Product, error)
	GetByID(id string) (models.Product, error)
	Update(product models.Product) (models.Product, error)
	Delete(id string) error
	Filter(pf ProductFilter) ([]models.Product, error)
}
