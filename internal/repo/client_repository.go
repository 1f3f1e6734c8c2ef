package repo

import "github.com/rogerio-castellano/sales-tracker/internal/models"

// ClientRepository defines the interface for customer records.
//
// Create inserts unconditionally and permits duplicates; FindOrCreate is the
// idempotent path the sale flow uses, keyed on (normalized name, contact).
type ClientRepository interface {
	Create(client models.Client) (models.Client, error)
	GetByID(id int) (models.Client, error)
	GetAll() ([]models.Client, error)
	Update(client models.Client) (models.Client, error)
	Delete(id int) error
	FindOrCreate(name, contact string) (int, error)
	IncrementBonus(id int) error
	GetContact(id int) (string, error)
}
