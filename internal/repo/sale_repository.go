package repo

import (
	"github.com/rogerio-castellano/sales-tracker/internal/models"
	"github.com/shopspring/decimal"
)

// CartLine is one (product, quantity) entry handed to Commit. Only the
// product id matters here: price and stock are re-read from the store at
// commit time, never trusted from the cart.
type CartLine struct {
	ProductID string
	Quantity  int
}

// SaleRepository owns sale headers and their lines.
//
// Commit is the critical operation: it inserts the header and every line and
// decrements stock as a single atomic unit. Either the whole sale lands or
// nothing does; a failed commit leaves stock and history untouched.
type SaleRepository interface {
	Commit(clientID *int, lines []CartLine) (models.Sale, error)
	GetByID(id int) (models.Sale, error)
	GetAllSummaries() ([]models.SaleSummary, error)
	TotalRevenue() (decimal.Decimal, error)
	BestSelling(limit int) ([]models.ProductSales, error)
}
