package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// WalkInClientName labels sales committed without an identified buyer.
const WalkInClientName = "walk-in"

// Sale is an immutable record of a committed cart. ClientID is nil for
// walk-in sales.
type Sale struct {
	ID        int             `json:"id"`
	Timestamp time.Time       `json:"timestamp"`
	Total     decimal.Decimal `json:"total"`
	ClientID  *int            `json:"client_id,omitempty"`
	Lines     []SaleLine      `json:"lines,omitempty"`
}

// SaleLine captures one product line at commit time. UnitPrice is the
// product's sale price as persisted when the sale was committed, so later
// catalog edits never alter sale history.
type SaleLine struct {
	ID        int             `json:"id"`
	SaleID    int             `json:"sale_id"`
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// SaleSummary is a listing row: the sale header joined with the client
// name, or WalkInClientName when no client is attached (or the client was
// deleted after the fact).
type SaleSummary struct {
	ID         int             `json:"id"`
	Timestamp  time.Time       `json:"timestamp"`
	Total      decimal.Decimal `json:"total"`
	ClientName string          `json:"client_name"`
}

// ProductSales is a best-seller aggregate over all sale lines.
type ProductSales struct {
	Name         string `json:"name"`
	QuantitySold int    `json:"quantity_sold"`
}
