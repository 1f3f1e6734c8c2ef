package models

import "github.com/shopspring/decimal"

// Product represents a catalog entry. ID is a stable human-readable code
// (PROD-XXXX) assigned once at creation and never changed afterwards.
type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	Quantity      int             `json:"quantity"`
}
