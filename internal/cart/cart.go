// Package cart holds the transient list of lines being assembled for one
// sale. A cart belongs to a single selling session, lives in memory only,
// and is discarded once committed or cancelled.
package cart

import (
	"errors"

	"github.com/rogerio-castellano/sales-tracker/internal/models"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrInsufficientStock = errors.New("quantity exceeds available stock")
	ErrLineNotFound      = errors.New("cart line not found")
)

// Line pairs a product snapshot with the quantity being bought. The snapshot
// is frozen at add time: catalog edits made while the cart is open do not
// reach into it. The ledger re-reads price and stock at commit anyway.
type Line struct {
	ID       int             `json:"id"`
	Product  models.Product  `json:"product"`
	Quantity int             `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

type Cart struct {
	lines  []Line
	nextID int
}

func New() *Cart {
	return &Cart{nextID: 1}
}

// AddLine appends a line after a soft stock check against the snapshot.
// The authoritative check happens again at commit against persisted stock.
func (c *Cart) AddLine(product models.Product, quantity int) (Line, error) {
	if quantity <= 0 {
		return Line{}, ErrInvalidQuantity
	}
	if quantity > product.Quantity {
		return Line{}, ErrInsufficientStock
	}

	line := Line{
		ID:       c.nextID,
		Product:  product,
		Quantity: quantity,
		Subtotal: product.SalePrice.Mul(decimal.NewFromInt(int64(quantity))),
	}
	c.nextID++
	c.lines = append(c.lines, line)
	return line, nil
}

func (c *Cart) RemoveLine(lineID int) error {
	for i, l := range c.lines {
		if l.ID == lineID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return nil
		}
	}
	return ErrLineNotFound
}

func (c *Cart) Lines() []Line {
	lines := make([]Line, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Subtotal)
	}
	return total
}

func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

// Clear empties the cart, called after a commit or an explicit cancel.
func (c *Cart) Clear() {
	c.lines = nil
}
