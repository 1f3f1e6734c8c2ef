package handlers

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	SalePrice   decimal.Decimal `json:"sale_price"`
	Quantity    int             `json:"quantity"`
}

type ProductResponse struct {
	Id            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	Quantity      int             `json:"quantity"`
	InStock       bool            `json:"in_stock"`
}

type ClientRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact,omitempty"`
}

type ClientResponse struct {
	Id          int    `json:"id"`
	Name        string `json:"name"`
	Contact     string `json:"contact,omitempty"`
	BonusPoints int    `json:"bonus_points"`
}

type SaleLineRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// SaleRequest commits a cart. Client name and contact are optional; when a
// name is given the buyer is resolved through find-or-create, otherwise the
// sale is recorded as walk-in.
type SaleRequest struct {
	ClientName    string            `json:"client_name,omitempty"`
	ClientContact string            `json:"client_contact,omitempty"`
	Lines         []SaleLineRequest `json:"lines"`
}

type SaleLineResponse struct {
	ID        int             `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type SaleResponse struct {
	Id        int                `json:"id"`
	Timestamp time.Time          `json:"timestamp"`
	Total     decimal.Decimal    `json:"total"`
	ClientID  *int               `json:"client_id,omitempty"`
	Lines     []SaleLineResponse `json:"lines"`
}

type SaleSummaryResponse struct {
	Id         int             `json:"id"`
	Timestamp  time.Time       `json:"timestamp"`
	Total      decimal.Decimal `json:"total"`
	ClientName string          `json:"client_name"`
}

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterAsAdminRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginResult struct {
	Token string `json:"token"`
}

type RegisterResult struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}
