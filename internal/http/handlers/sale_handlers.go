package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rogerio-castellano/sales-tracker/internal/cart"
	models "github.com/rogerio-castellano/sales-tracker/internal/models"
	repo "github.com/rogerio-castellano/sales-tracker/internal/repo"
)

func toSaleResponse(s models.Sale) SaleResponse {
	resp := SaleResponse{
		Id:        s.ID,
		Timestamp: s.Timestamp,
		Total:     s.Total,
		ClientID:  s.ClientID,
		Lines:     make([]SaleLineResponse, len(s.Lines)),
	}
	for i, l := range s.Lines {
		resp.Lines[i] = SaleLineResponse{
			ID:        l.ID,
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
		}
	}
	return resp
}

// CreateSaleHandler godoc
// @Summary Commit a cart as a sale
// @Description Validates each line against current stock, resolves the optional buyer via find-or-create, and writes sale, lines and stock decrements atomically. A failed commit leaves stock untouched.
// @Tags sales
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sale body SaleRequest true "Cart to commit"
// @Success 201 {object} SaleResponse
// @Failure 400 {string} string "Invalid cart"
// @Failure 404 {string} string "Unknown product"
// @Failure 409 {string} string "Insufficient stock"
// @Failure 500 {string} string "Internal error"
// @Router /sales [post]
func CreateSaleHandler(w http.ResponseWriter, r *http.Request) {
	var req SaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if len(req.Lines) == 0 {
		http.Error(w, "cart is empty", http.StatusBadRequest)
		return
	}

	// Assemble a cart from current catalog snapshots. The add-time stock
	// check is advisory; the ledger re-validates inside the transaction.
	basket := cart.New()
	for _, lr := range req.Lines {
		product, err := productRepo.GetByID(lr.ProductID)
		if err != nil {
			if errors.Is(err, repo.ErrProductNotFound) {
				http.Error(w, "product "+lr.ProductID+" not found", http.StatusNotFound)
				return
			}
			http.Error(w, "could not fetch product", http.StatusInternalServerError)
			return
		}
		if _, err := basket.AddLine(product, lr.Quantity); err != nil {
			switch {
			case errors.Is(err, cart.ErrInvalidQuantity):
				http.Error(w, "quantity must be positive", http.StatusBadRequest)
			case errors.Is(err, cart.ErrInsufficientStock):
				http.Error(w, "insufficient stock for product "+lr.ProductID, http.StatusConflict)
			default:
				http.Error(w, "could not add line", http.StatusInternalServerError)
			}
			return
		}
	}

	var clientID *int
	if strings.TrimSpace(req.ClientName) != "" {
		id, err := clientRepo.FindOrCreate(req.ClientName, req.ClientContact)
		if err != nil {
			http.Error(w, "could not resolve client", http.StatusInternalServerError)
			return
		}
		clientID = &id
	}

	lines := make([]repo.CartLine, 0, len(basket.Lines()))
	for _, l := range basket.Lines() {
		lines = append(lines, repo.CartLine{ProductID: l.Product.ID, Quantity: l.Quantity})
	}

	sale, err := saleRepo.Commit(clientID, lines)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrEmptyCart), errors.Is(err, repo.ErrInvalidQuantity):
			http.Error(w, "invalid cart", http.StatusBadRequest)
		case errors.Is(err, repo.ErrProductNotFound):
			http.Error(w, "product not found", http.StatusNotFound)
		case errors.Is(err, repo.ErrInsufficientStock):
			http.Error(w, "insufficient stock", http.StatusConflict)
		default:
			log.Printf("sale commit failed: %v", err)
			http.Error(w, "could not commit sale", http.StatusInternalServerError)
		}
		return
	}
	basket.Clear()

	// Loyalty accrual for identified buyers. The sale is already durable;
	// a failure here only costs the point.
	if clientID != nil {
		if err := clientRepo.IncrementBonus(*clientID); err != nil {
			log.Printf("could not add bonus point to client %d: %v", *clientID, err)
		}
	}

	writeJSON(w, http.StatusCreated, toSaleResponse(sale))
}

// GetSalesHandler godoc
// @Summary List sale summaries
// @Description Newest first, with the buyer name or "walk-in"
// @Tags sales
// @Produce json
// @Success 200 {array} SaleSummaryResponse
// @Failure 500 {string} string "Internal error"
// @Router /sales [get]
func GetSalesHandler(w http.ResponseWriter, r *http.Request) {
	summaries, err := saleRepo.GetAllSummaries()
	if err != nil {
		http.Error(w, "could not fetch sales", http.StatusInternalServerError)
		return
	}

	response := make([]SaleSummaryResponse, len(summaries))
	for i, s := range summaries {
		response[i] = SaleSummaryResponse{
			Id:         s.ID,
			Timestamp:  s.Timestamp,
			Total:      s.Total,
			ClientName: s.ClientName,
		}
	}
	writeJSON(w, http.StatusOK, response)
}

// GetSaleByIDHandler godoc
// @Summary Get a sale with its lines
// @Tags sales
// @Produce json
// @Param id path int true "Sale ID"
// @Success 200 {object} SaleResponse
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /sales/{id} [get]
func GetSaleByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid sale ID", http.StatusBadRequest)
		return
	}

	sale, err := saleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrSaleNotFound) {
			http.Error(w, "sale not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch sale", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, toSaleResponse(sale))
}
