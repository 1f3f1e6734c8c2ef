package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	models "github.com/rogerio-castellano/sales-tracker/internal/models"
	repo "github.com/rogerio-castellano/sales-tracker/internal/repo"
)

func toProductResponse(p models.Product) ProductResponse {
	return ProductResponse{
		Id:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		PurchasePrice: p.PurchasePrice,
		SalePrice:     p.SalePrice,
		Quantity:      p.Quantity,
		InStock:       p.Quantity > 0,
	}
}

// CreateProductHandler godoc
// @Summary Add a product to the catalog
// @Description Generates a product code, normalizes the name and stores the entry
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body ProductRequest true "Product to add"
// @Success 201 {object} ProductResponse
// @Failure 400 {object} map[string]string
// @Router /products [post]
func CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateProduct(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	product := models.Product{
		Name:        req.Name,
		Description: req.Description,
		SalePrice:   req.SalePrice,
		Quantity:    req.Quantity,
	}
	created, err := productRepo.Create(product)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicatedValueUnique) {
			http.Error(w, "could not create product: product name duplicated", http.StatusConflict)
			return
		}
		http.Error(w, "could not create product", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, toProductResponse(created))
}

// GetProductsHandler godoc
// @Summary List catalog products
// @Description Case-insensitive name filter; inStock=true restricts to sellable products
// @Tags products
// @Produce json
// @Param name query string false "Filter by name"
// @Param inStock query bool false "Only products with stock"
// @Success 200 {array} ProductResponse
// @Failure 500 {string} string "Internal error"
// @Router /products [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	filter := repo.ProductFilter{
		Name:    r.URL.Query().Get("name"),
		InStock: r.URL.Query().Get("inStock") == "true",
	}

	products, err := productRepo.Filter(filter)
	if err != nil {
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}

	response := make([]ProductResponse, len(products))
	for i, p := range products {
		response[i] = toProductResponse(p)
	}
	writeJSON(w, http.StatusOK, response)
}

// GetProductByIDHandler godoc
// @Summary Get product by code
// @Tags products
// @Produce json
// @Param id path string true "Product code"
// @Success 200 {object} ProductResponse
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /products/{id} [get]
func GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, toProductResponse(product))
}

// UpdateProductHandler godoc
// @Summary Update a product
// @Description Updates name, description, sale price and stock; the code and purchase price are immutable
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product code"
// @Param product body ProductRequest true "Updated product"
// @Success 200 {object} ProductResponse
// @Failure 400 {object} map[string]any
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /products/{id} [put]
func UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateProduct(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	product := models.Product{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		SalePrice:   req.SalePrice,
		Quantity:    req.Quantity,
	}
	updated, err := productRepo.Update(product)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrProductNotFound):
			http.Error(w, "product not found", http.StatusNotFound)
		case errors.Is(err, repo.ErrDuplicatedValueUnique):
			http.Error(w, "could not update product: product name duplicated", http.StatusConflict)
		default:
			http.Error(w, "could not update product", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, toProductResponse(updated))
}

// DeleteProductHandler godoc
// @Summary Delete a product
// @Description Removes the catalog entry; past sale lines keep their captured price and quantity
// @Tags products
// @Security BearerAuth
// @Param id path string true "Product code"
// @Success 204 "Deleted successfully"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /products/{id} [delete]
func DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "product ID is required", http.StatusBadRequest)
		return
	}

	if err := productRepo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete product", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
