package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	api "github.com/rogerio-castellano/sales-tracker/internal/http"
	handler "github.com/rogerio-castellano/sales-tracker/internal/http/handlers"
	"github.com/rogerio-castellano/sales-tracker/internal/repo"
)

func getMetrics(t *testing.T, r http.Handler) repo.Metrics {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var m repo.Metrics
	if err := json.NewDecoder(w.Body).Decode(&m); err != nil {
		t.Fatalf("error decoding metrics: %v", err)
	}
	return m
}

func TestGetMetricsHandler_EmptyShop(t *testing.T) {
	t.Cleanup(clearShopData)
	clearShopData()
	r := api.NewRouter()

	m := getMetrics(t, r)
	if m.TotalProducts != 0 || m.TotalClients != 0 || m.TotalSales != 0 {
		t.Errorf("expected empty counts, got %+v", m)
	}
	if !m.Revenue.Equal(decimal.Zero) {
		t.Errorf("expected zero revenue, got %v", m.Revenue)
	}
}

func TestGetMetricsHandler_AfterSales(t *testing.T) {
	t.Cleanup(clearShopData)
	clearShopData()
	r := api.NewRouter()

	coffee := mustCreateProduct(r, handler.ProductRequest{Name: "Coffee", SalePrice: decimal.RequireFromString("10.00"), Quantity: 50})
	tea := mustCreateProduct(r, handler.ProductRequest{Name: "Tea", SalePrice: decimal.RequireFromString("5.00"), Quantity: 50})

	if w := commitSale(r, handler.SaleRequest{
		ClientName: "Marie Curie",
		Lines:      []handler.SaleLineRequest{{ProductID: coffee.Id, Quantity: 3}},
	}); w.Code != http.StatusCreated {
		t.Fatalf("failed to commit first sale: %d", w.Code)
	}
	if w := commitSale(r, handler.SaleRequest{
		Lines: []handler.SaleLineRequest{
			{ProductID: coffee.Id, Quantity: 2},
			{ProductID: tea.Id, Quantity: 4},
		},
	}); w.Code != http.StatusCreated {
		t.Fatalf("failed to commit second sale: %d", w.Code)
	}

	m := getMetrics(t, r)

	if m.TotalProducts != 2 {
		t.Errorf("expected 2 products, got %d", m.TotalProducts)
	}
	if m.TotalClients != 1 {
		t.Errorf("expected 1 client, got %d", m.TotalClients)
	}
	if m.TotalSales != 2 {
		t.Errorf("expected 2 sales, got %d", m.TotalSales)
	}

	// 3*10 + 2*10 + 4*5 = 70
	if !m.Revenue.Equal(decimal.RequireFromString("70.00")) {
		t.Errorf("expected revenue 70.00, got %v", m.Revenue)
	}

	if len(m.TopSellers) != 2 {
		t.Fatalf("expected 2 top sellers, got %d", len(m.TopSellers))
	}
	if m.TopSellers[0].Name != "Coffee" || m.TopSellers[0].QuantitySold != 5 {
		t.Errorf("expected Coffee with 5 sold first, got %+v", m.TopSellers[0])
	}
	if m.TopSellers[1].Name != "Tea" || m.TopSellers[1].QuantitySold != 4 {
		t.Errorf("expected Tea with 4 sold second, got %+v", m.TopSellers[1])
	}
}
