package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	api "github.com/rogerio-castellano/sales-tracker/internal/http"
	handler "github.com/rogerio-castellano/sales-tracker/internal/http/handlers"
	"github.com/rogerio-castellano/sales-tracker/internal/idgen"
	"github.com/rogerio-castellano/sales-tracker/internal/models"
	"github.com/rogerio-castellano/sales-tracker/internal/repo"
	"golang.org/x/crypto/bcrypt"
)

var (
	token       string
	productRepo *repo.InMemoryProductRepository
	clientRepo  *repo.InMemoryClientRepository
	saleRepo    *repo.InMemorySaleRepository
	userRepo    *repo.InMemoryUserRepository
)

func init() {
	setupTestRepos("secret-pass")
	r := api.NewRouter()

	var err error
	token, err = generateToken(r, "admin", "secret-pass")
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

func setupTestRepos(password string) {
	productRepo = repo.NewInMemoryProductRepository(idgen.NewProductCode())
	handler.SetProductRepo(productRepo)

	clientRepo = repo.NewInMemoryClientRepository()
	handler.SetClientRepo(clientRepo)

	saleRepo = repo.NewInMemorySaleRepository(productRepo, clientRepo)
	handler.SetSaleRepo(saleRepo)

	userRepo = repo.NewInMemoryUserRepository()
	handler.SetUserRepo(userRepo)

	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userRepo.CreateUser(models.User{
		Username:     "admin",
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	})

	handler.SetMetricsRepo(repo.NewInMemoryMetricsRepository(productRepo, clientRepo, saleRepo))
}

func clearAllProducts() {
	productRepo.Clear()
}

func clearAllClients() {
	clientRepo.Clear()
}

func clearAllSales() {
	saleRepo.Clear()
}

func clearShopData() {
	saleRepo.Clear()
	clientRepo.Clear()
	productRepo.Clear()
}

func generateToken(r http.Handler, username, password string) (string, error) {
	payload := handler.CredentialsRequest{Username: username, Password: password}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp handler.LoginResult
	err := json.NewDecoder(w.Body).Decode(&resp)
	if err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

func createProduct(r http.Handler, p handler.ProductRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(p)
	req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// mustCreateProduct creates a product and returns its decoded response,
// panicking on failure so tests fail loudly at setup.
func mustCreateProduct(r http.Handler, p handler.ProductRequest) handler.ProductResponse {
	w := createProduct(r, p)
	if w.Code != http.StatusCreated {
		panic(fmt.Sprintf("failed to create test product %q: status %d", p.Name, w.Code))
	}
	var resp handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		panic(fmt.Sprintf("error decoding product response: %v", err))
	}
	return resp
}

func createClient(r http.Handler, c handler.ClientRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(c)
	req := httptest.NewRequest(http.MethodPost, "/clients", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func commitSale(r http.Handler, s handler.SaleRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(s)
	req := httptest.NewRequest(http.MethodPost, "/sales", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
