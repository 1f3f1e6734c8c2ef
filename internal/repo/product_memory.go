package repo

import (
	"sort"
	"strings"
	"sync"

	"github.com/rogerio-castellano/sales-tracker/internal/idgen"
	"github.com/rogerio-castellano/sales-tracker/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of
// ProductRepository, used by the handler test suites.
type InMemoryProductRepository struct {
	mu       sync.RWMutex
	products []models.Product
	codes    idgen.Generator
}

func NewInMemoryProductRepository(codes idgen.Generator) *InMemoryProductRepository {
	return &InMemoryProductRepository{codes: codes}
}

func (r *InMemoryProductRepository) Create(product models.Product) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product.Name = models.NormalizeName(product.Name)
	for _, p := range r.products {
		if p.Name == product.Name {
			return models.Product{}, ErrDuplicatedValueUnique
		}
	}

	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code := r.codes.NewCode()
		if r.indexOf(code) >= 0 {
			continue
		}
		product.ID = code
		r.products = append(r.products, product)
		return product, nil
	}
	return models.Product{}, ErrCodeExhausted
}

func (r *InMemoryProductRepository) GetByID(id string) (models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		return r.products[i], nil
	}
	return models.Product{}, ErrProductNotFound
}

func (r *InMemoryProductRepository) Update(product models.Product) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(product.ID)
	if i < 0 {
		return models.Product{}, ErrProductNotFound
	}

	product.Name = models.NormalizeName(product.Name)
	for j, p := range r.products {
		if j != i && p.Name == product.Name {
			return models.Product{}, ErrDuplicatedValueUnique
		}
	}

	// code and purchase price are immutable
	product.PurchasePrice = r.products[i].PurchasePrice
	r.products[i] = product
	return product, nil
}

func (r *InMemoryProductRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return ErrProductNotFound
	}
	r.products = append(r.products[:i], r.products[i+1:]...)
	return nil
}

func (r *InMemoryProductRepository) Filter(pf ProductFilter) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var filtered []models.Product
	for _, p := range r.products {
		if pf.Name != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(pf.Name)) {
			continue
		}
		if pf.InStock && p.Quantity <= 0 {
			continue
		}
		filtered = append(filtered, p)
	}
	sort.Slice(filtered, func(i, j int) bool { return filtered[i].Name < filtered[j].Name })
	return filtered, nil
}

// AdjustQuantity applies a guarded stock change: the delta is rejected with
// ErrInsufficientStock if it would drive the quantity negative. The sale
// ledger uses this for commit-time decrements.
func (r *InMemoryProductRepository) AdjustQuantity(id string, delta int) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return models.Product{}, ErrProductNotFound
	}
	if r.products[i].Quantity+delta < 0 {
		return models.Product{}, ErrInsufficientStock
	}
	r.products[i].Quantity += delta
	return r.products[i], nil
}

func (r *InMemoryProductRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = nil
}

// indexOf assumes the caller holds the lock.
func (r *InMemoryProductRepository) indexOf(id string) int {
	for i, p := range r.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}
