package repo

import (
	"sort"
	"sync"
	"time"

	"github.com/rogerio-castellano/sales-tracker/internal/models"
	"github.com/shopspring/decimal"
)

// InMemorySaleRepository is an in-memory implementation of SaleRepository.
// Its mutex serializes commits, so the validate-then-apply sequence against
// the product repository behaves as a single unit the same way the postgres
// transaction does.
type InMemorySaleRepository struct {
	mu         sync.Mutex
	sales      []models.Sale
	nextSaleID int
	nextLineID int
	products   *InMemoryProductRepository
	clients    *InMemoryClientRepository
}

func NewInMemorySaleRepository(products *InMemoryProductRepository, clients *InMemoryClientRepository) *InMemorySaleRepository {
	return &InMemorySaleRepository{
		nextSaleID: 1,
		nextLineID: 1,
		products:   products,
		clients:    clients,
	}
}

func (r *InMemorySaleRepository) Commit(clientID *int, lines []CartLine) (models.Sale, error) {
	if len(lines) == 0 {
		return models.Sale{}, ErrEmptyCart
	}
	for _, l := range lines {
		if l.Quantity <= 0 {
			return models.Sale{}, ErrInvalidQuantity
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Validate every line against current stock before touching anything,
	// summing requested quantities so a duplicated product cannot pass two
	// individually-valid checks.
	requested := make(map[string]int)
	prices := make([]decimal.Decimal, len(lines))
	total := decimal.Zero
	for i, l := range lines {
		p, err := r.products.GetByID(l.ProductID)
		if err != nil {
			return models.Sale{}, err
		}
		requested[l.ProductID] += l.Quantity
		if requested[l.ProductID] > p.Quantity {
			return models.Sale{}, ErrInsufficientStock
		}
		prices[i] = p.SalePrice
		total = total.Add(p.SalePrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}

	sale := models.Sale{
		ID:        r.nextSaleID,
		Timestamp: time.Now().UTC(),
		Total:     total,
		ClientID:  clientID,
	}
	r.nextSaleID++

	for i, l := range lines {
		if _, err := r.products.AdjustQuantity(l.ProductID, -l.Quantity); err != nil {
			return models.Sale{}, err
		}
		sale.Lines = append(sale.Lines, models.SaleLine{
			ID:        r.nextLineID,
			SaleID:    sale.ID,
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitPrice: prices[i],
		})
		r.nextLineID++
	}

	r.sales = append(r.sales, sale)
	return sale, nil
}

func (r *InMemorySaleRepository) GetByID(id int) (models.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.sales {
		if s.ID == id {
			return s, nil
		}
	}
	return models.Sale{}, ErrSaleNotFound
}

func (r *InMemorySaleRepository) GetAllSummaries() ([]models.SaleSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	summaries := make([]models.SaleSummary, 0, len(r.sales))
	for _, s := range r.sales {
		name := models.WalkInClientName
		if s.ClientID != nil {
			if c, err := r.clients.GetByID(*s.ClientID); err == nil {
				name = c.Name
			}
		}
		summaries = append(summaries, models.SaleSummary{
			ID:         s.ID,
			Timestamp:  s.Timestamp,
			Total:      s.Total,
			ClientName: name,
		})
	}
	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].Timestamp.Equal(summaries[j].Timestamp) {
			return summaries[i].ID > summaries[j].ID
		}
		return summaries[i].Timestamp.After(summaries[j].Timestamp)
	})
	return summaries, nil
}

func (r *InMemorySaleRepository) TotalRevenue() (decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	total := decimal.Zero
	for _, s := range r.sales {
		total = total.Add(s.Total)
	}
	return total, nil
}

func (r *InMemorySaleRepository) BestSelling(limit int) ([]models.ProductSales, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sold := make(map[string]int)
	for _, s := range r.sales {
		for _, l := range s.Lines {
			sold[l.ProductID] += l.Quantity
		}
	}

	var ranking []models.ProductSales
	for id, qty := range sold {
		p, err := r.products.GetByID(id)
		if err != nil {
			// product deleted after the sale; drops out like the SQL join
			continue
		}
		ranking = append(ranking, models.ProductSales{Name: p.Name, QuantitySold: qty})
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].QuantitySold == ranking[j].QuantitySold {
			return ranking[i].Name < ranking[j].Name
		}
		return ranking[i].QuantitySold > ranking[j].QuantitySold
	})
	if limit > 0 && limit < len(ranking) {
		ranking = ranking[:limit]
	}
	return ranking, nil
}

func (r *InMemorySaleRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sales = nil
	r.nextSaleID = 1
	r.nextLineID = 1
}
