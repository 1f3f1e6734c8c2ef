package repo

import (
	"errors"
	"sync"
	"testing"

	"github.com/rogerio-castellano/sales-tracker/internal/idgen"
	"github.com/rogerio-castellano/sales-tracker/internal/models"
	"github.com/shopspring/decimal"
)

func newTestShop(t *testing.T) (*InMemoryProductRepository, *InMemoryClientRepository, *InMemorySaleRepository) {
	t.Helper()
	products := NewInMemoryProductRepository(idgen.NewProductCode())
	clients := NewInMemoryClientRepository()
	sales := NewInMemorySaleRepository(products, clients)
	return products, clients, sales
}

func seedProduct(t *testing.T, products *InMemoryProductRepository, name, price string, qty int) models.Product {
	t.Helper()
	p, err := products.Create(models.Product{
		Name:      name,
		SalePrice: decimal.RequireFromString(price),
		Quantity:  qty,
	})
	if err != nil {
		t.Fatalf("failed to seed product %q: %v", name, err)
	}
	return p
}

func TestCommit_TotalAndStock(t *testing.T) {
	products, _, sales := newTestShop(t)
	coffee := seedProduct(t, products, "Coffee", "12.50", 10)
	tea := seedProduct(t, products, "Tea", "5.00", 8)

	sale, err := sales.Commit(nil, []CartLine{
		{ProductID: coffee.ID, Quantity: 2},
		{ProductID: tea.ID, Quantity: 3},
	})
	if err != nil {
		t.Fatalf("commit failed: %v", err)
	}

	// 2*12.50 + 3*5.00 = 40.00
	if !sale.Total.Equal(decimal.RequireFromString("40.00")) {
		t.Errorf("expected total 40.00, got %v", sale.Total)
	}
	if len(sale.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(sale.Lines))
	}
	if !sale.Lines[0].UnitPrice.Equal(decimal.RequireFromString("12.50")) {
		t.Errorf("expected captured unit price 12.50, got %v", sale.Lines[0].UnitPrice)
	}

	after, _ := products.GetByID(coffee.ID)
	if after.Quantity != 8 {
		t.Errorf("expected coffee stock 8, got %d", after.Quantity)
	}
	after, _ = products.GetByID(tea.ID)
	if after.Quantity != 5 {
		t.Errorf("expected tea stock 5, got %d", after.Quantity)
	}
}

func TestCommit_EmptyCart(t *testing.T) {
	_, _, sales := newTestShop(t)

	if _, err := sales.Commit(nil, nil); !errors.Is(err, ErrEmptyCart) {
		t.Errorf("expected ErrEmptyCart, got %v", err)
	}
}

func TestCommit_InvalidQuantity(t *testing.T) {
	products, _, sales := newTestShop(t)
	p := seedProduct(t, products, "Candle", "6.00", 5)

	for _, qty := range []int{0, -2} {
		if _, err := sales.Commit(nil, []CartLine{{ProductID: p.ID, Quantity: qty}}); !errors.Is(err, ErrInvalidQuantity) {
			t.Errorf("quantity %d: expected ErrInvalidQuantity, got %v", qty, err)
		}
	}
}

func TestCommit_UnknownProduct(t *testing.T) {
	_, _, sales := newTestShop(t)

	if _, err := sales.Commit(nil, []CartLine{{ProductID: "PROD-GONE", Quantity: 1}}); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestCommit_InsufficientStockLeavesStateUntouched(t *testing.T) {
	products, _, sales := newTestShop(t)
	plenty := seedProduct(t, products, "Plenty", "2.00", 100)
	scarce := seedProduct(t, products, "Scarce", "9.00", 1)

	_, err := sales.Commit(nil, []CartLine{
		{ProductID: plenty.ID, Quantity: 10},
		{ProductID: scarce.ID, Quantity: 2},
	})
	if !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}

	after, _ := products.GetByID(plenty.ID)
	if after.Quantity != 100 {
		t.Errorf("expected untouched stock 100, got %d", after.Quantity)
	}
	summaries, _ := sales.GetAllSummaries()
	if len(summaries) != 0 {
		t.Errorf("expected no recorded sale, got %d", len(summaries))
	}
}

func TestCommit_DuplicateProductLinesSummed(t *testing.T) {
	products, _, sales := newTestShop(t)
	p := seedProduct(t, products, "Limited", "10.00", 3)

	// Each line fits individually but the sum exceeds stock.
	_, err := sales.Commit(nil, []CartLine{
		{ProductID: p.ID, Quantity: 2},
		{ProductID: p.ID, Quantity: 2},
	})
	if !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}

	after, _ := products.GetByID(p.ID)
	if after.Quantity != 3 {
		t.Errorf("expected untouched stock 3, got %d", after.Quantity)
	}
}

func TestCommit_ConcurrentNeverOversells(t *testing.T) {
	products, _, sales := newTestShop(t)
	p := seedProduct(t, products, "Hot Item", "20.00", 10)

	const workers = 20
	var wg sync.WaitGroup
	committed := make(chan int, workers)

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := sales.Commit(nil, []CartLine{{ProductID: p.ID, Quantity: 1}}); err == nil {
				committed <- 1
			}
		}()
	}
	wg.Wait()
	close(committed)

	sold := 0
	for range committed {
		sold++
	}
	if sold != 10 {
		t.Errorf("expected exactly 10 commits to succeed, got %d", sold)
	}

	after, _ := products.GetByID(p.ID)
	if after.Quantity != 0 {
		t.Errorf("expected stock 0, got %d", after.Quantity)
	}
}

func TestGetAllSummaries_ClientNames(t *testing.T) {
	products, clients, sales := newTestShop(t)
	p := seedProduct(t, products, "Mug", "4.00", 10)

	clientID, err := clients.FindOrCreate("jean dupont", "jean@example.com")
	if err != nil {
		t.Fatalf("find-or-create failed: %v", err)
	}

	if _, err := sales.Commit(&clientID, []CartLine{{ProductID: p.ID, Quantity: 1}}); err != nil {
		t.Fatalf("commit failed: %v", err)
	}
	if _, err := sales.Commit(nil, []CartLine{{ProductID: p.ID, Quantity: 2}}); err != nil {
		t.Fatalf("commit failed: %v", err)
	}

	summaries, err := sales.GetAllSummaries()
	if err != nil {
		t.Fatalf("summaries failed: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}

	// Newest first: the walk-in sale was committed last.
	if summaries[0].ClientName != models.WalkInClientName {
		t.Errorf("expected walk-in first, got %q", summaries[0].ClientName)
	}
	if summaries[1].ClientName != "Jean Dupont" {
		t.Errorf("expected 'Jean Dupont', got %q", summaries[1].ClientName)
	}

	// Deleting the client downgrades the label, not the sale.
	if err := clients.Delete(clientID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	summaries, _ = sales.GetAllSummaries()
	if summaries[1].ClientName != models.WalkInClientName {
		t.Errorf("expected deleted client to show as walk-in, got %q", summaries[1].ClientName)
	}
}

func TestFindOrCreate_Idempotent(t *testing.T) {
	_, clients, _ := newTestShop(t)

	first, err := clients.FindOrCreate("Jean Dupont", "jean@example.com")
	if err != nil {
		t.Fatalf("find-or-create failed: %v", err)
	}
	second, err := clients.FindOrCreate("jean dupont", "jean@example.com")
	if err != nil {
		t.Fatalf("find-or-create failed: %v", err)
	}
	if first != second {
		t.Errorf("expected the same client, got %d and %d", first, second)
	}

	// Same name with a different contact is a different person.
	third, err := clients.FindOrCreate("Jean Dupont", "other@example.com")
	if err != nil {
		t.Fatalf("find-or-create failed: %v", err)
	}
	if third == first {
		t.Error("expected a distinct client for a different contact")
	}

	contact, err := clients.GetContact(third)
	if err != nil {
		t.Fatalf("get-contact failed: %v", err)
	}
	if contact != "other@example.com" {
		t.Errorf("expected contact 'other@example.com', got %q", contact)
	}
}

func TestTotalRevenueAndBestSelling(t *testing.T) {
	products, _, sales := newTestShop(t)
	coffee := seedProduct(t, products, "Coffee", "10.00", 50)
	tea := seedProduct(t, products, "Tea", "5.00", 50)

	if _, err := sales.Commit(nil, []CartLine{{ProductID: coffee.ID, Quantity: 5}}); err != nil {
		t.Fatalf("commit failed: %v", err)
	}
	if _, err := sales.Commit(nil, []CartLine{{ProductID: tea.ID, Quantity: 4}}); err != nil {
		t.Fatalf("commit failed: %v", err)
	}

	revenue, err := sales.TotalRevenue()
	if err != nil {
		t.Fatalf("revenue failed: %v", err)
	}
	if !revenue.Equal(decimal.RequireFromString("70.00")) {
		t.Errorf("expected revenue 70.00, got %v", revenue)
	}

	ranking, err := sales.BestSelling(5)
	if err != nil {
		t.Fatalf("best-selling failed: %v", err)
	}
	if len(ranking) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(ranking))
	}
	if ranking[0].Name != "Coffee" || ranking[0].QuantitySold != 5 {
		t.Errorf("expected Coffee first with 5 sold, got %+v", ranking[0])
	}

	// A deleted product drops out of the ranking but not the revenue.
	if err := products.Delete(coffee.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	ranking, _ = sales.BestSelling(5)
	if len(ranking) != 1 || ranking[0].Name != "Tea" {
		t.Errorf("expected only Tea after deletion, got %+v", ranking)
	}
	revenue, _ = sales.TotalRevenue()
	if !revenue.Equal(decimal.RequireFromString("70.00")) {
		t.Errorf("expected revenue unchanged at 70.00, got %v", revenue)
	}
}

func TestBestSelling_Limit(t *testing.T) {
	products, _, sales := newTestShop(t)
	a := seedProduct(t, products, "A", "1.00", 100)
	b := seedProduct(t, products, "B", "1.00", 100)
	c := seedProduct(t, products, "C", "1.00", 100)

	if _, err := sales.Commit(nil, []CartLine{
		{ProductID: a.ID, Quantity: 3},
		{ProductID: b.ID, Quantity: 2},
		{ProductID: c.ID, Quantity: 1},
	}); err != nil {
		t.Fatalf("commit failed: %v", err)
	}

	ranking, err := sales.BestSelling(2)
	if err != nil {
		t.Fatalf("best-selling failed: %v", err)
	}
	if len(ranking) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(ranking))
	}
	if ranking[0].Name != "A" || ranking[1].Name != "B" {
		t.Errorf("expected A then B, got %+v", ranking)
	}
}
