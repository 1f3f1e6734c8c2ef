package repo

import (
	"errors"
	"testing"

	"github.com/rogerio-castellano/sales-tracker/internal/idgen"
	"github.com/rogerio-castellano/sales-tracker/internal/models"
	"github.com/shopspring/decimal"
)

func TestCreate_RetriesOnCodeCollision(t *testing.T) {
	codes := &idgen.Fixed{Codes: []string{"PROD-AAAA", "PROD-AAAA", "PROD-BBBB"}}
	products := NewInMemoryProductRepository(codes)

	first, err := products.Create(models.Product{Name: "First", SalePrice: decimal.RequireFromString("1.00")})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if first.ID != "PROD-AAAA" {
		t.Errorf("expected PROD-AAAA, got %q", first.ID)
	}

	second, err := products.Create(models.Product{Name: "Second", SalePrice: decimal.RequireFromString("1.00")})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if second.ID != "PROD-BBBB" {
		t.Errorf("expected collision retry to yield PROD-BBBB, got %q", second.ID)
	}
}

func TestCreate_CodeExhaustion(t *testing.T) {
	codes := &idgen.Fixed{Codes: []string{"PROD-AAAA"}}
	products := NewInMemoryProductRepository(codes)

	if _, err := products.Create(models.Product{Name: "First", SalePrice: decimal.Zero}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	_, err := products.Create(models.Product{Name: "Second", SalePrice: decimal.Zero})
	if !errors.Is(err, ErrCodeExhausted) {
		t.Errorf("expected ErrCodeExhausted, got %v", err)
	}
}

func TestCreate_DuplicateNameAfterNormalization(t *testing.T) {
	products := NewInMemoryProductRepository(idgen.NewProductCode())

	if _, err := products.Create(models.Product{Name: "Coffee Beans", SalePrice: decimal.Zero}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	_, err := products.Create(models.Product{Name: "  coffee beans ", SalePrice: decimal.Zero})
	if !errors.Is(err, ErrDuplicatedValueUnique) {
		t.Errorf("expected ErrDuplicatedValueUnique, got %v", err)
	}
}

func TestUpdate_PreservesPurchasePrice(t *testing.T) {
	products := NewInMemoryProductRepository(idgen.NewProductCode())

	created, err := products.Create(models.Product{
		Name:          "Lamp",
		PurchasePrice: decimal.RequireFromString("18.00"),
		SalePrice:     decimal.RequireFromString("30.00"),
		Quantity:      5,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := products.Update(models.Product{
		ID:            created.ID,
		Name:          "Lamp",
		PurchasePrice: decimal.RequireFromString("1.00"),
		SalePrice:     decimal.RequireFromString("35.00"),
		Quantity:      4,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if !updated.PurchasePrice.Equal(decimal.RequireFromString("18.00")) {
		t.Errorf("expected purchase price to be immutable at 18.00, got %v", updated.PurchasePrice)
	}
	if !updated.SalePrice.Equal(decimal.RequireFromString("35.00")) {
		t.Errorf("expected sale price 35.00, got %v", updated.SalePrice)
	}
}

func TestAdjustQuantity_Guarded(t *testing.T) {
	products := NewInMemoryProductRepository(idgen.NewProductCode())

	created, err := products.Create(models.Product{Name: "Mug", SalePrice: decimal.Zero, Quantity: 2})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := products.AdjustQuantity(created.ID, -3); !errors.Is(err, ErrInsufficientStock) {
		t.Errorf("expected ErrInsufficientStock, got %v", err)
	}

	after, err := products.AdjustQuantity(created.ID, -2)
	if err != nil {
		t.Fatalf("adjust failed: %v", err)
	}
	if after.Quantity != 0 {
		t.Errorf("expected quantity 0, got %d", after.Quantity)
	}
}
