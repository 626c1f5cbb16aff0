package repository

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"voyager-gear/internal/domain"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/shopspring/decimal"
)

func seedCatalog(t *testing.T) {
	t.Helper()
	createTestProduct(t, "Carry-On Spinner", domain.CategoryLuggage, "249.99", 10)
	createTestProduct(t, "Checked Hardside", domain.CategoryLuggage, "329.00", 4)
	createTestProduct(t, "Weekender Duffel", domain.CategoryBags, "129.50", 7)
	createTestProduct(t, "Packing Cubes", domain.CategoryTravelAccessories, "34.99", 50)
	createTestProduct(t, "Laptop Sleeve 100%_Recycled", domain.CategoryDigitalNomad, "59.00", 12)
}

func TestProductRepository_FindByID(t *testing.T) {
	requireDB(t)
	repo := NewProductRepository(testDB)
	ctx := context.Background()

	created := createTestProduct(t, "Neck Pillow", domain.CategoryTravelAccessories, "24.95", 3)

	found, err := repo.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if found.Name != "Neck Pillow" || !found.Price.Equal(decimal.RequireFromString("24.95")) ||
		found.Category != domain.CategoryTravelAccessories || found.Stock != 3 {
		t.Errorf("unexpected product %+v", found)
	}

	if _, err := repo.FindByID(ctx, created.ID+100); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("FindByID() error = %v, want ErrProductNotFound", err)
	}
}

func TestProductRepository_ListFilters(t *testing.T) {
	requireDB(t)
	seedCatalog(t)
	repo := NewProductRepository(testDB)
	ctx := context.Background()

	luggage := domain.CategoryLuggage
	min := decimal.RequireFromString("50")
	max := decimal.RequireFromString("250")

	tests := []struct {
		name      string
		filter    ProductFilter
		wantTotal int
		wantFirst string
	}{
		{
			name:      "category",
			filter:    ProductFilter{Category: &luggage, SortBy: "price", SortOrder: SortOrderAsc},
			wantTotal: 2,
			wantFirst: "Carry-On Spinner",
		},
		{
			name:      "search is case insensitive over name and description",
			filter:    ProductFilter{Search: "FREQUENT", SortBy: "name", SortOrder: SortOrderAsc},
			wantTotal: 5,
			wantFirst: "Carry-On Spinner",
		},
		{
			name:      "search treats wildcards literally",
			filter:    ProductFilter{Search: "100%_"},
			wantTotal: 1,
			wantFirst: "Laptop Sleeve 100%_Recycled",
		},
		{
			name:      "underscore does not match any character",
			filter:    ProductFilter{Search: "Packing_Cubes"},
			wantTotal: 0,
		},
		{
			name:      "whitespace search is matched literally",
			filter:    ProductFilter{Search: "   "},
			wantTotal: 0,
		},
		{
			name:      "price range is inclusive",
			filter:    ProductFilter{MinPrice: &min, MaxPrice: &max, SortBy: "price", SortOrder: SortOrderDesc},
			wantTotal: 3,
			wantFirst: "Carry-On Spinner",
		},
		{
			name:      "unknown sort column falls back to created_at",
			filter:    ProductFilter{SortBy: "stock; DROP TABLE products", SortOrder: SortOrderDesc},
			wantTotal: 5,
			wantFirst: "Laptop Sleeve 100%_Recycled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.filter.Limit = 12
			products, total, err := repo.List(ctx, tt.filter)
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			if total != tt.wantTotal {
				t.Errorf("total = %d, want %d", total, tt.wantTotal)
			}
			if len(products) != tt.wantTotal {
				t.Errorf("len(products) = %d, want %d", len(products), tt.wantTotal)
			}
			if tt.wantFirst != "" && len(products) > 0 && products[0].Name != tt.wantFirst {
				t.Errorf("first product = %q, want %q", products[0].Name, tt.wantFirst)
			}
		})
	}
}

func TestProductRepository_PagePastEnd(t *testing.T) {
	requireDB(t)
	seedCatalog(t)
	repo := NewProductRepository(testDB)

	products, total, err := repo.List(context.Background(), ProductFilter{Limit: 12, Offset: 24})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if total != 5 || len(products) != 0 {
		t.Errorf("got %d products with total %d, want 0 with total 5", len(products), total)
	}

	products, total, err = repo.List(context.Background(), ProductFilter{Limit: 12, Offset: math.MaxInt})
	if err != nil {
		t.Fatalf("List() at the maximum offset error = %v", err)
	}
	if total != 5 || len(products) != 0 {
		t.Errorf("got %d products with total %d at the maximum offset, want 0 with total 5", len(products), total)
	}
}

// Feature: voyager-gear, Property 8: Pages partition the catalog
func TestProperty_PagesPartitionCatalog(t *testing.T) {
	requireDB(t)
	repo := NewProductRepository(testDB)
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		createTestProduct(t, fmt.Sprintf("Tag %02d", i), domain.CategoryTravelAccessories, "9.99", 1)
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 20
	properties := gopter.NewProperties(parameters)

	properties.Property("walking all pages yields every product exactly once", prop.ForAll(
		func(pageSize int) bool {
			seen := make(map[int64]bool)
			for offset := 0; ; offset += pageSize {
				products, total, err := repo.List(ctx, ProductFilter{SortBy: "price", Limit: pageSize, Offset: offset})
				if err != nil || total != 25 {
					return false
				}
				if len(products) == 0 {
					break
				}
				for _, p := range products {
					if seen[p.ID] {
						return false
					}
					seen[p.ID] = true
				}
			}
			return len(seen) == 25
		},
		gen.IntRange(1, 30),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestCategoryRepository_Summaries(t *testing.T) {
	requireDB(t)
	createTestProduct(t, "Duffel", domain.CategoryBags, "80.00", 1)
	createTestProduct(t, "Tote", domain.CategoryBags, "40.00", 1)
	createTestProduct(t, "Adapter", domain.CategoryTravelAccessories, "19.00", 1)

	summaries, err := NewCategoryRepository(testDB).Summaries(context.Background())
	if err != nil {
		t.Fatalf("Summaries() error = %v", err)
	}

	want := []domain.CategorySummary{
		{Category: domain.CategoryLuggage, ProductCount: 0},
		{Category: domain.CategoryBags, ProductCount: 2},
		{Category: domain.CategoryTravelAccessories, ProductCount: 1},
		{Category: domain.CategoryDigitalNomad, ProductCount: 0},
	}
	if len(summaries) != len(want) {
		t.Fatalf("got %d summaries, want %d", len(summaries), len(want))
	}
	for i := range want {
		if summaries[i] != want[i] {
			t.Errorf("summaries[%d] = %+v, want %+v", i, summaries[i], want[i])
		}
	}
}

func TestEscapeLike(t *testing.T) {
	tests := map[string]string{
		"plain":   "plain",
		"50%":     `50\%`,
		"a_b":     `a\_b`,
		`back\sl`: `back\\sl`,
	}
	for in, want := range tests {
		if got := escapeLike(in); got != want {
			t.Errorf("escapeLike(%q) = %q, want %q", in, got, want)
		}
	}
}
