package transport

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"

	"voyager-gear/internal/domain"
	"voyager-gear/internal/repository"
	"voyager-gear/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newProductRouter(catalog service.CatalogService) http.Handler {
	r := chi.NewRouter()
	NewProductHandler(catalog, zap.NewNop()).RegisterRoutes(r)
	return r
}

func TestListProducts_PassesQuery(t *testing.T) {
	catalog := &fakeCatalog{page: &service.ProductPage{
		Products:   []*domain.Product{{ID: 1, Name: "Carry-on", Price: decimal.RequireFromString("199.99"), Category: domain.CategoryLuggage}},
		Total:      25,
		Page:       3,
		PageSize:   12,
		TotalPages: 3,
	}}

	w := httptest.NewRecorder()
	newProductRouter(catalog).ServeHTTP(w, httptest.NewRequest(http.MethodGet,
		"/products?page=3&page_size=12&category=luggage&search=carry&min_price=10&max_price=500.50&sort_by=price&sort_order=asc", nil))
	require.Equal(t, http.StatusOK, w.Code)

	q := catalog.lastQuery
	assert.Equal(t, 3, q.Page)
	assert.Equal(t, 12, q.PageSize)
	require.NotNil(t, q.Category)
	assert.Equal(t, domain.CategoryLuggage, *q.Category)
	assert.Equal(t, "carry", q.Search)
	assert.True(t, q.MinPrice.Equal(decimal.NewFromInt(10)))
	assert.True(t, q.MaxPrice.Equal(decimal.RequireFromString("500.5")))
	assert.Equal(t, "price", q.SortBy)
	assert.Equal(t, "asc", q.SortOrder)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(3), body["total_pages"])
	assert.Equal(t, float64(12), body["page_size"])
	product := body["products"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "199.99", product["price"])
}

func TestParseProductQuery_Rejections(t *testing.T) {
	tests := map[string]string{
		"page=0":          "page",
		"page=abc":        "page",
		"page_size=0":     "page_size",
		"page_size=101":   "page_size",
		"min_price=-1":    "min_price",
		"max_price=cheap": "max_price",
	}
	for raw, field := range tests {
		t.Run(raw, func(t *testing.T) {
			values, err := url.ParseQuery(raw)
			require.NoError(t, err)
			_, problems := parseProductQuery(values)
			require.Len(t, problems, 1)
			assert.Equal(t, field, problems[0].Field)
		})
	}
}

func TestParseProductQuery_PassesUnknownCategoryAndHugePage(t *testing.T) {
	query, problems := parseProductQuery(url.Values{
		"category": {"shoes"},
		"page":     {strconv.Itoa(math.MaxInt)},
	})
	require.Empty(t, problems)
	require.NotNil(t, query.Category)
	assert.Equal(t, domain.ProductCategory("shoes"), *query.Category)
	assert.Equal(t, math.MaxInt, query.Page)
}

func TestListProducts_UnknownCategoryIsEmptyPage(t *testing.T) {
	catalog := &fakeCatalog{page: &service.ProductPage{Products: []*domain.Product{}, Page: 1, PageSize: 12, TotalPages: 1}}

	w := httptest.NewRecorder()
	newProductRouter(catalog).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products?category=shoes", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"products":[],"total":0,"page":1,"page_size":12,"total_pages":1}`, w.Body.String())

	require.NotNil(t, catalog.lastQuery.Category)
	assert.Equal(t, domain.ProductCategory("shoes"), *catalog.lastQuery.Category)
}

func TestParseProductQuery_DefaultsLeftToService(t *testing.T) {
	query, problems := parseProductQuery(url.Values{"sort_by": {"popularity"}, "sort_order": {"sideways"}})
	assert.Empty(t, problems)
	assert.Zero(t, query.Page)
	assert.Zero(t, query.PageSize)
	assert.Nil(t, query.Category)
	assert.Equal(t, "popularity", query.SortBy)
}

// Feature: voyager-gear, Property 19: Page size is accepted exactly within bounds
func TestProperty_PageSizeBounds(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("page_size in [1,100] parses, everything else is rejected", prop.ForAll(
		func(size int) bool {
			query, problems := parseProductQuery(url.Values{"page_size": {strconv.Itoa(size)}})
			if size >= 1 && size <= service.MaxPageSize {
				return len(problems) == 0 && query.PageSize == size
			}
			return len(problems) == 1 && problems[0].Field == "page_size"
		},
		gen.IntRange(-50, 200),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestGetProduct(t *testing.T) {
	catalog := &fakeCatalog{product: &domain.Product{ID: 7, Name: "Packing cubes", Price: decimal.RequireFromString("29.00")}}
	router := newProductRouter(catalog)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products/7", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"price":"29"`)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products/seven", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	catalog.err = repository.ErrProductNotFound
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products/8", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCategoriesRoute(t *testing.T) {
	catalog := &fakeCatalog{categories: []domain.CategorySummary{
		{Category: domain.CategoryLuggage, ProductCount: 3},
		{Category: domain.CategoryBags, ProductCount: 0},
	}}

	w := httptest.NewRecorder()
	newProductRouter(catalog).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products/categories", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body []domain.CategorySummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body, 2)
	assert.Equal(t, 3, body[0].ProductCount)
}
