package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"voyager-gear/internal/cache"
	"voyager-gear/internal/domain"
	"voyager-gear/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	DefaultPageSize = 12
	MaxPageSize     = 100
)

// ProductQuery is a catalog listing request. Zero values mean "no filter".
type ProductQuery struct {
	Category  *domain.ProductCategory
	Search    string
	MinPrice  *decimal.Decimal
	MaxPrice  *decimal.Decimal
	SortBy    string
	SortOrder string
	Page      int
	PageSize  int
}

// ProductPage is one page of a catalog listing.
type ProductPage struct {
	Products   []*domain.Product `json:"products"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
}

// CatalogService defines the read side of the product catalog
type CatalogService interface {
	ListProducts(ctx context.Context, query ProductQuery) (*ProductPage, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	Categories(ctx context.Context) ([]domain.CategorySummary, error)
	// InvalidateProducts drops cached catalog reads after stock changes.
	InvalidateProducts(ctx context.Context) error
}

type catalogService struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	cache      *cache.Cache
	logger     *zap.Logger
}

// NewCatalogService creates a new instance of CatalogService. A nil cache
// serves every read from the repositories.
func NewCatalogService(
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	c *cache.Cache,
	logger *zap.Logger,
) CatalogService {
	return &catalogService{
		products:   products,
		categories: categories,
		cache:      c,
		logger:     logger,
	}
}

// Normalize fills in the default page and clamps the page size.
func (q ProductQuery) Normalize() ProductQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}
	if q.PageSize > MaxPageSize {
		q.PageSize = MaxPageSize
	}
	return q
}

func (q ProductQuery) filter() repository.ProductFilter {
	return repository.ProductFilter{
		Category:  q.Category,
		Search:    q.Search,
		MinPrice:  q.MinPrice,
		MaxPrice:  q.MaxPrice,
		SortBy:    q.SortBy,
		SortOrder: repository.ParseSortOrder(q.SortOrder),
		Limit:     q.PageSize,
		Offset:    q.offset(),
	}
}

// offset saturates at math.MaxInt so a huge page reads past the end
// instead of wrapping negative.
func (q ProductQuery) offset() int {
	if q.Page-1 > math.MaxInt/q.PageSize {
		return math.MaxInt
	}
	return (q.Page - 1) * q.PageSize
}

// cacheKey is stable for equal queries.
func (q ProductQuery) cacheKey() string {
	var b strings.Builder
	b.WriteString("products:")
	if q.Category != nil {
		b.WriteString("c=" + string(*q.Category) + ";")
	}
	if q.Search != "" {
		b.WriteString("q=" + strconv.Quote(strings.ToLower(q.Search)) + ";")
	}
	if q.MinPrice != nil {
		b.WriteString("min=" + q.MinPrice.String() + ";")
	}
	if q.MaxPrice != nil {
		b.WriteString("max=" + q.MaxPrice.String() + ";")
	}
	b.WriteString("s=" + q.SortBy + ":" + string(repository.ParseSortOrder(q.SortOrder)) + ";")
	b.WriteString("p=" + strconv.Itoa(q.Page) + ";n=" + strconv.Itoa(q.PageSize))
	return b.String()
}

// TotalPages is the number of pages needed for total items, never less than one.
func TotalPages(total, pageSize int) int {
	if pageSize < 1 || total <= 0 {
		return 1
	}
	return (total + pageSize - 1) / pageSize
}

func (s *catalogService) ListProducts(ctx context.Context, query ProductQuery) (*ProductPage, error) {
	query = query.Normalize()

	// No stored product carries an unknown category.
	if query.Category != nil && !query.Category.Valid() {
		return &ProductPage{
			Products:   []*domain.Product{},
			Page:       query.Page,
			PageSize:   query.PageSize,
			TotalPages: 1,
		}, nil
	}

	load := func(ctx context.Context) (interface{}, error) {
		products, total, err := s.products.List(ctx, query.filter())
		if err != nil {
			return nil, fmt.Errorf("failed to list products: %w", err)
		}
		if products == nil {
			products = []*domain.Product{}
		}
		return &ProductPage{
			Products:   products,
			Total:      total,
			Page:       query.Page,
			PageSize:   query.PageSize,
			TotalPages: TotalPages(total, query.PageSize),
		}, nil
	}

	if s.cache == nil {
		v, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return v.(*ProductPage), nil
	}

	var page ProductPage
	if err := s.cache.GetOrLoad(ctx, query.cacheKey(), &page, load, s.cacheError); err != nil {
		return nil, err
	}
	return &page, nil
}

func (s *catalogService) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	load := func(ctx context.Context) (interface{}, error) {
		product, err := s.products.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return nil, err
			}
			return nil, fmt.Errorf("failed to get product: %w", err)
		}
		return product, nil
	}

	if s.cache == nil {
		v, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return v.(*domain.Product), nil
	}

	var product domain.Product
	if err := s.cache.GetOrLoad(ctx, "product:"+strconv.FormatInt(id, 10), &product, load, s.cacheError); err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *catalogService) Categories(ctx context.Context) ([]domain.CategorySummary, error) {
	load := func(ctx context.Context) (interface{}, error) {
		summaries, err := s.categories.Summaries(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to summarize categories: %w", err)
		}
		return summaries, nil
	}

	if s.cache == nil {
		v, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return v.([]domain.CategorySummary), nil
	}

	var summaries []domain.CategorySummary
	if err := s.cache.GetOrLoad(ctx, "products:categories", &summaries, load, s.cacheError); err != nil {
		return nil, err
	}
	return summaries, nil
}

func (s *catalogService) InvalidateProducts(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.DeletePattern(ctx, "product*")
}

func (s *catalogService) cacheError(err error) {
	s.logger.Warn("Catalog cache unavailable", zap.Error(err))
}
