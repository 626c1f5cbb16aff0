package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"voyager-gear/internal/domain"
	"voyager-gear/internal/repository"
)

// mockUserRepository is an in-memory UserRepository
type mockUserRepository struct {
	mu     sync.Mutex
	users  map[int64]*domain.User
	nextID int64
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{users: make(map[int64]*domain.User)}
}

func (m *mockUserRepository) Create(ctx context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.users {
		if existing.Username == user.Username {
			return repository.ErrDuplicateUsername
		}
		if existing.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	m.nextID++
	user.ID = m.nextID
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	stored := *user
	m.users[user.ID] = &stored
	return nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if user, ok := m.users[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, repository.ErrUserNotFound
}

func (m *mockUserRepository) find(match func(*domain.User) bool) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.users {
		if match(user) {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return m.find(func(u *domain.User) bool { return u.Username == username })
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return m.find(func(u *domain.User) bool { return u.Email == email })
}

func (m *mockUserRepository) FindByIdentifier(ctx context.Context, identifier string) (*domain.User, error) {
	return m.find(func(u *domain.User) bool { return u.Username == identifier || u.Email == identifier })
}

func (m *mockUserRepository) setActive(id int64, active bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[id].IsActive = active
}

// mockProductRepository is an in-memory ProductRepository
type mockProductRepository struct {
	mu        sync.Mutex
	products  map[int64]*domain.Product
	listCalls int
}

func newMockProductRepository(products ...*domain.Product) *mockProductRepository {
	m := &mockProductRepository{products: make(map[int64]*domain.Product)}
	for _, p := range products {
		m.products[p.ID] = p
	}
	return m
}

func (m *mockProductRepository) Create(ctx context.Context, product *domain.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	product.ID = int64(len(m.products) + 1)
	m.products[product.ID] = product
	return nil
}

func (m *mockProductRepository) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.products[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, repository.ErrProductNotFound
}

func (m *mockProductRepository) List(ctx context.Context, filter repository.ProductFilter) ([]*domain.Product, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listCalls++

	var matched []*domain.Product
	for _, p := range m.products {
		if filter.Category != nil && p.Category != *filter.Category {
			continue
		}
		if filter.Search != "" &&
			!strings.Contains(strings.ToLower(p.Name), strings.ToLower(filter.Search)) &&
			!strings.Contains(strings.ToLower(p.Description), strings.ToLower(filter.Search)) {
			continue
		}
		if filter.MinPrice != nil && p.Price.LessThan(*filter.MinPrice) {
			continue
		}
		if filter.MaxPrice != nil && p.Price.GreaterThan(*filter.MaxPrice) {
			continue
		}
		matched = append(matched, p)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	total := len(matched)
	if filter.Offset < 0 {
		return nil, 0, fmt.Errorf("OFFSET must not be negative: %d", filter.Offset)
	}
	if filter.Offset >= total {
		return []*domain.Product{}, total, nil
	}
	end := filter.Offset + filter.Limit
	if end > total {
		end = total
	}
	return matched[filter.Offset:end], total, nil
}

func (m *mockProductRepository) Count(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.products), nil
}

func (m *mockProductRepository) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listCalls
}

// mockCategoryRepository counts products per category from a product mock
type mockCategoryRepository struct {
	products *mockProductRepository
}

func (m *mockCategoryRepository) Summaries(ctx context.Context) ([]domain.CategorySummary, error) {
	m.products.mu.Lock()
	defer m.products.mu.Unlock()

	summaries := make([]domain.CategorySummary, 0, len(domain.Categories))
	for _, category := range domain.Categories {
		summary := domain.CategorySummary{Category: category}
		for _, p := range m.products.products {
			if p.Category == category {
				summary.ProductCount++
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// mockOrderRepository stores orders in memory and decrements stock of the
// products it was given, mirroring the transactional repository.
type mockOrderRepository struct {
	mu       sync.Mutex
	orders   map[int64]*domain.Order
	products *mockProductRepository
	// createErrs are returned by successive Create calls before any real insert.
	createErrs []error
	numbers    []string
}

func newMockOrderRepository(products *mockProductRepository) *mockOrderRepository {
	return &mockOrderRepository{orders: make(map[int64]*domain.Order), products: products}
}

func (m *mockOrderRepository) Create(ctx context.Context, order *domain.Order, items []domain.OrderItemInput) (*domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.numbers = append(m.numbers, order.OrderNumber)
	if len(m.createErrs) > 0 {
		err := m.createErrs[0]
		m.createErrs = m.createErrs[1:]
		return nil, err
	}

	m.products.mu.Lock()
	defer m.products.mu.Unlock()

	// All checks happen before any mutation so a rejection leaves stock untouched.
	requested := make(map[int64]int)
	for _, item := range items {
		product, ok := m.products.products[item.ProductID]
		if !ok {
			return nil, repository.ErrProductNotFound
		}
		requested[item.ProductID] += item.Quantity
		if product.Stock < requested[item.ProductID] {
			return nil, &repository.InsufficientStockError{
				ProductID:   product.ID,
				ProductName: product.Name,
				Requested:   item.Quantity,
				Available:   product.Stock - (requested[item.ProductID] - item.Quantity),
			}
		}
	}

	created := *order
	created.ID = int64(len(m.orders) + 1)
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	for i, item := range items {
		m.products.products[item.ProductID].Stock -= item.Quantity
		created.Items = append(created.Items, domain.OrderItem{
			ID:           int64(i + 1),
			OrderID:      created.ID,
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			ProductPrice: item.ProductPrice,
			Quantity:     item.Quantity,
			Subtotal:     item.Subtotal,
			CreatedAt:    created.CreatedAt,
		})
	}
	m.orders[created.ID] = &created
	result := created
	return &result, nil
}

func (m *mockOrderRepository) FindByIDForUser(ctx context.Context, id, userID int64) (*domain.Order, error) {
	return m.findWhere(func(o *domain.Order) bool {
		return o.ID == id && o.UserID != nil && *o.UserID == userID
	})
}

func (m *mockOrderRepository) FindByIDForGuest(ctx context.Context, id int64, email string) (*domain.Order, error) {
	return m.findWhere(func(o *domain.Order) bool {
		return o.ID == id && o.UserID == nil && o.GuestEmail != nil && *o.GuestEmail == email
	})
}

func (m *mockOrderRepository) findWhere(match func(*domain.Order) bool) (*domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range m.orders {
		if match(o) {
			copied := *o
			return &copied, nil
		}
	}
	return nil, repository.ErrOrderNotFound
}

func (m *mockOrderRepository) ListByUserWithItems(ctx context.Context, userID int64) ([]*domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var orders []*domain.Order
	for _, o := range m.orders {
		if o.UserID != nil && *o.UserID == userID {
			copied := *o
			orders = append(orders, &copied)
		}
	}
	// Newest first
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID > orders[j].ID })
	return orders, nil
}

// recordingInvalidator counts invalidations and can fail them.
type recordingInvalidator struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (r *recordingInvalidator) InvalidateProducts(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	return r.err
}
