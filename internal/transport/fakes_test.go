package transport

import (
	"context"
	"net/http"

	"voyager-gear/internal/domain"
	"voyager-gear/internal/middleware"
	"voyager-gear/internal/repository"
	"voyager-gear/internal/service"
)

type fakeAccounts struct {
	register func(ctx context.Context, username, email, password string) (*domain.User, error)
	login    func(ctx context.Context, identifier, password string) (*service.LoginResult, error)
	users    map[int64]*domain.User
}

func (f *fakeAccounts) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	return f.register(ctx, username, email, password)
}

func (f *fakeAccounts) Login(ctx context.Context, identifier, password string) (*service.LoginResult, error) {
	return f.login(ctx, identifier, password)
}

func (f *fakeAccounts) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return user, nil
}

type fakeCatalog struct {
	lastQuery  service.ProductQuery
	page       *service.ProductPage
	product    *domain.Product
	categories []domain.CategorySummary
	err        error
}

func (f *fakeCatalog) ListProducts(ctx context.Context, query service.ProductQuery) (*service.ProductPage, error) {
	f.lastQuery = query
	return f.page, f.err
}

func (f *fakeCatalog) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.product, nil
}

func (f *fakeCatalog) Categories(ctx context.Context) ([]domain.CategorySummary, error) {
	return f.categories, f.err
}

func (f *fakeCatalog) InvalidateProducts(ctx context.Context) error { return nil }

type fakeOrders struct {
	lastBuyer *domain.User
	lastInput domain.OrderInput
	lastEmail string
	order     *domain.Order
	orders    []*domain.Order
	err       error
}

func (f *fakeOrders) CreateOrder(ctx context.Context, input domain.OrderInput, buyer *domain.User) (*domain.Order, error) {
	f.lastInput = input
	f.lastBuyer = buyer
	if f.err != nil {
		return nil, f.err
	}
	return f.order, nil
}

func (f *fakeOrders) ListForUser(ctx context.Context, userID int64) ([]*domain.Order, error) {
	return f.orders, f.err
}

func (f *fakeOrders) GetForUser(ctx context.Context, orderID, userID int64) (*domain.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.order, nil
}

func (f *fakeOrders) GetGuestOrder(ctx context.Context, orderID int64, email string) (*domain.Order, error) {
	f.lastEmail = email
	if f.err != nil {
		return nil, f.err
	}
	return f.order, nil
}

// asUser stands in for AuthMiddleware with a fixed user.
func asUser(user *domain.User) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(middleware.WithUser(r.Context(), user)))
		})
	}
}

func passthrough(next http.Handler) http.Handler { return next }
