package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"voyager-gear/internal/domain"
	"voyager-gear/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OrderService defines the interface for placing and reading orders
type OrderService interface {
	// CreateOrder places input for buyer, or as a guest order when buyer is nil.
	CreateOrder(ctx context.Context, input domain.OrderInput, buyer *domain.User) (*domain.Order, error)
	ListForUser(ctx context.Context, userID int64) ([]*domain.Order, error)
	GetForUser(ctx context.Context, orderID, userID int64) (*domain.Order, error)
	GetGuestOrder(ctx context.Context, orderID int64, email string) (*domain.Order, error)
}

// ProductInvalidator is notified after an order changed stock levels.
type ProductInvalidator interface {
	InvalidateProducts(ctx context.Context) error
}

type orderService struct {
	orders      repository.OrderRepository
	invalidator ProductInvalidator
	logger      *zap.Logger
	now         func() time.Time
}

// NewOrderService creates a new instance of OrderService. invalidator may be nil.
func NewOrderService(orders repository.OrderRepository, invalidator ProductInvalidator, logger *zap.Logger) OrderService {
	return &orderService{
		orders:      orders,
		invalidator: invalidator,
		logger:      logger,
		now:         time.Now,
	}
}

// NewOrderNumber returns ORD-<UTC timestamp to the second>-<6 hex digits>.
func NewOrderNumber(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	return "ORD-" + now.UTC().Format("20060102150405") + "-" + strings.ToUpper(suffix)
}

func (s *orderService) CreateOrder(ctx context.Context, input domain.OrderInput, buyer *domain.User) (*domain.Order, error) {
	order := &domain.Order{
		Status:       domain.OrderStatusPending,
		OrderDetails: input.Details(),
	}

	if buyer != nil {
		userID := buyer.ID
		order.UserID = &userID
	} else {
		if input.GuestEmail == nil || strings.TrimSpace(*input.GuestEmail) == "" {
			return nil, ErrMissingGuestEmail
		}
		email := strings.TrimSpace(*input.GuestEmail)
		order.GuestEmail = &email
	}

	if order.ShippingCountry == "" {
		order.ShippingCountry = domain.DefaultShippingCountry
	}
	if order.PaymentMethod == "" {
		order.PaymentMethod = domain.DefaultPaymentMethod
	}

	var (
		created *domain.Order
		err     error
	)
	// A colliding order number is regenerated once.
	for attempt := 0; attempt < 2; attempt++ {
		order.OrderNumber = NewOrderNumber(s.now())
		created, err = s.orders.Create(ctx, order, input.Items)
		if !errors.Is(err, repository.ErrDuplicateOrderNumber) {
			break
		}
		s.logger.Warn("Order number collision", zap.String("order_number", order.OrderNumber))
	}
	if err != nil {
		if isOrderRejection(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	fields := []zap.Field{
		zap.Int64("order_id", created.ID),
		zap.String("order_number", created.OrderNumber),
		zap.Int("items", len(created.Items)),
	}
	if buyer != nil {
		fields = append(fields, zap.Int64("user_id", buyer.ID))
	} else {
		fields = append(fields, zap.Bool("guest", true))
	}
	s.logger.Info("Order created", fields...)

	if s.invalidator != nil {
		if err := s.invalidator.InvalidateProducts(ctx); err != nil {
			s.logger.Warn("Failed to invalidate product cache", zap.Error(err))
		}
	}

	return created, nil
}

func isOrderRejection(err error) bool {
	return errors.Is(err, repository.ErrProductNotFound) ||
		errors.Is(err, repository.ErrInsufficientStock) ||
		errors.Is(err, repository.ErrDuplicateOrderNumber)
}

func (s *orderService) ListForUser(ctx context.Context, userID int64) ([]*domain.Order, error) {
	orders, err := s.orders.ListByUserWithItems(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	if orders == nil {
		orders = []*domain.Order{}
	}
	return orders, nil
}

func (s *orderService) GetForUser(ctx context.Context, orderID, userID int64) (*domain.Order, error) {
	return s.find(s.orders.FindByIDForUser(ctx, orderID, userID))
}

// GetGuestOrder only returns orders placed as a guest with exactly email.
func (s *orderService) GetGuestOrder(ctx context.Context, orderID int64, email string) (*domain.Order, error) {
	return s.find(s.orders.FindByIDForGuest(ctx, orderID, strings.TrimSpace(email)))
}

func (s *orderService) find(order *domain.Order, err error) (*domain.Order, error) {
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return order, nil
}
