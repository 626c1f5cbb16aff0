package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"voyager-gear/internal/database"
	"voyager-gear/internal/domain"
)

// OrderRepository defines the interface for order data access
type OrderRepository interface {
	// Create stores order and its items, decrementing product stock, in a
	// single transaction. Nothing is written when any item fails.
	Create(ctx context.Context, order *domain.Order, items []domain.OrderItemInput) (*domain.Order, error)
	FindByIDForUser(ctx context.Context, id, userID int64) (*domain.Order, error)
	FindByIDForGuest(ctx context.Context, id int64, email string) (*domain.Order, error)
	// ListByUserWithItems returns the user's orders newest first.
	ListByUserWithItems(ctx context.Context, userID int64) ([]*domain.Order, error)
}

type orderRepository struct {
	db *sql.DB
}

// NewOrderRepository creates a new instance of OrderRepository
func NewOrderRepository(db *sql.DB) OrderRepository {
	return &orderRepository{db: db}
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

const orderColumns = `id, user_id, guest_email, order_number, status,
	shipping_first_name, shipping_last_name, shipping_address_line1, shipping_address_line2,
	shipping_city, shipping_state, shipping_zip_code, shipping_country, shipping_phone,
	billing_same_as_shipping, billing_first_name, billing_last_name, billing_address_line1,
	billing_address_line2, billing_city, billing_state, billing_zip_code, billing_country,
	is_gift, gift_message, gift_wrap,
	payment_method, card_last_four, card_brand,
	subtotal, discount_amount, promo_code, tax_amount, shipping_amount, total_amount,
	created_at, updated_at`

type lockedProduct struct {
	name  string
	stock int
}

func (r *orderRepository) Create(ctx context.Context, order *domain.Order, items []domain.OrderItemInput) (*domain.Order, error) {
	var created *domain.Order

	err := database.WithRetry(ctx, r.db, database.DefaultTxOptions(), func(tx *sql.Tx) error {
		products, err := lockProducts(ctx, tx, items)
		if err != nil {
			return err
		}

		orderID, err := insertOrder(ctx, tx, order)
		if err != nil {
			return err
		}

		for _, item := range items {
			product, ok := products[item.ProductID]
			if !ok {
				return fmt.Errorf("%w: id %d", ErrProductNotFound, item.ProductID)
			}
			if product.stock < item.Quantity {
				return &InsufficientStockError{
					ProductID:   item.ProductID,
					ProductName: product.name,
					Requested:   item.Quantity,
					Available:   product.stock,
				}
			}

			if err := insertOrderItem(ctx, tx, orderID, item); err != nil {
				return err
			}

			if err := decrementStock(ctx, tx, item, product); err != nil {
				return err
			}
			product.stock -= item.Quantity
		}

		created, err = findOrder(ctx, tx, "id = $1", orderID)
		if err != nil {
			return fmt.Errorf("failed to reload order: %w", err)
		}
		return attachItems(ctx, tx, []*domain.Order{created})
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// lockProducts takes row locks on every referenced product in id order so
// concurrent orders over the same products queue instead of deadlocking.
func lockProducts(ctx context.Context, tx *sql.Tx, items []domain.OrderItemInput) (map[int64]*lockedProduct, error) {
	seen := make(map[int64]bool, len(items))
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		if !seen[item.ProductID] {
			seen[item.ProductID] = true
			ids = append(ids, item.ProductID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	rows, err := tx.QueryContext(ctx, `
		SELECT id, name, stock
		FROM products
		WHERE id = ANY($1)
		ORDER BY id
		FOR UPDATE
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to lock products: %w", err)
	}
	defer rows.Close()

	products := make(map[int64]*lockedProduct, len(ids))
	for rows.Next() {
		var id int64
		p := &lockedProduct{}
		if err := rows.Scan(&id, &p.name, &p.stock); err != nil {
			return nil, fmt.Errorf("failed to scan locked product: %w", err)
		}
		products[id] = p
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating locked products: %w", err)
	}

	return products, nil
}

func insertOrder(ctx context.Context, tx *sql.Tx, order *domain.Order) (int64, error) {
	query := `
		INSERT INTO orders (
			user_id, guest_email, order_number, status,
			shipping_first_name, shipping_last_name, shipping_address_line1, shipping_address_line2,
			shipping_city, shipping_state, shipping_zip_code, shipping_country, shipping_phone,
			billing_same_as_shipping, billing_first_name, billing_last_name, billing_address_line1,
			billing_address_line2, billing_city, billing_state, billing_zip_code, billing_country,
			is_gift, gift_message, gift_wrap,
			payment_method, card_last_four, card_brand,
			subtotal, discount_amount, promo_code, tax_amount, shipping_amount, total_amount
		) VALUES (
			$1, $2, $3, $4,
			$5, $6, $7, $8,
			$9, $10, $11, $12, $13,
			$14, $15, $16, $17,
			$18, $19, $20, $21, $22,
			$23, $24, $25,
			$26, $27, $28,
			$29, $30, $31, $32, $33, $34
		)
		RETURNING id
	`

	d := order.OrderDetails
	var orderID int64
	err := tx.QueryRowContext(ctx, query,
		order.UserID, order.GuestEmail, order.OrderNumber, string(order.Status),
		d.ShippingFirstName, d.ShippingLastName, d.ShippingAddressLine1, d.ShippingAddressLine2,
		d.ShippingCity, d.ShippingState, d.ShippingZipCode, d.ShippingCountry, d.ShippingPhone,
		d.BillingSameAsShipping, d.BillingFirstName, d.BillingLastName, d.BillingAddressLine1,
		d.BillingAddressLine2, d.BillingCity, d.BillingState, d.BillingZipCode, d.BillingCountry,
		d.IsGift, d.GiftMessage, d.GiftWrap,
		d.PaymentMethod, d.CardLastFour, d.CardBrand,
		d.Subtotal, d.DiscountAmount, d.PromoCode, d.TaxAmount, d.ShippingAmount, d.TotalAmount,
	).Scan(&orderID)

	if err != nil {
		if constraint, ok := database.UniqueViolation(err); ok && constraint == "orders_order_number_key" {
			return 0, ErrDuplicateOrderNumber
		}
		return 0, fmt.Errorf("failed to create order: %w", err)
	}

	return orderID, nil
}

func insertOrderItem(ctx context.Context, tx *sql.Tx, orderID int64, item domain.OrderItemInput) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO order_items (order_id, product_id, product_name, product_price, quantity, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, orderID, item.ProductID, item.ProductName, item.ProductPrice, item.Quantity, item.Subtotal)
	if err != nil {
		return fmt.Errorf("failed to create order item: %w", err)
	}
	return nil
}

func decrementStock(ctx context.Context, tx *sql.Tx, item domain.OrderItemInput, product *lockedProduct) error {
	result, err := tx.ExecContext(ctx, `
		UPDATE products
		SET stock = stock - $1
		WHERE id = $2 AND stock >= $1
	`, item.Quantity, item.ProductID)
	if err != nil {
		return fmt.Errorf("failed to update stock: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return &InsufficientStockError{
			ProductID:   item.ProductID,
			ProductName: product.name,
			Requested:   item.Quantity,
			Available:   product.stock,
		}
	}

	return nil
}

func (r *orderRepository) FindByIDForUser(ctx context.Context, id, userID int64) (*domain.Order, error) {
	return r.findWithItems(ctx, "id = $1 AND user_id = $2", id, userID)
}

func (r *orderRepository) FindByIDForGuest(ctx context.Context, id int64, email string) (*domain.Order, error) {
	return r.findWithItems(ctx, "id = $1 AND guest_email = $2", id, email)
}

func (r *orderRepository) findWithItems(ctx context.Context, condition string, args ...any) (*domain.Order, error) {
	order, err := findOrder(ctx, r.db, condition, args...)
	if err != nil {
		return nil, err
	}

	if err := attachItems(ctx, r.db, []*domain.Order{order}); err != nil {
		return nil, err
	}

	return order, nil
}

func (r *orderRepository) ListByUserWithItems(ctx context.Context, userID int64) ([]*domain.Order, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`, orderColumns)

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	orders := []*domain.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}

	if err := attachItems(ctx, r.db, orders); err != nil {
		return nil, err
	}

	return orders, nil
}

func findOrder(ctx context.Context, q querier, condition string, args ...any) (*domain.Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM orders WHERE %s`, orderColumns, condition)

	order, err := scanOrder(q.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to find order: %w", err)
	}

	return order, nil
}

// attachItems loads the items of all orders with one query.
func attachItems(ctx context.Context, q querier, orders []*domain.Order) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]int64, len(orders))
	byID := make(map[int64]*domain.Order, len(orders))
	for i, order := range orders {
		ids[i] = order.ID
		order.Items = []domain.OrderItem{}
		byID[order.ID] = order
	}

	rows, err := q.QueryContext(ctx, `
		SELECT id, order_id, product_id, product_name, product_price, quantity, subtotal, created_at
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY order_id, id
	`, ids)
	if err != nil {
		return fmt.Errorf("failed to load order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.OrderItem
		err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.ProductID,
			&item.ProductName,
			&item.ProductPrice,
			&item.Quantity,
			&item.Subtotal,
			&item.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to scan order item: %w", err)
		}
		if order, ok := byID[item.OrderID]; ok {
			order.Items = append(order.Items, item)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating order items: %w", err)
	}

	return nil
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	o := &domain.Order{}
	d := &o.OrderDetails
	err := row.Scan(
		&o.ID, &o.UserID, &o.GuestEmail, &o.OrderNumber, &o.Status,
		&d.ShippingFirstName, &d.ShippingLastName, &d.ShippingAddressLine1, &d.ShippingAddressLine2,
		&d.ShippingCity, &d.ShippingState, &d.ShippingZipCode, &d.ShippingCountry, &d.ShippingPhone,
		&d.BillingSameAsShipping, &d.BillingFirstName, &d.BillingLastName, &d.BillingAddressLine1,
		&d.BillingAddressLine2, &d.BillingCity, &d.BillingState, &d.BillingZipCode, &d.BillingCountry,
		&d.IsGift, &d.GiftMessage, &d.GiftWrap,
		&d.PaymentMethod, &d.CardLastFour, &d.CardBrand,
		&d.Subtotal, &d.DiscountAmount, &d.PromoCode, &d.TaxAmount, &d.ShippingAmount, &d.TotalAmount,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return o, nil
}
