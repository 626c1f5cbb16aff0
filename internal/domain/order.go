package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle state of an order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

const (
	DefaultShippingCountry = "USA"
	DefaultPaymentMethod   = "credit_card"
)

// OrderDetails is the address, gift, payment and totals snapshot shared by an
// order request and the stored order.
type OrderDetails struct {
	ShippingFirstName    string  `json:"shipping_first_name" validate:"required,max=100"`
	ShippingLastName     string  `json:"shipping_last_name" validate:"required,max=100"`
	ShippingAddressLine1 string  `json:"shipping_address_line1" validate:"required,max=200"`
	ShippingAddressLine2 *string `json:"shipping_address_line2" validate:"omitempty,max=200"`
	ShippingCity         string  `json:"shipping_city" validate:"required,max=100"`
	ShippingState        string  `json:"shipping_state" validate:"required,min=2,max=50"`
	ShippingZipCode      string  `json:"shipping_zip_code" validate:"required,min=5,max=20"`
	ShippingCountry      string  `json:"shipping_country" validate:"omitempty,max=50"`
	ShippingPhone        *string `json:"shipping_phone" validate:"omitempty,max=20"`

	BillingSameAsShipping bool    `json:"billing_same_as_shipping"`
	BillingFirstName      *string `json:"billing_first_name" validate:"omitempty,max=100"`
	BillingLastName       *string `json:"billing_last_name" validate:"omitempty,max=100"`
	BillingAddressLine1   *string `json:"billing_address_line1" validate:"omitempty,max=200"`
	BillingAddressLine2   *string `json:"billing_address_line2" validate:"omitempty,max=200"`
	BillingCity           *string `json:"billing_city" validate:"omitempty,max=100"`
	BillingState          *string `json:"billing_state" validate:"omitempty,max=50"`
	BillingZipCode        *string `json:"billing_zip_code" validate:"omitempty,max=20"`
	BillingCountry        *string `json:"billing_country" validate:"omitempty,max=50"`

	IsGift      bool    `json:"is_gift"`
	GiftMessage *string `json:"gift_message"`
	GiftWrap    bool    `json:"gift_wrap"`

	PaymentMethod string  `json:"payment_method" validate:"omitempty,max=20"`
	CardLastFour  *string `json:"card_last_four" validate:"omitempty,len=4,numeric"`
	CardBrand     *string `json:"card_brand" validate:"omitempty,max=20"`

	Subtotal       decimal.Decimal `json:"subtotal" validate:"gte=0"`
	DiscountAmount decimal.Decimal `json:"discount_amount" validate:"gte=0"`
	PromoCode      *string         `json:"promo_code" validate:"omitempty,max=50"`
	TaxAmount      decimal.Decimal `json:"tax_amount" validate:"gte=0"`
	ShippingAmount decimal.Decimal `json:"shipping_amount" validate:"gte=0"`
	TotalAmount    decimal.Decimal `json:"total_amount" validate:"gt=0"`
}

// Order is a placed order with its line items.
type Order struct {
	ID          int64       `json:"id"`
	UserID      *int64      `json:"user_id"`
	GuestEmail  *string     `json:"guest_email"`
	OrderNumber string      `json:"order_number"`
	Status      OrderStatus `json:"status"`
	OrderDetails
	Items     []OrderItem `json:"items"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// ItemsSubtotal sums the line item subtotals.
func (o *Order) ItemsSubtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range o.Items {
		sum = sum.Add(item.Subtotal)
	}
	return sum
}

// OrderItem is a line item. Name and price are frozen at purchase time.
type OrderItem struct {
	ID           int64           `json:"id"`
	OrderID      int64           `json:"order_id"`
	ProductID    int64           `json:"product_id"`
	ProductName  string          `json:"product_name"`
	ProductPrice decimal.Decimal `json:"product_price"`
	Quantity     int             `json:"quantity"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	CreatedAt    time.Time       `json:"created_at"`
}

// OrderInput is a request to place an order. Subtotal, tax and shipping must
// be stated even when zero; they shadow the embedded totals when decoding.
type OrderInput struct {
	GuestEmail *string `json:"guest_email" validate:"omitempty,email"`
	OrderDetails
	Subtotal       *decimal.Decimal `json:"subtotal" validate:"required,gte=0"`
	TaxAmount      *decimal.Decimal `json:"tax_amount" validate:"required,gte=0"`
	ShippingAmount *decimal.Decimal `json:"shipping_amount" validate:"required,gte=0"`
	Items          []OrderItemInput `json:"items" validate:"required,min=1,dive"`
}

// Details returns the order snapshot with the stated totals applied.
func (in OrderInput) Details() OrderDetails {
	d := in.OrderDetails
	if in.Subtotal != nil {
		d.Subtotal = *in.Subtotal
	}
	if in.TaxAmount != nil {
		d.TaxAmount = *in.TaxAmount
	}
	if in.ShippingAmount != nil {
		d.ShippingAmount = *in.ShippingAmount
	}
	return d
}

// NewOrderInput returns an input carrying the defaults absent fields fall back to.
func NewOrderInput() OrderInput {
	return OrderInput{
		OrderDetails: OrderDetails{
			ShippingCountry:       DefaultShippingCountry,
			BillingSameAsShipping: true,
			PaymentMethod:         DefaultPaymentMethod,
		},
	}
}

type OrderItemInput struct {
	ProductID    int64           `json:"product_id" validate:"required,gt=0"`
	ProductName  string          `json:"product_name" validate:"required,min=1"`
	ProductPrice decimal.Decimal `json:"product_price" validate:"gt=0"`
	Quantity     int             `json:"quantity" validate:"required,gt=0"`
	Subtotal     decimal.Decimal `json:"subtotal" validate:"gte=0"`
}
