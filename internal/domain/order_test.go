package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestOrder_ItemsSubtotal(t *testing.T) {
	order := &Order{
		Items: []OrderItem{
			{Quantity: 2, ProductPrice: decimal.RequireFromString("19.99"), Subtotal: decimal.RequireFromString("39.98")},
			{Quantity: 1, ProductPrice: decimal.RequireFromString("5.01"), Subtotal: decimal.RequireFromString("5.01")},
		},
	}

	want := decimal.RequireFromString("44.99")
	if got := order.ItemsSubtotal(); !got.Equal(want) {
		t.Errorf("ItemsSubtotal() = %s, want %s", got, want)
	}

	if got := (&Order{}).ItemsSubtotal(); !got.IsZero() {
		t.Errorf("empty order subtotal = %s, want 0", got)
	}
}

func TestNewOrderInput_DefaultsSurviveDecoding(t *testing.T) {
	input := NewOrderInput()
	if err := json.Unmarshal([]byte(`{"shipping_city":"Austin","subtotal":10,"total_amount":"12.50"}`), &input); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if input.ShippingCountry != DefaultShippingCountry {
		t.Errorf("ShippingCountry = %q, want %q", input.ShippingCountry, DefaultShippingCountry)
	}
	if !input.BillingSameAsShipping {
		t.Error("BillingSameAsShipping should default to true")
	}
	if input.PaymentMethod != DefaultPaymentMethod {
		t.Errorf("PaymentMethod = %q, want %q", input.PaymentMethod, DefaultPaymentMethod)
	}
	if input.ShippingCity != "Austin" {
		t.Errorf("ShippingCity = %q, want Austin", input.ShippingCity)
	}
	if !input.TotalAmount.Equal(decimal.RequireFromString("12.5")) {
		t.Errorf("TotalAmount = %s, want 12.50", input.TotalAmount)
	}
	if input.Subtotal == nil || !input.Details().Subtotal.Equal(decimal.NewFromInt(10)) {
		t.Errorf("Subtotal = %v, want 10 carried into Details()", input.Subtotal)
	}
	if input.TaxAmount != nil || input.ShippingAmount != nil {
		t.Error("absent totals should decode as nil")
	}
}

func TestOrderInput_DetailsKeepsEmbeddedTotalsWhenUnstated(t *testing.T) {
	input := NewOrderInput()
	input.OrderDetails.TaxAmount = decimal.RequireFromString("1.50")
	shipping := decimal.Zero
	input.ShippingAmount = &shipping

	d := input.Details()
	if !d.TaxAmount.Equal(decimal.RequireFromString("1.5")) {
		t.Errorf("TaxAmount = %s, want 1.50", d.TaxAmount)
	}
	if !d.ShippingAmount.IsZero() {
		t.Errorf("ShippingAmount = %s, want 0", d.ShippingAmount)
	}
}

func TestOrder_JSONIsFlat(t *testing.T) {
	email := "guest@example.com"
	order := Order{
		ID:          7,
		GuestEmail:  &email,
		OrderNumber: "ORD-20240101120000-abc123",
		Status:      OrderStatusPending,
		OrderDetails: OrderDetails{
			ShippingCity: "Denver",
			TotalAmount:  decimal.RequireFromString("42.00"),
		},
	}

	raw, err := json.Marshal(order)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var fields map[string]interface{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if fields["shipping_city"] != "Denver" {
		t.Errorf("shipping_city not promoted to top level: %v", fields)
	}
	if fields["total_amount"] != "42" {
		t.Errorf("total_amount = %v, want decimal string", fields["total_amount"])
	}
	if fields["user_id"] != nil {
		t.Errorf("user_id = %v, want null for guest order", fields["user_id"])
	}
}

func TestProductCategory_Valid(t *testing.T) {
	for _, c := range Categories {
		if !c.Valid() {
			t.Errorf("%s should be valid", c)
		}
	}
	if ProductCategory("furniture").Valid() {
		t.Error("furniture should not be a valid category")
	}
}
