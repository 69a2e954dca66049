package app

import (
	"errors"
	"testing"

	cartdomain "github.com/dwikikusuma/shoply/internal/cart/domain"
	"github.com/shopspring/decimal"
)

func TestCheckout(t *testing.T) {
	svc := NewService()

	t.Run("empty cart is rejected", func(t *testing.T) {
		_, err := svc.Checkout(cartdomain.Cart{})
		if !errors.Is(err, ErrEmptyCart) {
			t.Fatalf("expected ErrEmptyCart, got %v", err)
		}
	})

	t.Run("receipt mirrors the cart snapshot", func(t *testing.T) {
		var cart cartdomain.Cart
		cart.Add(cartdomain.Product{ID: 1, Title: "mug", Price: decimal.RequireFromString("19.99")})
		cart.SetQuantity(1, 3)
		cart.Add(cartdomain.Product{ID: 2, Title: "cap", Price: decimal.RequireFromString("5.50")})

		receipt, err := svc.Checkout(cart)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if receipt.Reference == "" {
			t.Fatal("missing order reference")
		}
		if len(receipt.Lines) != 2 {
			t.Fatalf("expected 2 lines, got %d", len(receipt.Lines))
		}
		if !receipt.Lines[0].LineTotal.Equal(decimal.RequireFromString("59.97")) {
			t.Fatalf("line total = %s, want 59.97", receipt.Lines[0].LineTotal)
		}
		if !receipt.Total.Equal(decimal.RequireFromString("65.47")) {
			t.Fatalf("total = %s, want 65.47", receipt.Total)
		}
		if receipt.PlacedAt.IsZero() {
			t.Fatal("missing placed-at time")
		}
	})
}
