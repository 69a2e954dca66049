package app

import (
	"errors"
	"time"

	cartdomain "github.com/dwikikusuma/shoply/internal/cart/domain"
	"github.com/dwikikusuma/shoply/internal/checkout/domain"
	"github.com/google/uuid"
)

var ErrEmptyCart = errors.New("cart is empty")

// Service turns a cart snapshot into a checkout acknowledgment. Prices come
// from the snapshots captured when each item entered the cart, so no catalog
// round-trip happens here.
type Service struct {
	now func() time.Time
}

func NewService() *Service {
	return &Service{now: time.Now}
}

func (s *Service) Checkout(cart cartdomain.Cart) (domain.Receipt, error) {
	if len(cart.Items) == 0 {
		return domain.Receipt{}, ErrEmptyCart
	}

	lines := make([]domain.ReceiptLine, len(cart.Items))
	for i, item := range cart.Items {
		lines[i] = domain.ReceiptLine{
			ProductID: item.ID,
			Title:     item.Title,
			Quantity:  item.Quantity,
			UnitPrice: item.Price,
			LineTotal: item.Subtotal(),
		}
	}

	return domain.Receipt{
		Reference: uuid.NewString(),
		Lines:     lines,
		Total:     cart.Total(),
		PlacedAt:  s.now(),
	}, nil
}
