package app

import (
	"context"
	"errors"

	"github.com/dwikikusuma/shoply/internal/cart/domain"
)

// ErrNotFound is returned by Storage.Load when no cart exists under the key.
var ErrNotFound = errors.New("cart not found")

// Storage is the durable home of a serialized cart, keyed by session.
type Storage interface {
	Load(ctx context.Context, key string) ([]domain.LineItem, error)
	Save(ctx context.Context, key string, items []domain.LineItem) error
	Delete(ctx context.Context, key string) error
}
