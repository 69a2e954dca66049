package app

import (
	"context"

	"github.com/dwikikusuma/shoply/internal/catalog/domain"
)

// Reader is the remote catalog's read contract. Implementations issue
// exactly one outbound request per call; there is no caching or retry.
type Reader interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int) (domain.Product, error)
	ListCategories(ctx context.Context) ([]string, error)
	ListProductsByCategory(ctx context.Context, category string) ([]domain.Product, error)
}
