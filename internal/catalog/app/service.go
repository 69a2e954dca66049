package app

import (
	"context"
	"errors"
	"strings"

	"github.com/dwikikusuma/shoply/internal/catalog/domain"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrUnavailable  = errors.New("catalog unavailable")
)

// Service fronts the remote catalog reader with input validation. Failures
// propagate to the caller, which owns the loading/error/empty presentation.
type Service struct {
	reader Reader
}

func NewService(reader Reader) *Service {
	return &Service{
		reader: reader,
	}
}

func (s *Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.reader.ListProducts(ctx)
}

func (s *Service) GetProduct(ctx context.Context, id int) (domain.Product, error) {
	if id <= 0 {
		return domain.Product{}, ErrInvalidInput
	}
	return s.reader.GetProduct(ctx, id)
}

func (s *Service) ListCategories(ctx context.Context) ([]string, error) {
	return s.reader.ListCategories(ctx)
}

func (s *Service) ListProductsByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, ErrInvalidInput
	}
	return s.reader.ListProductsByCategory(ctx, category)
}
