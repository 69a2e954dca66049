package fakestore

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/dwikikusuma/shoply/internal/catalog/app"
	"github.com/dwikikusuma/shoply/internal/catalog/domain"
	"github.com/pkg/errors"
)

// Client reads the fakestore catalog API. Every method issues exactly one
// request; timeouts are whatever the injected http.Client carries.
type Client struct {
	base string
	http *http.Client
}

func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		base: baseURL,
		http: httpClient,
	}
}

func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.get(ctx, "/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) GetProduct(ctx context.Context, id int) (domain.Product, error) {
	var product domain.Product
	if err := c.get(ctx, fmt.Sprintf("/products/%d", id), &product); err != nil {
		return domain.Product{}, err
	}
	return product, nil
}

func (c *Client) ListCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.get(ctx, "/products/categories", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) ListProductsByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	var products []domain.Product
	path := "/products/category/" + url.PathEscape(category)
	if err := c.get(ctx, path, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return errors.Wrap(err, "build catalog request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(app.ErrUnavailable, "catalog request failed: %v", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return app.ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return errors.Wrapf(app.ErrUnavailable, "catalog returned %d for %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(app.ErrUnavailable, "decode catalog response: %v", err)
	}
	return nil
}
