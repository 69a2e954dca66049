package fakestore

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dwikikusuma/shoply/internal/catalog/app"
	"github.com/shopspring/decimal"
)

const productsJSON = `[
  {"id":1,"title":"Backpack","price":109.95,"description":"Fits 15in laptops","category":"men's clothing","image":"https://img/1.jpg","rating":{"rate":3.9,"count":120}},
  {"id":2,"title":"T-Shirt","price":22.3,"description":"Slim fit","category":"men's clothing","image":"https://img/2.jpg"}
]`

func newTestServer(t *testing.T) (*httptest.Server, *Client) {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/products", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(productsJSON))
	})
	mux.HandleFunc("/products/1", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":1,"title":"Backpack","price":109.95,"description":"Fits 15in laptops","category":"men's clothing","image":"https://img/1.jpg","rating":{"rate":3.9,"count":120}}`))
	})
	mux.HandleFunc("/products/404", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	mux.HandleFunc("/products/500", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	mux.HandleFunc("/products/categories", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`["electronics","jewelery","men's clothing","women's clothing"]`))
	})
	mux.HandleFunc("/products/category/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products/category/men's clothing" {
			t.Errorf("unexpected category path %q", r.URL.Path)
		}
		w.Write([]byte(productsJSON))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, New(srv.URL, srv.Client())
}

func TestListProducts(t *testing.T) {
	_, client := newTestServer(t)

	products, err := client.ListProducts(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	if products[0].ID != 1 || products[1].ID != 2 {
		t.Fatalf("remote order not preserved: %+v", products)
	}
	if !products[0].Price.Equal(decimal.RequireFromString("109.95")) {
		t.Fatalf("price = %s, want 109.95", products[0].Price)
	}
	if products[0].Rating == nil || products[0].Rating.Count != 120 {
		t.Fatalf("rating not decoded: %+v", products[0].Rating)
	}
	if products[1].Rating != nil {
		t.Fatalf("absent rating should stay nil: %+v", products[1].Rating)
	}
}

func TestGetProduct(t *testing.T) {
	_, client := newTestServer(t)

	t.Run("found", func(t *testing.T) {
		p, err := client.GetProduct(context.Background(), 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Title != "Backpack" || p.Category != "men's clothing" {
			t.Fatalf("unexpected product: %+v", p)
		}
	})

	t.Run("404 -> ErrNotFound", func(t *testing.T) {
		_, err := client.GetProduct(context.Background(), 404)
		if !errors.Is(err, app.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("500 -> ErrUnavailable", func(t *testing.T) {
		_, err := client.GetProduct(context.Background(), 500)
		if !errors.Is(err, app.ErrUnavailable) {
			t.Fatalf("expected ErrUnavailable, got %v", err)
		}
	})
}

func TestListCategories(t *testing.T) {
	_, client := newTestServer(t)

	categories, err := client.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"electronics", "jewelery", "men's clothing", "women's clothing"}
	if len(categories) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(categories))
	}
	for i := range want {
		if categories[i] != want[i] {
			t.Fatalf("category %d = %q, want %q", i, categories[i], want[i])
		}
	}
}

func TestListProductsByCategory(t *testing.T) {
	_, client := newTestServer(t)

	products, err := client.ListProductsByCategory(context.Background(), "men's clothing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
}

func TestTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	client := New(srv.URL, srv.Client())
	srv.Close()

	_, err := client.ListProducts(context.Background())
	if !errors.Is(err, app.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable on transport failure, got %v", err)
	}
}
