package app

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/dwikikusuma/shoply/internal/cart/domain"
	"github.com/shopspring/decimal"
)

// Store is the single source of truth for one session's cart. Mutations are
// applied atomically under a lock, persisted to Storage, and then broadcast
// to subscribers. Mutators never fail: persistence trouble is logged and the
// in-memory state keeps the mutation.
type Store struct {
	storage Storage
	key     string
	log     *slog.Logger

	mu   sync.Mutex
	cart domain.Cart

	subMu   sync.Mutex
	subs    map[int]func(domain.Cart)
	nextSub int
}

// NewStore hydrates a store from durable storage. An absent key starts an
// empty cart; so does a load failure, which is logged and never surfaced.
func NewStore(ctx context.Context, storage Storage, key string, log *slog.Logger) *Store {
	s := &Store{
		storage: storage,
		key:     key,
		log:     log,
		subs:    make(map[int]func(domain.Cart)),
	}

	items, err := storage.Load(ctx, key)
	switch {
	case err == nil:
		s.cart = domain.Cart{Items: items}
	case errors.Is(err, ErrNotFound):
		// first visit, nothing to hydrate
	default:
		log.Warn("cart hydrate failed, starting empty",
			slog.String("key", key), slog.Any("err", err))
	}
	return s
}

// Subscribe registers fn to be called synchronously with a snapshot after
// every mutation. The returned function removes the registration.
func (s *Store) Subscribe(fn func(domain.Cart)) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

// Add appends the product as a quantity-1 line item, or bumps the quantity
// of the existing line. The captured product snapshot is never refreshed.
func (s *Store) Add(ctx context.Context, p domain.Product) {
	s.mutate(ctx, func(c *domain.Cart) { c.Add(p) })
}

// Remove drops the line item for productID; absent ids are a no-op.
func (s *Store) Remove(ctx context.Context, productID int) {
	s.mutate(ctx, func(c *domain.Cart) { c.Remove(productID) })
}

// SetQuantity replaces a line item's quantity. Values below 1 leave the
// cart unchanged; removal only happens through Remove.
func (s *Store) SetQuantity(ctx context.Context, productID, quantity int) {
	s.mutate(ctx, func(c *domain.Cart) { c.SetQuantity(productID, quantity) })
}

// Clear empties the cart.
func (s *Store) Clear(ctx context.Context) {
	s.mutate(ctx, func(c *domain.Cart) { c.Clear() })
}

// Snapshot returns a copy of the current cart.
func (s *Store) Snapshot() domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Clone()
}

// Items returns a copy of the line-item sequence in display order.
func (s *Store) Items() []domain.LineItem {
	return s.Snapshot().Items
}

// Total is the exact sum of price times quantity across the cart.
func (s *Store) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Total()
}

// ItemCount is the sum of quantities across all line items.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.ItemCount()
}

// mutate applies fn and persists under the lock so writes reach storage in
// mutation order, then notifies subscribers outside the lock.
func (s *Store) mutate(ctx context.Context, fn func(*domain.Cart)) {
	s.mu.Lock()
	fn(&s.cart)
	if err := s.storage.Save(ctx, s.key, s.cart.Items); err != nil {
		s.log.Error("cart persist failed",
			slog.String("key", s.key), slog.Any("err", err))
	}
	snapshot := s.cart.Clone()
	s.mu.Unlock()

	s.notify(snapshot)
}

func (s *Store) notify(snapshot domain.Cart) {
	s.subMu.Lock()
	fns := make([]func(domain.Cart), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(snapshot)
	}
}
