package memory

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/dwikikusuma/shoply/internal/cart/app"
	"github.com/dwikikusuma/shoply/internal/cart/domain"
)

// Storage is the in-process fallback used when no Redis address is
// configured, and the test double for the cart store. It stores serialized
// bytes rather than live slices so loads exercise the same round-trip a
// durable backend would.
type Storage struct {
	mu    sync.RWMutex
	carts map[string][]byte
}

func New() *Storage {
	return &Storage{carts: make(map[string][]byte)}
}

func (s *Storage) Load(ctx context.Context, key string) ([]domain.LineItem, error) {
	s.mu.RLock()
	data, ok := s.carts[key]
	s.mu.RUnlock()

	if !ok {
		return nil, app.ErrNotFound
	}

	var items []domain.LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Storage) Save(ctx context.Context, key string, items []domain.LineItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.carts[key] = data
	s.mu.Unlock()
	return nil
}

func (s *Storage) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	delete(s.carts, key)
	s.mu.Unlock()
	return nil
}

// Put seeds raw bytes under key, bypassing serialization. Tests use it to
// simulate corrupt or hand-written payloads.
func (s *Storage) Put(key string, data []byte) {
	s.mu.Lock()
	s.carts[key] = append([]byte(nil), data...)
	s.mu.Unlock()
}
