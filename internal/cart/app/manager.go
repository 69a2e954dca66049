package app

import (
	"context"
	"log/slog"
	"sync"

	"github.com/dwikikusuma/shoply/internal/cart/domain"
)

const keyPrefix = "cart:"

// Manager hands out one Store per browsing session, hydrating each from
// durable storage on first touch.
type Manager struct {
	storage Storage
	log     *slog.Logger

	mu     sync.Mutex
	stores map[string]*Store
}

func NewManager(storage Storage, log *slog.Logger) *Manager {
	return &Manager{
		storage: storage,
		log:     log,
		stores:  make(map[string]*Store),
	}
}

// ForSession returns the session's store, creating and hydrating it if this
// is the first request of the session since process start.
func (m *Manager) ForSession(ctx context.Context, sessionID string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()

	if st, ok := m.stores[sessionID]; ok {
		return st
	}

	st := NewStore(ctx, m.storage, keyPrefix+sessionID, m.log)
	st.Subscribe(func(c domain.Cart) {
		m.log.Debug("cart changed",
			slog.String("session", sessionID),
			slog.Int("items", c.ItemCount()),
			slog.String("total", c.Total().String()))
	})
	m.stores[sessionID] = st
	return st
}
