package cart

import (
	"context"
	"fmt"
	"sync"

	"github.com/sundrymarket/storefront/pkg/errors"
	"github.com/sundrymarket/storefront/pkg/logger"
	"github.com/sundrymarket/storefront/pkg/metrics"
	"github.com/sundrymarket/storefront/pkg/storage"
)

const storageKeyPrefix = "cart:"

// Manager hands out session-scoped carts over a shared storage backend.
// Carts are hydrated once per session and cached for the process lifetime.
type Manager struct {
	mu      sync.Mutex
	store   storage.Store
	logg    *logger.Logger
	metrics *metrics.StorefrontMetrics
	sink    SignalSink
	carts   map[string]*Cart
}

// ManagerParams wires the manager dependencies.
type ManagerParams struct {
	Store   storage.Store
	Logger  *logger.Logger
	Metrics *metrics.StorefrontMetrics
	Sink    SignalSink
}

// NewManager builds a cart manager backed by the provided store.
func NewManager(params ManagerParams) (*Manager, error) {
	if params.Store == nil {
		return nil, fmt.Errorf("cart storage required")
	}
	return &Manager{
		store:   params.Store,
		logg:    params.Logger,
		metrics: params.Metrics,
		sink:    params.Sink,
		carts:   map[string]*Cart{},
	}, nil
}

// Get returns the cart for the session, hydrating it on first access.
func (m *Manager) Get(ctx context.Context, sessionID string) (*Cart, error) {
	if sessionID == "" {
		return nil, errors.New(errors.CodeValidation, "session id is required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if cart, ok := m.carts[sessionID]; ok {
		return cart, nil
	}
	cart, err := New(ctx, storageKeyPrefix+sessionID, m.store, Options{
		Logger:  m.logg,
		Metrics: m.metrics,
		Sink:    m.sink,
	})
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "build cart")
	}
	m.carts[sessionID] = cart
	return cart, nil
}
