package prefs

import (
	"context"
	"fmt"
	"sync"

	"github.com/sundrymarket/storefront/pkg/enums"
	pkgerrors "github.com/sundrymarket/storefront/pkg/errors"
	"github.com/sundrymarket/storefront/pkg/logger"
	"github.com/sundrymarket/storefront/pkg/storage"
)

const (
	languageKey   = "prefs:language"
	orderPhoneKey = "prefs:order_phone"
)

// Snapshot is the current set of stored preferences.
type Snapshot struct {
	Language   enums.Language `json:"language"`
	OrderPhone string         `json:"order_phone"`
}

// Listener receives a snapshot after every successful change.
type Listener func(Snapshot)

// Service manages storefront preferences with write-through persistence.
type Service interface {
	Get(ctx context.Context) Snapshot
	SetLanguage(ctx context.Context, lang enums.Language) error
	SetOrderPhone(ctx context.Context, phone string) error
	Subscribe(fn Listener) (cancel func())
}

type ServiceParams struct {
	Store  storage.Store
	Logger *logger.Logger
}

type service struct {
	store storage.Store
	logg  *logger.Logger

	mu        sync.RWMutex
	snapshot  Snapshot
	listeners map[int]Listener
	nextID    int
}

// NewService hydrates stored preferences; unreadable values fall back to
// defaults rather than failing startup.
func NewService(ctx context.Context, params ServiceParams) (Service, error) {
	if params.Store == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "prefs store is required")
	}
	if params.Logger == nil {
		params.Logger = logger.New(logger.Options{})
	}

	s := &service{
		store:     params.Store,
		logg:      params.Logger,
		snapshot:  Snapshot{Language: enums.DefaultLanguage},
		listeners: map[int]Listener{},
	}
	s.hydrate(ctx)
	return s, nil
}

func (s *service) hydrate(ctx context.Context) {
	if raw, ok, err := s.store.Load(ctx, languageKey); err != nil {
		s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "prefs: load language failed, using default")
	} else if ok {
		if lang := enums.Language(raw); lang.IsValid() {
			s.snapshot.Language = lang
		} else {
			s.logg.Warn(s.logg.WithField(ctx, "language", string(raw)), "prefs: stored language is not supported, using default")
		}
	}

	if raw, ok, err := s.store.Load(ctx, orderPhoneKey); err != nil {
		s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "prefs: load order phone failed")
	} else if ok {
		s.snapshot.OrderPhone = string(raw)
	}
}

func (s *service) Get(_ context.Context) Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

func (s *service) SetLanguage(ctx context.Context, lang enums.Language) error {
	if !lang.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unsupported language %q", string(lang)))
	}

	s.mu.Lock()
	s.snapshot.Language = lang
	snapshot := s.snapshot
	s.mu.Unlock()

	if err := s.store.Save(ctx, languageKey, []byte(lang)); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist language")
	}
	s.notify(snapshot)
	return nil
}

func (s *service) SetOrderPhone(ctx context.Context, phone string) error {
	s.mu.Lock()
	s.snapshot.OrderPhone = phone
	snapshot := s.snapshot
	s.mu.Unlock()

	if err := s.store.Save(ctx, orderPhoneKey, []byte(phone)); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist order phone")
	}
	s.notify(snapshot)
	return nil
}

// Subscribe registers a change listener. The returned cancel func removes it.
func (s *service) Subscribe(fn Listener) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

func (s *service) notify(snapshot Snapshot) {
	s.mu.RLock()
	fns := make([]Listener, 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.RUnlock()

	for _, fn := range fns {
		fn(snapshot)
	}
}
