package catalog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sundrymarket/storefront/pkg/errors"
	"github.com/sundrymarket/storefront/pkg/logger"
	"github.com/sundrymarket/storefront/pkg/metrics"
	"github.com/sundrymarket/storefront/pkg/pagination"
	"github.com/sundrymarket/storefront/pkg/reveal"
)

// Service exposes catalog browse operations over the latest feed snapshot.
type Service interface {
	Refresh(ctx context.Context) error
	Categories(ctx context.Context) []Category
	ListPage(ctx context.Context, cfg FilterConfig, page, perPage int) (*PageResult, error)
	Feed(ctx context.Context, cfg FilterConfig, loaded int) (*FeedResult, error)
	Product(ctx context.Context, id string) (*DisplayProduct, error)
}

// ServiceParams wires the catalog service dependencies.
type ServiceParams struct {
	Source       Source
	Logger       *logger.Logger
	Metrics      *metrics.StorefrontMetrics
	ItemsPerPage int
	InitialBatch int
	BatchSize    int
}

type service struct {
	mu           sync.RWMutex
	snap         Snapshot
	source       Source
	logg         *logger.Logger
	metrics      *metrics.StorefrontMetrics
	itemsPerPage int
	initialBatch int
	batchSize    int
}

// NewService builds a catalog service backed by the provided source.
func NewService(params ServiceParams) (Service, error) {
	if params.Source == nil {
		return nil, fmt.Errorf("catalog source required")
	}
	if params.ItemsPerPage <= 0 {
		params.ItemsPerPage = pagination.DefaultPerPage
	}
	if params.InitialBatch <= 0 {
		params.InitialBatch = reveal.DefaultBatch
	}
	if params.BatchSize <= 0 {
		params.BatchSize = reveal.DefaultBatch
	}
	return &service{
		source:       params.Source,
		logg:         params.Logger,
		metrics:      params.Metrics,
		itemsPerPage: params.ItemsPerPage,
		initialBatch: params.InitialBatch,
		batchSize:    params.BatchSize,
	}, nil
}

// Refresh replaces the held snapshot with a fresh load from the source.
func (s *service) Refresh(ctx context.Context) error {
	snap, err := s.source.Load(ctx)
	if err != nil {
		return errors.Wrap(errors.CodeDependency, err, "load catalog feed")
	}

	s.mu.Lock()
	s.snap = *snap
	s.mu.Unlock()

	if s.logg != nil {
		ctx = s.logg.WithFields(ctx, map[string]any{
			"products":   len(snap.Products),
			"categories": len(snap.Categories),
		})
		s.logg.Info(ctx, "catalog.refreshed")
	}
	return nil
}

// Categories returns the active categories in display order.
func (s *service) Categories(ctx context.Context) []Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ActiveCategories(s.snap.Categories)
}

// ListPage projects the snapshot through the filter pipeline and returns the
// requested page. Out-of-range pages clamp instead of failing.
func (s *service) ListPage(ctx context.Context, cfg FilterConfig, page, perPage int) (*PageResult, error) {
	if perPage <= 0 {
		perPage = s.itemsPerPage
	}
	items := s.project(cfg)

	pager := pagination.NewPager(items, perPage)
	pager.GoToPage(page)

	return &PageResult{
		Items:       pager.PageItems(),
		Page:        pager.CurrentPage(),
		TotalPages:  pager.TotalPages(),
		TotalItems:  pager.TotalItems(),
		StartIndex:  pager.StartIndex(),
		EndIndex:    pager.EndIndex(),
		HasNextPage: pager.HasNextPage(),
		HasPrevPage: pager.HasPrevPage(),
	}, nil
}

// Feed projects the snapshot and returns a visible prefix at least as long as
// the caller's already-loaded count, grown batch by batch.
func (s *service) Feed(ctx context.Context, cfg FilterConfig, loaded int) (*FeedResult, error) {
	items := s.project(cfg)

	feed := reveal.NewFeed(items, reveal.Options{
		InitialBatch: s.initialBatch,
		BatchSize:    s.batchSize,
	})
	for feed.LoadedCount() < loaded && feed.LoadMore() {
	}

	return &FeedResult{
		Items:       feed.VisibleItems(),
		LoadedCount: feed.LoadedCount(),
		TotalItems:  len(items),
		HasMore:     feed.HasMore(),
	}, nil
}

// Product resolves a single sellable product by ID. Products outside the
// active projection (hidden, unknown) are not found.
func (s *service) Product(ctx context.Context, id string) (*DisplayProduct, error) {
	if id == "" {
		return nil, errors.New(errors.CodeValidation, "product id is required")
	}

	for _, item := range s.project(FilterConfig{}) {
		if item.ID == id {
			found := item
			return &found, nil
		}
	}
	return nil, errors.New(errors.CodeNotFound, "product not found")
}

func (s *service) project(cfg FilterConfig) []DisplayProduct {
	s.mu.RLock()
	products := s.snap.Products
	categories := s.snap.Categories
	s.mu.RUnlock()

	start := time.Now()
	items := Project(products, categories, cfg)
	s.metrics.ObserveProjection(cfg.SortKey.String(), time.Since(start), len(items))
	return items
}
