package controllers

import (
	"net/http"
	"strings"

	"github.com/sundrymarket/storefront/api/responses"
	"github.com/sundrymarket/storefront/api/validators"
	catalogsvc "github.com/sundrymarket/storefront/internal/catalog"
	"github.com/sundrymarket/storefront/pkg/enums"
	pkgerrors "github.com/sundrymarket/storefront/pkg/errors"
	"github.com/sundrymarket/storefront/pkg/logger"
	"github.com/sundrymarket/storefront/pkg/pagination"
)

// BrowseProducts serves the paged catalog browse surface.
func BrowseProducts(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		cfg, err := filterConfigFromQuery(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		page, err := validators.ParseQueryInt(r, "page", 1, 1, 1<<30)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		perPage, err := validators.ParseQueryInt(r, "per_page", 0, 1, pagination.MaxPerPage)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.ListPage(r.Context(), *cfg, page, perPage)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// ProductFeed serves the lazy-reveal browse surface. The loaded parameter is
// the client's current visible count; the response grows it by whole batches.
func ProductFeed(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		cfg, err := filterConfigFromQuery(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		loaded, err := validators.ParseQueryInt(r, "loaded", 0, 0, 1<<30)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Feed(r.Context(), *cfg, loaded)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// ListCategories returns the active categories in display order.
func ListCategories(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}
		responses.WriteSuccess(w, svc.Categories(r.Context()))
	}
}

func filterConfigFromQuery(r *http.Request) (*catalogsvc.FilterConfig, error) {
	query := r.URL.Query()

	cfg := catalogsvc.FilterConfig{
		Search:     strings.TrimSpace(query.Get("q")),
		CategoryID: strings.TrimSpace(query.Get("category")),
		Size:       strings.TrimSpace(query.Get("size")),
	}

	var err error
	if cfg.DiscountOnly, err = validators.ParseQueryBool(r, "discount_only"); err != nil {
		return nil, err
	}
	if cfg.NewOnly, err = validators.ParseQueryBool(r, "new_only"); err != nil {
		return nil, err
	}
	if cfg.PriceMin, err = validators.ParseQueryInt64Ptr(r, "price_min"); err != nil {
		return nil, err
	}
	if cfg.PriceMax, err = validators.ParseQueryInt64Ptr(r, "price_max"); err != nil {
		return nil, err
	}
	if cfg.DiscountMin, err = validators.ParseQueryIntPtr(r, "discount_min"); err != nil {
		return nil, err
	}
	if cfg.DiscountMax, err = validators.ParseQueryIntPtr(r, "discount_max"); err != nil {
		return nil, err
	}
	if cfg.RatingMin, err = validators.ParseQueryFloatPtr(r, "rating_min"); err != nil {
		return nil, err
	}

	if raw := strings.TrimSpace(query.Get("stock")); raw != "" {
		bucket, err := enums.ParseStockBucket(raw)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid stock filter")
		}
		cfg.StockBucket = bucket
	}

	sortKey, err := enums.ParseSortKey(strings.TrimSpace(query.Get("sort")))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid sort key")
	}
	cfg.SortKey = sortKey

	return &cfg, nil
}
