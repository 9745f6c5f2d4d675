package controllers

import (
	"net/http"

	"github.com/sundrymarket/storefront/api/responses"
	"github.com/sundrymarket/storefront/pkg/config"
	pkgerrors "github.com/sundrymarket/storefront/pkg/errors"
	"github.com/sundrymarket/storefront/pkg/logger"
	"github.com/sundrymarket/storefront/pkg/storage"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Storefront-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings the storage backend before declaring readiness.
func HealthReady(cfg *config.Config, store storage.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Storefront-Env", cfg.App.Env)

		if pinger, ok := store.(storage.Pinger); ok {
			if err := pinger.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "storage unavailable"))
				return
			}
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
