package controllers

import (
	"net/http"

	"github.com/sundrymarket/storefront/api/responses"
	contentsvc "github.com/sundrymarket/storefront/internal/content"
	"github.com/sundrymarket/storefront/pkg/logger"
)

// ContentBlocks returns the storefront's static content tiles.
func ContentBlocks(svc contentsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.Blocks(r.Context()))
	}
}
