package controllers

import (
	"net/http"

	"github.com/sundrymarket/storefront/api/responses"
	"github.com/sundrymarket/storefront/api/validators"
	prefssvc "github.com/sundrymarket/storefront/internal/prefs"
	"github.com/sundrymarket/storefront/pkg/enums"
	pkgerrors "github.com/sundrymarket/storefront/pkg/errors"
	"github.com/sundrymarket/storefront/pkg/logger"
)

// GetPrefs returns the stored storefront preferences.
func GetPrefs(svc prefssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.Get(r.Context()))
	}
}

type setLanguageRequest struct {
	Language string `json:"language" validate:"required"`
}

func SetLanguage(svc prefssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload setLanguageRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		lang, err := enums.ParseLanguage(payload.Language)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid language"))
			return
		}

		if err := svc.SetLanguage(r.Context(), lang); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, svc.Get(r.Context()))
	}
}

type setOrderPhoneRequest struct {
	Phone string `json:"phone" validate:"required,min=5,max=32"`
}

func SetOrderPhone(svc prefssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload setOrderPhoneRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.SetOrderPhone(r.Context(), payload.Phone); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, svc.Get(r.Context()))
	}
}
