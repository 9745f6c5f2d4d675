package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sundrymarket/storefront/api/middleware"
	"github.com/sundrymarket/storefront/api/responses"
	"github.com/sundrymarket/storefront/api/validators"
	cartsvc "github.com/sundrymarket/storefront/internal/cart"
	catalogsvc "github.com/sundrymarket/storefront/internal/catalog"
	pkgerrors "github.com/sundrymarket/storefront/pkg/errors"
	"github.com/sundrymarket/storefront/pkg/logger"
	"github.com/sundrymarket/storefront/pkg/types"
)

type cartView struct {
	Lines      []cartsvc.Line `json:"lines"`
	TotalItems int            `json:"total_items"`
	TotalPrice int64          `json:"total_price"`
	Signal     *types.Signal  `json:"signal,omitempty"`
}

func viewOf(c *cartsvc.Cart, signal *types.Signal) cartView {
	return cartView{
		Lines:      c.Lines(),
		TotalItems: c.TotalItems(),
		TotalPrice: c.TotalPrice(),
		Signal:     signal,
	}
}

func resolveCart(r *http.Request, carts *cartsvc.Manager) (*cartsvc.Cart, error) {
	sessionID := middleware.SessionID(r.Context())
	if sessionID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "X-Session-Id header is required")
	}
	return carts.Get(r.Context(), sessionID)
}

// GetCart returns the current cart for the caller's session.
func GetCart(carts *cartsvc.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cart, err := resolveCart(r, carts)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, viewOf(cart, nil))
	}
}

type addCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// AddCartItem adds one unit of a product, resolving the price and stock
// snapshot from the catalog. A rejected add still answers 200: the outcome
// travels in the signal, not the status code.
func AddCartItem(carts *cartsvc.Manager, catalog catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cart, err := resolveCart(r, carts)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload addCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := catalog.Product(r.Context(), payload.ProductID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := cartsvc.AddItemInput{
			ProductID:    product.ID,
			Title:        product.Name,
			UnitPrice:    product.EffectivePrice,
			ImageURL:     product.Image,
			StockCeiling: product.Stock,
		}
		if product.OriginalPrice != product.EffectivePrice {
			original := product.OriginalPrice
			input.OriginalUnitPrice = &original
		}

		signal := cart.Add(r.Context(), input)
		responses.WriteSuccess(w, viewOf(cart, &signal))
	}
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateCartItem sets a line's quantity. Zero or below removes the line.
func UpdateCartItem(carts *cartsvc.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cart, err := resolveCart(r, carts)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		productID := chi.URLParam(r, "productID")
		if productID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "product id is required"))
			return
		}

		var payload updateCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		signal := cart.UpdateQuantity(r.Context(), productID, payload.Quantity)
		responses.WriteSuccess(w, viewOf(cart, &signal))
	}
}

// RemoveCartItem deletes a line. Removing an absent line is not an error.
func RemoveCartItem(carts *cartsvc.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cart, err := resolveCart(r, carts)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		productID := chi.URLParam(r, "productID")
		if productID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "product id is required"))
			return
		}

		signal := cart.Remove(r.Context(), productID)
		responses.WriteSuccess(w, viewOf(cart, &signal))
	}
}

// ClearCart empties the caller's cart.
func ClearCart(carts *cartsvc.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cart, err := resolveCart(r, carts)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		signal := cart.Clear(r.Context())
		responses.WriteSuccess(w, viewOf(cart, &signal))
	}
}
