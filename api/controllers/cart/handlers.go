package cart

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pawpantry/storefront-backend/api/middleware"
	"github.com/pawpantry/storefront-backend/api/responses"
	"github.com/pawpantry/storefront-backend/api/validators"
	cartsvc "github.com/pawpantry/storefront-backend/internal/cart"
	pkgerrors "github.com/pawpantry/storefront-backend/pkg/errors"
	"github.com/pawpantry/storefront-backend/pkg/logger"
)

// CartFetch returns the caller's cart.
func CartFetch(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return handle(svc, logg, func(ctx context.Context, r *http.Request, cartID string) (*cartsvc.View, error) {
		return svc.View(ctx, cartID)
	})
}

// CartAddItem adds one unit of a catalog product.
func CartAddItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return handle(svc, logg, func(ctx context.Context, r *http.Request, cartID string) (*cartsvc.View, error) {
		var payload addItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			return nil, err
		}
		return svc.Add(ctx, cartID, payload.ProductID)
	})
}

// CartSetQuantity overwrites an entry's count; zero or less removes it.
func CartSetQuantity(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return handleItem(svc, logg, func(ctx context.Context, r *http.Request, cartID string, productID int) (*cartsvc.View, error) {
		var payload setQuantityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			return nil, err
		}
		return svc.SetQuantity(ctx, cartID, productID, *payload.Quantity)
	})
}

func CartIncrement(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return handleItem(svc, logg, func(ctx context.Context, _ *http.Request, cartID string, productID int) (*cartsvc.View, error) {
		return svc.Increment(ctx, cartID, productID)
	})
}

func CartDecrement(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return handleItem(svc, logg, func(ctx context.Context, _ *http.Request, cartID string, productID int) (*cartsvc.View, error) {
		return svc.Decrement(ctx, cartID, productID)
	})
}

func CartRemoveItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return handleItem(svc, logg, func(ctx context.Context, _ *http.Request, cartID string, productID int) (*cartsvc.View, error) {
		return svc.Remove(ctx, cartID, productID)
	})
}

func CartClear(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return handle(svc, logg, func(ctx context.Context, _ *http.Request, cartID string) (*cartsvc.View, error) {
		return svc.Clear(ctx, cartID)
	})
}

type cartOp func(ctx context.Context, r *http.Request, cartID string) (*cartsvc.View, error)

func handle(svc cartsvc.Service, logg *logger.Logger, op cartOp) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		cartID := middleware.CartIDFromContext(r.Context())
		if cartID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "cart id missing"))
			return
		}

		view, err := op(r.Context(), r, cartID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

func handleItem(svc cartsvc.Service, logg *logger.Logger, op func(context.Context, *http.Request, string, int) (*cartsvc.View, error)) http.HandlerFunc {
	return handle(svc, logg, func(ctx context.Context, r *http.Request, cartID string) (*cartsvc.View, error) {
		productID, err := validators.ParseProductID(chi.URLParam(r, "productId"))
		if err != nil {
			return nil, err
		}
		return op(ctx, r, cartID, productID)
	})
}
