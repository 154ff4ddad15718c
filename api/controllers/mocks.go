package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pawpantry/storefront-backend/api/responses"
	"github.com/pawpantry/storefront-backend/internal/catalog"
	pkgerrors "github.com/pawpantry/storefront-backend/pkg/errors"
	"github.com/pawpantry/storefront-backend/pkg/logger"
	"github.com/pawpantry/storefront-backend/pkg/types"
)

// MockResource serves the sample data the storefront fetches its catalog
// from. The payload is a bare JSON array, not the success envelope, and an
// unknown resource yields {"error":"resource not found"} with a 404.
func MockResource(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "resource")
		products, err := catalog.MockResource(name)
		if err != nil {
			if logg != nil {
				logg.Debug(logg.WithField(r.Context(), "resource", name), "mock resource not found")
			}
			status := pkgerrors.MetadataFor(pkgerrors.CodeNotFound).HTTPStatus
			responses.WriteRaw(w, status, types.ResourceError{Error: "resource not found"})
			return
		}
		responses.WriteRaw(w, http.StatusOK, products)
	}
}
