package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pawpantry/storefront-backend/api/responses"
	"github.com/pawpantry/storefront-backend/api/validators"
	"github.com/pawpantry/storefront-backend/internal/catalog"
	pkgerrors "github.com/pawpantry/storefront-backend/pkg/errors"
	"github.com/pawpantry/storefront-backend/pkg/logger"
)

// CatalogReader is the read surface the product endpoints need.
type CatalogReader interface {
	View(s catalog.FilterState, page, size int) catalog.Page
	Facets() catalog.Facets
	ProductByID(id int) (catalog.Product, bool)
}

// readerOrEmpty serves an empty catalog in place of a nil one, including a
// nil *catalog.Catalog stored in the interface.
func readerOrEmpty(cat CatalogReader) CatalogReader {
	if c, ok := cat.(*catalog.Catalog); cat == nil || (ok && c == nil) {
		return catalog.Empty("none")
	}
	return cat
}

// ProductList filters and paginates the catalog from query parameters.
func ProductList(cat CatalogReader, defaults validators.CatalogQueryDefaults, logg *logger.Logger) http.HandlerFunc {
	cat = readerOrEmpty(cat)
	return func(w http.ResponseWriter, r *http.Request) {
		query, err := validators.ParseCatalogQuery(r.URL.Query(), defaults)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, cat.View(query.Filters, query.Page, query.PageSize))
	}
}

// ProductFacets lists the filter values present in the catalog.
func ProductFacets(cat CatalogReader, logg *logger.Logger) http.HandlerFunc {
	cat = readerOrEmpty(cat)
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, cat.Facets())
	}
}

func ProductDetail(cat CatalogReader, logg *logger.Logger) http.HandlerFunc {
	cat = readerOrEmpty(cat)
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseProductID(chi.URLParam(r, "productId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, ok := cat.ProductByID(id)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found").
				WithDetails(map[string]any{"product_id": id}))
			return
		}
		responses.WriteSuccess(w, product)
	}
}
