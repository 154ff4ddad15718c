package controllers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/pawpantry/storefront-backend/api/validators"
	"github.com/pawpantry/storefront-backend/internal/catalog"
	"github.com/pawpantry/storefront-backend/pkg/logger"
)

func newProductsRouter(cat CatalogReader) http.Handler {
	logg := logger.New(logger.Options{ServiceName: "test", Level: logger.ParseLevel("debug"), Output: io.Discard})
	defaults := validators.CatalogQueryDefaults{PageSize: 6}

	r := chi.NewRouter()
	r.Get("/products", ProductList(cat, defaults, logg))
	r.Get("/products/facets", ProductFacets(cat, logg))
	r.Get("/products/{productId}", ProductDetail(cat, logg))
	return r
}

type pageEnvelope struct {
	Data struct {
		Items      []catalog.Product `json:"items"`
		Page       int               `json:"page"`
		PageSize   int               `json:"page_size"`
		Total      int               `json:"total"`
		TotalPages int               `json:"total_pages"`
	} `json:"data"`
}

func getPage(t *testing.T, h http.Handler, target string) pageEnvelope {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("GET %s: expected 200, got %d: %s", target, rec.Code, rec.Body.String())
	}
	var env pageEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode page: %v", err)
	}
	return env
}

func ids(products []catalog.Product) []int {
	out := make([]int, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func equalIDs(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestProductListFilters(t *testing.T) {
	h := newProductsRouter(catalog.New("embedded", catalog.SampleProducts()))

	cases := []struct {
		target     string
		want       []int
		totalPages int
	}{
		{target: "/products", want: []int{1, 2, 3, 4, 5, 6}, totalPages: 2},
		{target: "/products?page=2", want: []int{7, 8, 9, 10, 11, 12}, totalPages: 2},
		{target: "/products?page=9", want: []int{7, 8, 9, 10, 11, 12}, totalPages: 2},
		{target: "/products?pet_type=cat", want: []int{2, 4, 8, 9}, totalPages: 1},
		{target: "/products?pet_type=dog&food_type=wet", want: []int{10}, totalPages: 1},
		{target: "/products?price_min=85&price_max=120", want: []int{9, 10}, totalPages: 1},
		{target: "/products?q=royal+canin", want: []int{1, 5}, totalPages: 1},
		{target: "/products?pet_type=bird", want: []int{}, totalPages: 0},
	}
	for _, tc := range cases {
		env := getPage(t, h, tc.target)
		if got := ids(env.Data.Items); !equalIDs(got, tc.want) {
			t.Fatalf("GET %s: expected ids %v, got %v", tc.target, tc.want, got)
		}
		if env.Data.TotalPages != tc.totalPages {
			t.Fatalf("GET %s: expected %d pages, got %d", tc.target, tc.totalPages, env.Data.TotalPages)
		}
	}
}

func TestProductListRejectsBadQuery(t *testing.T) {
	h := newProductsRouter(catalog.New("embedded", catalog.SampleProducts()))

	for _, target := range []string{"/products?pet_type=dragon", "/products?price_min=9&price_max=1", "/products?page=0"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("GET %s: expected 400, got %d", target, rec.Code)
		}
	}
}

func TestProductListEmptyCatalog(t *testing.T) {
	h := newProductsRouter(catalog.Empty("embedded"))

	env := getPage(t, h, "/products")
	if env.Data.Items == nil || len(env.Data.Items) != 0 {
		t.Fatalf("expected empty items array, got %v", env.Data.Items)
	}
	if env.Data.Page != 1 || env.Data.TotalPages != 0 {
		t.Fatalf("unexpected window %+v", env.Data)
	}
}

func TestProductFacets(t *testing.T) {
	h := newProductsRouter(catalog.New("embedded", catalog.SampleProducts()))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products/facets", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var env struct {
		Data catalog.Facets `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode facets: %v", err)
	}
	if env.Data.PriceRange != (catalog.PriceRange{Min: 85, Max: 4200}) {
		t.Fatalf("unexpected price range %+v", env.Data.PriceRange)
	}
	if len(env.Data.PetTypes) != 4 {
		t.Fatalf("expected 4 pet types, got %v", env.Data.PetTypes)
	}
}

func TestProductDetail(t *testing.T) {
	h := newProductsRouter(catalog.New("embedded", catalog.SampleProducts()))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products/9", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var env struct {
		Data catalog.Product `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode product: %v", err)
	}
	if env.Data.ID != 9 || env.Data.Price != 85 {
		t.Fatalf("unexpected product %+v", env.Data)
	}

	for target, status := range map[string]int{
		"/products/404": http.StatusNotFound,
		"/products/abc": http.StatusBadRequest,
		"/products/-1":  http.StatusBadRequest,
	} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		if rec.Code != status {
			t.Fatalf("GET %s: expected %d, got %d", target, status, rec.Code)
		}
	}
}

func TestProductHandlersWithoutCatalog(t *testing.T) {
	var typedNil *catalog.Catalog
	for name, cat := range map[string]CatalogReader{"nil": nil, "typed nil": typedNil} {
		h := newProductsRouter(cat)

		env := getPage(t, h, "/products")
		if env.Data.Total != 0 || len(env.Data.Items) != 0 || env.Data.Page != 1 {
			t.Fatalf("%s: expected empty first page, got %+v", name, env.Data)
		}

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products/1", nil))
		if rec.Code != http.StatusNotFound {
			t.Fatalf("%s: expected 404, got %d", name, rec.Code)
		}

		rec = httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products/facets", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200 for facets, got %d", name, rec.Code)
		}
	}
}
