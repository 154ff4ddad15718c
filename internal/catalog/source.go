package catalog

import (
	"context"

	pkgerrors "github.com/pawpantry/storefront-backend/pkg/errors"
)

// Source fetches the product list once at startup.
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]Product, error)
}

// ResourceProducts is the only resource the mock data endpoint knows.
const ResourceProducts = "products"

// MockResource resolves a mock data resource by name.
func MockResource(name string) ([]Product, error) {
	if name == ResourceProducts {
		return SampleProducts(), nil
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "resource not found").
		WithDetails(map[string]any{"resource": name})
}

// EmbeddedSource serves the compiled-in sample catalog.
type EmbeddedSource struct{}

func (EmbeddedSource) Name() string { return "embedded" }

func (EmbeddedSource) Fetch(ctx context.Context) ([]Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return MockResource(ResourceProducts)
}

// StaticSource returns a fixed product list. Useful for tests and seeding.
type StaticSource []Product

func (StaticSource) Name() string { return "static" }

func (s StaticSource) Fetch(context.Context) ([]Product, error) {
	out := make([]Product, len(s))
	copy(out, s)
	return out, nil
}
