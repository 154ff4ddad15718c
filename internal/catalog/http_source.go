package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	pkgerrors "github.com/pawpantry/storefront-backend/pkg/errors"
	"github.com/pawpantry/storefront-backend/pkg/types"
)

// maxCatalogBody bounds how much of a catalog response is read.
const maxCatalogBody = 8 << 20

// HTTPSource fetches the product list from a mock data endpoint such as
// GET /api/mocks/products.
type HTTPSource struct {
	url    string
	client *http.Client
}

// NewHTTPSource builds a source for url. A non-positive timeout leaves the
// client without a deadline; the caller's context still applies.
func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

func (s *HTTPSource) Name() string { return "http" }

func (s *HTTPSource) Fetch(ctx context.Context) ([]Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build catalog request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "request catalog")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxCatalogBody))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read catalog response")
	}

	if resp.StatusCode != http.StatusOK {
		msg := fmt.Sprintf("catalog endpoint returned %d", resp.StatusCode)
		var payload types.ResourceError
		if json.Unmarshal(body, &payload) == nil && payload.Error != "" {
			msg = payload.Error
		}
		code := pkgerrors.CodeDependency
		if resp.StatusCode == http.StatusNotFound {
			code = pkgerrors.CodeNotFound
		}
		return nil, pkgerrors.New(code, msg).WithDetails(map[string]any{"status": resp.StatusCode, "url": s.url})
	}

	var products []Product
	if err := json.Unmarshal(body, &products); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode catalog response")
	}
	return products, nil
}
