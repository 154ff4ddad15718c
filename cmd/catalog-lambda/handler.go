package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/aws/aws-lambda-go/events"

	"github.com/pawpantry/storefront-backend/api/validators"
	"github.com/pawpantry/storefront-backend/internal/catalog"
	pkgerrors "github.com/pawpantry/storefront-backend/pkg/errors"
	"github.com/pawpantry/storefront-backend/pkg/logger"
	"github.com/pawpantry/storefront-backend/pkg/types"
)

// handler serves the read-only catalog behind API Gateway. The catalog is
// loaded once per cold start and shared by every invocation.
type handler struct {
	catalog  *catalog.Catalog
	defaults validators.CatalogQueryDefaults
	logg     *logger.Logger
}

var responseHeaders = map[string]string{
	"Content-Type":                 "application/json",
	"Cache-Control":                "public, max-age=300, must-revalidate",
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Methods": "GET",
	"Access-Control-Allow-Headers": "Content-Type",
}

func (h *handler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if h.logg != nil {
		ctx = h.logg.WithFields(ctx, map[string]any{
			"path":       req.Path,
			"request_id": req.RequestContext.RequestID,
		})
	}
	if req.HTTPMethod != "" && req.HTTPMethod != http.MethodGet {
		return h.methodNotAllowed(ctx, req.HTTPMethod), nil
	}

	path := strings.TrimSuffix(req.Path, "/")
	switch {
	case path == "/products" || path == "":
		query, err := validators.ParseCatalogQuery(queryValues(req), h.defaults)
		if err != nil {
			return h.fail(ctx, err), nil
		}
		return h.ok(ctx, h.catalog.View(query.Filters, query.Page, query.PageSize)), nil

	case path == "/products/facets":
		return h.ok(ctx, h.catalog.Facets()), nil

	case strings.HasPrefix(path, "/products/"):
		raw := req.PathParameters["productId"]
		if raw == "" {
			raw = strings.TrimPrefix(path, "/products/")
		}
		id, err := validators.ParseProductID(raw)
		if err != nil {
			return h.fail(ctx, err), nil
		}
		p, ok := h.catalog.ProductByID(id)
		if !ok {
			return h.fail(ctx, pkgerrors.New(pkgerrors.CodeNotFound, "product not found").
				WithDetails(map[string]any{"product_id": id})), nil
		}
		return h.ok(ctx, p), nil
	}

	return h.fail(ctx, pkgerrors.New(pkgerrors.CodeNotFound, "route not found")), nil
}

// queryValues prefers the multi-value map so repeated keys survive.
func queryValues(req events.APIGatewayProxyRequest) url.Values {
	values := url.Values{}
	for k, vs := range req.MultiValueQueryStringParameters {
		values[k] = append(values[k], vs...)
	}
	for k, v := range req.QueryStringParameters {
		if _, ok := values[k]; !ok {
			values.Set(k, v)
		}
	}
	return values
}

func (h *handler) ok(ctx context.Context, data any) events.APIGatewayProxyResponse {
	return h.respond(ctx, http.StatusOK, types.SuccessEnvelope{Data: data})
}

func (h *handler) fail(ctx context.Context, err error) events.APIGatewayProxyResponse {
	typed := pkgerrors.As(err)
	if typed == nil {
		typed = pkgerrors.Wrap(pkgerrors.CodeInternal, err, "unexpected error")
	}
	meta := pkgerrors.MetadataFor(typed.Code())
	if h.logg != nil {
		h.logg.WarnErr(ctx, "catalog request rejected", err)
	}

	payload := types.ErrorEnvelope{Error: types.APIError{Code: string(typed.Code()), Message: meta.PublicMessage}}
	if typed.Code() != pkgerrors.CodeInternal && typed.Message() != "" {
		payload.Error.Message = typed.Message()
	}
	if meta.DetailsAllowed {
		payload.Error.Details = typed.Details()
	}
	return h.respond(ctx, meta.HTTPStatus, payload)
}

// methodNotAllowed answers 405 directly; no error code maps to it.
func (h *handler) methodNotAllowed(ctx context.Context, method string) events.APIGatewayProxyResponse {
	if h.logg != nil {
		h.logg.Warn(h.logg.WithField(ctx, "method", method), "catalog method not allowed")
	}
	resp := h.respond(ctx, http.StatusMethodNotAllowed, types.ErrorEnvelope{Error: types.APIError{
		Code:    "METHOD_NOT_ALLOWED",
		Message: "method not allowed",
	}})
	headers := make(map[string]string, len(resp.Headers)+1)
	for k, v := range resp.Headers {
		headers[k] = v
	}
	headers["Allow"] = http.MethodGet
	resp.Headers = headers
	return resp
}

func (h *handler) respond(ctx context.Context, status int, payload any) events.APIGatewayProxyResponse {
	body, err := json.Marshal(payload)
	if err != nil {
		if h.logg != nil {
			h.logg.Error(ctx, "failed to encode response", err)
		}
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusInternalServerError,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       `{"error":{"code":"INTERNAL_ERROR","message":"internal server error"}}`,
		}
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    responseHeaders,
		Body:       string(body),
	}
}
