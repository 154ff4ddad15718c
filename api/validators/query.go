package validators

import (
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/multierr"

	pkgerrors "github.com/pawpantry/storefront-backend/pkg/errors"
)

func ParseQueryInt(values url.Values, key string, defaultVal, min, max int) (int, error) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return defaultVal, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "query parameter must be numeric").WithDetails(map[string]any{"field": key})
	}
	if value < min || value > max {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "query parameter out of range").WithDetails(map[string]any{"field": key, "min": min, "max": max})
	}
	return value, nil
}

// ParseQueryFloat returns ok=false when the parameter is absent.
func ParseQueryFloat(values url.Values, key string) (float64, bool, error) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return 0, false, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false, pkgerrors.New(pkgerrors.CodeValidation, "query parameter must be numeric").WithDetails(map[string]any{"field": key})
	}
	if value < 0 {
		return 0, false, pkgerrors.New(pkgerrors.CodeValidation, "query parameter must not be negative").WithDetails(map[string]any{"field": key})
	}
	return value, true, nil
}

// ParseQueryList accepts both repeated keys and comma separated values.
// Blank and repeated entries are dropped; first occurrence order is kept.
func ParseQueryList(values url.Values, key string) []string {
	var out []string
	seen := map[string]struct{}{}
	for _, raw := range values[key] {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if _, dup := seen[part]; dup {
				continue
			}
			seen[part] = struct{}{}
			out = append(out, part)
		}
	}
	return out
}

// parseEnumList converts every listed value with parse, collecting each
// rejected value instead of stopping at the first.
func parseEnumList[T any](values url.Values, key string, parse func(string) (T, error)) ([]T, error) {
	raw := ParseQueryList(values, key)
	if len(raw) == 0 {
		return nil, nil
	}
	out := make([]T, 0, len(raw))
	var errs error
	for _, v := range raw {
		parsed, err := parse(v)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		out = append(out, parsed)
	}
	return out, errs
}

// ParseProductID validates a product id taken from a route parameter.
func ParseProductID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || id <= 0 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "invalid product id").
			WithDetails(map[string]any{"product_id": raw})
	}
	return id, nil
}
