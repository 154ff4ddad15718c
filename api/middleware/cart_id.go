package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/pawpantry/storefront-backend/pkg/logger"
)

const (
	CartIDHeader = "X-Cart-Id"
	maxCartIDLen = 64
)

// CartID resolves the caller's cart from the X-Cart-Id header and issues a
// fresh id when none (or an unusable one) is supplied. The resolved id is
// echoed back so clients can keep it.
func CartID(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cartID := strings.TrimSpace(r.Header.Get(CartIDHeader))
			if !validCartID(cartID) {
				cartID = uuid.NewString()
			}
			w.Header().Set(CartIDHeader, cartID)

			ctx := WithCartID(r.Context(), cartID)
			if logg != nil {
				ctx = logg.WithCartID(ctx, cartID)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func validCartID(id string) bool {
	if id == "" || len(id) > maxCartIDLen {
		return false
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return false
		}
	}
	return true
}
