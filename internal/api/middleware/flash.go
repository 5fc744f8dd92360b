package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"

	"edu_hub/internal/common/security"

	"github.com/go-chi/jwtauth/v5"
)

type contextKey string

const FlashesCtxKey contextKey = "flashes"

// LoadFlashes reads the flash token verified by jwtauth.Verify and stores its
// messages in the request context. The cookie is left alone; it is cleared
// only when a page actually displays the messages.
func LoadFlashes(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			if !errors.Is(err, jwtauth.ErrNoTokenFound) {
				log.Printf("WARN: Discarding flash token: %v", err)
			}
			next.ServeHTTP(w, r)
			return
		}
		if token == nil {
			next.ServeHTTP(w, r)
			return
		}

		flashes, err := security.FlashesFromClaims(claims)
		if err != nil {
			log.Printf("WARN: Invalid flash claims: %v", err)
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), FlashesCtxKey, flashes)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// FlashesFromContext returns the pending flash messages, if any.
func FlashesFromContext(ctx context.Context) []security.Flash {
	flashes, _ := ctx.Value(FlashesCtxKey).([]security.Flash)
	return flashes
}
