package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"negative-mentions/internal/handler/http/respond"
)

type ctxKey string

const ctxUser ctxKey = "user"

// UserFromContext returns the authenticated subject, if any.
func UserFromContext(ctx context.Context) string {
	user, _ := ctx.Value(ctxUser).(string)
	return user
}

// Authz requires a valid bearer token on every request it wraps. Public
// endpoints (health, metrics, token issuance) live on a separate mux and
// never pass through here.
func Authz(provider *Provider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := validateBearer(r.Header.Get("Authorization"), provider)
			if err != nil {
				respond.SafeError(w, http.StatusUnauthorized, fmt.Errorf("unauthorized: %w", err))
				return
			}
			ctx := context.WithValue(r.Context(), ctxUser, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func validateBearer(authz string, provider *Provider) (string, error) {
	const prefix = "Bearer "
	if !strings.HasPrefix(authz, prefix) {
		return "", errors.New("missing bearer token")
	}
	return provider.ValidateToken(strings.TrimPrefix(authz, prefix))
}
