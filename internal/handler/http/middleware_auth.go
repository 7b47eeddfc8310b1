package http

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/qa-demo-api/internal/logger"
	"github.com/MKhiriev/qa-demo-api/internal/service"
	"github.com/MKhiriev/qa-demo-api/internal/utils"
)

// bearerPrefix is matched case-sensitively, including the trailing space.
const bearerPrefix = "Bearer "

// auth is an HTTP middleware that enforces bearer-token authentication.
//
// It inspects the incoming "Authorization" header, extracts the token,
// checks it via [service.AuthService.ValidateToken] and, on success, stores
// the token in the request context under [utils.TokenCtxKey] before
// delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized when:
//   - the header is absent or lacks the "Bearer " prefix
//     ("Missing or invalid token");
//   - the token was never issued by a login ("Invalid token").
//
// It runs before the request body is read, so an unauthenticated request
// with a malformed body gets 401 rather than 422.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		token, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
		if err != nil {
			log.Err(err).Send()
			writeError(w, fmt.Errorf("%w: %w", service.ErrMissingToken, err))
			return
		}

		ctx := r.Context()
		if err = h.services.AuthService.ValidateToken(ctx, token); err != nil {
			log.Err(err).Msg("token rejected")
			writeError(w, err)
			return
		}

		ctx = context.WithValue(ctx, utils.TokenCtxKey, token)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the bearer token from a raw
// "Authorization" header value of the form "Bearer <token>".
//
// The token is everything after the first space and may be empty.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return "", ErrInvalidAuthorizationHeader
	}

	return strings.TrimPrefix(authHeader, bearerPrefix), nil
}
