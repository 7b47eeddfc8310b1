package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/qa-demo-api/internal/logger"
	"github.com/MKhiriev/qa-demo-api/internal/service"
)

// withJSONSyntax rejects a non-empty request body that is not well-formed
// JSON with 422. It is mounted ahead of auth on body-carrying routes, so a
// syntax error is reported even when the caller is not authorized, while a
// well-formed body with missing or mistyped fields still gets 401 first.
//
// A zero-length body passes through untouched. The body is replaced with an
// in-memory copy so that the handler can decode it again.
func (h *Handler) withJSONSyntax(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body == nil || r.Body == http.NoBody {
			next.ServeHTTP(w, r)
			return
		}

		body, err := io.ReadAll(r.Body)
		_ = r.Body.Close()
		if err != nil {
			logger.FromRequest(r).Err(err).Msg("error reading request body")
			writeError(w, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err))
			return
		}

		if len(body) > 0 && !json.Valid(body) {
			logger.FromRequest(r).Debug().Msg("request body is not valid JSON")
			writeError(w, fmt.Errorf("%w: JSON decode error", service.ErrInvalidDataProvided))
			return
		}

		r.Body = io.NopCloser(bytes.NewReader(body))
		next.ServeHTTP(w, r)
	})
}
