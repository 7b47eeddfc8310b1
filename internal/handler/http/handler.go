package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/qa-demo-api/internal/config"
	"github.com/MKhiriev/qa-demo-api/internal/logger"
	"github.com/MKhiriev/qa-demo-api/internal/service"
	"github.com/MKhiriev/qa-demo-api/internal/utils"
	"github.com/MKhiriev/qa-demo-api/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator
	traceIDs  *utils.TraceIDGenerator

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, validator validators.Validator, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		validator:      validator,
		traceIDs:       utils.NewTraceIDGenerator(),
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}

// decodeBody reads a JSON request body into dst. The body must hold exactly
// one JSON value. Any failure is reported as service.ErrInvalidDataProvided
// so that it is answered with 422.
func decodeBody(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: request body is empty", service.ErrInvalidDataProvided)
		}
		return fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: unexpected data after JSON body", service.ErrInvalidDataProvided)
	}
	return nil
}

// callerFromRequest returns the username behind the bearer token that auth
// stored in the request context, or "" for an unauthenticated request.
func callerFromRequest(r *http.Request) string {
	token, ok := utils.GetTokenFromContext(r.Context())
	if !ok {
		return ""
	}
	return strings.TrimPrefix(token, service.TokenPrefix)
}
