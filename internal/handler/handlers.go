package handler

import (
	"github.com/MKhiriev/qa-demo-api/internal/config"
	"github.com/MKhiriev/qa-demo-api/internal/handler/http"
	"github.com/MKhiriev/qa-demo-api/internal/logger"
	"github.com/MKhiriev/qa-demo-api/internal/service"
	"github.com/MKhiriev/qa-demo-api/internal/validators"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, validators.NewRequestValidator(), cfg, logger),
	}, nil
}
