package service

import (
	"fmt"

	"github.com/MKhiriev/qa-demo-api/internal/config"
	"github.com/MKhiriev/qa-demo-api/internal/logger"
	"github.com/MKhiriev/qa-demo-api/internal/store"
)

type Services struct {
	AuthService    AuthService
	MathService    MathService
	OrderService   OrderService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	logger.Info().Bool("bug_mode", cfg.Features.BugMode()).Msg("creating services...")

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:    NewAuthService(storages.CredentialRepository, storages.TokenRepository, logger),
		MathService:    NewMathService(cfg.Features, logger),
		OrderService:   NewOrderService(storages.OrderRepository, logger),
		AppInfoService: appInfoService,
	}, nil
}
