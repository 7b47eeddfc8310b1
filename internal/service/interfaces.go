package service

import (
	"context"

	"github.com/MKhiriev/qa-demo-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService checks credentials and owns bearer-token issuance.
type AuthService interface {
	// Login verifies creds and issues the deterministic token for the user.
	Login(ctx context.Context, creds models.Credentials) (models.TokenResponse, error)

	// ValidateToken returns nil if token was issued by a previous Login.
	ValidateToken(ctx context.Context, token string) error
}

// MathService backs POST /math/add.
type MathService interface {
	Add(ctx context.Context, a, b float64) models.AddResult
}

// OrderService backs GET /orders/{order_id}.
type OrderService interface {
	GetOrder(ctx context.Context, orderID int64) (models.Order, error)
}

// AppInfoService exposes static application metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
