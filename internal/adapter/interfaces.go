// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed client for the qa-demo-api HTTP surface.
//
// The primary abstraction is [APIAdapter]; [NewHTTPAPIAdapter] implements it
// on top of resty. Non-2xx responses are mapped to the sentinel errors in
// errors.go by mapHTTPError so that callers can use [errors.Is] (e.g.
// [ErrUnauthorized] for 401, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/qa-demo-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// APIAdapter talks to a running qa-demo-api server.
type APIAdapter interface {
	// SetToken stores the bearer token attached to protected requests.
	// Login calls it on success.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if none.
	Token() string

	// Health calls GET /health.
	Health(ctx context.Context) (models.HealthStatus, error)

	// Login calls POST /login and stores the returned token.
	Login(ctx context.Context, creds models.Credentials) (models.TokenResponse, error)

	// Add calls POST /math/add with the stored token.
	Add(ctx context.Context, a, b float64) (models.AddResult, error)

	// GetOrder calls GET /orders/{orderID} with the stored token.
	GetOrder(ctx context.Context, orderID int64) (models.Order, error)

	// Version calls GET /version.
	Version(ctx context.Context) (string, error)
}
