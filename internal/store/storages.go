package store

import (
	"github.com/MKhiriev/qa-demo-api/internal/logger"
	"github.com/MKhiriev/qa-demo-api/models"
)

// Storages groups every repository the services depend on. One value is
// created per process (or per test) and owns all mutable state.
type Storages struct {
	CredentialRepository CredentialRepository
	TokenRepository      TokenRepository
	OrderRepository      OrderRepository
}

// NewStorages builds the in-memory storages seeded with [SeedUsers] and
// [SeedOrders].
func NewStorages(logger *logger.Logger) *Storages {
	logger.Info().Msg("creating in-memory storages...")
	return &Storages{
		CredentialRepository: NewCredentialRepository(SeedUsers(), logger),
		TokenRepository:      NewTokenRepository(logger),
		OrderRepository:      NewOrderRepository(SeedOrders(), logger),
	}
}

// SeedUsers returns the fixed demo credential table.
func SeedUsers() map[string]string {
	return map[string]string{
		"alice": "password123",
		"bob":   "hunter2",
	}
}

// SeedOrders returns the single demo order.
func SeedOrders() []models.Order {
	return []models.Order{
		{ID: 1, Total: 99.5, Currency: "USD"},
	}
}
