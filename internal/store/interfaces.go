package store

import (
	"context"

	"github.com/MKhiriev/qa-demo-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CredentialRepository is the read-only username → password table.
type CredentialRepository interface {
	// FindPassword returns the stored password for username or
	// ErrNoUserWasFound.
	FindPassword(ctx context.Context, username string) (string, error)
}

// TokenRepository is the set of issued bearer tokens.
// Implementations must be safe for concurrent use.
type TokenRepository interface {
	// SaveToken adds token to the set. Saving an existing token is a no-op.
	SaveToken(ctx context.Context, token string) error

	// TokenExists reports whether token was issued.
	TokenExists(ctx context.Context, token string) (bool, error)
}

// OrderRepository serves order records by id.
type OrderRepository interface {
	// FindOrderByID returns the order or ErrOrderNotFound.
	FindOrderByID(ctx context.Context, orderID int64) (models.Order, error)
}
