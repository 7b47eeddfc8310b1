package store

import (
	"context"
	"maps"

	"github.com/MKhiriev/qa-demo-api/internal/logger"
)

// credentialRepository is an in-memory [CredentialRepository]. The table is
// copied at construction and never mutated afterwards, so reads need no lock.
type credentialRepository struct {
	users map[string]string

	logger *logger.Logger
}

// NewCredentialRepository builds a repository over a private copy of users.
func NewCredentialRepository(users map[string]string, logger *logger.Logger) CredentialRepository {
	logger.Debug().Int("users", len(users)).Msg("creating credential repository")
	return &credentialRepository{
		users:  maps.Clone(users),
		logger: logger,
	}
}

// FindPassword implements [CredentialRepository].
func (r *credentialRepository) FindPassword(ctx context.Context, username string) (string, error) {
	password, ok := r.users[username]
	if !ok {
		logger.FromContext(ctx).Debug().Str("username", username).Msg("user is absent from credential table")
		return "", ErrNoUserWasFound
	}

	return password, nil
}
