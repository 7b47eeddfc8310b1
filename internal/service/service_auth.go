package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/qa-demo-api/internal/logger"
	"github.com/MKhiriev/qa-demo-api/internal/store"
	"github.com/MKhiriev/qa-demo-api/models"
)

const (
	// TokenPrefix is prepended to the username to form its bearer token.
	TokenPrefix = "tok_"

	// TokenTypeBearer is reported as token_type on login.
	TokenTypeBearer = "bearer"
)

// authService is the concrete implementation of AuthService.
// It compares passwords in plain text against a CredentialRepository and
// records issued tokens in a TokenRepository.
type authService struct {
	// credentialRepository is the read-only username → password table.
	credentialRepository store.CredentialRepository

	// tokenRepository is the set of tokens handed out so far.
	tokenRepository store.TokenRepository

	logger *logger.Logger
}

// NewAuthService constructs an AuthService over the given repositories.
//
// The returned service is safe for concurrent use as long as the token
// repository is.
func NewAuthService(credentials store.CredentialRepository, tokens store.TokenRepository, logger *logger.Logger) AuthService {
	return &authService{
		credentialRepository: credentials,
		tokenRepository:      tokens,
		logger:               logger,
	}
}

// Login authenticates a user by exact password comparison.
//
// On success the token "tok_<username>" is added to the token set (a no-op
// if it was already there) and returned. Returns:
//   - ErrBadCredentials if the user is unknown or the password differs.
//   - ErrTokenCreationFailed (wrapping the store error) if the token cannot
//     be saved.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.TokenResponse, error) {
	log := logger.FromContext(ctx)

	password, err := a.credentialRepository.FindPassword(ctx, creds.Username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Debug().Str("username", creds.Username).Msg("unknown user")
			return models.TokenResponse{}, ErrBadCredentials
		}
		log.Err(err).Str("username", creds.Username).Msg("credential lookup failed")
		return models.TokenResponse{}, fmt.Errorf("credential lookup failed: %w", err)
	}

	if password != creds.Password {
		log.Debug().Str("username", creds.Username).Msg("wrong password")
		return models.TokenResponse{}, ErrBadCredentials
	}

	token := TokenPrefix + creds.Username
	if err = a.tokenRepository.SaveToken(ctx, token); err != nil {
		log.Err(err).Str("username", creds.Username).Msg("saving token failed")
		return models.TokenResponse{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.TokenResponse{
		AccessToken: token,
		TokenType:   TokenTypeBearer,
	}, nil
}

// ValidateToken reports ErrInvalidToken unless token is in the token set.
func (a *authService) ValidateToken(ctx context.Context, token string) error {
	ok, err := a.tokenRepository.TokenExists(ctx, token)
	if err != nil {
		return fmt.Errorf("token lookup failed: %w", err)
	}

	if !ok {
		return ErrInvalidToken
	}

	return nil
}
