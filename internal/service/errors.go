package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrBadCredentials      = errors.New("bad credentials")
	ErrMissingToken        = errors.New("missing or invalid token")
	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenCreationFailed = errors.New("token creation failed")

	ErrOrderNotFound = errors.New("order not found")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)
