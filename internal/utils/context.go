// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization and trace id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// TokenCtxKey is the key under which the auth middleware stores the bearer
// token of an authorized request.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.TokenCtxKey, "tok_alice")
var TokenCtxKey = contextKey("token")

// GetTokenFromContext retrieves the bearer token from the context.
//
// Returns the token and an ok flag:
//   - ok == true: value is found, is a string and is not empty
//   - ok == false: value is missing, empty or has an unexpected type
func GetTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(TokenCtxKey).(string)
	if !ok || token == "" {
		return "", false
	}
	return token, true
}
