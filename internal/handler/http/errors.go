// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Both are reported to the caller as
// "Missing or invalid token".
var (
	// ErrEmptyAuthorizationHeader is returned when the incoming request does
	// not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the header does not start
	// with the case-sensitive "Bearer " scheme prefix.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")
)
