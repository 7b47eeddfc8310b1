// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// qa-demo-api handlers and the smoke client.
//
// All Msg* constants are the exact "detail" strings written into error
// response bodies. Clients match on them, so the wording must not change.
package app

const (
	// MsgBadCredentials is returned by POST /login when the user is unknown
	// or the password differs.
	MsgBadCredentials = "Bad credentials"

	// MsgMissingOrInvalidToken is returned when the Authorization header is
	// absent or does not start with "Bearer ".
	MsgMissingOrInvalidToken = "Missing or invalid token"

	// MsgInvalidToken is returned when the bearer token was never issued.
	MsgInvalidToken = "Invalid token"

	// MsgOrderNotFound is returned by GET /orders/{order_id} for any id but 1.
	MsgOrderNotFound = "Order not found"

	// MsgNotFound is returned for paths no route is registered for.
	MsgNotFound = "Not Found"

	// MsgMethodNotAllowed is returned when the path exists but the method
	// is not registered for it.
	MsgMethodNotAllowed = "Method Not Allowed"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs.
	MsgInternalServerError = "Internal Server Error"
)
