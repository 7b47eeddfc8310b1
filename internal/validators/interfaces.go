// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks inbound request bodies before they reach the
// service layer.
//
// A Validator is injected into the HTTP handler, which calls Validate with the
// decoded request and, optionally, the names of the fields to check. Failures
// wrap ErrFieldRequired with the offending field name so the handler can report
// it as a 422 detail.
package validators

import "context"

// Validator validates a decoded request value. Optional field names restrict
// validation to that subset.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
