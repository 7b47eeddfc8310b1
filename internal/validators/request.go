package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/qa-demo-api/models"
)

// Field name constants used to scope validation to a subset of fields.
const (
	FieldUsername = "username"
	FieldPassword = "password"
	FieldA        = "a"
	FieldB        = "b"
)

// RequestValidator checks the inbound JSON bodies of the public API:
// models.LoginRequest and models.AddRequest, by value or by pointer.
type RequestValidator struct {
}

// NewRequestValidator constructs a RequestValidator and returns it as Validator.
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches on the dynamic type of obj. When fields is empty every
// field of the request is checked.
//
// Returns ErrUnsupportedType for unknown types, ErrUnknownField for a field
// name the type does not have, and ErrFieldRequired (wrapped with the field
// name) for a missing value.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.LoginRequest:
		return v.validateLoginRequest(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(ctx, *value, fields...)

	case models.AddRequest:
		return v.validateAddRequest(ctx, value, fields...)
	case *models.AddRequest:
		return v.validateAddRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateLoginRequest(ctx context.Context, req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if req.Username == nil {
				return fieldRequired(f)
			}
		case FieldPassword:
			if req.Password == nil {
				return fieldRequired(f)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateAddRequest(ctx context.Context, req models.AddRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldA, FieldB}
	}

	for _, f := range fields {
		switch f {
		case FieldA:
			if req.A == nil {
				return fieldRequired(f)
			}
		case FieldB:
			if req.B == nil {
				return fieldRequired(f)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func fieldRequired(field string) error {
	return fmt.Errorf("%w: %s", ErrFieldRequired, field)
}
