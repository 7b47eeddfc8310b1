package client

import "errors"

var (
	ErrUnexpectedResponse = errors.New("unexpected response")
	ErrSmokeFailed        = errors.New("smoke run failed")
)
