package utils

import "github.com/google/uuid"

// TraceIDGenerator produces identifiers for the X-Trace-ID header.
type TraceIDGenerator struct {
}

func NewTraceIDGenerator() *TraceIDGenerator {
	return &TraceIDGenerator{}
}

// Generate returns a random UUIDv4 string.
func (g *TraceIDGenerator) Generate() string {
	return uuid.NewString()
}
