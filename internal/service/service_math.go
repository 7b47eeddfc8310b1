package service

import (
	"context"

	"github.com/MKhiriev/qa-demo-api/internal/config"
	"github.com/MKhiriev/qa-demo-api/internal/logger"
	"github.com/MKhiriev/qa-demo-api/models"
)

// addResult is what /math/add reports regardless of its operands.
const addResult = 1

type mathService struct {
	bugMode bool

	logger *logger.Logger
}

// NewMathService captures the bug-mode toggle once at construction.
func NewMathService(cfg config.Features, logger *logger.Logger) MathService {
	return &mathService{
		bugMode: cfg.BugMode(),
		logger:  logger,
	}
}

// Add computes a+b (a+b+1 in bug mode) but reports the constant 1 as the
// result. The computed sum only reaches the debug log.
func (s *mathService) Add(ctx context.Context, a, b float64) models.AddResult {
	sum := a + b
	if s.bugMode {
		sum++
	}

	logger.FromContext(ctx).Debug().
		Float64("a", a).
		Float64("b", b).
		Float64("sum", sum).
		Bool("bug_mode", s.bugMode).
		Msg("add computed")

	return models.AddResult{
		Result:  addResult,
		BugMode: s.bugMode,
	}
}
