package amortization

import (
	"amortization-engine/internal/infrastructure/monitoring"
	"amortization-engine/internal/pkg/apperrors"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

type CalculationService interface {
	Calculate(ctx context.Context, terms LoanTerms) (*CalculationResult, error)
}

type calculationServiceImpl struct {
	maxPeriods int
	logger     *slog.Logger
}

// NewCalculationService wraps the pure engine with logging and metrics.
// maxPeriods lowers the engine's hard schedule-length cap when positive.
func NewCalculationService(maxPeriods int, logger *slog.Logger) CalculationService {
	if maxPeriods <= 0 || maxPeriods > MaxPeriods {
		maxPeriods = MaxPeriods
	}
	return &calculationServiceImpl{maxPeriods: maxPeriods, logger: logger}
}

func (s *calculationServiceImpl) Calculate(ctx context.Context, terms LoanTerms) (*CalculationResult, error) {
	start := time.Now()
	s.logger.Info("Calculating amortization schedule",
		"type", string(terms.Type),
		"frequency", string(terms.Frequency),
		"termMonths", terms.TermMonths)

	result, err := s.calculate(terms)
	if err != nil {
		status := "failure_internal"
		switch {
		case errors.Is(err, apperrors.ErrInvalidLoanTerms):
			status = "failure_terms"
		case errors.Is(err, apperrors.ErrUnsupportedConfiguration):
			status = "failure_configuration"
		}
		monitoring.RecordCalculation(string(terms.Type), status, time.Since(start))
		s.logger.Error("Amortization calculation failed", "error", err)
		return nil, err
	}

	monitoring.RecordCalculation(string(terms.Type), "success", time.Since(start))
	s.logger.Info("Amortization calculation complete",
		"periods", result.NumberOfPeriods,
		"emi", result.EMI.StringFixed(2),
		"totalInterest", result.TotalInterest.StringFixed(2))
	return result, nil
}

func (s *calculationServiceImpl) calculate(terms LoanTerms) (*CalculationResult, error) {
	if err := terms.Validate(); err != nil {
		return nil, err
	}
	periods, err := terms.NumberOfPeriods()
	if err != nil {
		return nil, err
	}
	if periods > s.maxPeriods {
		return nil, apperrors.NewTermsError("termMonths",
			fmt.Sprintf("term produces %d payment periods, exceeding the configured limit of %d", periods, s.maxPeriods))
	}
	return Calculate(terms)
}
