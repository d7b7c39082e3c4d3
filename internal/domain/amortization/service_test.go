package amortization

import (
	"amortization-engine/internal/pkg/apperrors"
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(maxPeriods int) CalculationService {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	return NewCalculationService(maxPeriods, logger)
}

func TestCalculationServiceCalculate(t *testing.T) {
	service := newTestService(0)

	result, err := service.Calculate(context.Background(), validTerms())
	require.NoError(t, err)
	assert.Equal(t, 60, result.NumberOfPeriods)
	assert.Equal(t, "1025.83", result.EMI.StringFixed(2))
}

func TestCalculationServicePropagatesTermsErrors(t *testing.T) {
	service := newTestService(0)

	terms := validTerms()
	terms.Principal = decimal.NewFromInt(-1)

	result, err := service.Calculate(context.Background(), terms)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidLoanTerms))
}

func TestCalculationServiceConfiguredPeriodCap(t *testing.T) {
	service := newTestService(50)

	terms := validTerms()
	terms.TermMonths = 60 // 60 monthly periods, over the configured cap of 50

	result, err := service.Calculate(context.Background(), terms)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidLoanTerms))

	terms.TermMonths = 48
	result, err = service.Calculate(context.Background(), terms)
	require.NoError(t, err)
	assert.Equal(t, 48, result.NumberOfPeriods)
}
