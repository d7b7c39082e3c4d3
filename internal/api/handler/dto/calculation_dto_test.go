package dto

import (
	"amortization-engine/internal/domain/amortization"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() CalculateRequest {
	return CalculateRequest{
		Principal:          "50000",
		AnnualInterestRate: "8.5",
		TermMonths:         60,
		AmortizationType:   "REDUCING_BALANCE",
		RepaymentFrequency: "MONTHLY",
		StartDate:          "2026-01-15",
	}
}

func TestCalculateRequestValidate(t *testing.T) {
	t.Run("accepts a valid request", func(t *testing.T) {
		req := validRequest()
		assert.NoError(t, req.Validate())
	})

	cases := []struct {
		name   string
		mutate func(*CalculateRequest)
	}{
		{"empty principal", func(r *CalculateRequest) { r.Principal = "" }},
		{"non-numeric principal", func(r *CalculateRequest) { r.Principal = "fifty grand" }},
		{"zero principal", func(r *CalculateRequest) { r.Principal = "0" }},
		{"negative principal", func(r *CalculateRequest) { r.Principal = "-100" }},
		{"non-numeric rate", func(r *CalculateRequest) { r.AnnualInterestRate = "8.5%" }},
		{"negative rate", func(r *CalculateRequest) { r.AnnualInterestRate = "-1" }},
		{"zero term", func(r *CalculateRequest) { r.TermMonths = 0 }},
		{"bad start date", func(r *CalculateRequest) { r.StartDate = "15/01/2026" }},
		{"empty start date", func(r *CalculateRequest) { r.StartDate = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)
			assert.Error(t, req.Validate())
		})
	}
}

func TestCalculateRequestToTerms(t *testing.T) {
	req := validRequest()

	terms, err := req.ToTerms()
	require.NoError(t, err)

	assert.True(t, terms.Principal.Equal(decimal.NewFromInt(50000)))
	assert.True(t, terms.AnnualInterestRate.Equal(decimal.RequireFromString("8.5")))
	assert.Equal(t, 60, terms.TermMonths)
	assert.Equal(t, amortization.ReducingBalance, terms.Type)
	assert.Equal(t, amortization.Monthly, terms.Frequency)
	assert.Equal(t, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), terms.StartDate)
}

func TestNewCalculationResponse(t *testing.T) {
	result, err := amortization.Calculate(amortization.LoanTerms{
		Principal:          decimal.NewFromInt(12000),
		AnnualInterestRate: decimal.NewFromInt(6),
		TermMonths:         12,
		Type:               amortization.FlatRate,
		Frequency:          amortization.Monthly,
		StartDate:          time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	resp := NewCalculationResponse(result)

	assert.Equal(t, "12000.00", resp.Principal)
	assert.Equal(t, "720.00", resp.TotalInterest)
	assert.Equal(t, "12720.00", resp.TotalAmount)
	assert.Equal(t, "1060.00", resp.EMI)
	assert.Equal(t, 12, resp.NumberOfPeriods)
	require.Len(t, resp.Schedule, 12)

	first := resp.Schedule[0]
	assert.Equal(t, 1, first.PaymentNumber)
	assert.Equal(t, "2026-02-15", first.DueDate)
	assert.Equal(t, "1000.00", first.PrincipalPayment)
	assert.Equal(t, "60.00", first.InterestPayment)
	assert.Equal(t, "0.00", resp.Schedule[11].RemainingBalance)
}
