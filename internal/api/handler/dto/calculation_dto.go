package dto

import (
	"amortization-engine/internal/domain/amortization"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type CalculateRequest struct {
	Principal          string `json:"principal"`
	AnnualInterestRate string `json:"annualInterestRate"`
	TermMonths         int    `json:"termMonths"`
	AmortizationType   string `json:"amortizationType"`
	RepaymentFrequency string `json:"repaymentFrequency"`
	StartDate          string `json:"startDate"`
}

const dateLayout = "2006-01-02"

// ToTerms parses and validates the request in a single pass and converts it
// into domain loan terms. Enum membership is checked by the engine, not here.
func (r *CalculateRequest) ToTerms() (amortization.LoanTerms, error) {
	principal, err := decimal.NewFromString(r.Principal)
	if err != nil {
		return amortization.LoanTerms{}, fmt.Errorf("invalid numeric format for principal: %w", err)
	}
	if !principal.IsPositive() {
		return amortization.LoanTerms{}, fmt.Errorf("principal must be greater than zero")
	}
	rate, err := decimal.NewFromString(r.AnnualInterestRate)
	if err != nil {
		return amortization.LoanTerms{}, fmt.Errorf("invalid numeric format for annualInterestRate: %w", err)
	}
	if rate.IsNegative() {
		return amortization.LoanTerms{}, fmt.Errorf("annualInterestRate must not be negative")
	}
	if r.TermMonths <= 0 {
		return amortization.LoanTerms{}, fmt.Errorf("termMonths must be positive")
	}
	startDate, err := time.Parse(dateLayout, r.StartDate)
	if err != nil {
		return amortization.LoanTerms{}, fmt.Errorf("invalid startDate format (use YYYY-MM-DD): %w", err)
	}

	return amortization.LoanTerms{
		Principal:          principal,
		AnnualInterestRate: rate,
		TermMonths:         r.TermMonths,
		Type:               amortization.AmortizationType(r.AmortizationType),
		Frequency:          amortization.RepaymentFrequency(r.RepaymentFrequency),
		StartDate:          startDate,
	}, nil
}

// Validate reports whether the request parses into valid loan terms.
func (r *CalculateRequest) Validate() error {
	_, err := r.ToTerms()
	return err
}

type CalculationResponse struct {
	Principal             string                  `json:"principal"`
	TotalInterest         string                  `json:"totalInterest"`
	TotalAmount           string                  `json:"totalAmount"`
	EMI                   string                  `json:"emi"`
	EffectiveInterestRate string                  `json:"effectiveInterestRate"`
	TermMonths            int                     `json:"termMonths"`
	NumberOfPeriods       int                     `json:"numberOfPeriods"`
	Schedule              []ScheduleEntryResponse `json:"amortizationSchedule"`
}

type ScheduleEntryResponse struct {
	PaymentNumber    int    `json:"paymentNumber"`
	DueDate          string `json:"dueDate"`
	EMIAmount        string `json:"emiAmount"`
	PrincipalPayment string `json:"principalPayment"`
	InterestPayment  string `json:"interestPayment"`
	RemainingBalance string `json:"remainingBalance"`
}

type ErrorDetail struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

func NewCalculationResponse(result *amortization.CalculationResult) CalculationResponse {
	formatDecimalMoney := func(d decimal.Decimal) string {
		return d.StringFixed(2)
	}

	resp := CalculationResponse{
		Principal:             formatDecimalMoney(result.Principal),
		TotalInterest:         formatDecimalMoney(result.TotalInterest),
		TotalAmount:           formatDecimalMoney(result.TotalAmount),
		EMI:                   formatDecimalMoney(result.EMI),
		EffectiveInterestRate: result.EffectiveInterestRate.StringFixed(4),
		TermMonths:            result.TermMonths,
		NumberOfPeriods:       result.NumberOfPeriods,
		Schedule:              make([]ScheduleEntryResponse, len(result.Schedule)),
	}

	for i, entry := range result.Schedule {
		resp.Schedule[i] = ScheduleEntryResponse{
			PaymentNumber:    entry.PaymentNumber,
			DueDate:          entry.DueDate.Format(dateLayout),
			EMIAmount:        formatDecimalMoney(entry.EMIAmount),
			PrincipalPayment: formatDecimalMoney(entry.PrincipalPayment),
			InterestPayment:  formatDecimalMoney(entry.InterestPayment),
			RemainingBalance: formatDecimalMoney(entry.RemainingBalance),
		}
	}

	return resp
}
