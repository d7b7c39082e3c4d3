package amortization

import (
	"amortization-engine/internal/pkg/apperrors"
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// MaxPeriods caps the schedule length so pathological terms cannot produce
// unbounded output.
const MaxPeriods = 10_000

type AmortizationType string

const (
	ReducingBalance AmortizationType = "REDUCING_BALANCE"
	FlatRate        AmortizationType = "FLAT_RATE"
	BulletPayment   AmortizationType = "BULLET_PAYMENT"
)

type RepaymentFrequency string

const (
	Weekly    RepaymentFrequency = "WEEKLY"
	Biweekly  RepaymentFrequency = "BIWEEKLY"
	Monthly   RepaymentFrequency = "MONTHLY"
	Quarterly RepaymentFrequency = "QUARTERLY"
)

func (f RepaymentFrequency) PeriodsPerYear() (int, error) {
	switch f {
	case Weekly:
		return 52, nil
	case Biweekly:
		return 26, nil
	case Monthly:
		return 12, nil
	case Quarterly:
		return 4, nil
	default:
		return 0, apperrors.NewUnsupportedConfigurationError("repaymentFrequency", string(f))
	}
}

// DueDate returns the due date of payment number n counted from startDate.
func (f RepaymentFrequency) DueDate(startDate time.Time, n int) time.Time {
	switch f {
	case Weekly:
		return startDate.AddDate(0, 0, n*7)
	case Biweekly:
		return startDate.AddDate(0, 0, n*14)
	case Quarterly:
		return startDate.AddDate(0, n*3, 0)
	default:
		return startDate.AddDate(0, n, 0)
	}
}

type LoanTerms struct {
	Principal          decimal.Decimal
	AnnualInterestRate decimal.Decimal
	TermMonths         int
	Type               AmortizationType
	Frequency          RepaymentFrequency
	StartDate          time.Time
}

func (t LoanTerms) Validate() error {
	if !t.Principal.IsPositive() {
		return apperrors.NewTermsError("principal", "must be positive")
	}
	if t.AnnualInterestRate.IsNegative() {
		return apperrors.NewTermsError("annualInterestRate", "must not be negative")
	}
	if t.TermMonths < 1 {
		return apperrors.NewTermsError("termMonths", "must be at least 1")
	}
	switch t.Type {
	case ReducingBalance, FlatRate, BulletPayment:
	default:
		return apperrors.NewUnsupportedConfigurationError("amortizationType", string(t.Type))
	}
	if t.StartDate.IsZero() {
		return apperrors.NewTermsError("startDate", "must be set")
	}

	periods, err := t.NumberOfPeriods()
	if err != nil {
		return err
	}
	if periods > MaxPeriods {
		return apperrors.NewTermsError("termMonths",
			fmt.Sprintf("term produces %d payment periods, exceeding the limit of %d", periods, MaxPeriods))
	}
	return nil
}

// NumberOfPeriods converts the monthly term into the payment count implied by
// the repayment frequency, rounding to the nearest whole period with a
// minimum of one.
func (t LoanTerms) NumberOfPeriods() (int, error) {
	periodsPerYear, err := t.Frequency.PeriodsPerYear()
	if err != nil {
		return 0, err
	}
	periods := int(math.Round(float64(t.TermMonths) * float64(periodsPerYear) / 12.0))
	if periods < 1 {
		periods = 1
	}
	return periods, nil
}

// PeriodicRate returns the nominal per-period interest rate as a fraction,
// e.g. 8.5% annual at monthly frequency yields ~0.0070833.
func (t LoanTerms) PeriodicRate() (decimal.Decimal, error) {
	periodsPerYear, err := t.Frequency.PeriodsPerYear()
	if err != nil {
		return decimal.Zero, err
	}
	return t.AnnualInterestRate.Div(hundred).Div(decimal.NewFromInt(int64(periodsPerYear))), nil
}
