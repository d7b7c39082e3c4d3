package amortization

import (
	"amortization-engine/internal/pkg/apperrors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

type ScheduleEntry struct {
	PaymentNumber    int
	DueDate          time.Time
	EMIAmount        decimal.Decimal
	PrincipalPayment decimal.Decimal
	InterestPayment  decimal.Decimal
	RemainingBalance decimal.Decimal
}

type CalculationResult struct {
	Principal             decimal.Decimal
	TotalInterest         decimal.Decimal
	TotalAmount           decimal.Decimal
	EMI                   decimal.Decimal
	EffectiveInterestRate decimal.Decimal
	TermMonths            int
	NumberOfPeriods       int
	Schedule              []ScheduleEntry
}

// Calculate produces the full amortization schedule and aggregate totals for
// the given terms. It is pure: identical terms always yield an identical
// result, and invalid terms fail before any schedule row is built.
//
// Entry amounts are rounded to 2 decimal places only when a row is emitted;
// the running balance is carried at higher precision so rounding drift never
// accumulates, even on very long schedules.
func Calculate(terms LoanTerms) (*CalculationResult, error) {
	if err := terms.Validate(); err != nil {
		return nil, err
	}

	periods, err := terms.NumberOfPeriods()
	if err != nil {
		return nil, err
	}
	rate, err := terms.PeriodicRate()
	if err != nil {
		return nil, err
	}

	var schedule []ScheduleEntry
	var emi decimal.Decimal
	switch terms.Type {
	case ReducingBalance:
		schedule, emi = reducingBalanceSchedule(terms, periods, rate)
	case FlatRate:
		schedule, emi = flatRateSchedule(terms, periods, rate)
	case BulletPayment:
		schedule, emi = bulletSchedule(terms, periods, rate)
	default:
		return nil, apperrors.NewUnsupportedConfigurationError("amortizationType", string(terms.Type))
	}

	totalInterest := decimal.Zero
	for _, entry := range schedule {
		totalInterest = totalInterest.Add(entry.InterestPayment)
	}

	return &CalculationResult{
		Principal:             terms.Principal,
		TotalInterest:         totalInterest,
		TotalAmount:           terms.Principal.Add(totalInterest),
		EMI:                   emi,
		EffectiveInterestRate: effectiveRate(terms, rate),
		TermMonths:            terms.TermMonths,
		NumberOfPeriods:       periods,
		Schedule:              schedule,
	}, nil
}

// reducingBalanceSchedule builds a standard amortizing schedule with a
// constant payment derived from the annuity formula
// P * r * (1+r)^n / ((1+r)^n - 1). Interest accrues on the declining balance.
//
// The balance is carried at full precision and rounded only when a row is
// emitted. Each entry's principal payment is the difference between the
// previous and current rounded balance, so the payments telescope to exactly
// the principal and the balance cannot hit zero before the final period.
func reducingBalanceSchedule(terms LoanTerms, periods int, rate decimal.Decimal) ([]ScheduleEntry, decimal.Decimal) {
	n := decimal.NewFromInt(int64(periods))
	var emi decimal.Decimal
	if rate.IsZero() {
		emi = terms.Principal.Div(n)
	} else {
		factor := one.Add(rate).Pow(n)
		emi = terms.Principal.Mul(rate).Mul(factor).Div(factor.Sub(one))
	}

	schedule := make([]ScheduleEntry, 0, periods)
	balance := terms.Principal
	roundedBalance := terms.Principal.Round(2)
	for k := 1; k <= periods; k++ {
		interest := balance.Mul(rate)
		// Trimming to division precision keeps the coefficient from
		// growing without bound over long schedules.
		balance = balance.Add(interest).Sub(emi).Round(16)
		if k == periods || balance.IsNegative() {
			balance = decimal.Zero
		}

		newBalance := balance.Round(2)
		principalPart := roundedBalance.Sub(newBalance)
		interestPart := interest.Round(2)

		schedule = append(schedule, ScheduleEntry{
			PaymentNumber:    k,
			DueDate:          terms.Frequency.DueDate(terms.StartDate, k),
			EMIAmount:        principalPart.Add(interestPart),
			PrincipalPayment: principalPart,
			InterestPayment:  interestPart,
			RemainingBalance: newBalance,
		})
		roundedBalance = newBalance
	}
	return schedule, emi.Round(2)
}

// flatRateSchedule charges interest on the original principal every period,
// the defining property of flat-rate loans. Principal is repaid linearly; each
// entry repays the difference between successive rounded cumulative shares of
// the principal, so the repayments sum to exactly the principal.
func flatRateSchedule(terms LoanTerms, periods int, rate decimal.Decimal) ([]ScheduleEntry, decimal.Decimal) {
	n := decimal.NewFromInt(int64(periods))
	periodInterest := terms.Principal.Mul(rate).Round(2)
	emi := terms.Principal.DivRound(n, 2).Add(periodInterest)

	roundedPrincipal := terms.Principal.Round(2)
	schedule := make([]ScheduleEntry, 0, periods)
	repaid := decimal.Zero
	for k := 1; k <= periods; k++ {
		cumulative := terms.Principal.Mul(decimal.NewFromInt(int64(k))).DivRound(n, 2)
		if k == periods {
			cumulative = roundedPrincipal
		}
		principalPart := cumulative.Sub(repaid)
		repaid = cumulative

		schedule = append(schedule, ScheduleEntry{
			PaymentNumber:    k,
			DueDate:          terms.Frequency.DueDate(terms.StartDate, k),
			EMIAmount:        principalPart.Add(periodInterest),
			PrincipalPayment: principalPart,
			InterestPayment:  periodInterest,
			RemainingBalance: roundedPrincipal.Sub(cumulative),
		})
	}
	return schedule, emi
}

// bulletSchedule produces interest-only payments with the full principal due
// at term end. The balance stays at the original principal until the final
// period.
func bulletSchedule(terms LoanTerms, periods int, rate decimal.Decimal) ([]ScheduleEntry, decimal.Decimal) {
	periodInterest := terms.Principal.Mul(rate).Round(2)

	schedule := make([]ScheduleEntry, 0, periods)
	for n := 1; n <= periods; n++ {
		principalPart := decimal.Zero
		payment := periodInterest
		balance := terms.Principal
		if n == periods {
			principalPart = terms.Principal
			payment = principalPart.Add(periodInterest)
			balance = decimal.Zero
		}

		schedule = append(schedule, ScheduleEntry{
			PaymentNumber:    n,
			DueDate:          terms.Frequency.DueDate(terms.StartDate, n),
			EMIAmount:        payment,
			PrincipalPayment: principalPart,
			InterestPayment:  periodInterest,
			RemainingBalance: balance,
		})
	}
	return schedule, periodInterest
}

// effectiveRate converts the nominal annual rate into the compounding-adjusted
// effective annual rate, ((1 + r)^periodsPerYear - 1) * 100.
func effectiveRate(terms LoanTerms, rate decimal.Decimal) decimal.Decimal {
	if rate.IsZero() {
		return terms.AnnualInterestRate
	}
	periodsPerYear, err := terms.Frequency.PeriodsPerYear()
	if err != nil {
		return terms.AnnualInterestRate
	}
	return one.Add(rate).Pow(decimal.NewFromInt(int64(periodsPerYear))).Sub(one).Mul(hundred)
}
