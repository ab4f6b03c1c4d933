// Package presentvalue computes the present value of a fixed-payment
// loan/annuity. All operations are pure functions over their arguments and
// are safe for concurrent use.
package presentvalue

import (
	"errors"
	"fmt"
	"math"

	"github.com/pvtools/loan-pv/pkg/constants"
	"github.com/pvtools/loan-pv/pkg/format"
	"github.com/pvtools/loan-pv/pkg/mathutil"
)

// Validation error kinds. Every error returned by this package wraps one of
// these, so callers can distinguish them with errors.Is.
var (
	ErrInvalidPayment   = errors.New("invalid payment")
	ErrInvalidRate      = errors.New("invalid rate")
	ErrInvalidPeriods   = errors.New("invalid periods")
	ErrInvalidFrequency = errors.New("invalid frequency")
)

// Breakdown holds the result of a present value calculation along with the
// nominal totals over the life of the loan. All amounts are in the same
// currency unit as the payment and rounded to cents.
type Breakdown struct {
	PresentValue  float64
	TotalPaid     float64
	TotalInterest float64
}

// Calculate returns the present value of an ordinary annuity: periods equal
// payments discounted at annualRate/periodsPerYear per period.
//
//	PV = PMT × [(1 − (1 + r)^−n) / r]
//
// A zero rate degenerates to PMT × n. The result is rounded to two decimals
// with ties rounding away from zero (math.Round semantics).
//
// Inputs are validated in order; the first violation aborts the calculation:
// payment must be finite, positive, and at most constants.MaxPayment;
// annualRate must be finite and non-negative; periods must lie in
// [constants.MinPeriods, constants.MaxPeriods]; periodsPerYear must be one
// of constants.ValidFrequencies; and the derived per-period rate must not
// exceed constants.MaxPeriodicRate.
func Calculate(payment, annualRate float64, periods, periodsPerYear int) (float64, error) {
	if err := validatePayment(payment); err != nil {
		return 0, err
	}
	if err := validateAnnualRate(annualRate); err != nil {
		return 0, err
	}
	if err := validatePeriods(periods); err != nil {
		return 0, err
	}
	if err := validatePeriodsPerYear(periodsPerYear); err != nil {
		return 0, err
	}

	periodicRate := annualRate / float64(periodsPerYear)
	if periodicRate > constants.MaxPeriodicRate {
		return 0, fmt.Errorf("%w: rate too large for period, %s per period exceeds %s",
			ErrInvalidRate, format.Percent(periodicRate), format.Percent(constants.MaxPeriodicRate))
	}

	if periodicRate == 0 {
		return mathutil.Round(payment * float64(periods)), nil
	}

	discountFactor := (1 - math.Pow(1+periodicRate, -float64(periods))) / periodicRate
	return mathutil.Round(payment * discountFactor), nil
}

// Analyze runs the same calculation as Calculate and additionally reports
// the nominal total paid over the term and the implied interest cost.
func Analyze(payment, annualRate float64, periods, periodsPerYear int) (Breakdown, error) {
	pv, err := Calculate(payment, annualRate, periods, periodsPerYear)
	if err != nil {
		return Breakdown{}, err
	}

	totalPaid := mathutil.Round(payment * float64(periods))
	return Breakdown{
		PresentValue:  pv,
		TotalPaid:     totalPaid,
		TotalInterest: mathutil.Round(totalPaid - pv),
	}, nil
}

func validatePayment(payment float64) error {
	if math.IsNaN(payment) || math.IsInf(payment, 0) {
		return fmt.Errorf("%w: payment must be a finite number", ErrInvalidPayment)
	}
	if payment <= 0 {
		return fmt.Errorf("%w: payment must be positive", ErrInvalidPayment)
	}
	if payment > constants.MaxPayment {
		return fmt.Errorf("%w: payment cannot exceed %s", ErrInvalidPayment, format.Currency(constants.MaxPayment))
	}
	return nil
}

func validateAnnualRate(rate float64) error {
	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		return fmt.Errorf("%w: interest rate must be a finite number", ErrInvalidRate)
	}
	if rate < 0 {
		return fmt.Errorf("%w: interest rate cannot be negative", ErrInvalidRate)
	}
	return nil
}

func validatePeriods(periods int) error {
	if periods < constants.MinPeriods {
		return fmt.Errorf("%w: periods must be at least %d", ErrInvalidPeriods, constants.MinPeriods)
	}
	if periods > constants.MaxPeriods {
		return fmt.Errorf("%w: periods cannot exceed %d", ErrInvalidPeriods, constants.MaxPeriods)
	}
	return nil
}

func validatePeriodsPerYear(periodsPerYear int) error {
	for _, freq := range constants.ValidFrequencies {
		if periodsPerYear == freq {
			return nil
		}
	}
	return fmt.Errorf("%w: periods per year must be 1, 2, 4, 12, 52, or 365", ErrInvalidFrequency)
}
