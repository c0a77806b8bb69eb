// Package forecast projects balances, debts and goals forward from a snapshot
// of decrypted records. Every function is a pure transform over its inputs:
// "now" is always passed in as asOf and nothing here performs I/O.
package forecast

import (
	"fmt"
	"math"
	"time"

	"github.com/Dan9191/forecast-service/internal/models"
	"github.com/shopspring/decimal"
)

// MonthlyMultiplier converts a frequency to occurrences per month.
// Frequencies are validated with models.ParseFrequency when records are
// loaded, so an unmapped value here is a programming error and panics.
func MonthlyMultiplier(f models.Frequency) float64 {
	switch f {
	case models.Weekly:
		return 52.0 / 12
	case models.Biweekly:
		return 26.0 / 12
	case models.Monthly:
		return 1
	case models.Quarterly:
		return 1.0 / 3
	case models.Yearly:
		return 1.0 / 12
	}
	panic(fmt.Sprintf("forecast: unmapped frequency %q", f))
}

// roundCents rounds a money amount half away from zero to two decimals
func roundCents(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// roundRef rounds and returns a pointer, for optional output fields
func roundRef(v float64) *float64 {
	r := roundCents(v)
	return &r
}

// monthStart returns the first day of the month offset months away from asOf
func monthStart(asOf time.Time, offset int) time.Time {
	return time.Date(asOf.Year(), asOf.Month()+time.Month(offset), 1, 0, 0, 0, 0, time.UTC)
}

// monthLabel formats the month offset months away from asOf as YYYY-MM
func monthLabel(asOf time.Time, offset int) string {
	return monthStart(asOf, offset).Format(models.MonthLayout)
}

// monthsBetween counts whole months elapsed from start to end, floored at 0
func monthsBetween(start, end time.Time) int {
	n := (end.Year()-start.Year())*12 + int(end.Month()-start.Month())
	if end.Day() < start.Day() {
		n--
	}
	if n < 0 {
		return 0
	}
	return n
}

// monthKey orders calendar months
func monthKey(t time.Time) int {
	return t.Year()*12 + int(t.Month())
}

// monthlyRate converts an annual percentage to a monthly fraction
func monthlyRate(annualPct float64) float64 {
	return annualPct / 100 / 12
}

// settle snaps sub-cent remainders to zero
func settle(v float64) float64 {
	if math.Abs(v) < 0.005 {
		return 0
	}
	return v
}
