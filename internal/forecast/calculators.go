package forecast

import (
	"math"

	"github.com/Dan9191/forecast-service/internal/models"
)

const (
	hysVsDebtMonths     = 360
	postPayoffMonths    = 12
	breakEvenTolerance  = 0.01
	retirementYears     = 30
	ElectiveDeferralCap = 23_500.0 // annual employee 401(k) limit
)

// LoanScenario is one side of the HYS-vs-debt comparison after a month
type LoanScenario struct {
	Savings        float64
	Loan           float64
	InterestEarned float64
	InterestPaid   float64
	PayoffMonth    *int
}

// Net is savings minus the remaining loan
func (s LoanScenario) Net() float64 {
	return s.Savings - s.Loan
}

// StepLoanScenario advances a scenario one month. Savings earn interest, the
// loan accrues interest and takes the payment, and whatever part of the
// payment the loan no longer needs goes into savings.
func StepLoanScenario(prev LoanScenario, month int, in models.HysVsDebtInput) LoanScenario {
	next := prev
	earned := prev.Savings * monthlyRate(in.HysAPY)
	next.Savings += earned
	next.InterestEarned += earned

	redirected := in.MonthlyPayment
	if prev.Loan > 0 {
		interest := prev.Loan * monthlyRate(in.LoanAPR)
		owed := prev.Loan + interest
		pay := math.Min(in.MonthlyPayment, owed)
		next.Loan = settle(owed - pay)
		next.InterestPaid += interest
		redirected -= pay
		if next.Loan == 0 {
			m := month
			next.PayoffMonth = &m
		}
	}
	next.Savings += redirected
	return next
}

// CompareHysVsDebt simulates keeping a high-yield savings balance against
// using it to pay a loan down immediately.
func CompareHysVsDebt(in models.HysVsDebtInput) models.HysVsDebtResult {
	lump := math.Min(in.HysBalance, in.LoanBalance)
	keep := LoanScenario{Savings: in.HysBalance, Loan: in.LoanBalance}
	pay := LoanScenario{Savings: in.HysBalance - lump, Loan: settle(in.LoanBalance - lump)}
	if keep.Loan <= 0 {
		zero := 0
		keep.PayoffMonth = &zero
	}
	if pay.Loan == 0 {
		zero := 0
		pay.PayoffMonth = &zero
	}

	result := models.HysVsDebtResult{
		LumpSum:  roundCents(lump),
		Timeline: []models.ScenarioPoint{scenarioPoint(0, keep, pay)},
	}
	for m := 1; m <= hysVsDebtMonths; m++ {
		keep = StepLoanScenario(keep, m, in)
		pay = StepLoanScenario(pay, m, in)
		result.Timeline = append(result.Timeline, scenarioPoint(m, keep, pay))

		if result.BreakEvenMonth == nil && pay.Net()-keep.Net() > breakEvenTolerance {
			breakEven := m
			result.BreakEvenMonth = &breakEven
		}
		if keep.PayoffMonth != nil && pay.PayoffMonth != nil &&
			m-max(*keep.PayoffMonth, *pay.PayoffMonth) >= postPayoffMonths {
			break
		}
	}

	result.NetBenefit = roundCents(pay.Net() - keep.Net())
	result.Recommendation = models.RecommendKeepHys
	if pay.Net()-keep.Net() > 0 {
		result.Recommendation = models.RecommendPayLoan
	}
	result.KeepLoanPayoffMonth = keep.PayoffMonth
	result.PayLoanPayoffMonth = pay.PayoffMonth
	result.KeepInterestEarned = roundCents(keep.InterestEarned)
	result.KeepInterestPaid = roundCents(keep.InterestPaid)
	result.PayInterestEarned = roundCents(pay.InterestEarned)
	result.PayInterestPaid = roundCents(pay.InterestPaid)
	return result
}

func scenarioPoint(month int, keep, pay LoanScenario) models.ScenarioPoint {
	return models.ScenarioPoint{
		Month:          month,
		KeepSavings:    roundCents(keep.Savings),
		KeepLoan:       roundCents(keep.Loan),
		KeepNet:        roundCents(keep.Net()),
		PayDownSavings: roundCents(pay.Savings),
		PayDownLoan:    roundCents(pay.Loan),
		PayDownNet:     roundCents(pay.Net()),
	}
}

// OptimizeFourOhOneK compares the current contribution with contributing
// exactly up to the match cap and with the statutory maximum.
func OptimizeFourOhOneK(in models.FourOhOneKInput) models.FourOhOneKResult {
	current := math.Min(in.Salary*in.ContributionPct/100, ElectiveDeferralCap)
	optimal := math.Min(in.Salary*in.MatchCapPct/100, ElectiveDeferralCap)
	maximum := math.Min(in.Salary, ElectiveDeferralCap)

	match := func(contribution float64) float64 {
		return math.Min(contribution, in.Salary*in.MatchCapPct/100) * in.MatchPct / 100
	}
	currentMatch, optimalMatch, maximumMatch := match(current), match(optimal), match(maximum)

	rate := in.ReturnPct / 100
	grow := func(balance, contribution, match float64) float64 {
		return (balance + contribution + match) * (1 + rate)
	}

	projection := make([]models.RetirementPoint, retirementYears+1)
	c, o, x := in.CurrentBalance, in.CurrentBalance, in.CurrentBalance
	for year := range projection {
		if year > 0 {
			c = grow(c, current, currentMatch)
			o = grow(o, optimal, optimalMatch)
			x = grow(x, maximum, maximumMatch)
		}
		projection[year] = models.RetirementPoint{
			Year:    year,
			Current: roundCents(c),
			Optimal: roundCents(o),
			Maximum: roundCents(x),
		}
	}

	return models.FourOhOneKResult{
		Current:          contributionLevel(current, currentMatch, c),
		Optimal:          contributionLevel(optimal, optimalMatch, o),
		Maximum:          contributionLevel(maximum, maximumMatch, x),
		MoneyLeftOnTable: roundCents(math.Max(0, optimalMatch-currentMatch)),
		Projection:       projection,
	}
}

func contributionLevel(contribution, match, final float64) models.ContributionLevel {
	return models.ContributionLevel{
		AnnualContribution: roundCents(contribution),
		EmployerMatch:      roundCents(match),
		FinalBalance:       roundCents(final),
	}
}
