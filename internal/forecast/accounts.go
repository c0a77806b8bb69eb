package forecast

import (
	"math"
	"time"

	"github.com/Dan9191/forecast-service/internal/models"
)

// recentActivityMonths is the window used to estimate contributions and net change
const recentActivityMonths = 3

// ProjectionInput is the snapshot an account projection runs over
type ProjectionInput struct {
	AsOf                 time.Time
	Months               int
	Accounts             []models.Account
	Profiles             map[string]models.AccountProfile
	Transactions         []models.Transaction
	MonthlyIncome        float64
	MonthlyExpenses      float64
	IncomeAdjustmentPct  float64
	ExpenseAdjustmentPct float64
	Excluded             []string
}

// balanceStep advances a balance by one month
type balanceStep func(balance float64) float64

// ProjectAccounts projects every active, non-excluded account forward month by
// month. Point 0 is the current balance; Months further points follow.
// With no projectable accounts the response carries no series.
func ProjectAccounts(in ProjectionInput) (models.AccountProjectionsResponse, error) {
	if in.Months < 1 {
		return models.AccountProjectionsResponse{}, models.ErrInvalidHorizon
	}

	income := in.MonthlyIncome * (1 + in.IncomeAdjustmentPct/100)
	expenses := in.MonthlyExpenses * (1 + in.ExpenseAdjustmentPct/100)
	netCashFlow := income - expenses

	resp := models.AccountProjectionsResponse{
		Accounts:        []models.AccountProjection{},
		MonthlyIncome:   roundCents(income),
		MonthlyExpenses: roundCents(expenses),
		NetCashFlow:     roundCents(netCashFlow),
	}

	accounts := projectable(in.Accounts, in.Excluded)
	if len(accounts) == 0 {
		return resp, nil
	}
	cashFlowAccount := primaryChecking(accounts)

	overall := make([]float64, in.Months+1)
	for _, a := range accounts {
		flow := 0.0
		if a.ID == cashFlowAccount {
			flow = netCashFlow
		}
		step := accountModel(a, in.Profiles[a.ID], in.Transactions, in.AsOf, flow)
		balances := foldBalances(a.CurrentBalance, in.Months, step)
		for m, b := range balances {
			overall[m] += signedBalance(a.Type, b)
		}
		resp.Accounts = append(resp.Accounts, models.AccountProjection{
			AccountID:      a.ID,
			Name:           a.Name,
			Type:           a.Type,
			Classification: a.Type.Classification(),
			Points:         balancePoints(in.AsOf, balances),
		})
	}
	resp.Overall = balancePoints(in.AsOf, overall)
	return resp, nil
}

// projectable filters out inactive and excluded accounts, keeping input order
func projectable(accounts []models.Account, excluded []string) []models.Account {
	skip := make(map[string]bool, len(excluded))
	for _, id := range excluded {
		skip[id] = true
	}
	out := make([]models.Account, 0, len(accounts))
	for _, a := range accounts {
		if a.IsActive && !skip[a.ID] {
			out = append(out, a)
		}
	}
	return out
}

// primaryChecking picks the checking account that receives the household cash
// flow: the first favorite checking account, else the first checking account.
func primaryChecking(accounts []models.Account) string {
	id := ""
	for _, a := range accounts {
		if a.Type != models.AccountChecking {
			continue
		}
		if a.IsFavorite {
			return a.ID
		}
		if id == "" {
			id = a.ID
		}
	}
	return id
}

// accountModel selects the monthly update rule for an account type
func accountModel(a models.Account, p models.AccountProfile, txns []models.Transaction, asOf time.Time, netCashFlow float64) balanceStep {
	switch a.Type {
	case models.AccountChecking:
		return func(b float64) float64 { return b + netCashFlow }
	case models.AccountSavings, models.AccountHighYieldSavings:
		return compounding(monthlyRate(savingsAPY(a, p)), EstimateMonthlyContribution(a.ID, txns, asOf))
	case models.AccountInvestment:
		return compounding(monthlyRate(rateOfReturn(a, p)), EstimateMonthlyContribution(a.ID, txns, asOf))
	case models.AccountCredit:
		// balance is the amount owed, so net inflows (payments) reduce it
		change := EstimateMonthlyNetChange(a.ID, txns, asOf)
		return func(b float64) float64 { return math.Max(0, b-change) }
	case models.AccountLoan:
		rate := monthlyRate(loanRate(a, p))
		return amortizing(rate, loanPayment(p, math.Abs(a.CurrentBalance), rate))
	case models.AccountRealEstate, models.AccountOther:
		return func(b float64) float64 { return b }
	}
	panic("forecast: unmapped account type " + string(a.Type))
}

// compounding accrues monthly interest then adds the contribution
func compounding(rate, contribution float64) balanceStep {
	return func(b float64) float64 {
		return b + b*rate + contribution
	}
}

// amortizing applies a fixed payment that covers interest first.
// Without a known payment the balance stays flat.
func amortizing(rate, payment float64) balanceStep {
	return func(b float64) float64 {
		if payment <= 0 || b <= 0 {
			return b
		}
		interest := b * rate
		principal := math.Min(payment-interest, b)
		return settle(b - principal)
	}
}

// foldBalances folds step over months, returning the balance after each month.
// Index 0 is the starting balance unmodified.
func foldBalances(start float64, months int, step balanceStep) []float64 {
	out := make([]float64, months+1)
	out[0] = start
	for m := 1; m <= months; m++ {
		out[m] = step(out[m-1])
	}
	return out
}

// balancePoints labels a balance series with month offsets and dates
func balancePoints(asOf time.Time, balances []float64) []models.BalancePoint {
	out := make([]models.BalancePoint, len(balances))
	for m, b := range balances {
		out[m] = models.BalancePoint{Month: m, Date: monthLabel(asOf, m), Balance: roundCents(b)}
	}
	return out
}

func savingsAPY(a models.Account, p models.AccountProfile) float64 {
	if p.APY > 0 {
		return p.APY
	}
	return accountRate(a)
}

func rateOfReturn(a models.Account, p models.AccountProfile) float64 {
	if p.RateOfReturn != 0 {
		return p.RateOfReturn
	}
	return accountRate(a)
}

func loanRate(a models.Account, p models.AccountProfile) float64 {
	if p.InterestRate > 0 {
		return p.InterestRate
	}
	return accountRate(a)
}

// loanPayment prefers a stored payment, else derives the level payment that
// clears balance over the remaining term
func loanPayment(p models.AccountProfile, balance, rate float64) float64 {
	switch {
	case p.MonthlyPayment > 0:
		return p.MonthlyPayment
	case p.MinimumPayment > 0:
		return p.MinimumPayment
	}
	return termPayment(balance, rate, p.TermMonths)
}

func termPayment(balance, rate float64, months int) float64 {
	if months <= 0 || balance <= 0 {
		return 0
	}
	if rate == 0 {
		return balance / float64(months)
	}
	return balance * rate / (1 - math.Pow(1+rate, -float64(months)))
}

func accountRate(a models.Account) float64 {
	if a.InterestRate == nil {
		return 0
	}
	return *a.InterestRate
}

// EstimateMonthlyContribution averages positive transactions of an account over
// the last three months, per distinct month with such activity.
func EstimateMonthlyContribution(accountID string, txns []models.Transaction, asOf time.Time) float64 {
	return monthlyAverage(accountID, txns, asOf, func(amount float64) bool { return amount > 0 })
}

// EstimateMonthlyNetChange averages the signed net of all transactions of an
// account over the last three months, per distinct month with activity.
func EstimateMonthlyNetChange(accountID string, txns []models.Transaction, asOf time.Time) float64 {
	return monthlyAverage(accountID, txns, asOf, func(float64) bool { return true })
}

func monthlyAverage(accountID string, txns []models.Transaction, asOf time.Time, keep func(float64) bool) float64 {
	from := asOf.AddDate(0, -recentActivityMonths, 0)
	months := make(map[int]bool)
	var total float64
	for _, t := range txns {
		if t.AccountID != accountID || t.Date.Before(from) || t.Date.After(asOf) || !keep(t.Amount) {
			continue
		}
		total += t.Amount
		months[monthKey(t.Date)] = true
	}
	return total / float64(max(len(months), 1))
}
