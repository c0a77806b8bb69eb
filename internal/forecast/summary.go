package forecast

import (
	"math"

	"github.com/Dan9191/forecast-service/internal/models"
)

// IncomeResolution is the monthly income a projection should use and where it came from
type IncomeResolution struct {
	Monthly float64
	Source  string
}

// ResolveMonthlyIncome applies the income precedence rule: when any active
// manual income source exists, manual income replaces detected income
// entirely. Detected patterns are then informational only.
func ResolveMonthlyIncome(manual []models.IncomeSource, detected []models.DetectedIncomePattern) IncomeResolution {
	var total float64
	active := 0
	for _, src := range manual {
		if !src.IsActive {
			continue
		}
		active++
		total += src.Amount * MonthlyMultiplier(src.Frequency)
	}
	if active > 0 {
		return IncomeResolution{Monthly: total, Source: models.IncomeFromManual}
	}

	for _, p := range detected {
		total += p.MonthlyEquivalent
	}
	return IncomeResolution{Monthly: total, Source: models.IncomeFromDetected}
}

// MonthlyExpenses sums active bills and budgets as monthly equivalents
func MonthlyExpenses(bills []models.Bill, budgets []models.Budget) float64 {
	var total float64
	for _, b := range bills {
		if b.IsActive {
			total += b.Amount * MonthlyMultiplier(b.Frequency)
		}
	}
	for _, b := range budgets {
		if b.IsActive {
			total += b.Amount * MonthlyMultiplier(b.Frequency)
		}
	}
	return total
}

// SummaryInput is the snapshot needed for a monthly income/expense summary
type SummaryInput struct {
	Transactions  []models.Transaction
	IncomeSources []models.IncomeSource
	Bills         []models.Bill
	Budgets       []models.Budget
	Income        IncomeOptions
}

// Summarize computes monthly income, expenses and surplus
func Summarize(in SummaryInput) models.MonthlySummary {
	detected := DetectIncomePatterns(in.Transactions, in.Income)
	income := ResolveMonthlyIncome(in.IncomeSources, detected)
	expenses := MonthlyExpenses(in.Bills, in.Budgets)
	return models.MonthlySummary{
		MonthlyIncome:   roundCents(income.Monthly),
		MonthlyExpenses: roundCents(expenses),
		MonthlySurplus:  roundCents(income.Monthly - expenses),
		IncomeSource:    income.Source,
		DetectedIncome:  detected,
	}
}

// NetWorth is active asset balances minus active liability balances
func NetWorth(accounts []models.Account) float64 {
	var total float64
	for _, a := range accounts {
		if !a.IsActive {
			continue
		}
		total += signedBalance(a.Type, a.CurrentBalance)
	}
	return total
}

// signedBalance returns a balance as its contribution to net worth
func signedBalance(t models.AccountType, balance float64) float64 {
	if t.IsLiability() {
		return -math.Abs(balance)
	}
	return balance
}
