package forecast

import (
	"testing"

	"github.com/Dan9191/forecast-service/internal/models"
)

func TestResolveMonthlyIncomePrefersManual(t *testing.T) {
	detected := []models.DetectedIncomePattern{{Description: "PAYROLL", MonthlyEquivalent: 5000}}

	manual := []models.IncomeSource{
		{Name: "Salary", Amount: 1500, Frequency: models.Biweekly, IsActive: true},
		{Name: "Old job", Amount: 9000, Frequency: models.Monthly, IsActive: false},
	}
	got := ResolveMonthlyIncome(manual, detected)
	if got.Source != models.IncomeFromManual {
		t.Fatalf("source=%s want=manual", got.Source)
	}
	approx(t, "manual income", got.Monthly, 3250)

	got = ResolveMonthlyIncome(manual[1:], detected)
	if got.Source != models.IncomeFromDetected {
		t.Fatalf("source=%s want=detected when only inactive manual sources exist", got.Source)
	}
	approx(t, "detected income", got.Monthly, 5000)
}

func TestMonthlyExpenses(t *testing.T) {
	bills := []models.Bill{
		{Amount: 100, Frequency: models.Weekly, IsActive: true},
		{Amount: 1200, Frequency: models.Yearly, IsActive: true},
		{Amount: 999, Frequency: models.Monthly, IsActive: false},
	}
	budgets := []models.Budget{
		{Amount: 300, Frequency: models.Monthly, IsActive: true, Category: "groceries"},
	}
	approx(t, "expenses", MonthlyExpenses(bills, budgets), 100*52.0/12+100+300)
}

func TestSummarize(t *testing.T) {
	s := Summarize(SummaryInput{
		Transactions: incomeHistory(),
		Bills:        []models.Bill{{Amount: 2000, Frequency: models.Monthly, IsActive: true}},
		Income:       DefaultIncomeOptions(asOf),
	})
	if s.IncomeSource != models.IncomeFromDetected || len(s.DetectedIncome) != 2 {
		t.Fatalf("summary=%+v want two detected patterns", s)
	}
	approx(t, "income", s.MonthlyIncome, 5833.33)
	approx(t, "surplus", s.MonthlySurplus, 3833.33)
}

func TestNetWorth(t *testing.T) {
	accounts := []models.Account{
		{ID: "chk", Type: models.AccountChecking, CurrentBalance: 2500, IsActive: true},
		{ID: "house", Type: models.AccountRealEstate, CurrentBalance: 300000, IsActive: true},
		{ID: "cc", Type: models.AccountCredit, CurrentBalance: 1200, IsActive: true},
		{ID: "mortgage", Type: models.AccountLoan, CurrentBalance: -250000, IsActive: true},
		{ID: "closed", Type: models.AccountSavings, CurrentBalance: 999, IsActive: false},
	}
	approx(t, "net worth", NetWorth(accounts), 2500+300000-1200-250000)
}
