package forecast

import (
	"time"

	"github.com/Dan9191/forecast-service/internal/models"
)

// SavingsInput describes a single-account compounding projection
type SavingsInput struct {
	AsOf    time.Time
	Account models.SavingsAccountSummary
	Months  int
}

// SavingsState is a savings balance split into principal and interest
type SavingsState struct {
	Month     int
	Balance   float64
	Principal float64
	Interest  float64
}

// StepSavings accrues one month of interest on the balance and adds the contribution
func StepSavings(prev SavingsState, rate, contribution float64) SavingsState {
	interest := prev.Balance * rate
	return SavingsState{
		Month:     prev.Month + 1,
		Balance:   prev.Balance + interest + contribution,
		Principal: prev.Principal + contribution,
		Interest:  prev.Interest + interest,
	}
}

// ProjectSavings compounds a savings account forward and resolves balance milestones
func ProjectSavings(in SavingsInput) (models.SavingsProjectionResponse, error) {
	if in.Months < 1 {
		return models.SavingsProjectionResponse{}, models.ErrInvalidHorizon
	}
	acc := in.Account
	rate := monthlyRate(acc.APY)

	states := make([]SavingsState, in.Months+1)
	states[0] = SavingsState{Balance: acc.CurrentBalance, Principal: acc.CurrentBalance}
	for m := 1; m <= in.Months; m++ {
		states[m] = StepSavings(states[m-1], rate, acc.MonthlyContribution)
	}

	resp := models.SavingsProjectionResponse{
		AccountID:           acc.AccountID,
		Name:                acc.Name,
		APY:                 acc.APY,
		MonthlyContribution: roundCents(acc.MonthlyContribution),
		Points:              make([]models.SavingsPoint, len(states)),
		TotalInterest:       roundCents(states[in.Months].Interest),
	}
	for m, s := range states {
		resp.Points[m] = models.SavingsPoint{
			Month:     m,
			Date:      monthLabel(in.AsOf, m),
			Balance:   roundCents(s.Balance),
			Principal: roundCents(s.Principal),
			Interest:  roundCents(s.Interest),
		}
	}

	for _, target := range MilestoneTargets(acc.CurrentBalance) {
		ms := models.Milestone{Target: target}
		for _, s := range states {
			if s.Balance >= target {
				m := s.Month
				date := monthLabel(in.AsOf, m)
				ms.Month, ms.Date = &m, &date
				break
			}
		}
		resp.Milestones = append(resp.Milestones, ms)
	}
	return resp, nil
}

// MilestoneTargets picks round-number targets for the balance's order of magnitude
func MilestoneTargets(balance float64) []float64 {
	switch {
	case balance < 1_000:
		return []float64{1_000, 5_000, 10_000}
	case balance < 10_000:
		return []float64{10_000, 25_000, 50_000}
	case balance < 100_000:
		return []float64{50_000, 100_000, 250_000}
	default:
		return []float64{250_000, 500_000, 1_000_000}
	}
}
