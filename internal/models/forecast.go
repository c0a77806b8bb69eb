package models

import (
	"fmt"
	"time"
)

// MonthLayout is the format of month labels in projections
const MonthLayout = "2006-01"

// DetectedIncomePattern is a recurring income stream inferred from transactions
type DetectedIncomePattern struct {
	Description       string    `json:"description"`
	AverageAmount     float64   `json:"average_amount"`
	Frequency         Frequency `json:"frequency"`
	MonthlyEquivalent float64   `json:"monthly_equivalent"`
	Occurrences       int       `json:"occurrences"`
	LastSeen          time.Time `json:"last_seen"`
}

// Income sources reported in MonthlySummary
const (
	IncomeFromManual   = "manual"
	IncomeFromDetected = "detected"
)

// MonthlySummary represents monthly income and expense totals
type MonthlySummary struct {
	MonthlyIncome   float64                 `json:"monthly_income"`
	MonthlyExpenses float64                 `json:"monthly_expenses"`
	MonthlySurplus  float64                 `json:"monthly_surplus"`
	IncomeSource    string                  `json:"income_source"`
	DetectedIncome  []DetectedIncomePattern `json:"detected_income"`
}

// BalancePoint represents a balance at a month offset from now
type BalancePoint struct {
	Month   int     `json:"month"`
	Date    string  `json:"date"` // Format: YYYY-MM
	Balance float64 `json:"balance"`
}

// AccountProjection is the balance trajectory of one account
type AccountProjection struct {
	AccountID      string         `json:"account_id"`
	Name           string         `json:"name"`
	Type           AccountType    `json:"type"`
	Classification string         `json:"classification"`
	Points         []BalancePoint `json:"points"`
}

// AccountProjectionsResponse holds every account trajectory plus the overall series
type AccountProjectionsResponse struct {
	Accounts        []AccountProjection `json:"accounts"`
	Overall         []BalancePoint      `json:"overall"`
	MonthlyIncome   float64             `json:"monthly_income"`
	MonthlyExpenses float64             `json:"monthly_expenses"`
	NetCashFlow     float64             `json:"net_cash_flow"`
}

// PayoffStrategy orders debts for extra payments
type PayoffStrategy string

const (
	Avalanche PayoffStrategy = "avalanche"
	Snowball  PayoffStrategy = "snowball"

	// MinimumOnly labels the baseline run that pays only minimums
	MinimumOnly PayoffStrategy = "minimum"
)

// DebtAccountSummary is a debt account ready for payoff simulation
type DebtAccountSummary struct {
	AccountID      string  `json:"account_id"`
	Name           string  `json:"name"`
	CurrentBalance float64 `json:"current_balance"`
	InterestRate   float64 `json:"interest_rate"`
	MinimumPayment float64 `json:"minimum_payment"`
}

// PayoffPoint is one month of a single account's payoff schedule
type PayoffPoint struct {
	Month    int     `json:"month"`
	Date     string  `json:"date"`
	Balance  float64 `json:"balance"`
	Interest float64 `json:"interest"`
	Payment  float64 `json:"payment"`
}

// AccountPayoff is the payoff schedule of one debt account
type AccountPayoff struct {
	AccountID     string        `json:"account_id"`
	Name          string        `json:"name"`
	InterestRate  float64       `json:"interest_rate"`
	Schedule      []PayoffPoint `json:"schedule"`
	PayoffMonth   *int          `json:"payoff_month"`
	TotalInterest float64       `json:"total_interest"`
}

// DebtPayoffResult is the outcome of a payoff simulation
type DebtPayoffResult struct {
	Strategy          PayoffStrategy  `json:"strategy"`
	ExtraPayment      float64         `json:"extra_payment"`
	Accounts          []AccountPayoff `json:"accounts"`
	AggregateSchedule []BalancePoint  `json:"aggregate_schedule"`
	DebtFreeDate      *string         `json:"debt_free_date"`
	MonthsToPayoff    *int            `json:"months_to_payoff"`
	TotalInterest     float64         `json:"total_interest"`
	TotalPaid         float64         `json:"total_paid"`
}

// StrategyOutcome summarises a payoff run against the minimum-only baseline
type StrategyOutcome struct {
	Strategy       PayoffStrategy `json:"strategy"`
	DebtFreeDate   *string        `json:"debt_free_date"`
	MonthsToPayoff *int           `json:"months_to_payoff"`
	TotalInterest  float64        `json:"total_interest"`
	InterestSaved  float64        `json:"interest_saved"`
	MonthsSaved    int            `json:"months_saved"`
}

// DebtComparison compares avalanche and snowball against minimum payments only
type DebtComparison struct {
	ExtraPayment float64         `json:"extra_payment"`
	Baseline     StrategyOutcome `json:"baseline"`
	Avalanche    StrategyOutcome `json:"avalanche"`
	Snowball     StrategyOutcome `json:"snowball"`
	Recommended  PayoffStrategy  `json:"recommended"`
}

// SavingsAccountSummary is a deposit account ready for compounding
type SavingsAccountSummary struct {
	AccountID           string  `json:"account_id"`
	Name                string  `json:"name"`
	CurrentBalance      float64 `json:"current_balance"`
	APY                 float64 `json:"apy"`
	MonthlyContribution float64 `json:"monthly_contribution"`
}

// SavingsPoint is one month of a savings projection
type SavingsPoint struct {
	Month     int     `json:"month"`
	Date      string  `json:"date"`
	Balance   float64 `json:"balance"`
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
}

// Milestone is a round-number balance target. Month is nil when it lies beyond the horizon.
type Milestone struct {
	Target float64 `json:"target"`
	Month  *int    `json:"month"`
	Date   *string `json:"date"`
}

// SavingsProjectionResponse is a single-account compounding projection
type SavingsProjectionResponse struct {
	AccountID           string         `json:"account_id"`
	Name                string         `json:"name"`
	APY                 float64        `json:"apy"`
	MonthlyContribution float64        `json:"monthly_contribution"`
	Points              []SavingsPoint `json:"points"`
	Milestones          []Milestone    `json:"milestones"`
	TotalInterest       float64        `json:"total_interest"`
}

// GoalPoint is one point of a goal chart. History points carry only Actual.
type GoalPoint struct {
	Month       int      `json:"month"`
	Date        string   `json:"date"`
	Projected   *float64 `json:"projected,omitempty"`
	Target      float64  `json:"target"`
	Actual      *float64 `json:"actual,omitempty"`
	MinimumOnly *float64 `json:"minimum_only,omitempty"`
}

// GoalProgress is the normalized progress record of a goal
type GoalProgress struct {
	GoalID                  string      `json:"goal_id"`
	Name                    string      `json:"name"`
	Type                    GoalType    `json:"type"`
	TargetAmount            float64     `json:"target_amount"`
	CurrentAmount           float64     `json:"current_amount"`
	PercentComplete         float64     `json:"percent_complete"`
	MonthlyContribution     float64     `json:"monthly_contribution"`
	ProjectedCompletionDate *string     `json:"projected_completion_date"`
	OnTrack                 bool        `json:"on_track"`
	Projection              []GoalPoint `json:"projection"`
}

// GoalProgressResponse holds progress for every goal of a user
type GoalProgressResponse struct {
	AsOf  string         `json:"as_of"`
	Goals []GoalProgress `json:"goals"`
}

// ParsePayoffStrategy validates a requested payoff strategy
func ParsePayoffStrategy(s string) (PayoffStrategy, error) {
	switch p := PayoffStrategy(s); p {
	case Avalanche, Snowball:
		return p, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
}
