package models

import (
	"fmt"
	"time"
)

// GoalType selects how progress toward a goal is measured
type GoalType string

const (
	GoalSavings    GoalType = "savings"
	GoalDebtPayoff GoalType = "debt_payoff"
	GoalNetWorth   GoalType = "net_worth"
	GoalCustom     GoalType = "custom"
)

// ParseGoalType validates a stored goal type
func ParseGoalType(s string) (GoalType, error) {
	switch t := GoalType(s); t {
	case GoalSavings, GoalDebtPayoff, GoalNetWorth, GoalCustom:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownGoalType, s)
}

// Goal is a stored financial goal. CurrentAmount is a manual override and
// takes precedence over linked accounts.
type Goal struct {
	ID                  string     `json:"id"`
	UserID              int64      `json:"user_id"`
	Name                string     `json:"name"`
	Type                GoalType   `json:"type"`
	TargetAmount        float64    `json:"target_amount"`
	TargetDate          *time.Time `json:"target_date,omitempty"`
	AccountIDs          []string   `json:"account_ids,omitempty"`
	MonthlyContribution *float64   `json:"monthly_contribution,omitempty"`
	ExtraPayment        *float64   `json:"extra_payment,omitempty"`
	StartDate           *time.Time `json:"start_date,omitempty"`
	StartAmount         *float64   `json:"start_amount,omitempty"`
	CurrentAmount       *float64   `json:"current_amount,omitempty"`
}
