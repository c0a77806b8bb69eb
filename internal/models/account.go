package models

import "fmt"

// AccountType is the kind of account a balance belongs to
type AccountType string

const (
	AccountChecking         AccountType = "checking"
	AccountSavings          AccountType = "savings"
	AccountHighYieldSavings AccountType = "high_yield_savings"
	AccountInvestment       AccountType = "investment"
	AccountCredit           AccountType = "credit"
	AccountLoan             AccountType = "loan"
	AccountRealEstate       AccountType = "real_estate"
	AccountOther            AccountType = "other"
)

// ParseAccountType validates a stored account type
func ParseAccountType(s string) (AccountType, error) {
	switch t := AccountType(s); t {
	case AccountChecking, AccountSavings, AccountHighYieldSavings, AccountInvestment,
		AccountCredit, AccountLoan, AccountRealEstate, AccountOther:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAccountType, s)
}

// IsLiability reports whether balances of this type are owed rather than owned
func (t AccountType) IsLiability() bool {
	return t == AccountCredit || t == AccountLoan
}

// Classification returns "asset" or "liability"
func (t AccountType) Classification() string {
	if t.IsLiability() {
		return "liability"
	}
	return "asset"
}

// Account is a decrypted account record. Liability balances are stored as the
// positive amount owed.
type Account struct {
	ID             string      `json:"id"`
	UserID         int64       `json:"user_id"`
	Name           string      `json:"name"`
	Type           AccountType `json:"type"`
	CurrentBalance float64     `json:"current_balance"`
	InterestRate   *float64    `json:"interest_rate,omitempty"` // annual %
	IsFavorite     bool        `json:"is_favorite"`
	IsActive       bool        `json:"is_active"`
}

// AccountProfile is the latest rate/terms record of an account
type AccountProfile struct {
	AccountID      string  `json:"account_id"`
	APY            float64 `json:"apy"`
	RateOfReturn   float64 `json:"rate_of_return"`
	InterestRate   float64 `json:"interest_rate"`
	MonthlyPayment float64 `json:"monthly_payment"`
	MinimumPayment float64 `json:"minimum_payment"`
	TermMonths     int     `json:"term_months"`
}
