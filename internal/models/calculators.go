package models

// HysVsDebtInput describes a high-yield savings balance and a loan
type HysVsDebtInput struct {
	HysBalance     float64 `json:"hys_balance"`
	HysAPY         float64 `json:"hys_apy"`
	LoanBalance    float64 `json:"loan_balance"`
	LoanAPR        float64 `json:"loan_apr"`
	MonthlyPayment float64 `json:"monthly_payment"`
}

// Recommendations of the HYS-vs-debt calculator
const (
	RecommendPayLoan = "pay-loan"
	RecommendKeepHys = "keep-hys"
)

// ScenarioPoint is one month of both HYS-vs-debt scenarios
type ScenarioPoint struct {
	Month          int     `json:"month"`
	KeepSavings    float64 `json:"keep_savings"`
	KeepLoan       float64 `json:"keep_loan"`
	KeepNet        float64 `json:"keep_net"`
	PayDownSavings float64 `json:"pay_down_savings"`
	PayDownLoan    float64 `json:"pay_down_loan"`
	PayDownNet     float64 `json:"pay_down_net"`
}

// HysVsDebtResult compares keeping savings against paying the loan down now
type HysVsDebtResult struct {
	Recommendation      string          `json:"recommendation"`
	NetBenefit          float64         `json:"net_benefit"`
	BreakEvenMonth      *int            `json:"break_even_month"`
	LumpSum             float64         `json:"lump_sum"`
	KeepLoanPayoffMonth *int            `json:"keep_loan_payoff_month"`
	PayLoanPayoffMonth  *int            `json:"pay_loan_payoff_month"`
	KeepInterestEarned  float64         `json:"keep_interest_earned"`
	KeepInterestPaid    float64         `json:"keep_interest_paid"`
	PayInterestEarned   float64         `json:"pay_interest_earned"`
	PayInterestPaid     float64         `json:"pay_interest_paid"`
	Timeline            []ScenarioPoint `json:"timeline"`
}

// FourOhOneKInput describes a 401(k) plan and contribution
type FourOhOneKInput struct {
	Salary          float64 `json:"salary"`
	ContributionPct float64 `json:"contribution_pct"`
	MatchPct        float64 `json:"match_pct"`
	MatchCapPct     float64 `json:"match_cap_pct"`
	ReturnPct       float64 `json:"return_pct"`
	CurrentBalance  float64 `json:"current_balance"`
}

// ContributionLevel is the annual contribution and match at one contribution rate
type ContributionLevel struct {
	AnnualContribution float64 `json:"annual_contribution"`
	EmployerMatch      float64 `json:"employer_match"`
	FinalBalance       float64 `json:"final_balance"`
}

// RetirementPoint is one year of the 401(k) projection
type RetirementPoint struct {
	Year    int     `json:"year"`
	Current float64 `json:"current"`
	Optimal float64 `json:"optimal"`
	Maximum float64 `json:"maximum"`
}

// FourOhOneKResult compares current, match-optimal and maximum contributions
type FourOhOneKResult struct {
	Current          ContributionLevel `json:"current"`
	Optimal          ContributionLevel `json:"optimal"`
	Maximum          ContributionLevel `json:"maximum"`
	MoneyLeftOnTable float64           `json:"money_left_on_table"`
	Projection       []RetirementPoint `json:"projection"`
}
