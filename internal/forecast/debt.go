package forecast

import (
	"math"
	"sort"
	"time"

	"github.com/Dan9191/forecast-service/internal/models"
)

// DefaultMaxMonths caps payoff simulations at thirty years
const DefaultMaxMonths = 360

// DebtPlan describes a payoff simulation. Order, when set, overrides the
// strategy for the accounts it lists; unlisted accounts follow the strategy.
type DebtPlan struct {
	AsOf         time.Time
	Accounts     []models.DebtAccountSummary
	ExtraPayment float64
	Strategy     models.PayoffStrategy
	Order        []string
	MaxMonths    int
}

// DebtState is the state of every debt after a month of the simulation
type DebtState struct {
	Month    int
	Balances []float64
	Interest []float64
	Payments []float64
}

// Total is the summed remaining balance
func (s DebtState) Total() float64 {
	var total float64
	for _, b := range s.Balances {
		total += b
	}
	return total
}

// InitialDebtState is month 0: current balances, nothing accrued or paid
func InitialDebtState(accounts []models.DebtAccountSummary) DebtState {
	s := DebtState{
		Balances: make([]float64, len(accounts)),
		Interest: make([]float64, len(accounts)),
		Payments: make([]float64, len(accounts)),
	}
	for i, a := range accounts {
		s.Balances[i] = math.Max(0, a.CurrentBalance)
	}
	return s
}

// StepDebt advances the simulation one month without modifying prev.
// Interest accrues first, then minimum payments, then the extra payment pool
// goes to one account at a time in priority order; whatever is left after an
// account reaches zero rolls to the next account in the same month.
func StepDebt(prev DebtState, plan DebtPlan) DebtState {
	n := len(plan.Accounts)
	next := DebtState{
		Month:    prev.Month + 1,
		Balances: make([]float64, n),
		Interest: make([]float64, n),
		Payments: make([]float64, n),
	}
	for i, a := range plan.Accounts {
		b := prev.Balances[i]
		if b <= 0 {
			continue
		}
		interest := b * monthlyRate(a.InterestRate)
		b += interest
		pay := math.Min(a.MinimumPayment, b)
		next.Balances[i] = settle(b - pay)
		next.Interest[i] = interest
		next.Payments[i] = pay
	}

	pool := plan.ExtraPayment
	if pool <= 0 {
		return next
	}
	for _, i := range payoffPriority(next.Balances, plan) {
		if pool <= 0 {
			break
		}
		pay := math.Min(pool, next.Balances[i])
		next.Balances[i] = settle(next.Balances[i] - pay)
		next.Payments[i] += pay
		pool -= pay
	}
	return next
}

// payoffPriority orders accounts with a remaining balance for extra payments
func payoffPriority(balances []float64, plan DebtPlan) []int {
	rank := make(map[string]int, len(plan.Order))
	for i, id := range plan.Order {
		rank[id] = i
	}

	var idx []int
	for i, b := range balances {
		if b > 0 {
			idx = append(idx, i)
		}
	}
	sort.SliceStable(idx, func(x, y int) bool {
		i, j := idx[x], idx[y]
		ri, iListed := rank[plan.Accounts[i].AccountID]
		rj, jListed := rank[plan.Accounts[j].AccountID]
		if iListed || jListed {
			if iListed && jListed {
				return ri < rj
			}
			return iListed
		}
		return strategyLess(plan.Strategy, plan.Accounts[i].InterestRate, balances[i], plan.Accounts[j].InterestRate, balances[j])
	})
	return idx
}

// strategyLess reports whether debt a is paid before debt b
func strategyLess(strategy models.PayoffStrategy, rateA, balA, rateB, balB float64) bool {
	switch strategy {
	case models.Avalanche:
		if rateA != rateB {
			return rateA > rateB
		}
		return balA < balB
	case models.Snowball:
		if balA != balB {
			return balA < balB
		}
		return rateA > rateB
	}
	panic("forecast: unmapped payoff strategy " + string(strategy))
}

// SimulateDebts folds StepDebt until every balance is zero or the month cap is
// reached, returning every state including month 0.
func SimulateDebts(plan DebtPlan) []DebtState {
	maxMonths := plan.MaxMonths
	if maxMonths <= 0 {
		maxMonths = DefaultMaxMonths
	}
	states := []DebtState{InitialDebtState(plan.Accounts)}
	for s := states[0]; s.Total() > 0 && s.Month < maxMonths; {
		s = StepDebt(s, plan)
		states = append(states, s)
	}
	return states
}

// SimulateDebtPayoff builds per-account and aggregate payoff schedules.
// DebtFreeDate stays nil when the cap is reached with debt remaining. Callers
// wanting a minimum-only baseline run it again with ExtraPayment zero.
func SimulateDebtPayoff(plan DebtPlan) models.DebtPayoffResult {
	states := SimulateDebts(plan)

	result := models.DebtPayoffResult{
		Strategy:          plan.Strategy,
		ExtraPayment:      plan.ExtraPayment,
		Accounts:          make([]models.AccountPayoff, len(plan.Accounts)),
		AggregateSchedule: make([]models.BalancePoint, len(states)),
	}
	for i, a := range plan.Accounts {
		result.Accounts[i] = models.AccountPayoff{
			AccountID:    a.AccountID,
			Name:         a.Name,
			InterestRate: a.InterestRate,
			Schedule:     make([]models.PayoffPoint, len(states)),
		}
	}

	var totalInterest, totalPaid float64
	for _, s := range states {
		date := monthLabel(plan.AsOf, s.Month)
		for i := range plan.Accounts {
			acc := &result.Accounts[i]
			acc.Schedule[s.Month] = models.PayoffPoint{
				Month:    s.Month,
				Date:     date,
				Balance:  roundCents(s.Balances[i]),
				Interest: roundCents(s.Interest[i]),
				Payment:  roundCents(s.Payments[i]),
			}
			acc.TotalInterest += s.Interest[i]
			if acc.PayoffMonth == nil && s.Balances[i] == 0 {
				m := s.Month
				acc.PayoffMonth = &m
			}
			totalInterest += s.Interest[i]
			totalPaid += s.Payments[i]
		}
		result.AggregateSchedule[s.Month] = models.BalancePoint{
			Month:   s.Month,
			Date:    date,
			Balance: roundCents(s.Total()),
		}
	}
	for i := range result.Accounts {
		result.Accounts[i].TotalInterest = roundCents(result.Accounts[i].TotalInterest)
	}

	last := states[len(states)-1]
	if last.Total() == 0 {
		m := last.Month
		date := monthLabel(plan.AsOf, m)
		result.MonthsToPayoff = &m
		result.DebtFreeDate = &date
	}
	result.TotalInterest = roundCents(totalInterest)
	result.TotalPaid = roundCents(totalPaid)
	return result
}

// CompareDebtStrategies runs avalanche, snowball and a minimum-only baseline
// over the same debts and reports what each strategy saves.
func CompareDebtStrategies(plan DebtPlan) models.DebtComparison {
	baselinePlan := plan
	baselinePlan.ExtraPayment = 0
	baselinePlan.Strategy = models.Avalanche
	baselinePlan.Order = nil
	baseline := SimulateDebtPayoff(baselinePlan)

	outcome := func(strategy models.PayoffStrategy) models.StrategyOutcome {
		p := plan
		p.Strategy = strategy
		p.Order = nil
		r := SimulateDebtPayoff(p)
		return models.StrategyOutcome{
			Strategy:       strategy,
			DebtFreeDate:   r.DebtFreeDate,
			MonthsToPayoff: r.MonthsToPayoff,
			TotalInterest:  r.TotalInterest,
			InterestSaved:  roundCents(baseline.TotalInterest - r.TotalInterest),
			MonthsSaved:    monthsSaved(baseline.MonthsToPayoff, r.MonthsToPayoff, plan.MaxMonths),
		}
	}

	cmp := models.DebtComparison{
		ExtraPayment: plan.ExtraPayment,
		Baseline: models.StrategyOutcome{
			Strategy:       models.MinimumOnly,
			DebtFreeDate:   baseline.DebtFreeDate,
			MonthsToPayoff: baseline.MonthsToPayoff,
			TotalInterest:  baseline.TotalInterest,
		},
		Avalanche: outcome(models.Avalanche),
		Snowball:  outcome(models.Snowball),
	}
	cmp.Recommended = models.Avalanche
	if cmp.Snowball.TotalInterest < cmp.Avalanche.TotalInterest {
		cmp.Recommended = models.Snowball
	}
	return cmp
}

// monthsSaved treats an unfinished run as taking the whole cap
func monthsSaved(baseline, strategy *int, maxMonths int) int {
	if maxMonths <= 0 {
		maxMonths = DefaultMaxMonths
	}
	b, s := maxMonths, maxMonths
	if baseline != nil {
		b = *baseline
	}
	if strategy != nil {
		s = *strategy
	}
	return b - s
}
