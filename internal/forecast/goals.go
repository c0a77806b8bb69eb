package forecast

import (
	"fmt"
	"math"
	"time"

	"github.com/Dan9191/forecast-service/internal/models"
)

// DefaultGoalMonths is the chart horizon when none is given
const DefaultGoalMonths = 12

// Goal is a stored goal paired with the progress model of its type. The set of
// implementations is closed: NewGoal is the only way to obtain one.
type Goal interface {
	Record() models.Goal
	outcome(ctx GoalContext) goalOutcome
}

// SavingsGoal tracks savings toward a target, optionally from linked deposit accounts
type SavingsGoal struct{ models.Goal }

// DebtPayoffGoal tracks how much of an original debt has been paid off
type DebtPayoffGoal struct{ models.Goal }

// NetWorthGoal tracks net worth across every account
type NetWorthGoal struct{ models.Goal }

// CustomGoal tracks a manually maintained amount
type CustomGoal struct{ models.Goal }

func (g SavingsGoal) Record() models.Goal    { return g.Goal }
func (g DebtPayoffGoal) Record() models.Goal { return g.Goal }
func (g NetWorthGoal) Record() models.Goal   { return g.Goal }
func (g CustomGoal) Record() models.Goal     { return g.Goal }

// NewGoal wraps a stored goal in the variant matching its type
func NewGoal(g models.Goal) (Goal, error) {
	switch g.Type {
	case models.GoalSavings:
		return SavingsGoal{g}, nil
	case models.GoalDebtPayoff:
		return DebtPayoffGoal{g}, nil
	case models.GoalNetWorth:
		return NetWorthGoal{g}, nil
	case models.GoalCustom:
		return CustomGoal{g}, nil
	}
	return nil, fmt.Errorf("%w: %q", models.ErrUnknownGoalType, g.Type)
}

// GoalContext is the snapshot goal progress is computed against
type GoalContext struct {
	AsOf         time.Time
	Months       int
	Accounts     []models.Account
	Profiles     map[string]models.AccountProfile
	Transactions []models.Transaction
	Summary      models.MonthlySummary
}

func (c GoalContext) horizon() int {
	if c.Months < 1 {
		return DefaultGoalMonths
	}
	return c.Months
}

// searchMonths bounds how far ahead a completion date is looked for
func (c GoalContext) searchMonths() int {
	return max(c.horizon(), DefaultMaxMonths)
}

// linked returns the active accounts among ids, in ids order
func (c GoalContext) linked(ids []string) []models.Account {
	byID := make(map[string]models.Account, len(c.Accounts))
	for _, a := range c.Accounts {
		byID[a.ID] = a
	}
	var out []models.Account
	for _, id := range ids {
		if a, ok := byID[id]; ok && a.IsActive {
			out = append(out, a)
		}
	}
	return out
}

// goalOutcome is what a goal variant contributes before shared post-processing
type goalOutcome struct {
	target       float64 // amount percent complete is measured against
	current      float64
	contribution float64
	series       []float64 // forward values, index 0 is now
	minimumOnly  []float64
	chartTarget  float64
	completion   int      // month offset, -1 when not reached
	historyStart *float64 // value history starts from, else the goal's start amount or zero
}

func (g SavingsGoal) outcome(ctx GoalContext) goalOutcome {
	linked := ctx.linked(g.AccountIDs)
	o := goalOutcome{target: g.TargetAmount, chartTarget: g.TargetAmount}

	estimates := make([]float64, len(linked))
	for i, a := range linked {
		estimates[i] = EstimateMonthlyContribution(a.ID, ctx.Transactions, ctx.AsOf)
		o.contribution += estimates[i]
	}
	if g.MonthlyContribution != nil {
		o.contribution = *g.MonthlyContribution
	}

	switch {
	case g.CurrentAmount != nil:
		o.current = *g.CurrentAmount
		o.series = linearSeries(o.current, o.contribution, ctx.searchMonths())
	case len(linked) > 0:
		contributions := estimates
		if g.MonthlyContribution != nil {
			contributions = redistribute(*g.MonthlyContribution, estimates, linked)
		}
		o.series = make([]float64, ctx.searchMonths()+1)
		for i, a := range linked {
			step := compounding(monthlyRate(depositRate(a, ctx.Profiles[a.ID])), contributions[i])
			for m, b := range foldBalances(a.CurrentBalance, ctx.searchMonths(), step) {
				o.series[m] += b
			}
		}
		o.current = o.series[0]
	default:
		o.current = extrapolate(g.Goal, o.contribution, ctx.AsOf)
		o.series = linearSeries(o.current, o.contribution, ctx.searchMonths())
	}
	o.completion = firstAtLeast(o.series, g.TargetAmount)
	return o
}

func (g DebtPayoffGoal) outcome(ctx GoalContext) goalOutcome {
	linked := ctx.linked(g.AccountIDs)
	debts := make([]models.DebtAccountSummary, len(linked))
	var remaining, minimums float64
	for i, a := range linked {
		debts[i] = DebtSummary(a, ctx.Profiles[a.ID])
		remaining += debts[i].CurrentBalance
		minimums += debts[i].MinimumPayment
	}

	target := remaining
	switch {
	case g.StartAmount != nil:
		target = *g.StartAmount
	case g.TargetAmount > 0:
		target = g.TargetAmount
	}

	extra := 0.0
	if g.ExtraPayment != nil {
		extra = *g.ExtraPayment
	}
	o := goalOutcome{target: target, contribution: minimums + extra, historyStart: &target}
	if len(linked) == 0 && g.MonthlyContribution != nil {
		o.contribution = *g.MonthlyContribution
	}

	switch {
	case g.CurrentAmount != nil:
		o.current = *g.CurrentAmount
	case len(linked) > 0:
		o.current = math.Max(0, target-remaining)
	default:
		o.current = extrapolate(g.Goal, o.contribution, ctx.AsOf)
	}

	if len(linked) == 0 {
		o.series = countdownSeries(math.Max(0, target-o.current), o.contribution, ctx.searchMonths())
		o.completion = firstAtMost(o.series, 0)
		return o
	}

	plan := DebtPlan{
		AsOf:         ctx.AsOf,
		Accounts:     debts,
		ExtraPayment: extra,
		Strategy:     models.Avalanche,
		MaxMonths:    ctx.searchMonths(),
	}
	withExtra := SimulateDebts(plan)
	plan.ExtraPayment = 0
	minimumOnly := SimulateDebts(plan)

	o.series = debtTotals(withExtra, ctx.searchMonths())
	o.minimumOnly = debtTotals(minimumOnly, ctx.searchMonths())
	if last := withExtra[len(withExtra)-1]; last.Total() == 0 {
		o.completion = last.Month
	} else {
		o.completion = -1
	}
	return o
}

func (g NetWorthGoal) outcome(ctx GoalContext) goalOutcome {
	o := goalOutcome{
		target:       g.TargetAmount,
		chartTarget:  g.TargetAmount,
		current:      NetWorth(ctx.Accounts),
		contribution: ctx.Summary.MonthlySurplus,
	}
	if g.CurrentAmount != nil {
		o.current = *g.CurrentAmount
	}
	if g.MonthlyContribution != nil {
		o.contribution = *g.MonthlyContribution
	}

	if series, ok := projectedNetWorth(ctx, o.current); ok {
		o.series = series
	} else {
		o.series = linearSeries(o.current, o.contribution, ctx.searchMonths())
	}
	o.completion = firstAtLeast(o.series, g.TargetAmount)
	return o
}

func (g CustomGoal) outcome(ctx GoalContext) goalOutcome {
	o := goalOutcome{target: g.TargetAmount, chartTarget: g.TargetAmount}
	if g.MonthlyContribution != nil {
		o.contribution = *g.MonthlyContribution
	}
	if g.CurrentAmount != nil {
		o.current = *g.CurrentAmount
	} else {
		o.current = extrapolate(g.Goal, o.contribution, ctx.AsOf)
	}
	o.series = linearSeries(o.current, o.contribution, ctx.searchMonths())
	o.completion = firstAtLeast(o.series, g.TargetAmount)
	return o
}

// projectedNetWorth is the primary net worth model: the account projector's
// overall series, shifted to start at current. It reports false when the
// projector yields no series, and the caller falls back to a linear model.
func projectedNetWorth(ctx GoalContext, current float64) ([]float64, bool) {
	resp, err := ProjectAccounts(ProjectionInput{
		AsOf:            ctx.AsOf,
		Months:          ctx.searchMonths(),
		Accounts:        ctx.Accounts,
		Profiles:        ctx.Profiles,
		Transactions:    ctx.Transactions,
		MonthlyIncome:   ctx.Summary.MonthlyIncome,
		MonthlyExpenses: ctx.Summary.MonthlyExpenses,
	})
	if err != nil || len(resp.Overall) == 0 {
		return nil, false
	}
	offset := current - resp.Overall[0].Balance
	series := make([]float64, len(resp.Overall))
	for m, p := range resp.Overall {
		series[m] = p.Balance + offset
	}
	return series, true
}

// DebtSummary builds the payoff view of a debt account from its latest profile
func DebtSummary(a models.Account, p models.AccountProfile) models.DebtAccountSummary {
	minimum := p.MinimumPayment
	if minimum <= 0 {
		minimum = loanPayment(p, math.Abs(a.CurrentBalance), monthlyRate(loanRate(a, p)))
	}
	return models.DebtAccountSummary{
		AccountID:      a.ID,
		Name:           a.Name,
		CurrentBalance: math.Abs(a.CurrentBalance),
		InterestRate:   loanRate(a, p),
		MinimumPayment: minimum,
	}
}

// SavingsSummary builds the compounding view of a deposit account
func SavingsSummary(a models.Account, p models.AccountProfile, txns []models.Transaction, asOf time.Time) models.SavingsAccountSummary {
	return models.SavingsAccountSummary{
		AccountID:           a.ID,
		Name:                a.Name,
		CurrentBalance:      a.CurrentBalance,
		APY:                 depositRate(a, p),
		MonthlyContribution: EstimateMonthlyContribution(a.ID, txns, asOf),
	}
}

func depositRate(a models.Account, p models.AccountProfile) float64 {
	if a.Type == models.AccountInvestment {
		return rateOfReturn(a, p)
	}
	return savingsAPY(a, p)
}

// redistribute splits an explicit contribution across accounts in proportion
// to their own estimates, else their balances, else evenly
func redistribute(total float64, estimates []float64, accounts []models.Account) []float64 {
	weights := make([]float64, len(accounts))
	var sum float64
	for i, e := range estimates {
		weights[i] = math.Max(0, e)
		sum += weights[i]
	}
	if sum == 0 {
		for i, a := range accounts {
			weights[i] = math.Max(0, a.CurrentBalance)
			sum += weights[i]
		}
	}
	out := make([]float64, len(accounts))
	for i := range out {
		if sum == 0 {
			out[i] = total / float64(len(accounts))
		} else {
			out[i] = total * weights[i] / sum
		}
	}
	return out
}

// extrapolate estimates a goal's current amount from its start and contribution
func extrapolate(g models.Goal, contribution float64, asOf time.Time) float64 {
	start := 0.0
	if g.StartAmount != nil {
		start = *g.StartAmount
	}
	if g.StartDate == nil || !g.StartDate.Before(asOf) {
		return start
	}
	return start + contribution*float64(monthsBetween(*g.StartDate, asOf))
}

func linearSeries(current, contribution float64, months int) []float64 {
	out := make([]float64, months+1)
	for m := range out {
		out[m] = current + contribution*float64(m)
	}
	return out
}

func countdownSeries(remaining, payment float64, months int) []float64 {
	out := make([]float64, months+1)
	for m := range out {
		out[m] = math.Max(0, remaining-payment*float64(m))
	}
	return out
}

// debtTotals extends a simulation to months+1 totals; a finished run stays at zero
func debtTotals(states []DebtState, months int) []float64 {
	out := make([]float64, months+1)
	for m := range out {
		if m < len(states) {
			out[m] = states[m].Total()
		} else {
			out[m] = states[len(states)-1].Total()
		}
	}
	return out
}

func firstAtLeast(series []float64, target float64) int {
	for m, v := range series {
		if v >= target {
			return m
		}
	}
	return -1
}

func firstAtMost(series []float64, target float64) int {
	for m, v := range series {
		if v <= target {
			return m
		}
	}
	return -1
}

// CalculateGoalProgress computes the normalized progress record of a goal
func CalculateGoalProgress(goal Goal, ctx GoalContext) models.GoalProgress {
	g := goal.Record()
	o := goal.outcome(ctx)

	p := models.GoalProgress{
		GoalID:              g.ID,
		Name:                g.Name,
		Type:                g.Type,
		TargetAmount:        roundCents(o.target),
		CurrentAmount:       roundCents(o.current),
		PercentComplete:     percentComplete(o.current, o.target),
		MonthlyContribution: roundCents(o.contribution),
		OnTrack:             onTrack(o.completion, ctx.AsOf, g.TargetDate),
	}
	if o.completion >= 0 {
		date := monthLabel(ctx.AsOf, o.completion)
		p.ProjectedCompletionDate = &date
	}
	p.Projection = append(goalHistory(g, o, ctx.AsOf), goalForward(o, ctx)...)
	return p
}

// CalculateGoals computes progress for every goal in order
func CalculateGoals(goals []models.Goal, ctx GoalContext) (models.GoalProgressResponse, error) {
	resp := models.GoalProgressResponse{
		AsOf:  ctx.AsOf.Format("2006-01-02"),
		Goals: make([]models.GoalProgress, 0, len(goals)),
	}
	for _, record := range goals {
		goal, err := NewGoal(record)
		if err != nil {
			return models.GoalProgressResponse{}, fmt.Errorf("goal %s: %w", record.ID, err)
		}
		resp.Goals = append(resp.Goals, CalculateGoalProgress(goal, ctx))
	}
	return resp, nil
}

func percentComplete(current, target float64) float64 {
	if target <= 0 {
		return 100
	}
	return roundCents(math.Min(100, math.Max(0, current/target*100)))
}

// onTrack: a completion month exists and is no later than the target month
func onTrack(completion int, asOf time.Time, targetDate *time.Time) bool {
	if completion < 0 {
		return false
	}
	if targetDate == nil {
		return true
	}
	return monthKey(monthStart(asOf, completion)) <= monthKey(*targetDate)
}

// goalHistory interpolates actual values from the goal's start to now
func goalHistory(g models.Goal, o goalOutcome, asOf time.Time) []models.GoalPoint {
	if g.StartDate == nil {
		return nil
	}
	n := monthsBetween(*g.StartDate, asOf)
	if n == 0 {
		return nil
	}
	start := 0.0
	switch {
	case o.historyStart != nil:
		start = *o.historyStart
	case g.StartAmount != nil:
		start = *g.StartAmount
	}
	now := o.series[0]

	points := make([]models.GoalPoint, n)
	for i := range points {
		offset := i - n
		points[i] = models.GoalPoint{
			Month:  offset,
			Date:   monthLabel(asOf, offset),
			Target: roundCents(o.chartTarget),
			Actual: roundRef(start + (now-start)*float64(i)/float64(n)),
		}
	}
	return points
}

// goalForward renders the chart horizon of the forward series. The first point
// carries the same value as both projected and actual so the lines join.
func goalForward(o goalOutcome, ctx GoalContext) []models.GoalPoint {
	points := make([]models.GoalPoint, ctx.horizon()+1)
	for m := range points {
		points[m] = models.GoalPoint{
			Month:     m,
			Date:      monthLabel(ctx.AsOf, m),
			Projected: roundRef(o.series[m]),
			Target:    roundCents(o.chartTarget),
		}
		if o.minimumOnly != nil {
			points[m].MinimumOnly = roundRef(o.minimumOnly[m])
		}
	}
	points[0].Actual = roundRef(o.series[0])
	return points
}
