package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Dan9191/forecast-service/internal/config"
	"github.com/Dan9191/forecast-service/internal/forecast"
	"github.com/Dan9191/forecast-service/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=service.go -destination=mock_store_test.go -package=service

// Store is the read side of the finance database
type Store interface {
	CreateUser(ctx context.Context, user *models.User) error
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	ListAccounts(ctx context.Context, userID int64) ([]models.Account, error)
	ListAccountProfiles(ctx context.Context, userID int64) (map[string]models.AccountProfile, error)
	ListTransactions(ctx context.Context, userID int64, from, to time.Time) ([]models.Transaction, error)
	ListActiveBills(ctx context.Context, userID int64) ([]models.Bill, error)
	ListBudgets(ctx context.Context, userID int64, month time.Time) ([]models.Budget, error)
	ListIncomeSources(ctx context.Context, userID int64) ([]models.IncomeSource, error)
	ListGoals(ctx context.Context, userID int64) ([]models.Goal, error)
	FindGoal(ctx context.Context, userID int64, goalID string) (models.Goal, error)
}

// RateProvider returns a reference annual rate in percent
type RateProvider interface {
	GetKeyRate(ctx context.Context) (float64, error)
}

// Service handles business logic
type Service struct {
	store  Store
	rates  RateProvider
	log    *logrus.Logger
	config *config.Config
	now    func() time.Time
}

// NewService initializes a new service
func NewService(store Store, rates RateProvider, log *logrus.Logger, cfg *config.Config) *Service {
	return &Service{store: store, rates: rates, log: log, config: cfg, now: time.Now}
}

// Register creates a new user with hashed password
func (s *Service) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, fmt.Errorf("username, email and password are required: %w", models.ErrInvalidInput)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	s.log.Infof("User registered: %s", user.Email)
	return user, nil
}

// Login authenticates a user and returns a JWT token
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.store.FindUserByEmail(ctx, email)
	if err != nil {
		s.log.WithError(err).Debugf("Login lookup failed for %s", email)
		return "", models.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", models.ErrInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   fmt.Sprintf("%d", user.ID),
		ExpiresAt: jwt.NewNumericDate(s.now().Add(24 * time.Hour)),
	})
	tokenString, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	s.log.Infof("User logged in: %s", user.Email)
	return tokenString, nil
}

// snapshot is everything a forecast reads for one user at one instant
type snapshot struct {
	asOf          time.Time
	accounts      []models.Account
	profiles      map[string]models.AccountProfile
	transactions  []models.Transaction
	bills         []models.Bill
	budgets       []models.Budget
	incomeSources []models.IncomeSource
}

// transactionWindow covers both income detection and contribution estimates
func (s *Service) transactionWindow(asOf time.Time) (time.Time, time.Time) {
	months := s.config.IncomeLookbackMonths
	if months < 3 {
		months = 3
	}
	return asOf.AddDate(0, -months, 0), asOf
}

func (s *Service) loadSnapshot(ctx context.Context, userID int64) (*snapshot, error) {
	snap := &snapshot{asOf: s.now().UTC()}
	from, to := s.transactionWindow(snap.asOf)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		snap.accounts, err = s.store.ListAccounts(ctx, userID)
		return err
	})
	g.Go(func() (err error) {
		snap.profiles, err = s.store.ListAccountProfiles(ctx, userID)
		return err
	})
	g.Go(func() (err error) {
		snap.transactions, err = s.store.ListTransactions(ctx, userID, from, to)
		return err
	})
	g.Go(func() (err error) {
		snap.bills, err = s.store.ListActiveBills(ctx, userID)
		return err
	})
	g.Go(func() (err error) {
		snap.budgets, err = s.store.ListBudgets(ctx, userID, snap.asOf)
		return err
	})
	g.Go(func() (err error) {
		snap.incomeSources, err = s.store.ListIncomeSources(ctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load finance data for user %d: %w", userID, err)
	}
	return snap, nil
}

func (s *Service) incomeOptions(asOf time.Time) forecast.IncomeOptions {
	return forecast.IncomeOptions{
		AsOf:           asOf,
		LookbackMonths: s.config.IncomeLookbackMonths,
		MinAmount:      s.config.IncomeMinAmount,
		MinOccurrences: s.config.IncomeMinOccurrences,
	}
}

func (s *Service) summarize(snap *snapshot) models.MonthlySummary {
	return forecast.Summarize(forecast.SummaryInput{
		Transactions:  snap.transactions,
		IncomeSources: snap.incomeSources,
		Bills:         snap.bills,
		Budgets:       snap.budgets,
		Income:        s.incomeOptions(snap.asOf),
	})
}

// horizon applies the configured default and cap. Negative values pass
// through so the projector rejects them.
func (s *Service) horizon(months int) int {
	switch {
	case months == 0:
		return s.config.ProjectionMonths
	case months > s.config.MaxProjectionMonths:
		return s.config.MaxProjectionMonths
	}
	return months
}

// Summary returns monthly income, expenses and surplus
func (s *Service) Summary(ctx context.Context, userID int64) (models.MonthlySummary, error) {
	snap, err := s.loadSnapshot(ctx, userID)
	if err != nil {
		return models.MonthlySummary{}, err
	}
	summary := s.summarize(snap)
	s.log.WithFields(logrus.Fields{
		"user_id": userID,
		"source":  summary.IncomeSource,
	}).Debug("Computed monthly summary")
	return summary, nil
}

// IncomePatterns returns recurring deposits detected in recent transactions
func (s *Service) IncomePatterns(ctx context.Context, userID int64) ([]models.DetectedIncomePattern, error) {
	asOf := s.now().UTC()
	from, to := s.transactionWindow(asOf)
	txns, err := s.store.ListTransactions(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	patterns := forecast.DetectIncomePatterns(txns, s.incomeOptions(asOf))
	s.log.WithFields(logrus.Fields{
		"user_id":  userID,
		"patterns": len(patterns),
	}).Debug("Detected income patterns")
	return patterns, nil
}

// ProjectionRequest tunes an account projection
type ProjectionRequest struct {
	Months               int
	IncomeAdjustmentPct  float64
	ExpenseAdjustmentPct float64
	Exclude              []string
}

// AccountProjections projects every active account and the overall net position
func (s *Service) AccountProjections(ctx context.Context, userID int64, req ProjectionRequest) (models.AccountProjectionsResponse, error) {
	snap, err := s.loadSnapshot(ctx, userID)
	if err != nil {
		return models.AccountProjectionsResponse{}, err
	}
	summary := s.summarize(snap)
	months := s.horizon(req.Months)

	resp, err := forecast.ProjectAccounts(forecast.ProjectionInput{
		AsOf:                 snap.asOf,
		Months:               months,
		Accounts:             snap.accounts,
		Profiles:             snap.profiles,
		Transactions:         snap.transactions,
		MonthlyIncome:        summary.MonthlyIncome,
		MonthlyExpenses:      summary.MonthlyExpenses,
		IncomeAdjustmentPct:  req.IncomeAdjustmentPct,
		ExpenseAdjustmentPct: req.ExpenseAdjustmentPct,
		Excluded:             req.Exclude,
	})
	if err != nil {
		return resp, fmt.Errorf("months=%d: %w", req.Months, err)
	}
	s.log.WithFields(logrus.Fields{
		"user_id":  userID,
		"months":   months,
		"accounts": len(resp.Accounts),
	}).Info("Projected accounts")
	return resp, nil
}

// DebtPayoffRequest selects debts and a strategy to simulate
type DebtPayoffRequest struct {
	Strategy     string   `json:"strategy"`
	ExtraPayment float64  `json:"extra_payment"`
	AccountIDs   []string `json:"account_ids"`
	Order        []string `json:"order"`
	MaxMonths    int      `json:"max_months"`
}

func (s *Service) debtPlan(ctx context.Context, userID int64, extra float64, accountIDs []string) (forecast.DebtPlan, error) {
	if extra < 0 {
		return forecast.DebtPlan{}, fmt.Errorf("extra payment %.2f: %w", extra, models.ErrInvalidInput)
	}
	accounts, err := s.store.ListAccounts(ctx, userID)
	if err != nil {
		return forecast.DebtPlan{}, err
	}
	profiles, err := s.store.ListAccountProfiles(ctx, userID)
	if err != nil {
		return forecast.DebtPlan{}, err
	}

	wanted := make(map[string]bool, len(accountIDs))
	for _, id := range accountIDs {
		wanted[id] = true
	}
	plan := forecast.DebtPlan{
		AsOf:         s.now().UTC(),
		ExtraPayment: extra,
		MaxMonths:    s.config.DebtMaxMonths,
	}
	for _, a := range accounts {
		if !a.IsActive || !a.Type.IsLiability() || a.CurrentBalance == 0 {
			continue
		}
		if len(wanted) > 0 {
			if !wanted[a.ID] {
				continue
			}
			delete(wanted, a.ID)
		}
		plan.Accounts = append(plan.Accounts, forecast.DebtSummary(a, profiles[a.ID]))
	}
	if len(wanted) > 0 {
		missing := make([]string, 0, len(wanted))
		for id := range wanted {
			missing = append(missing, id)
		}
		sort.Strings(missing)
		return plan, fmt.Errorf("debt accounts %s %w", strings.Join(missing, ", "), models.ErrNotFound)
	}
	return plan, nil
}

// DebtPayoff simulates paying down the user's debts
func (s *Service) DebtPayoff(ctx context.Context, userID int64, req DebtPayoffRequest) (models.DebtPayoffResult, error) {
	strategy := models.Avalanche
	if req.Strategy != "" {
		var err error
		if strategy, err = models.ParsePayoffStrategy(req.Strategy); err != nil {
			return models.DebtPayoffResult{}, err
		}
	}
	plan, err := s.debtPlan(ctx, userID, req.ExtraPayment, req.AccountIDs)
	if err != nil {
		return models.DebtPayoffResult{}, err
	}
	plan.Strategy = strategy
	plan.Order = req.Order
	if req.MaxMonths > 0 && req.MaxMonths < plan.MaxMonths {
		plan.MaxMonths = req.MaxMonths
	}

	result := forecast.SimulateDebtPayoff(plan)
	s.log.WithFields(logrus.Fields{
		"user_id":  userID,
		"strategy": strategy,
		"debts":    len(plan.Accounts),
	}).Info("Simulated debt payoff")
	return result, nil
}

// CompareDebts compares avalanche and snowball against minimum payments
func (s *Service) CompareDebts(ctx context.Context, userID int64, extra float64) (models.DebtComparison, error) {
	plan, err := s.debtPlan(ctx, userID, extra, nil)
	if err != nil {
		return models.DebtComparison{}, err
	}
	comparison := forecast.CompareDebtStrategies(plan)
	s.log.WithFields(logrus.Fields{
		"user_id":     userID,
		"recommended": comparison.Recommended,
	}).Info("Compared debt strategies")
	return comparison, nil
}

// SavingsRequest overrides the estimated contribution or rate of a savings projection
type SavingsRequest struct {
	Months       int
	Contribution *float64
	APY          *float64
}

// SavingsProjection compounds one deposit account forward
func (s *Service) SavingsProjection(ctx context.Context, userID int64, accountID string, req SavingsRequest) (models.SavingsProjectionResponse, error) {
	snap, err := s.loadSnapshot(ctx, userID)
	if err != nil {
		return models.SavingsProjectionResponse{}, err
	}

	var account *models.Account
	for i := range snap.accounts {
		if snap.accounts[i].ID == accountID && snap.accounts[i].IsActive {
			account = &snap.accounts[i]
			break
		}
	}
	if account == nil {
		return models.SavingsProjectionResponse{}, fmt.Errorf("account %s %w", accountID, models.ErrNotFound)
	}
	if account.Type.IsLiability() {
		return models.SavingsProjectionResponse{}, fmt.Errorf("account %s is a liability: %w", accountID, models.ErrInvalidInput)
	}

	summary := forecast.SavingsSummary(*account, snap.profiles[accountID], snap.transactions, snap.asOf)
	if req.Contribution != nil {
		summary.MonthlyContribution = *req.Contribution
	}
	if req.APY != nil {
		summary.APY = *req.APY
	}

	months := s.horizon(req.Months)
	resp, err := forecast.ProjectSavings(forecast.SavingsInput{AsOf: snap.asOf, Account: summary, Months: months})
	if err != nil {
		return resp, fmt.Errorf("months=%d: %w", req.Months, err)
	}
	s.log.WithFields(logrus.Fields{
		"user_id":    userID,
		"account_id": accountID,
		"months":     months,
	}).Info("Projected savings")
	return resp, nil
}

func (s *Service) goalContext(snap *snapshot) forecast.GoalContext {
	return forecast.GoalContext{
		AsOf:         snap.asOf,
		Months:       s.config.ProjectionMonths,
		Accounts:     snap.accounts,
		Profiles:     snap.profiles,
		Transactions: snap.transactions,
		Summary:      s.summarize(snap),
	}
}

// GoalProgress computes progress of every goal of a user
func (s *Service) GoalProgress(ctx context.Context, userID int64) (models.GoalProgressResponse, error) {
	goals, err := s.store.ListGoals(ctx, userID)
	if err != nil {
		return models.GoalProgressResponse{}, err
	}
	snap, err := s.loadSnapshot(ctx, userID)
	if err != nil {
		return models.GoalProgressResponse{}, err
	}
	resp, err := forecast.CalculateGoals(goals, s.goalContext(snap))
	if err != nil {
		return resp, err
	}
	s.log.WithFields(logrus.Fields{
		"user_id": userID,
		"goals":   len(resp.Goals),
	}).Info("Calculated goal progress")
	return resp, nil
}

// Goal computes progress of a single goal
func (s *Service) Goal(ctx context.Context, userID int64, goalID string) (models.GoalProgress, error) {
	record, err := s.store.FindGoal(ctx, userID, goalID)
	if err != nil {
		return models.GoalProgress{}, err
	}
	goal, err := forecast.NewGoal(record)
	if err != nil {
		return models.GoalProgress{}, err
	}
	snap, err := s.loadSnapshot(ctx, userID)
	if err != nil {
		return models.GoalProgress{}, err
	}
	return forecast.CalculateGoalProgress(goal, s.goalContext(snap)), nil
}

// HysVsDebtRequest is a HYS-vs-debt input whose savings rate may be left to the reference rate
type HysVsDebtRequest struct {
	HysBalance     float64  `json:"hys_balance"`
	HysAPY         *float64 `json:"hys_apy"`
	LoanBalance    float64  `json:"loan_balance"`
	LoanAPR        float64  `json:"loan_apr"`
	MonthlyPayment float64  `json:"monthly_payment"`
}

// HysVsDebt compares keeping savings against paying a loan down with them.
// A missing savings rate defaults to the reference rate.
func (s *Service) HysVsDebt(ctx context.Context, req HysVsDebtRequest) (models.HysVsDebtResult, error) {
	if req.HysBalance < 0 || req.LoanBalance < 0 || req.LoanAPR < 0 || req.MonthlyPayment < 0 {
		return models.HysVsDebtResult{}, fmt.Errorf("balances, rates and payment must not be negative: %w", models.ErrInvalidInput)
	}
	in := models.HysVsDebtInput{
		HysBalance:     req.HysBalance,
		LoanBalance:    req.LoanBalance,
		LoanAPR:        req.LoanAPR,
		MonthlyPayment: req.MonthlyPayment,
	}
	if req.HysAPY != nil {
		in.HysAPY = *req.HysAPY
	} else {
		rate, err := s.rates.GetKeyRate(ctx)
		if err != nil {
			return models.HysVsDebtResult{}, fmt.Errorf("failed to get reference rate: %w", err)
		}
		in.HysAPY = rate
	}
	if in.HysAPY < 0 {
		return models.HysVsDebtResult{}, fmt.Errorf("hys apy %.2f: %w", in.HysAPY, models.ErrInvalidInput)
	}

	result := forecast.CompareHysVsDebt(in)
	s.log.WithFields(logrus.Fields{
		"hys_apy":        in.HysAPY,
		"loan_apr":       in.LoanAPR,
		"recommendation": result.Recommendation,
	}).Info("Compared HYS against debt")
	return result, nil
}

// FourOhOneK compares current, match-capturing and maximum 401(k) contributions
func (s *Service) FourOhOneK(in models.FourOhOneKInput) (models.FourOhOneKResult, error) {
	if in.Salary <= 0 {
		return models.FourOhOneKResult{}, fmt.Errorf("salary must be positive: %w", models.ErrInvalidInput)
	}
	if in.ContributionPct < 0 || in.MatchPct < 0 || in.MatchCapPct < 0 || in.CurrentBalance < 0 {
		return models.FourOhOneKResult{}, fmt.Errorf("percentages and balance must not be negative: %w", models.ErrInvalidInput)
	}
	return forecast.OptimizeFourOhOneK(in), nil
}

// ReferenceRate returns the current reference rate
func (s *Service) ReferenceRate(ctx context.Context) (float64, error) {
	return s.rates.GetKeyRate(ctx)
}
