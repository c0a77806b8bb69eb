package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Dan9191/forecast-service/internal/models"
	"github.com/Dan9191/forecast-service/internal/utils"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// Repository provides read access to decrypted finance records
type Repository struct {
	db  *sql.DB
	key []byte
}

// NewRepository initializes a new repository. key decrypts encrypted columns.
func NewRepository(db *sql.DB, key []byte) *Repository {
	return &Repository{db: db, key: key}
}

// CreateUser creates a new user in the database
func (r *Repository) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO finance.users (username, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query, user.Username, user.Email, user.PasswordHash).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindUserByEmail retrieves a user by email
func (r *Repository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT id, username, email, password_hash, created_at, updated_at
		FROM finance.users
		WHERE email = $1`
	err := r.db.QueryRowContext(ctx, query, email).
		Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user %w", models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// ListUsers returns every user, for scheduled jobs
func (r *Repository) ListUsers(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, username, email, created_at, updated_at
		FROM finance.users
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// ListAccounts returns all accounts of a user
func (r *Repository) ListAccounts(ctx context.Context, userID int64) ([]models.Account, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, name, type, current_balance, interest_rate, is_favorite, is_active
		FROM finance.accounts
		WHERE user_id = $1
		ORDER BY created_at, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []models.Account
	for rows.Next() {
		var (
			a       models.Account
			typ     string
			balance decimal.Decimal
			rate    decimal.NullDecimal
		)
		if err := rows.Scan(&a.ID, &a.UserID, &a.Name, &typ, &balance, &rate, &a.IsFavorite, &a.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		if a.Type, err = models.ParseAccountType(typ); err != nil {
			return nil, fmt.Errorf("account %s: %w", a.ID, err)
		}
		a.CurrentBalance = balance.InexactFloat64()
		a.InterestRate = nullFloat(rate)
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

// ListAccountProfiles returns the latest profile of each account of a user, keyed by account id
func (r *Repository) ListAccountProfiles(ctx context.Context, userID int64) (map[string]models.AccountProfile, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT DISTINCT ON (p.account_id)
			p.account_id, p.apy, p.rate_of_return, p.interest_rate,
			p.monthly_payment, p.minimum_payment, p.term_months
		FROM finance.account_profiles p
		JOIN finance.accounts a ON a.id = p.account_id
		WHERE a.user_id = $1
		ORDER BY p.account_id, p.effective_date DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list account profiles: %w", err)
	}
	defer rows.Close()

	profiles := make(map[string]models.AccountProfile)
	for rows.Next() {
		var (
			p                                models.AccountProfile
			apy, ror, rate, payment, minimum decimal.NullDecimal
			term                             sql.NullInt64
		)
		if err := rows.Scan(&p.AccountID, &apy, &ror, &rate, &payment, &minimum, &term); err != nil {
			return nil, fmt.Errorf("failed to scan account profile: %w", err)
		}
		p.APY = apy.Decimal.InexactFloat64()
		p.RateOfReturn = ror.Decimal.InexactFloat64()
		p.InterestRate = rate.Decimal.InexactFloat64()
		p.MonthlyPayment = payment.Decimal.InexactFloat64()
		p.MinimumPayment = minimum.Decimal.InexactFloat64()
		p.TermMonths = int(term.Int64)
		profiles[p.AccountID] = p
	}
	return profiles, rows.Err()
}

// ListTransactions returns a user's transactions dated within [from, to], oldest first.
// Descriptions are stored encrypted and decrypted here.
func (r *Repository) ListTransactions(ctx context.Context, userID int64, from, to time.Time) ([]models.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT t.id, t.account_id, t.date, t.description_enc, t.amount
		FROM finance.transactions t
		JOIN finance.accounts a ON a.id = t.account_id
		WHERE a.user_id = $1 AND t.date BETWEEN $2 AND $3
		ORDER BY t.date, t.id`, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var txns []models.Transaction
	for rows.Next() {
		var (
			t         models.Transaction
			encrypted sql.NullString
			amount    decimal.Decimal
		)
		if err := rows.Scan(&t.ID, &t.AccountID, &t.Date, &encrypted, &amount); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		if encrypted.Valid && encrypted.String != "" {
			if t.Description, err = utils.Decrypt(encrypted.String, r.key); err != nil {
				return nil, fmt.Errorf("failed to decrypt transaction %d: %w", t.ID, err)
			}
		}
		t.Amount = amount.InexactFloat64()
		txns = append(txns, t)
	}
	return txns, rows.Err()
}

// ListActiveBills returns the active bills of a user
func (r *Repository) ListActiveBills(ctx context.Context, userID int64) ([]models.Bill, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, amount, frequency, category, is_active
		FROM finance.bills
		WHERE user_id = $1 AND is_active
		ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	defer rows.Close()

	var bills []models.Bill
	for rows.Next() {
		var (
			b      models.Bill
			amount decimal.Decimal
			freq   string
		)
		if err := rows.Scan(&b.ID, &b.Name, &amount, &freq, &b.Category, &b.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan bill: %w", err)
		}
		if b.Frequency, err = models.ParseFrequency(freq); err != nil {
			return nil, fmt.Errorf("bill %d: %w", b.ID, err)
		}
		b.Amount = amount.InexactFloat64()
		bills = append(bills, b)
	}
	return bills, rows.Err()
}

// ListBudgets returns a user's budgets for the month containing month
func (r *Repository) ListBudgets(ctx context.Context, userID int64, month time.Time) ([]models.Budget, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, amount, frequency, category, is_active
		FROM finance.budgets
		WHERE user_id = $1 AND month = date_trunc('month', $2::timestamptz)::date
		ORDER BY id`, userID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	defer rows.Close()

	var budgets []models.Budget
	for rows.Next() {
		var (
			b      models.Budget
			amount decimal.Decimal
			freq   string
		)
		if err := rows.Scan(&b.ID, &amount, &freq, &b.Category, &b.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan budget: %w", err)
		}
		if b.Frequency, err = models.ParseFrequency(freq); err != nil {
			return nil, fmt.Errorf("budget %d: %w", b.ID, err)
		}
		b.Amount = amount.InexactFloat64()
		budgets = append(budgets, b)
	}
	return budgets, rows.Err()
}

// ListIncomeSources returns a user's manual income sources
func (r *Repository) ListIncomeSources(ctx context.Context, userID int64) ([]models.IncomeSource, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, amount, frequency, is_active
		FROM finance.income_sources
		WHERE user_id = $1
		ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list income sources: %w", err)
	}
	defer rows.Close()

	var sources []models.IncomeSource
	for rows.Next() {
		var (
			s      models.IncomeSource
			amount decimal.Decimal
			freq   string
		)
		if err := rows.Scan(&s.ID, &s.Name, &amount, &freq, &s.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan income source: %w", err)
		}
		if s.Frequency, err = models.ParseFrequency(freq); err != nil {
			return nil, fmt.Errorf("income source %d: %w", s.ID, err)
		}
		s.Amount = amount.InexactFloat64()
		sources = append(sources, s)
	}
	return sources, rows.Err()
}

const goalColumns = `
	id, user_id, name, type, target_amount, target_date, account_ids,
	monthly_contribution, extra_payment, start_date, start_amount, current_amount`

// ListGoals returns all goals of a user
func (r *Repository) ListGoals(ctx context.Context, userID int64) ([]models.Goal, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT`+goalColumns+`
		FROM finance.goals
		WHERE user_id = $1
		ORDER BY created_at, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	defer rows.Close()

	var goals []models.Goal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

// FindGoal retrieves one goal of a user
func (r *Repository) FindGoal(ctx context.Context, userID int64, goalID string) (models.Goal, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT`+goalColumns+`
		FROM finance.goals
		WHERE user_id = $1 AND id = $2`, userID, goalID)
	g, err := scanGoal(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Goal{}, fmt.Errorf("goal %s %w", goalID, models.ErrNotFound)
	}
	return g, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanGoal(s scanner) (models.Goal, error) {
	var (
		g                                   models.Goal
		typ                                 string
		target                              decimal.Decimal
		contribution, extra, start, current decimal.NullDecimal
		targetDate, startDate               sql.NullTime
		accountIDs                          []string
	)
	err := s.Scan(&g.ID, &g.UserID, &g.Name, &typ, &target, &targetDate, pq.Array(&accountIDs),
		&contribution, &extra, &startDate, &start, &current)
	if errors.Is(err, sql.ErrNoRows) {
		return g, err
	}
	if err != nil {
		return g, fmt.Errorf("failed to scan goal: %w", err)
	}
	if g.Type, err = models.ParseGoalType(typ); err != nil {
		return g, fmt.Errorf("goal %s: %w", g.ID, err)
	}
	g.TargetAmount = target.InexactFloat64()
	g.TargetDate = nullTime(targetDate)
	g.StartDate = nullTime(startDate)
	g.AccountIDs = accountIDs
	g.MonthlyContribution = nullFloat(contribution)
	g.ExtraPayment = nullFloat(extra)
	g.StartAmount = nullFloat(start)
	g.CurrentAmount = nullFloat(current)
	return g, nil
}

func nullFloat(d decimal.NullDecimal) *float64 {
	if !d.Valid {
		return nil
	}
	f := d.Decimal.InexactFloat64()
	return &f
}

func nullTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
