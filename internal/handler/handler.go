package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/Dan9191/forecast-service/internal/middleware"
	"github.com/Dan9191/forecast-service/internal/models"
	"github.com/Dan9191/forecast-service/internal/service"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=handler.go -destination=mock_service_test.go -package=handler

// ForecastService is what the HTTP layer needs from the service
type ForecastService interface {
	Register(ctx context.Context, username, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	Summary(ctx context.Context, userID int64) (models.MonthlySummary, error)
	IncomePatterns(ctx context.Context, userID int64) ([]models.DetectedIncomePattern, error)
	AccountProjections(ctx context.Context, userID int64, req service.ProjectionRequest) (models.AccountProjectionsResponse, error)
	DebtPayoff(ctx context.Context, userID int64, req service.DebtPayoffRequest) (models.DebtPayoffResult, error)
	CompareDebts(ctx context.Context, userID int64, extra float64) (models.DebtComparison, error)
	SavingsProjection(ctx context.Context, userID int64, accountID string, req service.SavingsRequest) (models.SavingsProjectionResponse, error)
	GoalProgress(ctx context.Context, userID int64) (models.GoalProgressResponse, error)
	Goal(ctx context.Context, userID int64, goalID string) (models.GoalProgress, error)
	HysVsDebt(ctx context.Context, req service.HysVsDebtRequest) (models.HysVsDebtResult, error)
	FourOhOneK(in models.FourOhOneKInput) (models.FourOhOneKResult, error)
	ReferenceRate(ctx context.Context) (float64, error)
}

type Handler struct {
	svc ForecastService
	log *logrus.Logger
}

func NewHandler(svc ForecastService, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.WithError(err).Error("Failed to encode response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, models.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, models.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, models.ErrInvalidInput),
		errors.Is(err, models.ErrInvalidHorizon),
		errors.Is(err, models.ErrUnknownStrategy),
		errors.Is(err, models.ErrUnknownFrequency),
		errors.Is(err, models.ErrUnknownAccountType),
		errors.Is(err, models.ErrUnknownGoalType):
		status = http.StatusBadRequest
	}

	msg := err.Error()
	if status == http.StatusInternalServerError {
		h.log.WithError(err).WithField("request_id", middleware.RequestID(r.Context())).Error("Request failed")
		msg = "internal error"
	}
	h.writeJSON(w, status, map[string]string{"error": msg})
}

// decode reads a JSON body, rejecting unknown fields
func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("malformed body: %v: %w", err, models.ErrInvalidInput)
	}
	return nil
}

func queryInt(r *http.Request, key string) (int, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, models.ErrInvalidInput)
	}
	return n, nil
}

func queryFloat(r *http.Request, key string) (*float64, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, fmt.Errorf("%s must be a number: %w", key, models.ErrInvalidInput)
	}
	return &f, nil
}

func queryList(r *http.Request, key string) []string {
	var out []string
	for _, v := range r.URL.Query()[key] {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func valueOr(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

// userID reads the id AuthMiddleware stored; routes without it are misconfigured
func (h *Handler) userID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ok := middleware.UserID(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthenticated"})
	}
	return id, ok
}

// Health reports liveness
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Register handles user registration
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	user, err := h.svc.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, user)
}

// Login handles user authentication
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	token, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

// Summary handles GET /forecast/summary
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	summary, err := h.svc.Summary(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, summary)
}

// IncomePatterns handles GET /forecast/income-patterns
func (h *Handler) IncomePatterns(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	patterns, err := h.svc.IncomePatterns(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if patterns == nil {
		patterns = []models.DetectedIncomePattern{}
	}
	h.writeJSON(w, http.StatusOK, patterns)
}

// AccountProjections handles GET /forecast/accounts
func (h *Handler) AccountProjections(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	months, err := queryInt(r, "months")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	income, err := queryFloat(r, "incomeAdjustment")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	expense, err := queryFloat(r, "expenseAdjustment")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp, err := h.svc.AccountProjections(r.Context(), userID, service.ProjectionRequest{
		Months:               months,
		IncomeAdjustmentPct:  valueOr(income),
		ExpenseAdjustmentPct: valueOr(expense),
		Exclude:              queryList(r, "exclude"),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// DebtPayoff handles POST /forecast/debt-payoff
func (h *Handler) DebtPayoff(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	var req service.DebtPayoffRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	result, err := h.svc.DebtPayoff(r.Context(), userID, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

// CompareDebts handles GET /forecast/debt-payoff/compare
func (h *Handler) CompareDebts(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	extra, err := queryFloat(r, "extraPayment")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	cmp, err := h.svc.CompareDebts(r.Context(), userID, valueOr(extra))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, cmp)
}

// SavingsProjection handles GET /forecast/savings/{accountId}
func (h *Handler) SavingsProjection(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	var req service.SavingsRequest
	var err error
	if req.Months, err = queryInt(r, "months"); err != nil {
		h.writeError(w, r, err)
		return
	}
	if req.Contribution, err = queryFloat(r, "contribution"); err != nil {
		h.writeError(w, r, err)
		return
	}
	if req.APY, err = queryFloat(r, "apy"); err != nil {
		h.writeError(w, r, err)
		return
	}

	resp, err := h.svc.SavingsProjection(r.Context(), userID, mux.Vars(r)["accountId"], req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// GoalProgress handles GET /goals/progress
func (h *Handler) GoalProgress(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	resp, err := h.svc.GoalProgress(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// Goal handles GET /goals/{goalId}/progress
func (h *Handler) Goal(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	progress, err := h.svc.Goal(r.Context(), userID, mux.Vars(r)["goalId"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, progress)
}

// HysVsDebt handles POST /calculators/hys-vs-debt
func (h *Handler) HysVsDebt(w http.ResponseWriter, r *http.Request) {
	var req service.HysVsDebtRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	result, err := h.svc.HysVsDebt(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

// FourOhOneK handles POST /calculators/401k
func (h *Handler) FourOhOneK(w http.ResponseWriter, r *http.Request) {
	var in models.FourOhOneKInput
	if err := decode(r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	result, err := h.svc.FourOhOneK(in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

// ReferenceRate handles GET /reference-rate
func (h *Handler) ReferenceRate(w http.ResponseWriter, r *http.Request) {
	rate, err := h.svc.ReferenceRate(r.Context())
	if err != nil {
		h.writeError(w, r, fmt.Errorf("failed to get key rate: %w", err))
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]float64{"key_rate": rate})
}
