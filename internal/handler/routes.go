package handler

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter wires every route. auth guards everything except register, login and health.
func NewRouter(h *Handler, auth mux.MiddlewareFunc, mw ...mux.MiddlewareFunc) *mux.Router {
	r := mux.NewRouter()
	r.Use(mw...)

	// Public routes
	r.HandleFunc("/register", h.Register).Methods(http.MethodPost)
	r.HandleFunc("/login", h.Login).Methods(http.MethodPost)
	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)

	// Protected routes
	authRouter := r.PathPrefix("/").Subrouter()
	authRouter.Use(auth)
	authRouter.HandleFunc("/forecast/summary", h.Summary).Methods(http.MethodGet)
	authRouter.HandleFunc("/forecast/income-patterns", h.IncomePatterns).Methods(http.MethodGet)
	authRouter.HandleFunc("/forecast/accounts", h.AccountProjections).Methods(http.MethodGet)
	authRouter.HandleFunc("/forecast/debt-payoff", h.DebtPayoff).Methods(http.MethodPost)
	authRouter.HandleFunc("/forecast/debt-payoff/compare", h.CompareDebts).Methods(http.MethodGet)
	authRouter.HandleFunc("/forecast/savings/{accountId}", h.SavingsProjection).Methods(http.MethodGet)
	authRouter.HandleFunc("/goals/progress", h.GoalProgress).Methods(http.MethodGet)
	authRouter.HandleFunc("/goals/{goalId}/progress", h.Goal).Methods(http.MethodGet)
	authRouter.HandleFunc("/calculators/hys-vs-debt", h.HysVsDebt).Methods(http.MethodPost)
	authRouter.HandleFunc("/calculators/401k", h.FourOhOneK).Methods(http.MethodPost)
	authRouter.HandleFunc("/reference-rate", h.ReferenceRate).Methods(http.MethodGet)
	return r
}
