package models

import "time"

// Transaction represents an imported financial transaction. Positive amounts are inflows.
type Transaction struct {
	ID          int64     `json:"id"`
	AccountID   string    `json:"account_id"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
}
