package models

import "fmt"

// Frequency is a recurrence cadence
type Frequency string

const (
	Weekly    Frequency = "weekly"
	Biweekly  Frequency = "biweekly"
	Monthly   Frequency = "monthly"
	Quarterly Frequency = "quarterly"
	Yearly    Frequency = "yearly"
)

// ParseFrequency validates a stored frequency value
func ParseFrequency(s string) (Frequency, error) {
	switch f := Frequency(s); f {
	case Weekly, Biweekly, Monthly, Quarterly, Yearly:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFrequency, s)
}

// Bill is a recurring expense
type Bill struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Amount    float64   `json:"amount"`
	Frequency Frequency `json:"frequency"`
	Category  string    `json:"category"`
	IsActive  bool      `json:"is_active"`
}

// Budget is a planned spending limit for a category
type Budget struct {
	ID        int64     `json:"id"`
	Amount    float64   `json:"amount"`
	Frequency Frequency `json:"frequency"`
	Category  string    `json:"category"`
	IsActive  bool      `json:"is_active"`
}

// IncomeSource is a manually entered income stream
type IncomeSource struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Amount    float64   `json:"amount"`
	Frequency Frequency `json:"frequency"`
	IsActive  bool      `json:"is_active"`
}
