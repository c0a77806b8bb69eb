package models

import "errors"

// Boundary validation errors. Handlers map them to 400/401/404 responses.
var (
	ErrUnknownFrequency   = errors.New("unknown frequency")
	ErrUnknownAccountType = errors.New("unknown account type")
	ErrUnknownGoalType    = errors.New("unknown goal type")
	ErrUnknownStrategy    = errors.New("unknown payoff strategy")
	ErrInvalidHorizon     = errors.New("invalid projection horizon")
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
