package domain

import "errors"

// Domain errors as sentinel values
var (
	ErrInvalidAmount          = errors.New("invalid monetary amount")
	ErrInvalidDiscountPeriod  = errors.New("discount end date must be after start date")
	ErrInvalidDiscountPercent = errors.New("discount percentage must be between 0 and 100")

	ErrEmptyID      = errors.New("record id cannot be empty")
	ErrInvalidKind  = errors.New("unknown record kind")
	ErrInvalidState = errors.New("unknown record status")
)
