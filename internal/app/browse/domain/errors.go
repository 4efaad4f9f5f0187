package domain

import "errors"

// Browse errors as sentinel values
var (
	ErrViewNotFound      = errors.New("view not found")
	ErrUnknownCollection = errors.New("unknown collection")
	ErrTooManyViews      = errors.New("too many open views")
	ErrOwnerRequired     = errors.New("collection requires an owner id")
	ErrPageSizeTooLarge  = errors.New("page size exceeds the configured maximum")
)
