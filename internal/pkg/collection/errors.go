package collection

import "errors"

var (
	ErrUnknownFilter    = errors.New("unknown filter")
	ErrUnknownSort      = errors.New("unknown sort key")
	ErrInvalidMode      = errors.New("view mode must be grid or list")
	ErrLoadInProgress   = errors.New("a page load is already in progress")
	ErrInvalidPageSize  = errors.New("page size must be positive")
	ErrDuplicateFilter  = errors.New("duplicate filter name")
	ErrDuplicateSort    = errors.New("duplicate sort key")
	ErrNoSearchFilter   = errors.New("collection has no search filter")
	ErrSourceNotDefined = errors.New("view has no record source")
)
