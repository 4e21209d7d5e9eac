package invoice

import "errors"

var (
	ErrInvalidTypeFilter    = errors.New("invalid invoice type filter")
	ErrInvalidSortField     = errors.New("invalid sort field")
	ErrInvalidSortDirection = errors.New("invalid sort direction")
	ErrInvalidInvoiceType   = errors.New("invalid invoice type")
	ErrInvalidAction        = errors.New("invalid invoice action")
)
