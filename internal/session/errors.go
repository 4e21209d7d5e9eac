package session

import "errors"

var (
	// ErrPersist wraps every failed write to the key-value store. The
	// underlying cause (for example store.ErrStoreUnavailable) stays
	// reachable through errors.Is.
	ErrPersist = errors.New("session: persist failed")

	// ErrLoad wraps failed reads during Initialize and directory access.
	ErrLoad = errors.New("session: load failed")
)
