package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrBusinessNotFound = errors.New("no business registered with this number")
	ErrWrongPassword    = errors.New("wrong password")
	ErrNotLoggedIn      = errors.New("not logged in")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrSessionMismatch         = errors.New("token does not belong to the active session")

	ErrInvoiceNotFound = errors.New("invoice not found")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
