package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrIncompleteForm is returned when a required field is blank after
	// trimming or the captcha token is missing. The wrapped message names
	// the field.
	ErrIncompleteForm = errors.New("please fill all fields and complete the captcha")

	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
	ErrInvalidOTP       = errors.New("please enter the 6-digit verification code")

	ErrReadOnlyField    = errors.New("field cannot be changed from the profile")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
)
