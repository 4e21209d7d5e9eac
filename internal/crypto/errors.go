package crypto

import "errors"

var (
	ErrPasswordMismatch = errors.New("password does not match")
	ErrHashingPassword  = errors.New("error hashing password")
)
