package models

import "github.com/golang-jwt/jwt/v5"

// Token is a signed session token handed to the browser shell.
// Subject carries the registration number of the logged-in business.
type Token struct {
	*jwt.Token   `json:"-"`
	SignedString string `json:"token"`
	Subject      string `json:"-"`
}
