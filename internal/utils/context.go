// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, session token generation
// and validation, and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// SubjectCtxKey stores the session token subject (the registration number
// of the logged-in business) in the request context.
//
//	ctx := context.WithValue(ctx, utils.SubjectCtxKey, "GST123")
var SubjectCtxKey = contextKey("subject")

// GetSubjectFromContext returns the token subject put into ctx by the
// session gate. ok is false when the value is missing, has another type
// or is empty.
func GetSubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(SubjectCtxKey).(string)
	if !ok || subject == "" {
		return "", false
	}
	return subject, true
}
