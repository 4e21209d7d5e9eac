// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks signup, login and profile input before it
// reaches the session store.
//
// A Validator can be scoped to named fields. Without fields the default
// checks for the value's type run; the one-time code is only checked when
// [FieldOTP] is requested, since the first step of every form has no code
// yet.
package validators

import "context"

// Validator validates a form value, optionally restricted to the named
// fields. Failures wrap one of the package's sentinel errors.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
