// Package http exposes the session and invoice dashboard over a JSON API
// built on chi.
//
// Public routes cover signup, login and the session status. Everything else
// sits behind a session gate that answers 401 with "Location: /login" when
// the bearer token is missing or invalid, or does not belong to the active
// session. Auth routes are rate limited per client address.
package http
