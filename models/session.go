package models

// SessionState is a snapshot of the session: whether someone is logged in and
// whose profile is active. IsLoggedIn is true if and only if User is non-nil.
type SessionState struct {
	IsLoggedIn bool         `json:"isLoggedIn"`
	User       *UserProfile `json:"user,omitempty"`
}

// LoggedOut is the zero session.
func LoggedOut() SessionState {
	return SessionState{}
}

// LoggedIn builds a session for profile. The profile is copied so callers
// cannot mutate the state through the pointer.
func LoggedIn(profile UserProfile) SessionState {
	p := profile
	return SessionState{IsLoggedIn: true, User: &p}
}

// Clone returns a deep copy of the state.
func (s SessionState) Clone() SessionState {
	if s.User == nil {
		return SessionState{IsLoggedIn: s.IsLoggedIn}
	}
	return LoggedIn(*s.User)
}
