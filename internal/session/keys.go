package session

// Persisted keys. Their names and value formats are shared with data written
// by earlier releases and must not change.
const (
	// AuthKey holds the literal "true" while a session is active.
	AuthKey = "vyaparai_auth"

	// ProfileKey holds the JSON-encoded models.UserProfile.
	ProfileKey = "vyaparai_profile"

	// SignupsKey holds the JSON array of models.SignupRecord.
	SignupsKey = "vyaparai_signups"
)

const authFlagTrue = "true"
