package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher protects the passwords kept in the signup directory.
// It knows nothing about storage or sessions.
type PasswordHasher interface {
	// Hash returns an encoded hash of password suitable for persisting.
	Hash(password string) (string, error)

	// Compare reports whether password matches the stored value.
	// Returns ErrPasswordMismatch when it does not.
	Compare(stored, password string) error
}
