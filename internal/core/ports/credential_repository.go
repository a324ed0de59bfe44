package ports

import "context"

// CredentialRepository is the credential map: email or username to a
// plaintext password. Implementations treat an unreadable store as empty.
type CredentialRepository interface {
	// Lookup returns the stored password and whether an entry exists.
	Lookup(ctx context.Context, key string) (password string, found bool, err error)
	// Create adds a new entry. It returns domain.ErrUserExists when the key
	// is already present.
	Create(ctx context.Context, key, password string) error
}
