package domain

import (
	"context"
	"time"
)

// Role discriminates the two kinds of authenticated identities. It is set
// explicitly at token issuance; the token payload shape is never sniffed.
type Role string

const (
	RoleAdmin  Role = "admin"
	RolePerson Role = "person"
)

// PasswordHasher hashes and verifies passwords. Implementations may use
// bcrypt, argon2, etc.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenIssuer issues signed tokens for an authenticated identity.
type TokenIssuer interface {
	Issue(subjectID string, role Role, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the subject ID and role it
// carries.
type TokenVerifier interface {
	Verify(token string) (subjectID string, role Role, err error)
}

// AuthService authenticates credentials and resolves token subjects against
// their backing collection.
type AuthService interface {
	// LoginPerson checks a person's dni/password pair and returns a signed
	// token plus the profile.
	LoginPerson(ctx context.Context, dni, password string) (token string, person *Person, err error)
	// LoginAdmin checks an admin's username/password pair and returns a
	// signed token plus the profile.
	LoginAdmin(ctx context.Context, username, password string) (token string, admin *Admin, err error)
	// Resolve checks that the identity a verified token refers to still
	// exists. Returns ErrNotFound when it does not.
	Resolve(ctx context.Context, subjectID string, role Role) error
}
