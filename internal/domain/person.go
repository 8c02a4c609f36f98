package domain

import (
	"context"
	"time"
)

// Person is a registered community member who can enroll in competitions.
// The password hash is never serialized.
// swagger:model Person
type Person struct {
	ID           string    `json:"id"`
	DNI          string    `json:"dni"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Phone        *string   `json:"phone"`
	Email        string    `json:"email"`
	Birthdate    time.Time `json:"birthdate"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// PersonUpdate carries a partial update; nil fields are unchanged.
// Password, when set, is the new plaintext password to hash and store.
type PersonUpdate struct {
	FirstName *string
	LastName  *string
	Phone     *string
	Email     *string
	Birthdate *time.Time
	Password  *string
}

// PersonRepository defines storage operations for persons. DNI and email are
// unique at the store level; violations surface as ErrDuplicateDNI and
// ErrDuplicateEmail.
type PersonRepository interface {
	Create(ctx context.Context, p *Person) error
	GetByID(ctx context.Context, id string) (*Person, error)
	GetByDNI(ctx context.Context, dni string) (*Person, error)
	List(ctx context.Context, params PaginationParams) ([]*Person, int, error)
	Update(ctx context.Context, id string, upd PersonUpdate) (*Person, error)
	Delete(ctx context.Context, id string) (*Person, error)
}

// PersonService defines the business logic for person accounts. Read, update
// and delete are restricted to the person themselves or an admin.
type PersonService interface {
	Register(ctx context.Context, p *Person, password string) (*Person, error)
	GetByID(ctx context.Context, id, callerID string, callerRole Role) (*Person, error)
	List(ctx context.Context, params PaginationParams) ([]*Person, int, error)
	Update(ctx context.Context, id string, upd PersonUpdate, callerID string, callerRole Role) (*Person, error)
	Delete(ctx context.Context, id, callerID string, callerRole Role) (*Person, error)
}
