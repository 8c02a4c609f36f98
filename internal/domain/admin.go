package domain

import (
	"context"
	"time"
)

// Admin is a back-office account that manages events, competition types and
// persons. The password hash is never serialized.
// swagger:model Admin
type Admin struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// AdminUpdate carries a partial update; nil fields are unchanged.
type AdminUpdate struct {
	Username *string
	Password *string
	Role     *string
}

// AdminRepository defines storage operations for admins. Username is unique
// at the store level; violations surface as ErrDuplicateUsername.
type AdminRepository interface {
	Create(ctx context.Context, a *Admin) error
	GetByID(ctx context.Context, id string) (*Admin, error)
	GetByUsername(ctx context.Context, username string) (*Admin, error)
	List(ctx context.Context, params PaginationParams) ([]*Admin, int, error)
	Update(ctx context.Context, id string, upd AdminUpdate) (*Admin, error)
	Delete(ctx context.Context, id string) (*Admin, error)
}

// AdminService defines the business logic for admin accounts.
type AdminService interface {
	Create(ctx context.Context, username, password, role string) (*Admin, error)
	GetByID(ctx context.Context, id string) (*Admin, error)
	List(ctx context.Context, params PaginationParams) ([]*Admin, int, error)
	Update(ctx context.Context, id string, upd AdminUpdate) (*Admin, error)
	Delete(ctx context.Context, id string) (*Admin, error)
}
