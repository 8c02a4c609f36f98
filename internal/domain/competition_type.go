package domain

import (
	"context"
	"io"
	"time"
)

// CompetitionType is a reference entity describing a kind of competition
// (its rules and an optional image).
// swagger:model CompetitionType
type CompetitionType struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Rules       string    `json:"rules"`
	ImageKey    *string   `json:"-"`
	ImageURL    *string   `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewCompetitionType returns a new CompetitionType. ID is set by the
// repository on create.
func NewCompetitionType(description, rules string, createdAt time.Time) *CompetitionType {
	return &CompetitionType{
		Description: description,
		Rules:       rules,
		CreatedAt:   createdAt,
	}
}

// CompetitionTypeUpdate carries a partial update; nil fields are unchanged.
type CompetitionTypeUpdate struct {
	Description *string
	Rules       *string
}

// CompetitionTypeRepository defines storage operations for competition types.
type CompetitionTypeRepository interface {
	Create(ctx context.Context, ct *CompetitionType) error
	GetByID(ctx context.Context, id string) (*CompetitionType, error)
	List(ctx context.Context, params PaginationParams) ([]*CompetitionType, int, error)
	Update(ctx context.Context, id string, upd CompetitionTypeUpdate) (*CompetitionType, error)
	Delete(ctx context.Context, id string) (*CompetitionType, error)
	SetImage(ctx context.Context, id, key, url string) (*CompetitionType, error)
}

// CompetitionTypeService defines the business logic for competition types.
type CompetitionTypeService interface {
	Create(ctx context.Context, description, rules string) (*CompetitionType, error)
	GetByID(ctx context.Context, id string) (*CompetitionType, error)
	List(ctx context.Context, params PaginationParams) ([]*CompetitionType, int, error)
	Update(ctx context.Context, id string, upd CompetitionTypeUpdate) (*CompetitionType, error)
	Delete(ctx context.Context, id string) (*CompetitionType, error)
	// UploadImage stores the image in object storage and records its public URL.
	UploadImage(ctx context.Context, id, contentType string, r io.Reader) (*CompetitionType, error)
}
