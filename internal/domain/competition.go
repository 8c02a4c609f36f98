package domain

import (
	"context"
	"time"
)

// Competition is a scheduled activity of a given type nested inside an
// event. Its [StartTime, EstimatedEndTime] window must lie entirely within
// the parent event's window, and an event hosts at most one competition of
// a given type.
// swagger:model Competition
type Competition struct {
	ID                string    `json:"id"`
	CompetitionTypeID string    `json:"competition_type_id"`
	EventID           string    `json:"event_id"`
	Description       string    `json:"description"`
	StartTime         time.Time `json:"start_time"`
	EstimatedEndTime  time.Time `json:"estimated_end_time"`
	Prizes            string    `json:"prizes"`
	RegistrationFee   float64   `json:"registration_fee"`
	CreatedAt         time.Time `json:"created_at"`
}

// CompetitionUpdate carries a partial update; nil fields are unchanged.
type CompetitionUpdate struct {
	CompetitionTypeID *string
	EventID           *string
	Description       *string
	StartTime         *time.Time
	EstimatedEndTime  *time.Time
	Prizes            *string
	RegistrationFee   *float64
}

// CompetitionFilter narrows competition listings.
type CompetitionFilter struct {
	EventID           string
	CompetitionTypeID string
}

// CompetitionRepository defines storage operations for competitions.
// The (competition_type_id, event_id) pair is unique at the store level;
// violations surface as ErrCompetitionTypeTaken.
type CompetitionRepository interface {
	Create(ctx context.Context, c *Competition) error
	GetByID(ctx context.Context, id string) (*Competition, error)
	List(ctx context.Context, filter CompetitionFilter, params PaginationParams) ([]*Competition, int, error)
	Update(ctx context.Context, id string, upd CompetitionUpdate) (*Competition, error)
	Delete(ctx context.Context, id string) (*Competition, error)
}

// CompetitionService defines the business logic for competitions.
type CompetitionService interface {
	Create(ctx context.Context, c *Competition) (*Competition, error)
	GetByID(ctx context.Context, id string) (*Competition, error)
	List(ctx context.Context, filter CompetitionFilter, params PaginationParams) ([]*Competition, int, error)
	Update(ctx context.Context, id string, upd CompetitionUpdate) (*Competition, error)
	Delete(ctx context.Context, id string) (*Competition, error)
}
