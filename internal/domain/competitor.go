package domain

import (
	"context"
	"time"
)

// Competitor is a person's enrollment in a specific competition. EnrolledAt
// is always the server clock at enrollment time, and enrollment is accepted
// only inside the competition's enrollment window (the calendar month ending
// at the competition start, inclusive on both ends).
// swagger:model Competitor
type Competitor struct {
	ID            string    `json:"id"`
	PersonID      string    `json:"person_id"`
	CompetitionID string    `json:"competition_id"`
	EnrolledAt    time.Time `json:"enrolled_at"`
}

// CompetitorFilter narrows competitor listings.
type CompetitorFilter struct {
	PersonID      string
	CompetitionID string
}

// CompetitorRepository defines storage operations for enrollments. The
// (competition_id, person_id) pair is unique at the store level; violations
// surface as ErrAlreadyEnrolled.
type CompetitorRepository interface {
	Create(ctx context.Context, c *Competitor) error
	GetByID(ctx context.Context, id string) (*Competitor, error)
	List(ctx context.Context, filter CompetitorFilter, params PaginationParams) ([]*Competitor, int, error)
	Delete(ctx context.Context, id string) (*Competitor, error)
}

// CompetitorService defines the business logic for enrollments.
type CompetitorService interface {
	// Enroll registers the person in the competition if the enrollment
	// window is open. The enrollment timestamp is the server clock.
	Enroll(ctx context.Context, competitionID, personID string) (*Competitor, error)
	GetByID(ctx context.Context, id string) (*Competitor, error)
	List(ctx context.Context, filter CompetitorFilter, params PaginationParams) ([]*Competitor, int, error)
	// Withdraw removes the enrollment. Only the enrolled person or an admin
	// may withdraw it.
	Withdraw(ctx context.Context, id, callerID string, callerRole Role) (*Competitor, error)
}
