package domain

import (
	"context"
	"time"
)

// Event is a top-level time-boxed community occasion that may host multiple
// competitions. Event windows are half-open [StartTime, EndTime): no two
// events may overlap, but one may begin exactly when another ends.
// swagger:model Event
type Event struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewEvent returns a new Event. ID is set by the repository on create.
func NewEvent(description string, start, end, createdAt time.Time) *Event {
	return &Event{
		Description: description,
		StartTime:   start,
		EndTime:     end,
		CreatedAt:   createdAt,
	}
}

// EventUpdate carries a partial update; nil fields are left unchanged.
type EventUpdate struct {
	Description *string
	StartTime   *time.Time
	EndTime     *time.Time
}

// EventFilter narrows event listings.
type EventFilter struct {
	// Upcoming restricts the listing to events starting at or after now,
	// sorted ascending by start time.
	Upcoming bool
}

// EventRepository defines storage operations for events.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	// List returns a page of events plus the total count matching the filter.
	List(ctx context.Context, filter EventFilter, params PaginationParams) ([]*Event, int, error)
	// ListWindows returns every stored event except excludeID (pass "" to
	// exclude none). Used by the overlap validator.
	ListWindows(ctx context.Context, excludeID string) ([]*Event, error)
	Update(ctx context.Context, id string, upd EventUpdate) (*Event, error)
	// Delete removes the event and returns the deleted record.
	Delete(ctx context.Context, id string) (*Event, error)
}

// EventService defines the business logic for event scheduling.
type EventService interface {
	Create(ctx context.Context, description string, start, end time.Time) (*Event, error)
	GetByID(ctx context.Context, id string) (*Event, error)
	List(ctx context.Context, filter EventFilter, params PaginationParams) ([]*Event, int, error)
	Update(ctx context.Context, id string, upd EventUpdate) (*Event, error)
	Delete(ctx context.Context, id string) (*Event, error)
}
