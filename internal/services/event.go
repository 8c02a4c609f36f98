package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventboard/internal/domain"
)

type eventService struct {
	eventRepo domain.EventRepository
	now       func() time.Time
}

// NewEventService creates an EventService with the given repository.
func NewEventService(eventRepo domain.EventRepository) domain.EventService {
	return &eventService{
		eventRepo: eventRepo,
		now:       time.Now,
	}
}

// checkWindow applies the scheduling rules to a candidate event window:
// start must not be after end, and the half-open [start, end) interval must
// not overlap any stored event except excludeID. requireFuture additionally
// rejects a start in the past; it is skipped on updates that leave the
// start untouched.
func (s *eventService) checkWindow(ctx context.Context, start, end time.Time, excludeID string, requireFuture bool) error {
	if end.Before(start) {
		return domain.ErrEventEndBeforeStart
	}
	if requireFuture && start.Before(s.now()) {
		return domain.ErrEventStartInPast
	}
	others, err := s.eventRepo.ListWindows(ctx, excludeID)
	if err != nil {
		return fmt.Errorf("list event windows: %w", err)
	}
	for _, other := range others {
		if domain.Overlaps(start, end, other.StartTime, other.EndTime) {
			return domain.ErrEventOverlap
		}
	}
	return nil
}

func (s *eventService) Create(ctx context.Context, description string, start, end time.Time) (*domain.Event, error) {
	if err := s.checkWindow(ctx, start, end, "", true); err != nil {
		return nil, err
	}
	event := domain.NewEvent(description, start, end, s.now())
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

func (s *eventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (s *eventService) List(ctx context.Context, filter domain.EventFilter, params domain.PaginationParams) ([]*domain.Event, int, error) {
	events, total, err := s.eventRepo.List(ctx, filter, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list events: %w", err)
	}
	return events, total, nil
}

func (s *eventService) Update(ctx context.Context, id string, upd domain.EventUpdate) (*domain.Event, error) {
	current, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	// A boundary omitted from the update keeps its stored value; the full
	// window is then re-validated against all other events.
	start := current.StartTime
	if upd.StartTime != nil {
		start = *upd.StartTime
	}
	end := current.EndTime
	if upd.EndTime != nil {
		end = *upd.EndTime
	}
	if err := s.checkWindow(ctx, start, end, id, upd.StartTime != nil); err != nil {
		return nil, err
	}

	updated, err := s.eventRepo.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return updated, nil
}

func (s *eventService) Delete(ctx context.Context, id string) (*domain.Event, error) {
	deleted, err := s.eventRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("delete event: %w", err)
	}
	return deleted, nil
}
