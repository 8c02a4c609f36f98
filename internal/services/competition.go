package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventboard/internal/domain"
)

type competitionService struct {
	competitionRepo domain.CompetitionRepository
	eventRepo       domain.EventRepository
	typeRepo        domain.CompetitionTypeRepository
	now             func() time.Time
}

// NewCompetitionService creates a CompetitionService with the given
// repositories.
func NewCompetitionService(
	competitionRepo domain.CompetitionRepository,
	eventRepo domain.EventRepository,
	typeRepo domain.CompetitionTypeRepository,
) domain.CompetitionService {
	return &competitionService{
		competitionRepo: competitionRepo,
		eventRepo:       eventRepo,
		typeRepo:        typeRepo,
		now:             time.Now,
	}
}

// checkReferences verifies that the parent event and competition type exist
// and that [start, estimatedEnd] lies inside the event window, inclusive on
// both ends.
func (s *competitionService) checkReferences(ctx context.Context, eventID, typeID string, start, estimatedEnd time.Time) error {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("get event: %w", err)
	}
	if _, err := s.typeRepo.GetByID(ctx, typeID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrCompetitionTypeNotFound
		}
		return fmt.Errorf("get competition type: %w", err)
	}
	if start.Before(event.StartTime) || estimatedEnd.After(event.EndTime) {
		return domain.ErrCompetitionOutOfEventRange
	}
	return nil
}

func (s *competitionService) Create(ctx context.Context, c *domain.Competition) (*domain.Competition, error) {
	if c.EstimatedEndTime.Before(c.StartTime) {
		return nil, domain.ErrCompetitionOutOfEventRange
	}
	if err := s.checkReferences(ctx, c.EventID, c.CompetitionTypeID, c.StartTime, c.EstimatedEndTime); err != nil {
		return nil, err
	}
	c.CreatedAt = s.now()
	// The (type, event) pair is unique at the store; a duplicate surfaces
	// from Create as ErrCompetitionTypeTaken.
	if err := s.competitionRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *competitionService) GetByID(ctx context.Context, id string) (*domain.Competition, error) {
	c, err := s.competitionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get competition: %w", err)
	}
	return c, nil
}

func (s *competitionService) List(ctx context.Context, filter domain.CompetitionFilter, params domain.PaginationParams) ([]*domain.Competition, int, error) {
	competitions, total, err := s.competitionRepo.List(ctx, filter, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list competitions: %w", err)
	}
	return competitions, total, nil
}

func (s *competitionService) Update(ctx context.Context, id string, upd domain.CompetitionUpdate) (*domain.Competition, error) {
	current, err := s.competitionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get competition: %w", err)
	}

	// Omitted fields default to their stored values, then the range check
	// runs against the (possibly newly referenced) parent event.
	eventID := current.EventID
	if upd.EventID != nil {
		eventID = *upd.EventID
	}
	typeID := current.CompetitionTypeID
	if upd.CompetitionTypeID != nil {
		typeID = *upd.CompetitionTypeID
	}
	start := current.StartTime
	if upd.StartTime != nil {
		start = *upd.StartTime
	}
	estimatedEnd := current.EstimatedEndTime
	if upd.EstimatedEndTime != nil {
		estimatedEnd = *upd.EstimatedEndTime
	}
	if estimatedEnd.Before(start) {
		return nil, domain.ErrCompetitionOutOfEventRange
	}
	if err := s.checkReferences(ctx, eventID, typeID, start, estimatedEnd); err != nil {
		return nil, err
	}

	updated, err := s.competitionRepo.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (s *competitionService) Delete(ctx context.Context, id string) (*domain.Competition, error) {
	deleted, err := s.competitionRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("delete competition: %w", err)
	}
	return deleted, nil
}
