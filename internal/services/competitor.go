package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"eventboard/internal/domain"
)

type competitorService struct {
	competitorRepo  domain.CompetitorRepository
	competitionRepo domain.CompetitionRepository
	personRepo      domain.PersonRepository
	mailer          domain.Mailer
	logger          *slog.Logger
	now             func() time.Time
}

// NewCompetitorService creates a CompetitorService. The mailer is used for
// best-effort enrollment confirmations and may be a no-op implementation.
func NewCompetitorService(
	competitorRepo domain.CompetitorRepository,
	competitionRepo domain.CompetitionRepository,
	personRepo domain.PersonRepository,
	mailer domain.Mailer,
	logger *slog.Logger,
) domain.CompetitorService {
	return &competitorService{
		competitorRepo:  competitorRepo,
		competitionRepo: competitionRepo,
		personRepo:      personRepo,
		mailer:          mailer,
		logger:          logger,
		now:             time.Now,
	}
}

func (s *competitorService) Enroll(ctx context.Context, competitionID, personID string) (*domain.Competitor, error) {
	competition, err := s.competitionRepo.GetByID(ctx, competitionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrCompetitionNotFound
		}
		return nil, fmt.Errorf("get competition: %w", err)
	}

	now := s.now()
	if !domain.WithinEnrollmentWindow(competition.StartTime, now) {
		return nil, domain.ErrEnrollmentClosed
	}

	competitor := &domain.Competitor{
		PersonID:      personID,
		CompetitionID: competitionID,
		EnrolledAt:    now,
	}
	// The (competition, person) pair is unique at the store; a duplicate
	// surfaces from Create as ErrAlreadyEnrolled.
	if err := s.competitorRepo.Create(ctx, competitor); err != nil {
		return nil, err
	}

	s.sendConfirmation(ctx, competitor, competition)
	return competitor, nil
}

// sendConfirmation emails the enrolled person. Failures are logged and never
// fail the enrollment.
func (s *competitorService) sendConfirmation(ctx context.Context, competitor *domain.Competitor, competition *domain.Competition) {
	person, err := s.personRepo.GetByID(ctx, competitor.PersonID)
	if err != nil {
		s.logger.Warn("enrollment confirmation skipped", "competitor_id", competitor.ID, "err", err)
		return
	}
	data := &domain.EnrollmentEmailData{
		Email:            person.Email,
		FirstName:        person.FirstName,
		CompetitionName:  competition.Description,
		CompetitionStart: competition.StartTime,
	}
	if err := s.mailer.SendEnrollmentConfirmation(ctx, data); err != nil {
		s.logger.Warn("enrollment confirmation failed", "competitor_id", competitor.ID, "err", err)
	}
}

func (s *competitorService) GetByID(ctx context.Context, id string) (*domain.Competitor, error) {
	competitor, err := s.competitorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get competitor: %w", err)
	}
	return competitor, nil
}

func (s *competitorService) List(ctx context.Context, filter domain.CompetitorFilter, params domain.PaginationParams) ([]*domain.Competitor, int, error) {
	competitors, total, err := s.competitorRepo.List(ctx, filter, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list competitors: %w", err)
	}
	return competitors, total, nil
}

func (s *competitorService) Withdraw(ctx context.Context, id, callerID string, callerRole domain.Role) (*domain.Competitor, error) {
	competitor, err := s.competitorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get competitor: %w", err)
	}
	if callerRole != domain.RoleAdmin && competitor.PersonID != callerID {
		return nil, domain.ErrForbidden
	}
	deleted, err := s.competitorRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("delete competitor: %w", err)
	}
	return deleted, nil
}
