package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"eventboard/internal/domain"
)

type mockCompetitionRepository struct {
	competitions map[string]*domain.Competition
	createErr    error
}

func (m *mockCompetitionRepository) Create(ctx context.Context, c *domain.Competition) error {
	if m.createErr != nil {
		return m.createErr
	}
	c.ID = "comp-new"
	m.competitions[c.ID] = c
	return nil
}

func (m *mockCompetitionRepository) GetByID(ctx context.Context, id string) (*domain.Competition, error) {
	c, ok := m.competitions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func (m *mockCompetitionRepository) List(ctx context.Context, filter domain.CompetitionFilter, params domain.PaginationParams) ([]*domain.Competition, int, error) {
	return nil, 0, nil
}

func (m *mockCompetitionRepository) Update(ctx context.Context, id string, upd domain.CompetitionUpdate) (*domain.Competition, error) {
	c, ok := m.competitions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	updated := *c
	if upd.EventID != nil {
		updated.EventID = *upd.EventID
	}
	if upd.CompetitionTypeID != nil {
		updated.CompetitionTypeID = *upd.CompetitionTypeID
	}
	if upd.StartTime != nil {
		updated.StartTime = *upd.StartTime
	}
	if upd.EstimatedEndTime != nil {
		updated.EstimatedEndTime = *upd.EstimatedEndTime
	}
	m.competitions[id] = &updated
	return &updated, nil
}

func (m *mockCompetitionRepository) Delete(ctx context.Context, id string) (*domain.Competition, error) {
	c, ok := m.competitions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	delete(m.competitions, id)
	return c, nil
}

type mockCompetitionTypeRepository struct {
	types map[string]*domain.CompetitionType
}

func (m *mockCompetitionTypeRepository) Create(ctx context.Context, ct *domain.CompetitionType) error {
	ct.ID = "ct-new"
	m.types[ct.ID] = ct
	return nil
}

func (m *mockCompetitionTypeRepository) GetByID(ctx context.Context, id string) (*domain.CompetitionType, error) {
	ct, ok := m.types[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return ct, nil
}

func (m *mockCompetitionTypeRepository) List(ctx context.Context, params domain.PaginationParams) ([]*domain.CompetitionType, int, error) {
	return nil, 0, nil
}

func (m *mockCompetitionTypeRepository) Update(ctx context.Context, id string, upd domain.CompetitionTypeUpdate) (*domain.CompetitionType, error) {
	return m.GetByID(ctx, id)
}

func (m *mockCompetitionTypeRepository) Delete(ctx context.Context, id string) (*domain.CompetitionType, error) {
	ct, ok := m.types[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	delete(m.types, id)
	return ct, nil
}

func (m *mockCompetitionTypeRepository) SetImage(ctx context.Context, id, key, url string) (*domain.CompetitionType, error) {
	return m.GetByID(ctx, id)
}

func competitionFixtures() (*mockCompetitionRepository, *mockEventRepository, *mockCompetitionTypeRepository) {
	compRepo := &mockCompetitionRepository{competitions: map[string]*domain.Competition{}}
	eventRepo := &mockEventRepository{events: map[string]*domain.Event{
		"e1": {ID: "e1", StartTime: ts("2024-03-15T20:00:00Z"), EndTime: ts("2024-03-16T06:00:00Z")},
		"e2": {ID: "e2", StartTime: ts("2024-04-01T00:00:00Z"), EndTime: ts("2024-04-02T00:00:00Z")},
	}}
	typeRepo := &mockCompetitionTypeRepository{types: map[string]*domain.CompetitionType{
		"ct1": {ID: "ct1", Description: "chess"},
	}}
	return compRepo, eventRepo, typeRepo
}

func TestCompetitionService_Create_withinEventWindow(t *testing.T) {
	compRepo, eventRepo, typeRepo := competitionFixtures()
	svc := NewCompetitionService(compRepo, eventRepo, typeRepo)

	created, err := svc.Create(context.Background(), &domain.Competition{
		CompetitionTypeID: "ct1",
		EventID:           "e1",
		Description:       "blitz chess",
		StartTime:         ts("2024-03-15T21:00:00Z"),
		EstimatedEndTime:  ts("2024-03-16T01:00:00Z"),
	})
	require.NoError(t, err)
	require.Equal(t, "comp-new", created.ID)
	require.False(t, created.CreatedAt.IsZero())
}

func TestCompetitionService_Create_outOfEventRange(t *testing.T) {
	compRepo, eventRepo, typeRepo := competitionFixtures()
	svc := NewCompetitionService(compRepo, eventRepo, typeRepo)

	// Starts before the event opens.
	_, err := svc.Create(context.Background(), &domain.Competition{
		CompetitionTypeID: "ct1",
		EventID:           "e1",
		StartTime:         ts("2024-03-14T00:00:00Z"),
		EstimatedEndTime:  ts("2024-03-16T01:00:00Z"),
	})
	require.ErrorIs(t, err, domain.ErrCompetitionOutOfEventRange)

	// Ends after the event closes.
	_, err = svc.Create(context.Background(), &domain.Competition{
		CompetitionTypeID: "ct1",
		EventID:           "e1",
		StartTime:         ts("2024-03-15T21:00:00Z"),
		EstimatedEndTime:  ts("2024-03-16T07:00:00Z"),
	})
	require.ErrorIs(t, err, domain.ErrCompetitionOutOfEventRange)
}

func TestCompetitionService_Create_boundaryEqualAllowed(t *testing.T) {
	compRepo, eventRepo, typeRepo := competitionFixtures()
	svc := NewCompetitionService(compRepo, eventRepo, typeRepo)

	// Exactly spanning the whole event is inside the inclusive range.
	_, err := svc.Create(context.Background(), &domain.Competition{
		CompetitionTypeID: "ct1",
		EventID:           "e1",
		StartTime:         ts("2024-03-15T20:00:00Z"),
		EstimatedEndTime:  ts("2024-03-16T06:00:00Z"),
	})
	require.NoError(t, err)
}

func TestCompetitionService_Create_missingReferences(t *testing.T) {
	compRepo, eventRepo, typeRepo := competitionFixtures()
	svc := NewCompetitionService(compRepo, eventRepo, typeRepo)

	_, err := svc.Create(context.Background(), &domain.Competition{
		CompetitionTypeID: "ct1",
		EventID:           "missing",
		StartTime:         ts("2024-03-15T21:00:00Z"),
		EstimatedEndTime:  ts("2024-03-16T01:00:00Z"),
	})
	require.ErrorIs(t, err, domain.ErrEventNotFound)

	_, err = svc.Create(context.Background(), &domain.Competition{
		CompetitionTypeID: "missing",
		EventID:           "e1",
		StartTime:         ts("2024-03-15T21:00:00Z"),
		EstimatedEndTime:  ts("2024-03-16T01:00:00Z"),
	})
	require.ErrorIs(t, err, domain.ErrCompetitionTypeNotFound)
}

func TestCompetitionService_Create_duplicatePairSurfacesFromStore(t *testing.T) {
	compRepo, eventRepo, typeRepo := competitionFixtures()
	compRepo.createErr = domain.ErrCompetitionTypeTaken
	svc := NewCompetitionService(compRepo, eventRepo, typeRepo)

	_, err := svc.Create(context.Background(), &domain.Competition{
		CompetitionTypeID: "ct1",
		EventID:           "e1",
		StartTime:         ts("2024-03-15T21:00:00Z"),
		EstimatedEndTime:  ts("2024-03-16T01:00:00Z"),
	})
	require.ErrorIs(t, err, domain.ErrCompetitionTypeTaken)
}

func TestCompetitionService_Update_defaultsOmittedBoundaries(t *testing.T) {
	compRepo, eventRepo, typeRepo := competitionFixtures()
	compRepo.competitions["c1"] = &domain.Competition{
		ID:                "c1",
		CompetitionTypeID: "ct1",
		EventID:           "e1",
		StartTime:         ts("2024-03-15T21:00:00Z"),
		EstimatedEndTime:  ts("2024-03-16T01:00:00Z"),
	}
	svc := NewCompetitionService(compRepo, eventRepo, typeRepo)

	// Moving only the end keeps the stored start and stays in range.
	newEnd := ts("2024-03-16T05:00:00Z")
	updated, err := svc.Update(context.Background(), "c1", domain.CompetitionUpdate{EstimatedEndTime: &newEnd})
	require.NoError(t, err)
	require.Equal(t, newEnd, updated.EstimatedEndTime)
	require.Equal(t, ts("2024-03-15T21:00:00Z"), updated.StartTime)

	// Moving past the event end is rejected.
	badEnd := ts("2024-03-16T07:00:00Z")
	_, err = svc.Update(context.Background(), "c1", domain.CompetitionUpdate{EstimatedEndTime: &badEnd})
	require.ErrorIs(t, err, domain.ErrCompetitionOutOfEventRange)
}

func TestCompetitionService_Update_rangeCheckedAgainstNewParent(t *testing.T) {
	compRepo, eventRepo, typeRepo := competitionFixtures()
	compRepo.competitions["c1"] = &domain.Competition{
		ID:                "c1",
		CompetitionTypeID: "ct1",
		EventID:           "e1",
		StartTime:         ts("2024-03-15T21:00:00Z"),
		EstimatedEndTime:  ts("2024-03-16T01:00:00Z"),
	}
	svc := NewCompetitionService(compRepo, eventRepo, typeRepo)

	// Re-parenting to e2 without moving the window: the stored window is
	// outside e2 entirely.
	newEvent := "e2"
	_, err := svc.Update(context.Background(), "c1", domain.CompetitionUpdate{EventID: &newEvent})
	require.ErrorIs(t, err, domain.ErrCompetitionOutOfEventRange)

	// Re-parenting and moving the window together succeeds.
	newStart := ts("2024-04-01T10:00:00Z")
	newEnd := ts("2024-04-01T12:00:00Z")
	updated, err := svc.Update(context.Background(), "c1", domain.CompetitionUpdate{
		EventID:          &newEvent,
		StartTime:        &newStart,
		EstimatedEndTime: &newEnd,
	})
	require.NoError(t, err)
	require.Equal(t, "e2", updated.EventID)
}
