package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"eventboard/internal/domain"
)

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

type mockEventRepository struct {
	events  map[string]*domain.Event
	created []*domain.Event
	err     error
}

func (m *mockEventRepository) Create(ctx context.Context, e *domain.Event) error {
	if m.err != nil {
		return m.err
	}
	e.ID = "ev-new"
	m.created = append(m.created, e)
	return nil
}

func (m *mockEventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	e, ok := m.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return e, nil
}

func (m *mockEventRepository) List(ctx context.Context, filter domain.EventFilter, params domain.PaginationParams) ([]*domain.Event, int, error) {
	return nil, 0, m.err
}

func (m *mockEventRepository) ListWindows(ctx context.Context, excludeID string) ([]*domain.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []*domain.Event
	for id, e := range m.events {
		if excludeID != "" && id == excludeID {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (m *mockEventRepository) Update(ctx context.Context, id string, upd domain.EventUpdate) (*domain.Event, error) {
	e, ok := m.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	updated := *e
	if upd.Description != nil {
		updated.Description = *upd.Description
	}
	if upd.StartTime != nil {
		updated.StartTime = *upd.StartTime
	}
	if upd.EndTime != nil {
		updated.EndTime = *upd.EndTime
	}
	m.events[id] = &updated
	return &updated, nil
}

func (m *mockEventRepository) Delete(ctx context.Context, id string) (*domain.Event, error) {
	e, ok := m.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	delete(m.events, id)
	return e, nil
}

func newEventServiceAt(repo *mockEventRepository, now time.Time) domain.EventService {
	svc := NewEventService(repo).(*eventService)
	svc.now = func() time.Time { return now }
	return svc
}

func TestEventService_Create_adjacentSucceeds(t *testing.T) {
	repo := &mockEventRepository{events: map[string]*domain.Event{
		"e1": {ID: "e1", StartTime: ts("2024-03-15T20:00:00Z"), EndTime: ts("2024-03-16T06:00:00Z")},
	}}
	svc := newEventServiceAt(repo, ts("2024-03-01T00:00:00Z"))

	// Starts exactly when e1 ends: half-open windows do not overlap.
	event, err := svc.Create(context.Background(), "night market", ts("2024-03-16T06:00:00Z"), ts("2024-03-17T00:00:00Z"))
	require.NoError(t, err)
	require.Equal(t, "ev-new", event.ID)
	require.Len(t, repo.created, 1)
}

func TestEventService_Create_overlapRejected(t *testing.T) {
	repo := &mockEventRepository{events: map[string]*domain.Event{
		"e1": {ID: "e1", StartTime: ts("2024-03-15T20:00:00Z"), EndTime: ts("2024-03-16T06:00:00Z")},
	}}
	svc := newEventServiceAt(repo, ts("2024-03-01T00:00:00Z"))

	_, err := svc.Create(context.Background(), "clash", ts("2024-03-15T23:00:00Z"), ts("2024-03-16T02:00:00Z"))
	require.ErrorIs(t, err, domain.ErrEventOverlap)
	require.Empty(t, repo.created)
}

func TestEventService_Create_containingWindowRejected(t *testing.T) {
	repo := &mockEventRepository{events: map[string]*domain.Event{
		"e1": {ID: "e1", StartTime: ts("2024-03-15T20:00:00Z"), EndTime: ts("2024-03-16T06:00:00Z")},
	}}
	svc := newEventServiceAt(repo, ts("2024-03-01T00:00:00Z"))

	_, err := svc.Create(context.Background(), "umbrella", ts("2024-03-15T00:00:00Z"), ts("2024-03-17T00:00:00Z"))
	require.ErrorIs(t, err, domain.ErrEventOverlap)
}

func TestEventService_Create_endBeforeStart(t *testing.T) {
	repo := &mockEventRepository{events: map[string]*domain.Event{}}
	svc := newEventServiceAt(repo, ts("2024-03-01T00:00:00Z"))

	_, err := svc.Create(context.Background(), "backwards", ts("2024-03-16T06:00:00Z"), ts("2024-03-16T05:00:00Z"))
	require.ErrorIs(t, err, domain.ErrEventEndBeforeStart)
}

func TestEventService_Create_pastStart(t *testing.T) {
	repo := &mockEventRepository{events: map[string]*domain.Event{}}
	svc := newEventServiceAt(repo, ts("2024-06-01T00:00:00Z"))

	_, err := svc.Create(context.Background(), "yesterday", ts("2024-05-31T00:00:00Z"), ts("2024-06-02T00:00:00Z"))
	require.ErrorIs(t, err, domain.ErrEventStartInPast)
}

func TestEventService_Update_fillsOmittedBoundary(t *testing.T) {
	repo := &mockEventRepository{events: map[string]*domain.Event{
		"e1": {ID: "e1", StartTime: ts("2024-03-15T20:00:00Z"), EndTime: ts("2024-03-16T06:00:00Z")},
		"e2": {ID: "e2", StartTime: ts("2024-03-16T06:00:00Z"), EndTime: ts("2024-03-17T00:00:00Z")},
	}}
	svc := newEventServiceAt(repo, ts("2024-06-01T00:00:00Z"))

	// Only the end moves; the stored start (now in the past) is reused
	// without re-running the future-start rule, and the new window must not
	// cross into e2.
	newEnd := ts("2024-03-16T06:00:00Z")
	updated, err := svc.Update(context.Background(), "e1", domain.EventUpdate{EndTime: &newEnd})
	require.NoError(t, err)
	require.Equal(t, newEnd, updated.EndTime)
	require.Equal(t, ts("2024-03-15T20:00:00Z"), updated.StartTime)

	// Extending the end into e2's window is an overlap.
	badEnd := ts("2024-03-16T07:00:00Z")
	_, err = svc.Update(context.Background(), "e1", domain.EventUpdate{EndTime: &badEnd})
	require.ErrorIs(t, err, domain.ErrEventOverlap)
}

func TestEventService_Update_excludesItselfFromOverlapCheck(t *testing.T) {
	repo := &mockEventRepository{events: map[string]*domain.Event{
		"e1": {ID: "e1", StartTime: ts("2024-07-15T20:00:00Z"), EndTime: ts("2024-07-16T06:00:00Z")},
	}}
	svc := newEventServiceAt(repo, ts("2024-06-01T00:00:00Z"))

	// Shrinking inside its own stored window must not self-conflict.
	newEnd := ts("2024-07-16T02:00:00Z")
	updated, err := svc.Update(context.Background(), "e1", domain.EventUpdate{EndTime: &newEnd})
	require.NoError(t, err)
	require.Equal(t, newEnd, updated.EndTime)
}

func TestEventService_Update_notFound(t *testing.T) {
	repo := &mockEventRepository{events: map[string]*domain.Event{}}
	svc := newEventServiceAt(repo, ts("2024-06-01T00:00:00Z"))

	desc := "nope"
	_, err := svc.Update(context.Background(), "missing", domain.EventUpdate{Description: &desc})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEventService_Delete_returnsDeletedRecord(t *testing.T) {
	repo := &mockEventRepository{events: map[string]*domain.Event{
		"e1": {ID: "e1", Description: "spring fair", StartTime: ts("2024-07-15T20:00:00Z"), EndTime: ts("2024-07-16T06:00:00Z")},
	}}
	svc := newEventServiceAt(repo, ts("2024-06-01T00:00:00Z"))

	deleted, err := svc.Delete(context.Background(), "e1")
	require.NoError(t, err)
	require.Equal(t, "spring fair", deleted.Description)

	_, err = svc.Delete(context.Background(), "e1")
	require.ErrorIs(t, err, domain.ErrNotFound)
}
