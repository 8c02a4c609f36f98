package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"eventboard/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (description, start_time, end_time, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, e.Description, e.StartTime, e.EndTime, e.CreatedAt).Scan(&e.ID)
	if err != nil {
		return mapConstraintError(err)
	}
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `
		SELECT id, description, start_time, end_time, created_at
		FROM events
		WHERE id = $1
	`
	e := &domain.Event{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&e.ID, &e.Description, &e.StartTime, &e.EndTime, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, mapConstraintError(err)
	}
	return e, nil
}

func (r *eventRepository) List(ctx context.Context, filter domain.EventFilter, params domain.PaginationParams) ([]*domain.Event, int, error) {
	where := ""
	args := []interface{}{}
	if filter.Upcoming {
		where = "WHERE start_time >= NOW()"
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM events %s`, where)
	if err := r.DB.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	order := "ORDER BY created_at DESC"
	if filter.Upcoming {
		order = "ORDER BY start_time ASC"
	}
	query := fmt.Sprintf(`
		SELECT id, description, start_time, end_time, created_at
		FROM events
		%s
		%s
		LIMIT $1 OFFSET $2
	`, where, order)
	rows, err := r.DB.QueryContext(ctx, query, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	events := make([]*domain.Event, 0)
	for rows.Next() {
		e := &domain.Event{}
		if err := rows.Scan(&e.ID, &e.Description, &e.StartTime, &e.EndTime, &e.CreatedAt); err != nil {
			return nil, 0, err
		}
		events = append(events, e)
	}
	return events, total, rows.Err()
}

func (r *eventRepository) ListWindows(ctx context.Context, excludeID string) ([]*domain.Event, error) {
	// The exclusion clause is only added when an id is given: the create path
	// passes "", and postgres folds a ''::uuid cast at plan time (22P02)
	// before any OR can short-circuit it.
	query := `
		SELECT id, description, start_time, end_time, created_at
		FROM events
	`
	args := []interface{}{}
	if excludeID != "" {
		query += `WHERE id <> $1`
		args = append(args, excludeID)
	}
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapConstraintError(err)
	}
	defer rows.Close()

	events := make([]*domain.Event, 0)
	for rows.Next() {
		e := &domain.Event{}
		if err := rows.Scan(&e.ID, &e.Description, &e.StartTime, &e.EndTime, &e.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepository) Update(ctx context.Context, id string, upd domain.EventUpdate) (*domain.Event, error) {
	setClauses := []string{}
	args := []interface{}{}
	n := 1
	if upd.Description != nil {
		setClauses = append(setClauses, fmt.Sprintf("description = $%d", n))
		args = append(args, *upd.Description)
		n++
	}
	if upd.StartTime != nil {
		setClauses = append(setClauses, fmt.Sprintf("start_time = $%d", n))
		args = append(args, *upd.StartTime)
		n++
	}
	if upd.EndTime != nil {
		setClauses = append(setClauses, fmt.Sprintf("end_time = $%d", n))
		args = append(args, *upd.EndTime)
		n++
	}
	if n == 1 {
		return r.GetByID(ctx, id)
	}
	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE events SET %s
		WHERE id = $%d
		RETURNING id, description, start_time, end_time, created_at
	`, strings.Join(setClauses, ", "), n)
	e := &domain.Event{}
	err := r.DB.QueryRowContext(ctx, query, args...).Scan(&e.ID, &e.Description, &e.StartTime, &e.EndTime, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, mapConstraintError(err)
	}
	return e, nil
}

func (r *eventRepository) Delete(ctx context.Context, id string) (*domain.Event, error) {
	query := `
		DELETE FROM events
		WHERE id = $1
		RETURNING id, description, start_time, end_time, created_at
	`
	e := &domain.Event{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&e.ID, &e.Description, &e.StartTime, &e.EndTime, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, mapConstraintError(err)
	}
	return e, nil
}
