package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"eventboard/internal/domain"
)

type competitionRepository struct {
	DB *sql.DB
}

func NewCompetitionRepository(db *sql.DB) domain.CompetitionRepository {
	return &competitionRepository{
		DB: db,
	}
}

const competitionColumns = "id, competition_type_id, event_id, description, start_time, estimated_end_time, prizes, registration_fee, created_at"

func scanCompetition(row interface{ Scan(dest ...any) error }) (*domain.Competition, error) {
	c := &domain.Competition{}
	err := row.Scan(
		&c.ID, &c.CompetitionTypeID, &c.EventID, &c.Description,
		&c.StartTime, &c.EstimatedEndTime, &c.Prizes, &c.RegistrationFee, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *competitionRepository) Create(ctx context.Context, c *domain.Competition) error {
	query := `
		INSERT INTO competitions (competition_type_id, event_id, description, start_time, estimated_end_time, prizes, registration_fee, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		c.CompetitionTypeID, c.EventID, c.Description,
		c.StartTime, c.EstimatedEndTime, c.Prizes, c.RegistrationFee, c.CreatedAt,
	).Scan(&c.ID)
	if err != nil {
		return mapConstraintError(err)
	}
	return nil
}

func (r *competitionRepository) GetByID(ctx context.Context, id string) (*domain.Competition, error) {
	query := fmt.Sprintf(`SELECT %s FROM competitions WHERE id = $1`, competitionColumns)
	c, err := scanCompetition(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, mapConstraintError(err)
	}
	return c, nil
}

func (r *competitionRepository) List(ctx context.Context, filter domain.CompetitionFilter, params domain.PaginationParams) ([]*domain.Competition, int, error) {
	conds := []string{}
	args := []interface{}{}
	n := 1
	if filter.EventID != "" {
		conds = append(conds, fmt.Sprintf("event_id = $%d", n))
		args = append(args, filter.EventID)
		n++
	}
	if filter.CompetitionTypeID != "" {
		conds = append(conds, fmt.Sprintf("competition_type_id = $%d", n))
		args = append(args, filter.CompetitionTypeID)
		n++
	}
	where := ""
	if len(conds) > 0 {
		where = "WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM competitions %s`, where)
	if err := r.DB.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, mapConstraintError(err)
	}

	query := fmt.Sprintf(`
		SELECT %s FROM competitions
		%s
		ORDER BY start_time ASC
		LIMIT $%d OFFSET $%d
	`, competitionColumns, where, n, n+1)
	args = append(args, params.PageSize, params.Offset())
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, mapConstraintError(err)
	}
	defer rows.Close()

	competitions := make([]*domain.Competition, 0)
	for rows.Next() {
		c, err := scanCompetition(rows)
		if err != nil {
			return nil, 0, err
		}
		competitions = append(competitions, c)
	}
	return competitions, total, rows.Err()
}

func (r *competitionRepository) Update(ctx context.Context, id string, upd domain.CompetitionUpdate) (*domain.Competition, error) {
	setClauses := []string{}
	args := []interface{}{}
	n := 1
	add := func(column string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, n))
		args = append(args, value)
		n++
	}
	if upd.CompetitionTypeID != nil {
		add("competition_type_id", *upd.CompetitionTypeID)
	}
	if upd.EventID != nil {
		add("event_id", *upd.EventID)
	}
	if upd.Description != nil {
		add("description", *upd.Description)
	}
	if upd.StartTime != nil {
		add("start_time", *upd.StartTime)
	}
	if upd.EstimatedEndTime != nil {
		add("estimated_end_time", *upd.EstimatedEndTime)
	}
	if upd.Prizes != nil {
		add("prizes", *upd.Prizes)
	}
	if upd.RegistrationFee != nil {
		add("registration_fee", *upd.RegistrationFee)
	}
	if n == 1 {
		return r.GetByID(ctx, id)
	}
	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE competitions SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(setClauses, ", "), n, competitionColumns)
	c, err := scanCompetition(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, mapConstraintError(err)
	}
	return c, nil
}

func (r *competitionRepository) Delete(ctx context.Context, id string) (*domain.Competition, error) {
	query := fmt.Sprintf(`DELETE FROM competitions WHERE id = $1 RETURNING %s`, competitionColumns)
	c, err := scanCompetition(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, mapConstraintError(err)
	}
	return c, nil
}
