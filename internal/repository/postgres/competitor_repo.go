package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"eventboard/internal/domain"
)

type competitorRepository struct {
	DB *sql.DB
}

func NewCompetitorRepository(db *sql.DB) domain.CompetitorRepository {
	return &competitorRepository{
		DB: db,
	}
}

func (r *competitorRepository) Create(ctx context.Context, c *domain.Competitor) error {
	query := `
		INSERT INTO competitors (person_id, competition_id, enrolled_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, c.PersonID, c.CompetitionID, c.EnrolledAt).Scan(&c.ID)
	if err != nil {
		return mapConstraintError(err)
	}
	return nil
}

func (r *competitorRepository) GetByID(ctx context.Context, id string) (*domain.Competitor, error) {
	query := `
		SELECT id, person_id, competition_id, enrolled_at
		FROM competitors
		WHERE id = $1
	`
	c := &domain.Competitor{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.PersonID, &c.CompetitionID, &c.EnrolledAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, mapConstraintError(err)
	}
	return c, nil
}

func (r *competitorRepository) List(ctx context.Context, filter domain.CompetitorFilter, params domain.PaginationParams) ([]*domain.Competitor, int, error) {
	conds := []string{}
	args := []interface{}{}
	n := 1
	if filter.PersonID != "" {
		conds = append(conds, fmt.Sprintf("person_id = $%d", n))
		args = append(args, filter.PersonID)
		n++
	}
	if filter.CompetitionID != "" {
		conds = append(conds, fmt.Sprintf("competition_id = $%d", n))
		args = append(args, filter.CompetitionID)
		n++
	}
	where := ""
	if len(conds) > 0 {
		where = "WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM competitors %s`, where)
	if err := r.DB.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, mapConstraintError(err)
	}

	query := fmt.Sprintf(`
		SELECT id, person_id, competition_id, enrolled_at
		FROM competitors
		%s
		ORDER BY enrolled_at DESC
		LIMIT $%d OFFSET $%d
	`, where, n, n+1)
	args = append(args, params.PageSize, params.Offset())
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, mapConstraintError(err)
	}
	defer rows.Close()

	competitors := make([]*domain.Competitor, 0)
	for rows.Next() {
		c := &domain.Competitor{}
		if err := rows.Scan(&c.ID, &c.PersonID, &c.CompetitionID, &c.EnrolledAt); err != nil {
			return nil, 0, err
		}
		competitors = append(competitors, c)
	}
	return competitors, total, rows.Err()
}

func (r *competitorRepository) Delete(ctx context.Context, id string) (*domain.Competitor, error) {
	query := `
		DELETE FROM competitors
		WHERE id = $1
		RETURNING id, person_id, competition_id, enrolled_at
	`
	c := &domain.Competitor{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.PersonID, &c.CompetitionID, &c.EnrolledAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, mapConstraintError(err)
	}
	return c, nil
}
