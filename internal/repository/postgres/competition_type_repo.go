package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"eventboard/internal/domain"
)

type competitionTypeRepository struct {
	DB *sql.DB
}

func NewCompetitionTypeRepository(db *sql.DB) domain.CompetitionTypeRepository {
	return &competitionTypeRepository{
		DB: db,
	}
}

const competitionTypeColumns = "id, description, rules, image_key, image_url, created_at"

func scanCompetitionType(row interface{ Scan(dest ...any) error }) (*domain.CompetitionType, error) {
	ct := &domain.CompetitionType{}
	var keyNull, urlNull sql.NullString
	if err := row.Scan(&ct.ID, &ct.Description, &ct.Rules, &keyNull, &urlNull, &ct.CreatedAt); err != nil {
		return nil, err
	}
	if keyNull.Valid {
		ct.ImageKey = &keyNull.String
	}
	if urlNull.Valid {
		ct.ImageURL = &urlNull.String
	}
	return ct, nil
}

func (r *competitionTypeRepository) Create(ctx context.Context, ct *domain.CompetitionType) error {
	query := `
		INSERT INTO competition_types (description, rules, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, ct.Description, ct.Rules, ct.CreatedAt).Scan(&ct.ID)
	if err != nil {
		return mapConstraintError(err)
	}
	return nil
}

func (r *competitionTypeRepository) GetByID(ctx context.Context, id string) (*domain.CompetitionType, error) {
	query := fmt.Sprintf(`SELECT %s FROM competition_types WHERE id = $1`, competitionTypeColumns)
	ct, err := scanCompetitionType(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, mapConstraintError(err)
	}
	return ct, nil
}

func (r *competitionTypeRepository) List(ctx context.Context, params domain.PaginationParams) ([]*domain.CompetitionType, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM competition_types`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT %s FROM competition_types
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, competitionTypeColumns)
	rows, err := r.DB.QueryContext(ctx, query, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	types := make([]*domain.CompetitionType, 0)
	for rows.Next() {
		ct, err := scanCompetitionType(rows)
		if err != nil {
			return nil, 0, err
		}
		types = append(types, ct)
	}
	return types, total, rows.Err()
}

func (r *competitionTypeRepository) Update(ctx context.Context, id string, upd domain.CompetitionTypeUpdate) (*domain.CompetitionType, error) {
	setClauses := []string{}
	args := []interface{}{}
	n := 1
	if upd.Description != nil {
		setClauses = append(setClauses, fmt.Sprintf("description = $%d", n))
		args = append(args, *upd.Description)
		n++
	}
	if upd.Rules != nil {
		setClauses = append(setClauses, fmt.Sprintf("rules = $%d", n))
		args = append(args, *upd.Rules)
		n++
	}
	if n == 1 {
		return r.GetByID(ctx, id)
	}
	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE competition_types SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(setClauses, ", "), n, competitionTypeColumns)
	ct, err := scanCompetitionType(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, mapConstraintError(err)
	}
	return ct, nil
}

func (r *competitionTypeRepository) Delete(ctx context.Context, id string) (*domain.CompetitionType, error) {
	query := fmt.Sprintf(`DELETE FROM competition_types WHERE id = $1 RETURNING %s`, competitionTypeColumns)
	ct, err := scanCompetitionType(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, mapConstraintError(err)
	}
	return ct, nil
}

func (r *competitionTypeRepository) SetImage(ctx context.Context, id, key, url string) (*domain.CompetitionType, error) {
	query := fmt.Sprintf(`
		UPDATE competition_types SET image_key = $1, image_url = $2
		WHERE id = $3
		RETURNING %s
	`, competitionTypeColumns)
	ct, err := scanCompetitionType(r.DB.QueryRowContext(ctx, query, key, url, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, mapConstraintError(err)
	}
	return ct, nil
}
