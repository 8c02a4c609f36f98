package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"eventboard/internal/domain"
)

type adminRepository struct {
	DB *sql.DB
}

func NewAdminRepository(db *sql.DB) domain.AdminRepository {
	return &adminRepository{
		DB: db,
	}
}

const adminColumns = "id, username, password_hash, role, created_at"

func scanAdmin(row interface{ Scan(dest ...any) error }) (*domain.Admin, error) {
	a := &domain.Admin{}
	if err := row.Scan(&a.ID, &a.Username, &a.PasswordHash, &a.Role, &a.CreatedAt); err != nil {
		return nil, err
	}
	return a, nil
}

func (r *adminRepository) Create(ctx context.Context, a *domain.Admin) error {
	query := `
		INSERT INTO admins (username, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, a.Username, a.PasswordHash, a.Role, a.CreatedAt).Scan(&a.ID)
	if err != nil {
		return mapConstraintError(err)
	}
	return nil
}

func (r *adminRepository) GetByID(ctx context.Context, id string) (*domain.Admin, error) {
	query := fmt.Sprintf(`SELECT %s FROM admins WHERE id = $1`, adminColumns)
	a, err := scanAdmin(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, mapConstraintError(err)
	}
	return a, nil
}

func (r *adminRepository) GetByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	query := fmt.Sprintf(`SELECT %s FROM admins WHERE username = $1`, adminColumns)
	a, err := scanAdmin(r.DB.QueryRowContext(ctx, query, username))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, mapConstraintError(err)
	}
	return a, nil
}

func (r *adminRepository) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Admin, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM admins`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT %s FROM admins
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, adminColumns)
	rows, err := r.DB.QueryContext(ctx, query, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	admins := make([]*domain.Admin, 0)
	for rows.Next() {
		a, err := scanAdmin(rows)
		if err != nil {
			return nil, 0, err
		}
		admins = append(admins, a)
	}
	return admins, total, rows.Err()
}

func (r *adminRepository) Update(ctx context.Context, id string, upd domain.AdminUpdate) (*domain.Admin, error) {
	setClauses := []string{}
	args := []interface{}{}
	n := 1
	if upd.Username != nil {
		setClauses = append(setClauses, fmt.Sprintf("username = $%d", n))
		args = append(args, *upd.Username)
		n++
	}
	// Password arrives pre-hashed from the service layer.
	if upd.Password != nil {
		setClauses = append(setClauses, fmt.Sprintf("password_hash = $%d", n))
		args = append(args, *upd.Password)
		n++
	}
	if upd.Role != nil {
		setClauses = append(setClauses, fmt.Sprintf("role = $%d", n))
		args = append(args, *upd.Role)
		n++
	}
	if n == 1 {
		return r.GetByID(ctx, id)
	}
	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE admins SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(setClauses, ", "), n, adminColumns)
	a, err := scanAdmin(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, mapConstraintError(err)
	}
	return a, nil
}

func (r *adminRepository) Delete(ctx context.Context, id string) (*domain.Admin, error) {
	query := fmt.Sprintf(`DELETE FROM admins WHERE id = $1 RETURNING %s`, adminColumns)
	a, err := scanAdmin(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, mapConstraintError(err)
	}
	return a, nil
}
