package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"eventboard/internal/domain"
)

type personRepository struct {
	DB *sql.DB
}

func NewPersonRepository(db *sql.DB) domain.PersonRepository {
	return &personRepository{
		DB: db,
	}
}

const personColumns = "id, dni, first_name, last_name, phone, email, birthdate, password_hash, created_at"

func scanPerson(row interface{ Scan(dest ...any) error }) (*domain.Person, error) {
	p := &domain.Person{}
	var phoneNull sql.NullString
	err := row.Scan(
		&p.ID, &p.DNI, &p.FirstName, &p.LastName,
		&phoneNull, &p.Email, &p.Birthdate, &p.PasswordHash, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if phoneNull.Valid {
		p.Phone = &phoneNull.String
	}
	return p, nil
}

func (r *personRepository) Create(ctx context.Context, p *domain.Person) error {
	query := `
		INSERT INTO persons (dni, first_name, last_name, phone, email, birthdate, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		p.DNI, p.FirstName, p.LastName, p.Phone, p.Email, p.Birthdate, p.PasswordHash, p.CreatedAt,
	).Scan(&p.ID)
	if err != nil {
		return mapConstraintError(err)
	}
	return nil
}

func (r *personRepository) GetByID(ctx context.Context, id string) (*domain.Person, error) {
	query := fmt.Sprintf(`SELECT %s FROM persons WHERE id = $1`, personColumns)
	p, err := scanPerson(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, mapConstraintError(err)
	}
	return p, nil
}

func (r *personRepository) GetByDNI(ctx context.Context, dni string) (*domain.Person, error) {
	query := fmt.Sprintf(`SELECT %s FROM persons WHERE dni = $1`, personColumns)
	p, err := scanPerson(r.DB.QueryRowContext(ctx, query, dni))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, mapConstraintError(err)
	}
	return p, nil
}

func (r *personRepository) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Person, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM persons`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT %s FROM persons
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, personColumns)
	rows, err := r.DB.QueryContext(ctx, query, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	persons := make([]*domain.Person, 0)
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, 0, err
		}
		persons = append(persons, p)
	}
	return persons, total, rows.Err()
}

func (r *personRepository) Update(ctx context.Context, id string, upd domain.PersonUpdate) (*domain.Person, error) {
	setClauses := []string{}
	args := []interface{}{}
	n := 1
	add := func(column string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, n))
		args = append(args, value)
		n++
	}
	if upd.FirstName != nil {
		add("first_name", *upd.FirstName)
	}
	if upd.LastName != nil {
		add("last_name", *upd.LastName)
	}
	if upd.Phone != nil {
		add("phone", *upd.Phone)
	}
	if upd.Email != nil {
		add("email", *upd.Email)
	}
	if upd.Birthdate != nil {
		add("birthdate", *upd.Birthdate)
	}
	// Password arrives pre-hashed from the service layer.
	if upd.Password != nil {
		add("password_hash", *upd.Password)
	}
	if n == 1 {
		return r.GetByID(ctx, id)
	}
	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE persons SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(setClauses, ", "), n, personColumns)
	p, err := scanPerson(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, mapConstraintError(err)
	}
	return p, nil
}

func (r *personRepository) Delete(ctx context.Context, id string) (*domain.Person, error) {
	query := fmt.Sprintf(`DELETE FROM persons WHERE id = $1 RETURNING %s`, personColumns)
	p, err := scanPerson(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, mapConstraintError(err)
	}
	return p, nil
}
