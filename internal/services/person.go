package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventboard/internal/domain"
)

type personService struct {
	personRepo domain.PersonRepository
	hasher     domain.PasswordHasher
	now        func() time.Time
}

// NewPersonService creates a PersonService with the given repository and
// password hasher.
func NewPersonService(personRepo domain.PersonRepository, hasher domain.PasswordHasher) domain.PersonService {
	return &personService{
		personRepo: personRepo,
		hasher:     hasher,
		now:        time.Now,
	}
}

// canAccess reports whether the caller may act on the person record:
// admins always, persons only on their own record.
func canAccess(id, callerID string, callerRole domain.Role) bool {
	return callerRole == domain.RoleAdmin || (callerRole == domain.RolePerson && callerID == id)
}

func (s *personService) Register(ctx context.Context, p *domain.Person, password string) (*domain.Person, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	p.PasswordHash = hash
	p.CreatedAt = s.now()
	// DNI and email are unique at the store; duplicates surface from Create
	// as ErrDuplicateDNI / ErrDuplicateEmail.
	if err := s.personRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *personService) GetByID(ctx context.Context, id, callerID string, callerRole domain.Role) (*domain.Person, error) {
	if !canAccess(id, callerID, callerRole) {
		return nil, domain.ErrForbidden
	}
	p, err := s.personRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get person: %w", err)
	}
	return p, nil
}

func (s *personService) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Person, int, error) {
	persons, total, err := s.personRepo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list persons: %w", err)
	}
	return persons, total, nil
}

func (s *personService) Update(ctx context.Context, id string, upd domain.PersonUpdate, callerID string, callerRole domain.Role) (*domain.Person, error) {
	if !canAccess(id, callerID, callerRole) {
		return nil, domain.ErrForbidden
	}
	if upd.Password != nil {
		hash, err := s.hasher.Hash(*upd.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		upd.Password = &hash
	}
	updated, err := s.personRepo.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (s *personService) Delete(ctx context.Context, id, callerID string, callerRole domain.Role) (*domain.Person, error) {
	if !canAccess(id, callerID, callerRole) {
		return nil, domain.ErrForbidden
	}
	deleted, err := s.personRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("delete person: %w", err)
	}
	return deleted, nil
}
