package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventboard/internal/domain"
)

type adminService struct {
	adminRepo domain.AdminRepository
	hasher    domain.PasswordHasher
	now       func() time.Time
}

// NewAdminService creates an AdminService with the given repository and
// password hasher.
func NewAdminService(adminRepo domain.AdminRepository, hasher domain.PasswordHasher) domain.AdminService {
	return &adminService{
		adminRepo: adminRepo,
		hasher:    hasher,
		now:       time.Now,
	}
}

func (s *adminService) Create(ctx context.Context, username, password, role string) (*domain.Admin, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	if role == "" {
		role = "admin"
	}
	admin := &domain.Admin{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    s.now(),
	}
	// Username is unique at the store; duplicates surface from Create as
	// ErrDuplicateUsername.
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

func (s *adminService) GetByID(ctx context.Context, id string) (*domain.Admin, error) {
	admin, err := s.adminRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get admin: %w", err)
	}
	return admin, nil
}

func (s *adminService) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Admin, int, error) {
	admins, total, err := s.adminRepo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list admins: %w", err)
	}
	return admins, total, nil
}

func (s *adminService) Update(ctx context.Context, id string, upd domain.AdminUpdate) (*domain.Admin, error) {
	if upd.Password != nil {
		hash, err := s.hasher.Hash(*upd.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		upd.Password = &hash
	}
	updated, err := s.adminRepo.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (s *adminService) Delete(ctx context.Context, id string) (*domain.Admin, error) {
	deleted, err := s.adminRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("delete admin: %w", err)
	}
	return deleted, nil
}
