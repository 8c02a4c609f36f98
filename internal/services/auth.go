package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventboard/internal/domain"
)

type authService struct {
	personRepo domain.PersonRepository
	adminRepo  domain.AdminRepository
	hasher     domain.PasswordHasher
	issuer     domain.TokenIssuer
	expiry     time.Duration
}

// NewAuthService creates an AuthService issuing tokens with the given expiry.
func NewAuthService(
	personRepo domain.PersonRepository,
	adminRepo domain.AdminRepository,
	hasher domain.PasswordHasher,
	issuer domain.TokenIssuer,
	expiry time.Duration,
) domain.AuthService {
	return &authService{
		personRepo: personRepo,
		adminRepo:  adminRepo,
		hasher:     hasher,
		issuer:     issuer,
		expiry:     expiry,
	}
}

func (s *authService) LoginPerson(ctx context.Context, dni, password string) (string, *domain.Person, error) {
	person, err := s.personRepo.GetByDNI(ctx, dni)
	if err != nil {
		// Unknown dni reads the same as a wrong password.
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("get person by dni: %w", err)
	}
	if err := s.hasher.Compare(person.PasswordHash, password); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}
	token, err := s.issuer.Issue(person.ID, domain.RolePerson, s.expiry)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	return token, person, nil
}

func (s *authService) LoginAdmin(ctx context.Context, username, password string) (string, *domain.Admin, error) {
	admin, err := s.adminRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("get admin by username: %w", err)
	}
	if err := s.hasher.Compare(admin.PasswordHash, password); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}
	token, err := s.issuer.Issue(admin.ID, domain.RoleAdmin, s.expiry)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	return token, admin, nil
}

func (s *authService) Resolve(ctx context.Context, subjectID string, role domain.Role) error {
	switch role {
	case domain.RoleAdmin:
		_, err := s.adminRepo.GetByID(ctx, subjectID)
		return err
	case domain.RolePerson:
		_, err := s.personRepo.GetByID(ctx, subjectID)
		return err
	}
	return domain.ErrNotFound
}
