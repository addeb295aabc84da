package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain "github.com/example/user-admin-api/domain/user"
	"github.com/google/uuid"
)

// ErrInvalidCredentials is returned when the national id is unknown or the
// password does not match. The two causes are deliberately not
// distinguished, to avoid user enumeration.
var ErrInvalidCredentials = errors.New("incorrect national id/password combination")

// CreateInput carries the fields for a new user record.
type CreateInput struct {
	Name       string
	NationalID string
	BirthDate  time.Time
	Password   string
	IsAdmin    bool
	Note       string
}

// Service handles user management business logic.
type Service struct {
	repo   *Repository
	hasher *PasswordHasher
}

// NewService creates a new Service.
func NewService(repo *Repository, hasher *PasswordHasher) *Service {
	return &Service{
		repo:   repo,
		hasher: hasher,
	}
}

// Create stores a new user with a hashed password.
func (s *Service) Create(_ context.Context, in CreateInput) (*domain.User, error) {
	exists, err := s.repo.NationalIDExists(in.NationalID)
	if err != nil {
		return nil, fmt.Errorf("failed to check national id existence: %w", err)
	}
	if exists {
		return nil, ErrDuplicateNationalID
	}

	passwordHash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		NationalID:   in.NationalID,
		BirthDate:    in.BirthDate,
		PasswordHash: passwordHash,
		Note:         in.Note,
		IsAdmin:      in.IsAdmin,
		CreatedAt:    time.Now(),
	}

	if err := s.repo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

// List returns all users ordered by creation time, oldest first.
func (s *Service) List(_ context.Context) ([]*domain.User, error) {
	return s.repo.ListByCreation()
}

// Edit merges the given fields onto an existing user. A nil note leaves
// the stored note unchanged.
func (s *Service) Edit(_ context.Context, id string, note *string, isAdmin bool) (*domain.User, error) {
	user, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if note != nil {
		user.Note = *note
	}
	user.IsAdmin = isAdmin

	if err := s.repo.Update(user); err != nil {
		return nil, err
	}

	return user, nil
}

// Delete removes a user by id.
func (s *Service) Delete(_ context.Context, id string) error {
	return s.repo.Delete(id)
}

// VerifyCredentials checks a national id/password pair against the store.
func (s *Service) VerifyCredentials(_ context.Context, nationalID, password string) (*domain.User, error) {
	user, err := s.repo.FindByNationalID(nationalID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
