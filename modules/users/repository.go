package users

import (
	"errors"
	"fmt"

	domain "github.com/example/user-admin-api/domain/user"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when no user matches the given id.
	ErrNotFound = errors.New("there is no user with that id")
	// ErrDuplicateNationalID is returned when a user with the same
	// national id already exists.
	ErrDuplicateNationalID = errors.New("there is already a user with that national id")
)

// Repository handles user persistence using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new Repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db: db,
	}
}

// Create inserts a new user. The unique index on national_id backs the
// duplicate check: when two concurrent creates race, the second insert
// fails here instead of overwriting the first.
func (r *Repository) Create(user *domain.User) error {
	if err := r.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateNationalID
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindByID finds a user by id.
func (r *Repository) FindByID(id string) (*domain.User, error) {
	var user domain.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

// FindByNationalID finds a user by national id.
func (r *Repository) FindByNationalID(nationalID string) (*domain.User, error) {
	var user domain.User
	if err := r.db.First(&user, "national_id = ?", nationalID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

// NationalIDExists checks if a user with the given national id exists.
func (r *Repository) NationalIDExists(nationalID string) (bool, error) {
	var count int64
	if err := r.db.Model(&domain.User{}).Where("national_id = ?", nationalID).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count users: %w", err)
	}
	return count > 0, nil
}

// ListByCreation retrieves all users ordered by creation time, oldest first.
func (r *Repository) ListByCreation() ([]*domain.User, error) {
	var users []*domain.User
	if err := r.db.Order("created_at ASC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// Update writes the mutable fields (note, permission) of an existing
// record. Everything else is immutable after creation.
func (r *Repository) Update(user *domain.User) error {
	result := r.db.Model(&domain.User{}).Where("id = ?", user.ID).Updates(map[string]any{
		"note":     user.Note,
		"is_admin": user.IsAdmin,
	})
	if err := result.Error; err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a user by id.
func (r *Repository) Delete(id string) error {
	result := r.db.Delete(&domain.User{}, "id = ?", id)
	if err := result.Error; err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the number of stored users.
func (r *Repository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&domain.User{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}
