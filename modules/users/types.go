package users

import (
	"time"

	domain "github.com/example/user-admin-api/domain/user"
)

// CreateUserRequest represents a create-user request.
type CreateUserRequest struct {
	Name       string    `json:"name"`
	NationalID string    `json:"national_id"`
	BirthDate  time.Time `json:"birth_date"`
	Password   string    `json:"password"`
	IsAdmin    bool      `json:"is_admin"`
	Note       string    `json:"note"`
}

// CreateUserResponse represents a create-user response.
type CreateUserResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	NationalID string    `json:"national_id"`
	BirthDate  time.Time `json:"birth_date"`
	Note       string    `json:"note"`
	IsAdmin    bool      `json:"is_admin"`
	CreatedAt  time.Time `json:"created_at"`
}

// ListUsersRequest represents a list-users request.
type ListUsersRequest struct{}

// ListUsersResponse represents a list-users response.
type ListUsersResponse struct {
	Users []domain.Profile `json:"users"`
}

// EditUserRequest represents an edit-user request. A nil Note leaves the
// stored note unchanged.
type EditUserRequest struct {
	ID      string  `json:"id"`
	Note    *string `json:"note,omitempty"`
	IsAdmin bool    `json:"is_admin"`
}

// EditUserResponse represents an edit-user response.
type EditUserResponse struct {
	Note    string `json:"note"`
	IsAdmin bool   `json:"is_admin"`
}

// DeleteUserRequest represents a delete-user request.
type DeleteUserRequest struct {
	ID string `json:"id"`
}

// DeleteUserResponse represents a delete-user response.
type DeleteUserResponse struct{}

// VerifyCredentialsRequest represents a credential verification request.
type VerifyCredentialsRequest struct {
	NationalID string `json:"national_id"`
	Password   string `json:"password"`
}

// VerifyCredentialsResponse represents a credential verification response.
type VerifyCredentialsResponse struct {
	UserID  string `json:"user_id"`
	IsAdmin bool   `json:"is_admin"`
}
