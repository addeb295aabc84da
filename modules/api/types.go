package api

import "time"

// sessionBody is the POST /session request body.
type sessionBody struct {
	NationalID string `json:"nationalId" validate:"required,len=14,nationalid"`
	Password   string `json:"password" validate:"required"`
}

// createUserBody is the POST /users request body.
type createUserBody struct {
	Name       string `json:"name" validate:"required,max=120"`
	NationalID string `json:"nationalId" validate:"required,len=14,nationalid"`
	BirthDate  string `json:"birthDate" validate:"required"`
	Password   string `json:"password" validate:"required"`
	Note       string `json:"note" validate:"max=500"`
	IsAdmin    *bool  `json:"isAdmin" validate:"required"`
}

// editUserBody is the PUT /users/:id request body. Note is optional and,
// when omitted, leaves the stored note unchanged.
type editUserBody struct {
	Note    *string `json:"note" validate:"omitempty,max=500"`
	IsAdmin *bool   `json:"isAdmin" validate:"required"`
}

// SessionResponse is returned on a successful login.
type SessionResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// UserPayload is the API projection of a created user.
type UserPayload struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	NationalID string    `json:"nationalId"`
	BirthDate  time.Time `json:"birthDate"`
	Note       string    `json:"note"`
	IsAdmin    bool      `json:"isAdmin"`
	CreatedAt  time.Time `json:"createdAt"`
}

// CreateUserResponse is returned on a successful create.
type CreateUserResponse struct {
	Message string      `json:"message"`
	User    UserPayload `json:"user"`
}

// UpdatePayload echoes the mutable fields after an edit.
type UpdatePayload struct {
	Note    string `json:"note"`
	IsAdmin bool   `json:"isAdmin"`
}

// EditUserResponse is returned on a successful edit.
type EditUserResponse struct {
	Message string        `json:"message"`
	Update  UpdatePayload `json:"update"`
}

// ErrorResponse is the envelope for domain and authentication failures.
// Validation failures use a bare JSON array of messages instead.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}
