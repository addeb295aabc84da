package user

import (
	"time"
)

// User represents a user record in the credential store.
// PasswordHash never appears in any API response.
type User struct {
	ID           string    `gorm:"primaryKey;type:text"`
	Name         string    `gorm:"not null;type:text"`
	NationalID   string    `gorm:"uniqueIndex;not null;size:14"`
	BirthDate    time.Time `gorm:"not null"`
	PasswordHash string    `gorm:"not null;type:text"`
	Note         string    `gorm:"size:500"`
	IsAdmin      bool      `gorm:"not null"`
	CreatedAt    time.Time
}

// TableName returns the table name for the User entity.
func (User) TableName() string {
	return "users"
}

// Claims represents the decoded contents of a verified bearer token.
type Claims struct {
	Subject string `json:"subject"`
	Admin   bool   `json:"admin"`
}

// Profile is the public projection of a user record.
type Profile struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	BirthDate  time.Time `json:"birthDate"`
	Note       string    `json:"note"`
	NationalID string    `json:"nationalId"`
	IsAdmin    bool      `json:"isAdmin"`
}

// NewProfile projects a stored user into its public shape.
func NewProfile(u *User) Profile {
	return Profile{
		ID:         u.ID,
		Name:       u.Name,
		BirthDate:  u.BirthDate,
		Note:       u.Note,
		NationalID: u.NationalID,
		IsAdmin:    u.IsAdmin,
	}
}
