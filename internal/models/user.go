package models

import "time"

// Default role and status assigned to newly registered users.
const (
	RoleMember    = "member"
	RoleAdmin     = "admin"
	StatusActive  = "active"
	StatusBlocked = "blocked"
)

// User captures application-facing fields for an authenticated identity.
// PasswordHash is excluded from every JSON encoding; it must never leave
// the storage boundary in a response.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	DateOfBirth  Date      `json:"dob"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	Status       string    `json:"status"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
