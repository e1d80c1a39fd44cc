package dto

import "authbase/internal/models"

type RegisterRequest struct {
	Name     string `json:"name"`
	DOB      string `json:"dob"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned on successful registration and login.
type AuthResponse struct {
	Success bool        `json:"success"`
	Token   string      `json:"token"`
	User    models.User `json:"user"`
}

// UsersResponse wraps the user listing.
type UsersResponse struct {
	Success bool          `json:"success"`
	Users   []models.User `json:"users"`
}
