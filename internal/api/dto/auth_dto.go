package dto

import "time"

// KioskLoginRequest payload for kiosk clients.
type KioskLoginRequest struct {
	Alias string `json:"alias"`
	Pin   string `json:"pin"`
}

// AdminLoginRequest payload for the web console.
type AdminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PasswordChangeRequest payload for authenticated password changes.
type PasswordChangeRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// LoginResponse is the success value of both login endpoints.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	SubjectID int64     `json:"subject_id"`
}
