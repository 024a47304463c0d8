package auth

import "time"

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PhoneNumber  string    `json:"phoneNumber"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Image        string    `json:"image,omitempty"`
	Skill        string    `json:"skill,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Session is the server-side half of the refresh scheme. One row per
// user: reassigning RefreshTokenID invalidates the previous token, so
// an account has a single active session.
type Session struct {
	UserID         string
	RefreshTokenID string
	IssuedAt       time.Time
	ExpiresAt      time.Time
}

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
