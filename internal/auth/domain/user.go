package domain

import "time"

type User struct {
	ID           string
	Email        string
	PasswordHash string
	FirstName    *string
	LastName     *string
	CreatedAt    time.Time
}

// Session binds a user to one issued refresh token. Only an argon2id hash of
// the token is stored, never the token itself.
type Session struct {
	ID        string
	UserID    string
	TokenHash string
	CreatedAt time.Time
}
