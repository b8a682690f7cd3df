package domain

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/hanifmaliki/auth-service/internal/auth/domain UserRepository

import "context"

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, user *User) error
	CreateSession(ctx context.Context, session *Session) error
	GetSessionsByUserID(ctx context.Context, userID string) ([]Session, error)
}
