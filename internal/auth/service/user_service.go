package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hanifmaliki/auth-service/internal/auth/domain"
	"github.com/hanifmaliki/auth-service/internal/auth/dto"
	autherror "github.com/hanifmaliki/auth-service/internal/errors"
)

type UserService struct {
	repo   domain.UserRepository
	tokens TokenIssuer
}

func NewUserService(repo domain.UserRepository, tokens TokenIssuer) *UserService {
	return &UserService{
		repo:   repo,
		tokens: tokens,
	}
}

func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (*dto.UserOutput, error) {
	existing, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, autherror.ErrEmailAlreadyInUse
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        input.Email,
		PasswordHash: hash,
		FirstName:    optional(input.FirstName),
		LastName:     optional(input.LastName),
		CreatedAt:    time.Now(),
	}

	// Two concurrent registrations can pass the GetByEmail check; the unique
	// constraint on users.email is the final arbiter and the repository maps
	// its violation to ErrEmailAlreadyInUse.
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return &dto.UserOutput{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		CreatedAt: user.CreatedAt,
	}, nil
}

func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.TokenPair, error) {
	user, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}

	// Absent user and wrong password are deliberately indistinguishable.
	if user == nil || !VerifyPassword(user.PasswordHash, input.Password) {
		return nil, autherror.ErrInvalidCredentials
	}

	accessToken, err := s.tokens.SignAccessToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}
	refreshToken, err := s.tokens.SignRefreshToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	tokenHash, err := HashPassword(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to hash refresh token: %w", err)
	}

	session := &domain.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		TokenHash: tokenHash,
		CreatedAt: time.Now(),
	}
	if err := s.repo.CreateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	return &dto.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Refresh exchanges a valid refresh token for a new access token. The
// presented refresh token and its session row stay valid until their own
// expiry; nothing is rotated or revoked here.
func (s *UserService) Refresh(ctx context.Context, rawRefreshToken string) (string, error) {
	result := s.tokens.VerifyRefreshToken(rawRefreshToken)
	if !result.Valid || result.Claims == nil || result.Claims.UserID == "" {
		return "", autherror.ErrInvalidRefreshToken
	}

	sessions, err := s.repo.GetSessionsByUserID(ctx, result.Claims.UserID)
	if err != nil {
		return "", err
	}
	if len(sessions) == 0 {
		return "", autherror.ErrSessionNotFound
	}

	// One argon2id verification per session: cost grows linearly with the
	// number of concurrent sessions for the user. Match order is unspecified.
	matched := false
	for _, session := range sessions {
		if VerifyPassword(session.TokenHash, rawRefreshToken) {
			matched = true
			break
		}
	}
	if !matched {
		return "", autherror.ErrInvalidSession
	}

	accessToken, err := s.tokens.SignAccessToken(result.Claims.UserID)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}

	return accessToken, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
