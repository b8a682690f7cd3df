package service

//go:generate mockgen -destination=../../mocks/mock_token_issuer.go -package=mocks github.com/hanifmaliki/auth-service/internal/auth/service TokenIssuer

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type TokenIssuer interface {
	SignAccessToken(userID string) (string, error)
	SignRefreshToken(userID string) (string, error)
	VerifyAccessToken(tokenString string) VerifyResult
	VerifyRefreshToken(tokenString string) VerifyResult
	GetAccessTokenExpiry() time.Duration
	GetRefreshTokenExpiry() time.Duration
}

// TokenService signs and verifies the two token classes. Access and refresh
// tokens use independent secrets so a leak of one does not forge the other.
type TokenService struct {
	AccessTokenSecret  string
	RefreshTokenSecret string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
}

type TokenClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
}

// VerifyResult is the outcome of a token verification. Expired is set only
// when the sole reason for rejection is TTL expiry, so callers can tell an
// expired token from a tampered one.
type VerifyResult struct {
	Valid   bool
	Expired bool
	Claims  *TokenClaims
}

func NewTokenService(accessSecret, refreshSecret string, accessMinutes, refreshMinutes int) *TokenService {
	return &TokenService{
		AccessTokenSecret:  accessSecret,
		RefreshTokenSecret: refreshSecret,
		AccessTokenExpiry:  time.Duration(accessMinutes) * time.Minute,
		RefreshTokenExpiry: time.Duration(refreshMinutes) * time.Minute,
	}
}

func (ts *TokenService) SignAccessToken(userID string) (string, error) {
	return sign(userID, ts.AccessTokenSecret, ts.AccessTokenExpiry)
}

func (ts *TokenService) SignRefreshToken(userID string) (string, error) {
	return sign(userID, ts.RefreshTokenSecret, ts.RefreshTokenExpiry)
}

func (ts *TokenService) VerifyAccessToken(tokenString string) VerifyResult {
	return verify(tokenString, ts.AccessTokenSecret)
}

func (ts *TokenService) VerifyRefreshToken(tokenString string) VerifyResult {
	return verify(tokenString, ts.RefreshTokenSecret)
}

func (ts *TokenService) GetAccessTokenExpiry() time.Duration {
	return ts.AccessTokenExpiry
}

func (ts *TokenService) GetRefreshTokenExpiry() time.Duration {
	return ts.RefreshTokenExpiry
}

func sign(userID, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// verify never returns an error: any failure yields Valid=false, with Expired
// flagged when the cause was TTL expiry.
func verify(tokenString, secret string) VerifyResult {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return VerifyResult{Expired: errors.Is(err, jwt.ErrTokenExpired)}
	}
	if !token.Valid {
		return VerifyResult{}
	}

	return VerifyResult{Valid: true, Claims: claims}
}
