package service

import (
	"github.com/alexedwards/argon2id"
)

// HashPassword produces a salted, self-describing argon2id digest. The same
// function hashes refresh tokens before they are persisted, so sessions never
// store the raw token.
func HashPassword(plain string) (string, error) {
	return argon2id.CreateHash(plain, argon2id.DefaultParams)
}

// VerifyPassword reports whether plain matches the argon2id digest. A
// malformed digest counts as a mismatch rather than an error.
func VerifyPassword(digest, plain string) bool {
	match, err := argon2id.ComparePasswordAndHash(plain, digest)
	if err != nil {
		return false
	}
	return match
}
