package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Claims carries the registered claim set this service signs: issuer is the
// fixed service identity, subject is the user id, audience is the username.
type Claims struct {
	jwt.RegisteredClaims
}

// UserID returns the subject claim.
func (c *Claims) UserID() string {
	return c.Subject
}

// Username returns the first audience entry, empty if none.
func (c *Claims) Username() string {
	if len(c.Audience) == 0 {
		return ""
	}
	return c.Audience[0]
}

// TokenManagerAPI issues and verifies signed tokens.
type TokenManagerAPI interface {
	Generate(userID, username string) (string, error)
	Verify(tokenString string) (*Claims, error)
}

func VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// DefaultTokenTTL matches the original credential lifetime.
const DefaultTokenTTL = 30 * 24 * time.Hour
