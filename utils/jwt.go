package utils

import (
	"errors"
	"os"
	"sync"
	"time"

	"github.com/golang-jwt/jwt"
)

var (
	secretMu  sync.RWMutex
	secretKey = []byte(getSecret())
)

func getSecret() string {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "GYMNEXA"
	}
	return secret
}

// SetTokenSecret replaces the signing secret. Empty secrets are ignored.
func SetTokenSecret(secret string) {
	if secret == "" {
		return
	}
	secretMu.Lock()
	secretKey = []byte(secret)
	secretMu.Unlock()
}

func currentSecret() []byte {
	secretMu.RLock()
	defer secretMu.RUnlock()
	return secretKey
}

// GenerateToken creates a signed JWT token with the given subject (a session id).
// The token expires after the specified duration.
func GenerateToken(subject string, duration time.Duration) (string, error) {
	claims := jwt.StandardClaims{
		Subject:   subject,
		IssuedAt:  time.Now().Unix(),
		ExpiresAt: time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(currentSecret())
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(tokenString, &jwt.StandardClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return currentSecret(), nil
	})
}

// ExtractIDFromToken extracts the subject from a valid JWT token string.
func ExtractIDFromToken(tokenString string) (string, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*jwt.StandardClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token")
	}
	if claims.Subject == "" {
		return "", errors.New("token does not contain a valid 'sub' claim")
	}
	return claims.Subject, nil
}
