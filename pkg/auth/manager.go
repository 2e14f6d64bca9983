package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/debate-hall/backend/internal/config"
)

const tokenPlatform = "LINE_OA"

// TokenManager signs and parses the debate-link tokens handed out by
// the chat bot. The token only proves the link was minted by us for a
// given LINE user, nothing more.
type TokenManager interface {
	NewDebateToken(userID string) (string, error)
	Parse(token string) (string, error)
}

type debateClaims struct {
	Platform string `json:"platform"`
	Version  string `json:"version"`
	jwt.RegisteredClaims
}

type Manager struct {
	signingKey string
	tokenTTL   time.Duration
}

func NewManager(cfg config.JWTConfig) (*Manager, error) {
	if cfg.SigningKey == "" {
		return nil, errors.New("empty signing key")
	}

	if cfg.TokenTTL == 0 {
		return nil, errors.New("empty token ttl")
	}

	return &Manager{
		signingKey: cfg.SigningKey,
		tokenTTL:   cfg.TokenTTL,
	}, nil
}

func (m *Manager) NewDebateToken(userID string) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, debateClaims{
		Platform: tokenPlatform,
		Version:  "1.0",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.tokenTTL)),
		},
	})

	signed, err := token.SignedString([]byte(m.signingKey))
	if err != nil {
		return "", fmt.Errorf("sign debate token failed: %w", err)
	}

	return signed, nil
}

// Parse validates the signature and expiry and returns the LINE user
// id the token was minted for.
func (m *Manager) Parse(accessToken string) (string, error) {
	token, err := jwt.Parse(accessToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return []byte(m.signingKey), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("error get claims from token")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return "", errors.New("token has no subject")
	}

	return sub, nil
}
