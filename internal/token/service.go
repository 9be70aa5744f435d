// Package token mints and verifies reviewer JWTs for the decision API.
package token

import (
	"fmt"
	"time"

	"github.com/Prachet0806/iam-access-certification-engine/internal/config"
	"github.com/golang-jwt/jwt/v5"
)

// Claims represents the JWT registered claims plus reviewer metadata.
type Claims struct {
	Scope []string `json:"scope,omitempty"`
	Email string   `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// ScopeDecide is required on tokens that record review decisions.
const ScopeDecide = "reviews:decide"

// Service handles JWT minting and verification. Tokens are HS256 over a
// shared secret; the service is the only issuer and the only consumer.
type Service struct {
	cfg    config.TokenConfig
	secret []byte
	parser *jwt.Parser
}

// NewService returns a token service for the configured secret.
func NewService(cfg config.TokenConfig) (*Service, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("token secret is required")
	}
	return &Service{
		cfg:    cfg,
		secret: []byte(cfg.Secret),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(cfg.Issuer),
			jwt.WithAudience(cfg.Audience),
		),
	}, nil
}

// Mint generates a signed JWT identifying one reviewer.
func (s *Service) Mint(subject, email string, scopes []string) (string, time.Time, error) {
	now := time.Now().UTC()
	exp := now.Add(s.cfg.TTL)

	claims := &Claims{
		Scope: scopes,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
			Subject:   subject,
			Audience:  jwt.ClaimStrings{s.cfg.Audience},
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign jwt: %w", err)
	}
	return signed, exp, nil
}

// Parse validates and parses a JWT token string.
func (s *Service) Parse(tokenString string) (*Claims, error) {
	token, err := s.parser.ParseWithClaims(tokenString, &Claims{}, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("token invalid")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, fmt.Errorf("token claims mismatch")
	}
	return claims, nil
}

// HasScope reports whether the claims carry the given scope.
func (c *Claims) HasScope(scope string) bool {
	for _, s := range c.Scope {
		if s == scope {
			return true
		}
	}
	return false
}
