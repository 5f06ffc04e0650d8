// Package auth validates the HS256 access tokens issued by the external
// identity provider.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrMissingOrg is returned for tokens without an organisation claim.
var ErrMissingOrg = errors.New("token has no organisation")

// Identity is the caller described by a valid access token.
type Identity struct {
	UserID uuid.UUID
	OrgID  uuid.UUID
	Role   string
}

// JWTManager validates access tokens. It can also sign them, which the
// identity provider does in production and tests do locally.
type JWTManager struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
}

// NewJWTManager creates a new JWT manager.
// secret must be at least 32 characters for HS256 security.
func NewJWTManager(secret string, issuer string, accessTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:    []byte(secret),
		issuer:    issuer,
		accessTTL: accessTTL,
	}
}

// accessClaims extends standard JWT claims with organisation and role.
type accessClaims struct {
	jwt.RegisteredClaims
	Org  string `json:"org"`
	Role string `json:"role,omitempty"`
}

// GenerateAccessToken creates a signed HS256 JWT for id.
func (m *JWTManager) GenerateAccessToken(id Identity) (string, error) {
	now := time.Now()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.UserID.String(),
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Org:  id.OrgID.String(),
		Role: id.Role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// ValidateAccessToken parses and validates a JWT access token.
func (m *JWTManager) ValidateAccessToken(tokenString string) (Identity, error) {
	if tokenString == "" {
		return Identity{}, fmt.Errorf("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &accessClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithIssuer(m.issuer), jwt.WithExpirationRequired())
	if err != nil {
		return Identity{}, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return Identity{}, fmt.Errorf("invalid token claims")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return Identity{}, fmt.Errorf("invalid subject UUID: %w", err)
	}

	if claims.Org == "" {
		return Identity{}, ErrMissingOrg
	}
	orgID, err := uuid.Parse(claims.Org)
	if err != nil || orgID == uuid.Nil {
		return Identity{}, fmt.Errorf("invalid organisation claim %q: %w", claims.Org, ErrMissingOrg)
	}

	return Identity{UserID: userID, OrgID: orgID, Role: claims.Role}, nil
}
