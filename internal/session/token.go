// Package session implements the dual-mirror session: a signed token carried
// by a cookie for the edge check, backed by a durable store that remains the
// single source of truth (see the guard middleware).
package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/afyakuu/platform-api/internal/core/domain"
)

// TTL is the session lifetime applied to both mirrors.
const TTL = 7 * 24 * time.Hour

// Claims is the identity payload carried inside the session token.
type Claims struct {
	Email              string `json:"email"`
	Role               string `json:"role"`
	HospitalName       string `json:"hospital_name,omitempty"`
	LicenseNumber      string `json:"license_number,omitempty"`
	BranchRegistration string `json:"branch_registration,omitempty"`
	AdminName          string `json:"admin_name,omitempty"`
	jwt.RegisteredClaims
}

// TokenCodec signs and verifies session tokens with HS256.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenCodec builds a codec. A non-positive ttl falls back to TTL.
func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	if ttl <= 0 {
		ttl = TTL
	}
	return &TokenCodec{secret: []byte(secret), ttl: ttl}
}

// Encode signs the identity into a session token.
func (tc *TokenCodec) Encode(identity *domain.Identity) (string, error) {
	now := time.Now()
	claims := &Claims{
		Email:              identity.Email,
		Role:               string(identity.Role),
		HospitalName:       identity.HospitalName,
		LicenseNumber:      identity.LicenseNumber,
		BranchRegistration: identity.BranchRegistration,
		AdminName:          identity.AdminName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tc.ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(tc.secret)
}

// Decode verifies the token and reconstructs the identity. Any parse or
// signature failure, including an expired or truncated token, yields
// domain.ErrInvalidSession, never a panic.
func (tc *TokenCodec) Decode(token string) (*domain.Identity, error) {
	if token == "" {
		return nil, domain.ErrInvalidSession
	}

	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return tc.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidSession
	}

	role, err := domain.ParseRole(claims.Role)
	if err != nil {
		return nil, domain.ErrInvalidSession
	}

	return &domain.Identity{
		ID:                 claims.Subject,
		Email:              claims.Email,
		ProfileName:        domain.ProfileNameFromEmail(claims.Email),
		Role:               role,
		HospitalName:       claims.HospitalName,
		LicenseNumber:      claims.LicenseNumber,
		BranchRegistration: claims.BranchRegistration,
		AdminName:          claims.AdminName,
	}, nil
}
