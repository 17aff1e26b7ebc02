package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/afyakuu/platform-api/internal/api/metrics"
	"github.com/afyakuu/platform-api/internal/core/domain"
	"github.com/afyakuu/platform-api/internal/core/ports"
	"github.com/afyakuu/platform-api/internal/session"
)

// AuthService implements signup, login and logout over bcrypt-hashed
// credentials. On success it writes the durable session mirror and signs the
// token the cookie mirror carries, in that order: the caller only sets the
// cookie after the store write succeeded.
//
// Overlapping login/signup attempts for the same (email, role) are rejected
// with ErrLoginInFlight instead of racing each other.
type AuthService struct {
	repo  ports.AuthRepository
	store ports.SessionStore
	codec *session.TokenCodec

	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewAuthService(repo ports.AuthRepository, store ports.SessionStore, codec *session.TokenCodec) *AuthService {
	return &AuthService{
		repo:     repo,
		store:    store,
		codec:    codec,
		inFlight: make(map[string]struct{}),
	}
}

func flightKey(email string, role domain.Role) string {
	return strings.ToLower(email) + "|" + string(role)
}

func (s *AuthService) acquire(email string, role domain.Role) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := flightKey(email, role)
	if _, busy := s.inFlight[key]; busy {
		return false
	}
	s.inFlight[key] = struct{}{}
	return true
}

func (s *AuthService) release(email string, role domain.Role) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, flightKey(email, role))
}

// Signup registers a new account and performs an implicit login with the same
// role. An existing (email, role) pair yields ErrUserExists; the same email
// under the other role is a separate account and does not conflict.
func (s *AuthService) Signup(ctx context.Context, input ports.SignupInput) (*ports.AuthResult, error) {
	if input.Email == "" || input.Secret == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if !input.Role.Valid() {
		return nil, domain.ErrInvalidRole
	}
	if !s.acquire(input.Email, input.Role) {
		return nil, domain.ErrLoginInFlight
	}
	defer s.release(input.Email, input.Role)

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Secret), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	cred := &domain.Credential{
		Email:              input.Email,
		SecretHash:         string(hash),
		Role:               input.Role,
		HospitalName:       input.HospitalName,
		LicenseNumber:      input.LicenseNumber,
		BranchRegistration: input.BranchRegistration,
		AdminName:          input.AdminName,
		CreatedAt:          time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, cred)
	if err != nil {
		if err == domain.ErrUserExists {
			metrics.SignupsTotal.WithLabelValues(string(input.Role), "duplicate").Inc()
		}
		return nil, err
	}
	metrics.SignupsTotal.WithLabelValues(string(input.Role), "success").Inc()

	return s.establishSession(ctx, created.Identity())
}

// Login matches a credential on all three of (email, role, secret). Any
// mismatch (unknown email, wrong role, wrong secret) yields
// ErrInvalidCredentials; the caller owns user-facing messaging.
func (s *AuthService) Login(ctx context.Context, email, secret string, role domain.Role) (*ports.AuthResult, error) {
	if email == "" || secret == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}
	if !s.acquire(email, role) {
		metrics.LoginsTotal.WithLabelValues(string(role), "in_flight").Inc()
		return nil, domain.ErrLoginInFlight
	}
	defer s.release(email, role)

	cred, err := s.repo.FindByEmailAndRole(ctx, email, role)
	if err != nil {
		if err == domain.ErrUserNotFound {
			metrics.LoginsTotal.WithLabelValues(string(role), "rejected").Inc()
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(cred.SecretHash), []byte(secret)) != nil {
		metrics.LoginsTotal.WithLabelValues(string(role), "rejected").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	metrics.LoginsTotal.WithLabelValues(string(role), "success").Inc()
	return s.establishSession(ctx, cred.Identity())
}

// Logout clears the durable session mirror. Always succeeds for an
// already-cleared session.
func (s *AuthService) Logout(ctx context.Context, identityID string) error {
	return s.store.Clear(ctx, identityID)
}

// establishSession writes the store mirror first, then signs the cookie
// token. If the store write fails the caller never receives a token, so it
// cannot believe the session persisted.
func (s *AuthService) establishSession(ctx context.Context, identity *domain.Identity) (*ports.AuthResult, error) {
	if err := s.store.Save(ctx, identity, session.TTL); err != nil {
		return nil, err
	}
	token, err := s.codec.Encode(identity)
	if err != nil {
		_ = s.store.Clear(ctx, identity.ID)
		return nil, err
	}
	return &ports.AuthResult{Identity: identity, Token: token}, nil
}
