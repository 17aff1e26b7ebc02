package ports

import (
	"context"

	"github.com/afyakuu/platform-api/internal/core/domain"
)

// SignupInput carries everything needed to register an account.
// Profile fields are optional and role-dependent.
type SignupInput struct {
	Email              string
	Secret             string
	Role               domain.Role
	HospitalName       string
	LicenseNumber      string
	BranchRegistration string
	AdminName          string
}

// AuthResult is a successful login or signup: the live identity plus the
// signed token the cookie mirror carries.
type AuthResult struct {
	Identity *domain.Identity
	Token    string
}

// AuthService owns the login/signup/logout workflow.
//
// Login matches on all three of (email, secret, role); a credential registered
// under a different role does not match. Failures are returned as domain
// errors, never panics.
type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (*AuthResult, error)
	Login(ctx context.Context, email, secret string, role domain.Role) (*AuthResult, error)
	Logout(ctx context.Context, identityID string) error
}
