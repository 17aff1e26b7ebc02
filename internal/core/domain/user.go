package domain

import (
	"strings"
	"time"
)

// Role identifies which dashboard and guarded routes a principal may reach.
type Role string

const (
	RoleDoctor Role = "doctor"
	RoleAdmin  Role = "admin"
)

// ParseRole converts a raw string into a Role.
// Anything outside the closed set is rejected with ErrInvalidRole.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleDoctor:
		return RoleDoctor, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", ErrInvalidRole
	}
}

// Valid reports whether the role belongs to the closed set.
func (r Role) Valid() bool {
	return r == RoleDoctor || r == RoleAdmin
}

// DashboardPath returns the dashboard route owned by this role.
func (r Role) DashboardPath() string {
	if r == RoleAdmin {
		return "/dashboard/admin"
	}
	return "/dashboard/doctor"
}

// Identity is the currently authenticated principal.
// ProfileName is always derived from the email local part and is never
// independently editable truth.
type Identity struct {
	ID                 string `json:"id"`
	Email              string `json:"email"`
	ProfileName        string `json:"profile_name"`
	Role               Role   `json:"role"`
	HospitalName       string `json:"hospital_name,omitempty"`
	LicenseNumber      string `json:"license_number,omitempty"`
	BranchRegistration string `json:"branch_registration,omitempty"`
	AdminName          string `json:"admin_name,omitempty"`
}

// ProfileNameFromEmail derives the display name shown in the UI:
// the part of the email before the '@'.
func ProfileNameFromEmail(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}

// Credential is a registered account, distinct from a live Identity.
// Uniqueness is scoped to (email, role): the same email may register once as
// doctor and once as admin. SecretHash is a bcrypt hash and is verify-only;
// it must never be serialized back to a client.
type Credential struct {
	ID                 string    `json:"id"`
	Email              string    `json:"email"`
	SecretHash         string    `json:"-"`
	Role               Role      `json:"role"`
	HospitalName       string    `json:"hospital_name,omitempty"`
	LicenseNumber      string    `json:"license_number,omitempty"`
	BranchRegistration string    `json:"branch_registration,omitempty"`
	AdminName          string    `json:"admin_name,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

// Identity builds the live Identity for this credential.
func (c *Credential) Identity() *Identity {
	return &Identity{
		ID:                 c.ID,
		Email:              c.Email,
		ProfileName:        ProfileNameFromEmail(c.Email),
		Role:               c.Role,
		HospitalName:       c.HospitalName,
		LicenseNumber:      c.LicenseNumber,
		BranchRegistration: c.BranchRegistration,
		AdminName:          c.AdminName,
	}
}
