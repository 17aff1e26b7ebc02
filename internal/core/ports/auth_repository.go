package ports

import (
	"context"

	"github.com/afyakuu/platform-api/internal/core/domain"
)

// AuthRepository persists credential records.
// Uniqueness is enforced on the (email, role) pair.
type AuthRepository interface {
	FindByEmailAndRole(ctx context.Context, email string, role domain.Role) (*domain.Credential, error)
	Create(ctx context.Context, cred *domain.Credential) (*domain.Credential, error)
}
