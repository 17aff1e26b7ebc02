package ports

import (
	"context"

	"github.com/afyakuu/platform-api/internal/core/domain"
)

// ResourceRepository persists the shared resource library.
type ResourceRepository interface {
	Insert(ctx context.Context, item *domain.ResourceItem) error
	FindByID(ctx context.Context, id string) (*domain.ResourceItem, error)
	List(ctx context.Context) ([]*domain.ResourceItem, error)
	Update(ctx context.Context, item *domain.ResourceItem) error
	InsertGroup(ctx context.Context, group *domain.ResourceGroup) error
	ListGroups(ctx context.Context) ([]*domain.ResourceGroup, error)
}
