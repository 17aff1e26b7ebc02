package ports

import (
	"context"

	"github.com/afyakuu/platform-api/internal/core/domain"
)

// InventoryRepository persists inventory items and their history log.
type InventoryRepository interface {
	Insert(ctx context.Context, item *domain.InventoryItem) error
	FindByID(ctx context.Context, id string) (*domain.InventoryItem, error)
	List(ctx context.Context) ([]*domain.InventoryItem, error)
	Update(ctx context.Context, item *domain.InventoryItem) error
	Delete(ctx context.Context, id string) error
	LogAction(ctx context.Context, action *domain.InventoryAction) error
}
