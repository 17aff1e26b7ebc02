package ports

import (
	"context"

	"github.com/afyakuu/platform-api/internal/core/domain"
)

// FeedbackRepository persists feedback items.
type FeedbackRepository interface {
	Insert(ctx context.Context, item *domain.FeedbackItem) error
	FindByID(ctx context.Context, id string) (*domain.FeedbackItem, error)
	List(ctx context.Context) ([]*domain.FeedbackItem, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.FeedbackItem, error)
	Update(ctx context.Context, item *domain.FeedbackItem) error
}
