package ports

import (
	"context"

	"github.com/afyakuu/platform-api/internal/core/domain"
)

// CancerResultRepository persists recorded examination results.
type CancerResultRepository interface {
	Insert(ctx context.Context, result *domain.CancerResult) error
	FindByID(ctx context.Context, id string) (*domain.CancerResult, error)
	ListByDoctor(ctx context.Context, doctorID string) ([]*domain.CancerResult, error)
	ListByPatient(ctx context.Context, patientID string) ([]*domain.CancerResult, error)
	Update(ctx context.Context, result *domain.CancerResult) error
}
