package ports

import (
	"context"

	"github.com/afyakuu/platform-api/internal/core/domain"
)

// PatientRepository persists patient records. Listing is doctor-scoped.
type PatientRepository interface {
	Create(ctx context.Context, record *domain.PatientRecord) error
	FindByPatientID(ctx context.Context, patientID string) (*domain.PatientRecord, error)
	ListByDoctor(ctx context.Context, doctorID string) ([]*domain.PatientRecord, error)
	UpdateFollowUp(ctx context.Context, patientID string, followUp domain.FollowUp) error
}

// PatientCounter issues monotonically increasing sequence numbers used to
// build human-readable patient IDs.
type PatientCounter interface {
	Next(ctx context.Context) (int64, error)
}
