package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/afyakuu/platform-api/internal/api/metrics"
	"github.com/afyakuu/platform-api/internal/core/domain"
	"github.com/afyakuu/platform-api/internal/core/ports"
	"github.com/afyakuu/platform-api/internal/infrastructure/prediction"
)

// AssessmentInput is one completed questionnaire submitted by a doctor.
type AssessmentInput struct {
	DoctorID       string
	PersonalInfo   domain.PersonalInfo
	MedicalHistory domain.MedicalHistory
}

// AssessmentService orchestrates a risk assessment: maps the questionnaire
// into the model vocabulary, calls the external model, and persists the
// resulting patient record under a freshly issued patient ID.
type AssessmentService struct {
	patients  ports.PatientRepository
	counter   ports.PatientCounter
	predictor ports.PredictionClient
	logger    zerolog.Logger
}

func NewAssessmentService(
	patients ports.PatientRepository,
	counter ports.PatientCounter,
	predictor ports.PredictionClient,
	logger zerolog.Logger,
) *AssessmentService {
	return &AssessmentService{
		patients:  patients,
		counter:   counter,
		predictor: predictor,
		logger:    logger,
	}
}

// Assess runs the full assessment. A prediction failure propagates as
// domain.ErrPredictionUnavailable without persisting anything.
func (s *AssessmentService) Assess(ctx context.Context, input AssessmentInput) (*domain.PatientRecord, error) {
	start := time.Now()

	req := prediction.MapHistory(fmt.Sprintf("%d", input.PersonalInfo.Age), input.MedicalHistory)
	resp, err := s.predictor.Predict(ctx, req)
	if err != nil {
		metrics.PredictionsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	patientID, err := s.nextPatientID(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	record := &domain.PatientRecord{
		ID:             generateID(),
		PatientID:      patientID,
		PersonalInfo:   input.PersonalInfo,
		MedicalHistory: input.MedicalHistory,
		Assessment: domain.AssessmentResult{
			RiskLevel:       resp.RiskLevel,
			RiskPrediction:  resp.RiskPrediction,
			RiskPercentage:  resp.RiskPercentage,
			RiskProbability: resp.RiskProbability,
			Recommendation:  resp.Recommendation,
			AssessmentDate:  now,
			AssessedBy:      input.DoctorID,
		},
		FollowUp:  domain.FollowUp{Status: domain.FollowUpPending},
		CreatedBy: input.DoctorID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.patients.Create(ctx, record); err != nil {
		s.logger.Error().Err(err).Str("patient_id", patientID).Msg("failed to persist patient record")
		return nil, err
	}

	metrics.PredictionsTotal.WithLabelValues(resp.RiskLevel).Inc()
	metrics.PredictionDuration.Observe(time.Since(start).Seconds())

	s.logger.Info().
		Str("patient_id", patientID).
		Str("risk_level", resp.RiskLevel).
		Str("doctor_id", input.DoctorID).
		Msg("assessment completed")

	return record, nil
}

// GetRecord returns a single record by patient ID, restricted to its
// creating doctor.
func (s *AssessmentService) GetRecord(ctx context.Context, doctorID, patientID string) (*domain.PatientRecord, error) {
	record, err := s.patients.FindByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if record.CreatedBy != doctorID {
		return nil, domain.ErrForbidden
	}
	return record, nil
}

// ListSummaries lists the doctor's records as list-view summaries.
func (s *AssessmentService) ListSummaries(ctx context.Context, doctorID string) ([]domain.PatientSummary, error) {
	records, err := s.patients.ListByDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	summaries := make([]domain.PatientSummary, 0, len(records))
	for _, r := range records {
		summaries = append(summaries, r.Summary())
	}
	return summaries, nil
}

// UpdateFollowUp replaces the follow-up block of the doctor's record.
func (s *AssessmentService) UpdateFollowUp(ctx context.Context, doctorID, patientID string, followUp domain.FollowUp) error {
	record, err := s.patients.FindByPatientID(ctx, patientID)
	if err != nil {
		return err
	}
	if record.CreatedBy != doctorID {
		return domain.ErrForbidden
	}
	return s.patients.UpdateFollowUp(ctx, patientID, followUp)
}

// nextPatientID builds a human-readable patient ID in the format PT<year><seq>.
func (s *AssessmentService) nextPatientID(ctx context.Context) (string, error) {
	seq, err := s.counter.Next(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("PT%d%04d", time.Now().UTC().Year(), seq), nil
}

// generateID returns a random hex document ID.
func generateID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%016X", time.Now().UnixNano())
	}
	return fmt.Sprintf("%X", b)
}
