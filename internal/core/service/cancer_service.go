package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/afyakuu/platform-api/internal/core/domain"
	"github.com/afyakuu/platform-api/internal/core/ports"
)

// CancerResultInput is one examination result recorded by a doctor.
type CancerResultInput struct {
	DoctorID         string
	PatientID        string
	TestDate         time.Time
	TestType         domain.CancerTestType
	Outcome          domain.CancerTestOutcome
	Details          string
	CancerConfirmed  bool
	Stage            domain.CancerStage
	StageDescription string
	ClinicalFindings domain.ClinicalFindings
	TreatmentPlan    domain.TreatmentPlan
	PathologyReport  string
	RadiologyReport  string
	Notes            string
}

// CancerResultUpdate carries the fields a doctor may revise on an existing
// result.
type CancerResultUpdate struct {
	Outcome          domain.CancerTestOutcome
	Details          string
	CancerConfirmed  bool
	Stage            domain.CancerStage
	StageDescription string
	ClinicalFindings domain.ClinicalFindings
	TreatmentPlan    domain.TreatmentPlan
	PathologyReport  string
	RadiologyReport  string
	Notes            string
}

// CancerService records examination results with FIGO staging and serves the
// staging reference. A confirmed case must carry a stage from the closed set.
type CancerService struct {
	repo   ports.CancerResultRepository
	logger zerolog.Logger
}

func NewCancerService(repo ports.CancerResultRepository, logger zerolog.Logger) *CancerService {
	return &CancerService{repo: repo, logger: logger}
}

// Record stores a new examination result.
func (s *CancerService) Record(ctx context.Context, input CancerResultInput) (*domain.CancerResult, error) {
	if input.CancerConfirmed && input.Stage == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now().UTC()
	testDate := input.TestDate
	if testDate.IsZero() {
		testDate = now
	}

	result := &domain.CancerResult{
		ID:               generateID(),
		PatientID:        input.PatientID,
		DoctorID:         input.DoctorID,
		TestDate:         testDate,
		TestType:         input.TestType,
		Outcome:          input.Outcome,
		Details:          input.Details,
		CancerConfirmed:  input.CancerConfirmed,
		Stage:            input.Stage,
		StageDescription: input.StageDescription,
		ClinicalFindings: input.ClinicalFindings,
		TreatmentPlan:    input.TreatmentPlan,
		PathologyReport:  input.PathologyReport,
		RadiologyReport:  input.RadiologyReport,
		Notes:            input.Notes,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.repo.Insert(ctx, result); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("result_id", result.ID).
		Str("patient_id", result.PatientID).
		Str("test_type", string(result.TestType)).
		Bool("confirmed", result.CancerConfirmed).
		Msg("cancer result recorded")

	return result, nil
}

// Update revises an existing result, restricted to its recording doctor.
func (s *CancerService) Update(ctx context.Context, doctorID, resultID string, update CancerResultUpdate) (*domain.CancerResult, error) {
	if update.CancerConfirmed && update.Stage == "" {
		return nil, domain.ErrInvalidInput
	}

	result, err := s.repo.FindByID(ctx, resultID)
	if err != nil {
		return nil, err
	}
	if result.DoctorID != doctorID {
		return nil, domain.ErrForbidden
	}

	result.Outcome = update.Outcome
	result.Details = update.Details
	result.CancerConfirmed = update.CancerConfirmed
	result.Stage = update.Stage
	result.StageDescription = update.StageDescription
	result.ClinicalFindings = update.ClinicalFindings
	result.TreatmentPlan = update.TreatmentPlan
	result.PathologyReport = update.PathologyReport
	result.RadiologyReport = update.RadiologyReport
	result.Notes = update.Notes
	result.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

// ListByDoctor returns the doctor's recorded results.
func (s *CancerService) ListByDoctor(ctx context.Context, doctorID string) ([]*domain.CancerResult, error) {
	return s.repo.ListByDoctor(ctx, doctorID)
}

// ResultsForPatient returns one patient's results, restricted to those the
// calling doctor recorded.
func (s *CancerService) ResultsForPatient(ctx context.Context, doctorID, patientID string) ([]*domain.CancerResult, error) {
	results, err := s.repo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	own := make([]*domain.CancerResult, 0, len(results))
	for _, r := range results {
		if r.DoctorID == doctorID {
			own = append(own, r)
		}
	}
	return own, nil
}

// recentWindow bounds the "recent results" figure in stats.
const recentWindow = 30 * 24 * time.Hour

// Stats aggregates the doctor's results by stage and test type.
func (s *CancerService) Stats(ctx context.Context, doctorID string) (*domain.CancerStats, error) {
	results, err := s.repo.ListByDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	cutoff := time.Now().UTC().Add(-recentWindow)
	stats := &domain.CancerStats{
		ByStage:    make(map[string]int),
		ByTestType: make(map[string]int),
	}
	for _, r := range results {
		stats.TotalResults++
		if r.CancerConfirmed {
			stats.ConfirmedCases++
		}
		if r.Stage != "" {
			stats.ByStage[string(r.Stage)]++
		}
		stats.ByTestType[string(r.TestType)]++
		if r.TestDate.After(cutoff) {
			stats.RecentResults++
		}
	}
	return stats, nil
}

// StagingInfo returns the reference entry for one stage.
func (s *CancerService) StagingInfo(stage domain.CancerStage) (*domain.StagingCriteria, error) {
	criteria, ok := domain.StagingReference[stage]
	if !ok {
		return nil, domain.ErrUnknownStage
	}
	return &criteria, nil
}

// TreatmentRecommendations returns the reference treatment options for a
// stage.
func (s *CancerService) TreatmentRecommendations(stage domain.CancerStage) ([]string, error) {
	criteria, err := s.StagingInfo(stage)
	if err != nil {
		return nil, err
	}
	return criteria.Treatment, nil
}
