package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/afyakuu/platform-api/internal/core/domain"
)

type stubCancerRepo struct {
	results map[string]*domain.CancerResult
}

func newStubCancerRepo() *stubCancerRepo {
	return &stubCancerRepo{results: make(map[string]*domain.CancerResult)}
}

func (r *stubCancerRepo) Insert(ctx context.Context, result *domain.CancerResult) error {
	clone := *result
	r.results[result.ID] = &clone
	return nil
}

func (r *stubCancerRepo) FindByID(ctx context.Context, id string) (*domain.CancerResult, error) {
	result, ok := r.results[id]
	if !ok {
		return nil, domain.ErrCancerResultNotFound
	}
	clone := *result
	return &clone, nil
}

func (r *stubCancerRepo) ListByDoctor(ctx context.Context, doctorID string) ([]*domain.CancerResult, error) {
	results := make([]*domain.CancerResult, 0)
	for _, result := range r.results {
		if result.DoctorID == doctorID {
			clone := *result
			results = append(results, &clone)
		}
	}
	return results, nil
}

func (r *stubCancerRepo) ListByPatient(ctx context.Context, patientID string) ([]*domain.CancerResult, error) {
	results := make([]*domain.CancerResult, 0)
	for _, result := range r.results {
		if result.PatientID == patientID {
			clone := *result
			results = append(results, &clone)
		}
	}
	return results, nil
}

func (r *stubCancerRepo) Update(ctx context.Context, result *domain.CancerResult) error {
	if _, ok := r.results[result.ID]; !ok {
		return domain.ErrCancerResultNotFound
	}
	clone := *result
	r.results[result.ID] = &clone
	return nil
}

func newTestCancerService() (*CancerService, *stubCancerRepo) {
	repo := newStubCancerRepo()
	return NewCancerService(repo, zerolog.Nop()), repo
}

func biopsyInput(doctorID, patientID string) CancerResultInput {
	return CancerResultInput{
		DoctorID:        doctorID,
		PatientID:       patientID,
		TestType:        domain.CancerTestBiopsy,
		Outcome:         domain.OutcomeAbnormal,
		Details:         "Squamous cell carcinoma identified in cervical biopsy",
		CancerConfirmed: true,
		Stage:           domain.Stage1B,
		TreatmentPlan: domain.TreatmentPlan{
			PrimaryTreatment: "Radical hysterectomy with pelvic lymph node dissection",
			ReferralRequired: true,
			ReferralTo:       "Gynecologic Oncology",
			Urgency:          domain.UrgencyUrgent,
		},
	}
}

func TestCancerService_RecordDefaults(t *testing.T) {
	svc, repo := newTestCancerService()

	result, err := svc.Record(context.Background(), biopsyInput("doc_1", "PT20260001"))
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if result.ID == "" {
		t.Fatal("result got no ID")
	}
	if result.TestDate.IsZero() {
		t.Fatal("zero test date was not defaulted to now")
	}
	if _, ok := repo.results[result.ID]; !ok {
		t.Fatal("result was not persisted")
	}
}

func TestCancerService_ConfirmedCaseRequiresStage(t *testing.T) {
	svc, repo := newTestCancerService()

	input := biopsyInput("doc_1", "PT20260001")
	input.Stage = ""
	if _, err := svc.Record(context.Background(), input); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for confirmed case without stage, got %v", err)
	}
	if len(repo.results) != 0 {
		t.Fatal("invalid result was persisted")
	}
}

func TestCancerService_UpdateOwnership(t *testing.T) {
	svc, _ := newTestCancerService()
	ctx := context.Background()

	result, err := svc.Record(ctx, biopsyInput("doc_1", "PT20260001"))
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	update := CancerResultUpdate{
		Outcome:         domain.OutcomeAbnormal,
		Details:         "Pathology confirmed, plan revised",
		CancerConfirmed: true,
		Stage:           domain.Stage2A,
		TreatmentPlan: domain.TreatmentPlan{
			PrimaryTreatment: "Concurrent chemoradiation therapy",
			Urgency:          domain.UrgencyUrgent,
		},
	}

	if _, err := svc.Update(ctx, "doc_2", result.ID, update); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for another doctor, got %v", err)
	}

	got, err := svc.Update(ctx, "doc_1", result.ID, update)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if got.Stage != domain.Stage2A || got.Details != "Pathology confirmed, plan revised" {
		t.Fatalf("update not applied: %+v", got)
	}

	if _, err := svc.Update(ctx, "doc_1", "missing", update); !errors.Is(err, domain.ErrCancerResultNotFound) {
		t.Fatalf("expected ErrCancerResultNotFound, got %v", err)
	}
}

func TestCancerService_ResultsForPatientScopedToDoctor(t *testing.T) {
	svc, _ := newTestCancerService()
	ctx := context.Background()

	if _, err := svc.Record(ctx, biopsyInput("doc_1", "PT20260001")); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if _, err := svc.Record(ctx, biopsyInput("doc_2", "PT20260001")); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	results, err := svc.ResultsForPatient(ctx, "doc_1", "PT20260001")
	if err != nil {
		t.Fatalf("ResultsForPatient failed: %v", err)
	}
	if len(results) != 1 || results[0].DoctorID != "doc_1" {
		t.Fatalf("another doctor's results leaked: %+v", results)
	}
}

func TestCancerService_Stats(t *testing.T) {
	svc, repo := newTestCancerService()
	ctx := context.Background()

	confirmed, err := svc.Record(ctx, biopsyInput("doc_1", "PT20260001"))
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	screening := biopsyInput("doc_1", "PT20260002")
	screening.TestType = domain.CancerTestPapSmear
	screening.CancerConfirmed = false
	screening.Stage = ""
	if _, err := svc.Record(ctx, screening); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	// results for other doctors never enter the aggregate
	other := biopsyInput("doc_2", "PT20260003")
	if _, err := svc.Record(ctx, other); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	// age one result out of the recent window
	old := repo.results[confirmed.ID]
	old.TestDate = time.Now().UTC().Add(-60 * 24 * time.Hour)

	stats, err := svc.Stats(ctx, "doc_1")
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.TotalResults != 2 || stats.ConfirmedCases != 1 {
		t.Fatalf("unexpected totals: %+v", stats)
	}
	if stats.RecentResults != 1 {
		t.Fatalf("recent results = %d, want 1", stats.RecentResults)
	}
	if stats.ByStage["stage_1b"] != 1 {
		t.Fatalf("unexpected stage counts: %v", stats.ByStage)
	}
	if stats.ByTestType["biopsy"] != 1 || stats.ByTestType["pap_smear"] != 1 {
		t.Fatalf("unexpected test type counts: %v", stats.ByTestType)
	}
}

func TestCancerService_StagingInfo(t *testing.T) {
	svc, _ := newTestCancerService()

	criteria, err := svc.StagingInfo(domain.Stage1B)
	if err != nil {
		t.Fatalf("StagingInfo failed: %v", err)
	}
	if criteria.Stage != "Stage IB" {
		t.Fatalf("unexpected staging entry: %+v", criteria)
	}

	treatments, err := svc.TreatmentRecommendations(domain.Stage0)
	if err != nil {
		t.Fatalf("TreatmentRecommendations failed: %v", err)
	}
	if len(treatments) == 0 {
		t.Fatal("stage 0 has no treatment recommendations")
	}

	if _, err := svc.StagingInfo("stage_9"); !errors.Is(err, domain.ErrUnknownStage) {
		t.Fatalf("expected ErrUnknownStage, got %v", err)
	}
}
