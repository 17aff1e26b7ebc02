package domain

import (
	"errors"
	"testing"
)

func TestParseCancerStage(t *testing.T) {
	valid := []string{
		"stage_0", "stage_1a", "stage_1b", "stage_2a", "stage_2b",
		"stage_3a", "stage_3b", "stage_4a", "stage_4b",
	}
	for _, s := range valid {
		if _, err := ParseCancerStage(s); err != nil {
			t.Errorf("ParseCancerStage(%q) rejected a valid stage: %v", s, err)
		}
	}
	for _, s := range []string{"", "stage_5", "IV", "Stage_1A"} {
		if _, err := ParseCancerStage(s); !errors.Is(err, ErrUnknownStage) {
			t.Errorf("ParseCancerStage(%q): expected ErrUnknownStage, got %v", s, err)
		}
	}
}

func TestParseCancerTestType(t *testing.T) {
	for _, s := range []string{"pap_smear", "hpv_test", "colposcopy", "biopsy", "imaging"} {
		if _, err := ParseCancerTestType(s); err != nil {
			t.Errorf("ParseCancerTestType(%q) rejected a valid type: %v", s, err)
		}
	}
	if _, err := ParseCancerTestType("x_ray"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestParseCancerTestOutcome(t *testing.T) {
	for _, s := range []string{"normal", "abnormal", "positive", "negative", "inconclusive"} {
		if _, err := ParseCancerTestOutcome(s); err != nil {
			t.Errorf("ParseCancerTestOutcome(%q) rejected a valid outcome: %v", s, err)
		}
	}
	if _, err := ParseCancerTestOutcome("maybe"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestParseTreatmentUrgency(t *testing.T) {
	for _, s := range []string{"routine", "urgent", "emergency"} {
		if _, err := ParseTreatmentUrgency(s); err != nil {
			t.Errorf("ParseTreatmentUrgency(%q) rejected a valid urgency: %v", s, err)
		}
	}
	if _, err := ParseTreatmentUrgency("whenever"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

// Every stage in the closed set must have a reference entry, and every
// reference entry must describe treatments and a prognosis.
func TestStagingReference_CoversAllStages(t *testing.T) {
	stages := []CancerStage{
		Stage0, Stage1A, Stage1B, Stage2A, Stage2B,
		Stage3A, Stage3B, Stage4A, Stage4B,
	}
	if len(StagingReference) != len(stages) {
		t.Fatalf("staging reference has %d entries, want %d", len(StagingReference), len(stages))
	}
	for _, stage := range stages {
		criteria, ok := StagingReference[stage]
		if !ok {
			t.Errorf("stage %q missing from the reference", stage)
			continue
		}
		if criteria.Stage == "" || criteria.Description == "" || criteria.Prognosis == "" {
			t.Errorf("stage %q has an incomplete reference entry", stage)
		}
		if len(criteria.Treatment) == 0 || len(criteria.Characteristics) == 0 {
			t.Errorf("stage %q has no treatments or characteristics", stage)
		}
	}
}
