package service

import (
	"errors"
	"testing"

	"github.com/afyakuu/platform-api/internal/core/domain"
)

func TestTestCostService_Get(t *testing.T) {
	svc := NewTestCostService()

	cost, err := svc.Get("pap_smear")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if cost.TestName != "Pap Smear Test" || cost.Cost != 2800 {
		t.Fatalf("unexpected catalog entry: %+v", cost)
	}

	if _, err := svc.Get("palm_reading"); !errors.Is(err, domain.ErrTestCostNotFound) {
		t.Fatalf("expected ErrTestCostNotFound, got %v", err)
	}
}

func TestTestCostService_ListByCategory(t *testing.T) {
	svc := NewTestCostService()

	screening := svc.ListByCategory(domain.TestScreening)
	if len(screening) != 4 {
		t.Fatalf("screening category has %d entries, want 4", len(screening))
	}
	for _, cost := range screening {
		if cost.Category != domain.TestScreening {
			t.Errorf("entry %q leaked from category %q", cost.Key, cost.Category)
		}
	}

	// ordered by key for stable listings
	for i := 1; i < len(screening); i++ {
		if screening[i-1].Key > screening[i].Key {
			t.Fatalf("listing not ordered: %q before %q", screening[i-1].Key, screening[i].Key)
		}
	}
}

func TestTestCostService_QuoteFor(t *testing.T) {
	svc := NewTestCostService()

	quote := svc.QuoteFor([]string{"via_screening", "pap_smear", "not_a_test"})
	if len(quote.Tests) != 2 {
		t.Fatalf("quote priced %d tests, want 2", len(quote.Tests))
	}
	if quote.Total != 2950 {
		t.Fatalf("quote total = %d, want 2950", quote.Total)
	}
	if quote.Formatted != "KES 2,950" {
		t.Fatalf("formatted total = %q", quote.Formatted)
	}

	empty := svc.QuoteFor(nil)
	if empty.Total != 0 || len(empty.Tests) != 0 {
		t.Fatalf("empty quote not zero: %+v", empty)
	}
}

func TestTestCostService_Recommended(t *testing.T) {
	svc := NewTestCostService()

	high := svc.Recommended("HIGH")
	if len(high) != 4 {
		t.Fatalf("HIGH risk resolved %d tests, want 4", len(high))
	}
	if high[0].Key != "colposcopy" {
		t.Fatalf("first HIGH recommendation = %q, want colposcopy", high[0].Key)
	}

	fallback := svc.Recommended("")
	if len(fallback) != 1 || fallback[0].Key != "via_screening" {
		t.Fatalf("unknown risk level fallback = %+v", fallback)
	}
}
