package service

import (
	"sort"

	"github.com/afyakuu/platform-api/internal/core/domain"
)

// TestCostService serves the Kenyan standard cost catalog. The catalog is
// compiled-in reference data, so lookups never touch storage.
type TestCostService struct{}

func NewTestCostService() *TestCostService {
	return &TestCostService{}
}

// Get returns one catalog entry by key.
func (s *TestCostService) Get(key string) (*domain.TestCost, error) {
	cost, ok := domain.TestCostCatalog[key]
	if !ok {
		return nil, domain.ErrTestCostNotFound
	}
	return &cost, nil
}

// List returns the whole catalog ordered by key.
func (s *TestCostService) List() []domain.TestCost {
	costs := make([]domain.TestCost, 0, len(domain.TestCostCatalog))
	for _, cost := range domain.TestCostCatalog {
		costs = append(costs, cost)
	}
	sort.Slice(costs, func(i, j int) bool { return costs[i].Key < costs[j].Key })
	return costs
}

// ListByCategory returns the catalog entries in one category, ordered by key.
func (s *TestCostService) ListByCategory(category domain.TestCategory) []domain.TestCost {
	costs := make([]domain.TestCost, 0)
	for _, cost := range domain.TestCostCatalog {
		if cost.Category == category {
			costs = append(costs, cost)
		}
	}
	sort.Slice(costs, func(i, j int) bool { return costs[i].Key < costs[j].Key })
	return costs
}

// Quote is an itemized cost estimate for a set of procedures.
type Quote struct {
	Tests     []domain.TestCost `json:"tests"`
	Total     int               `json:"total"`
	Formatted string            `json:"formatted"`
}

// QuoteFor prices the given procedures. Unknown keys are skipped, matching
// how the cost calculator behaves in the clinic UI.
func (s *TestCostService) QuoteFor(keys []string) *Quote {
	quote := &Quote{Tests: []domain.TestCost{}}
	for _, key := range keys {
		cost, ok := domain.TestCostCatalog[key]
		if !ok {
			continue
		}
		quote.Tests = append(quote.Tests, cost)
		quote.Total += cost.Cost
	}
	quote.Formatted = domain.FormatKES(quote.Total)
	return quote
}

// Recommended resolves the procedures suggested for a model risk level into
// full catalog entries.
func (s *TestCostService) Recommended(riskLevel string) []domain.TestCost {
	keys := domain.RecommendedTests(riskLevel)
	costs := make([]domain.TestCost, 0, len(keys))
	for _, key := range keys {
		if cost, ok := domain.TestCostCatalog[key]; ok {
			costs = append(costs, cost)
		}
	}
	return costs
}
