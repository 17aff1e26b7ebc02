package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/afyakuu/platform-api/internal/core/domain"
	"github.com/afyakuu/platform-api/internal/core/ports"
)

// InventoryInput carries the writable fields of an inventory item. The
// derived fields (total cost, stock status) are recomputed on every write and
// never accepted from the caller.
type InventoryInput struct {
	Name             string
	Category         domain.ItemCategory
	Description      string
	Quantity         int
	UnitCost         float64
	Supplier         string
	ExpiryDate       string
	MinimumThreshold int
}

// InventoryService implements admin inventory management with an append-only
// history log of every mutation.
type InventoryService struct {
	repo   ports.InventoryRepository
	logger zerolog.Logger
}

func NewInventoryService(repo ports.InventoryRepository, logger zerolog.Logger) *InventoryService {
	return &InventoryService{repo: repo, logger: logger}
}

// Add creates a new item with derived status and logs the action.
func (s *InventoryService) Add(ctx context.Context, input InventoryInput, actorID string) (*domain.InventoryItem, error) {
	item := &domain.InventoryItem{
		ID:               generateID(),
		Name:             input.Name,
		Category:         input.Category,
		Description:      input.Description,
		Quantity:         input.Quantity,
		UnitCost:         input.UnitCost,
		Supplier:         input.Supplier,
		ExpiryDate:       input.ExpiryDate,
		MinimumThreshold: input.MinimumThreshold,
		AddedBy:          actorID,
		LastUpdated:      time.Now().UTC(),
	}
	item.Recalculate()

	if err := s.repo.Insert(ctx, item); err != nil {
		return nil, err
	}
	s.logAction(ctx, "ADD", item, actorID)
	return item, nil
}

// Update overwrites the writable fields of an item, recomputes the derived
// ones, and logs the action.
func (s *InventoryService) Update(ctx context.Context, id string, input InventoryInput, actorID string) (*domain.InventoryItem, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	item.Name = input.Name
	item.Category = input.Category
	item.Description = input.Description
	item.Quantity = input.Quantity
	item.UnitCost = input.UnitCost
	item.Supplier = input.Supplier
	item.ExpiryDate = input.ExpiryDate
	item.MinimumThreshold = input.MinimumThreshold
	item.LastUpdated = time.Now().UTC()
	item.Recalculate()

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	s.logAction(ctx, "UPDATE", item, actorID)
	return item, nil
}

// Delete removes an item and logs the action.
func (s *InventoryService) Delete(ctx context.Context, id, actorID string) error {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logAction(ctx, "DELETE", item, actorID)
	return nil
}

// List returns all items.
func (s *InventoryService) List(ctx context.Context) ([]*domain.InventoryItem, error) {
	return s.repo.List(ctx)
}

// Stats aggregates the current inventory state.
func (s *InventoryService) Stats(ctx context.Context) (*domain.InventoryStats, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &domain.InventoryStats{CategoryCounts: make(map[string]int)}
	for _, item := range items {
		stats.TotalItems++
		stats.TotalValue += item.TotalCost
		stats.CategoryCounts[string(item.Category)]++
		switch item.Status {
		case domain.StockLow:
			stats.LowStockItems++
		case domain.StockOut:
			stats.OutOfStockItems++
		}
	}
	return stats, nil
}

// logAction appends to the history log. A log failure is reported but does
// not fail the mutation that already happened.
func (s *InventoryService) logAction(ctx context.Context, action string, item *domain.InventoryItem, actorID string) {
	entry := &domain.InventoryAction{
		ID:        generateID(),
		Action:    action,
		ItemID:    item.ID,
		ItemName:  item.Name,
		ActorID:   actorID,
		Timestamp: time.Now().UTC(),
	}
	if err := s.repo.LogAction(ctx, entry); err != nil {
		s.logger.Error().Err(err).Str("item_id", item.ID).Str("action", action).Msg("failed to log inventory action")
	}
}
