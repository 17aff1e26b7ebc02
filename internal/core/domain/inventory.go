package domain

import "time"

// ItemCategory classifies inventory stock.
type ItemCategory string

const (
	CategoryMedicalEquipment ItemCategory = "medical_equipment"
	CategoryConsumables      ItemCategory = "consumables"
	CategoryMedications      ItemCategory = "medications"
	CategoryTestKits         ItemCategory = "test_kits"
)

// ParseItemCategory validates a raw category string.
func ParseItemCategory(s string) (ItemCategory, error) {
	switch ItemCategory(s) {
	case CategoryMedicalEquipment, CategoryConsumables, CategoryMedications, CategoryTestKits:
		return ItemCategory(s), nil
	default:
		return "", ErrInvalidInput
	}
}

// StockStatus is derived from quantity and threshold, never stored as
// independent truth.
type StockStatus string

const (
	StockInStock StockStatus = "in_stock"
	StockLow     StockStatus = "low_stock"
	StockOut     StockStatus = "out_of_stock"
)

// StockStatusFor derives the stock status for a quantity/threshold pair.
func StockStatusFor(quantity, threshold int) StockStatus {
	switch {
	case quantity == 0:
		return StockOut
	case quantity <= threshold:
		return StockLow
	default:
		return StockInStock
	}
}

// InventoryItem is a single stocked item managed by admins.
type InventoryItem struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Category         ItemCategory `json:"category"`
	Description      string       `json:"description"`
	Quantity         int          `json:"quantity"`
	UnitCost         float64      `json:"unit_cost"`
	TotalCost        float64      `json:"total_cost"`
	Supplier         string       `json:"supplier"`
	ExpiryDate       string       `json:"expiry_date,omitempty"`
	MinimumThreshold int          `json:"minimum_threshold"`
	Status           StockStatus  `json:"status"`
	AddedBy          string       `json:"added_by"`
	LastUpdated      time.Time    `json:"last_updated"`
}

// Recalculate refreshes the derived fields after a quantity or cost change.
func (i *InventoryItem) Recalculate() {
	i.TotalCost = float64(i.Quantity) * i.UnitCost
	i.Status = StockStatusFor(i.Quantity, i.MinimumThreshold)
}

// InventoryAction records a mutation in the append-only history log.
type InventoryAction struct {
	ID        string    `json:"id"`
	Action    string    `json:"action"` // ADD, UPDATE, DELETE
	ItemID    string    `json:"item_id"`
	ItemName  string    `json:"item_name"`
	ActorID   string    `json:"actor_id"`
	Timestamp time.Time `json:"timestamp"`
}

// InventoryStats aggregates the current inventory state.
type InventoryStats struct {
	TotalItems      int            `json:"total_items"`
	TotalValue      float64        `json:"total_value"`
	LowStockItems   int            `json:"low_stock_items"`
	OutOfStockItems int            `json:"out_of_stock_items"`
	CategoryCounts  map[string]int `json:"category_counts"`
}
