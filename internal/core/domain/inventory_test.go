package domain

import "testing"

func TestStockStatusFor(t *testing.T) {
	tests := []struct {
		quantity  int
		threshold int
		want      StockStatus
	}{
		{0, 10, StockOut},
		{0, 0, StockOut},
		{5, 10, StockLow},
		{10, 10, StockLow},
		{11, 10, StockInStock},
		{100, 10, StockInStock},
	}

	for _, tt := range tests {
		if got := StockStatusFor(tt.quantity, tt.threshold); got != tt.want {
			t.Errorf("StockStatusFor(%d, %d) = %s, want %s", tt.quantity, tt.threshold, got, tt.want)
		}
	}
}

func TestInventoryItem_Recalculate(t *testing.T) {
	item := InventoryItem{
		Quantity:         4,
		UnitCost:         250.50,
		MinimumThreshold: 5,
	}
	item.Recalculate()

	if item.TotalCost != 1002.0 {
		t.Fatalf("total cost: got %v", item.TotalCost)
	}
	if item.Status != StockLow {
		t.Fatalf("status: got %s, want %s", item.Status, StockLow)
	}

	item.Quantity = 0
	item.Recalculate()
	if item.Status != StockOut || item.TotalCost != 0 {
		t.Fatalf("after depletion: status %s total %v", item.Status, item.TotalCost)
	}
}

func TestParseItemCategory(t *testing.T) {
	if _, err := ParseItemCategory("test_kits"); err != nil {
		t.Fatalf("valid category rejected: %v", err)
	}
	if _, err := ParseItemCategory("snacks"); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
