package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/afyakuu/platform-api/internal/core/domain"
)

type stubInventoryRepo struct {
	items   map[string]*domain.InventoryItem
	actions []*domain.InventoryAction
}

func newStubInventoryRepo() *stubInventoryRepo {
	return &stubInventoryRepo{items: make(map[string]*domain.InventoryItem)}
}

func (r *stubInventoryRepo) Insert(_ context.Context, item *domain.InventoryItem) error {
	r.items[item.ID] = item
	return nil
}

func (r *stubInventoryRepo) FindByID(_ context.Context, id string) (*domain.InventoryItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	clone := *item
	return &clone, nil
}

func (r *stubInventoryRepo) List(_ context.Context) ([]*domain.InventoryItem, error) {
	var out []*domain.InventoryItem
	for _, item := range r.items {
		out = append(out, item)
	}
	return out, nil
}

func (r *stubInventoryRepo) Update(_ context.Context, item *domain.InventoryItem) error {
	if _, ok := r.items[item.ID]; !ok {
		return domain.ErrItemNotFound
	}
	r.items[item.ID] = item
	return nil
}

func (r *stubInventoryRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return domain.ErrItemNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *stubInventoryRepo) LogAction(_ context.Context, action *domain.InventoryAction) error {
	r.actions = append(r.actions, action)
	return nil
}

func speculumInput() InventoryInput {
	return InventoryInput{
		Name:             "Disposable Speculum",
		Category:         domain.CategoryConsumables,
		Quantity:         40,
		UnitCost:         120.0,
		Supplier:         "MedSupplies Kenya",
		MinimumThreshold: 10,
	}
}

func TestInventoryService_Add(t *testing.T) {
	repo := newStubInventoryRepo()
	svc := NewInventoryService(repo, zerolog.Nop())

	item, err := svc.Add(context.Background(), speculumInput(), "cred_9")
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if item.TotalCost != 4800.0 {
		t.Fatalf("total cost not derived: %v", item.TotalCost)
	}
	if item.Status != domain.StockInStock {
		t.Fatalf("status not derived: %s", item.Status)
	}
	if item.AddedBy != "cred_9" {
		t.Fatalf("actor not recorded: %s", item.AddedBy)
	}

	if len(repo.actions) != 1 || repo.actions[0].Action != "ADD" {
		t.Fatalf("mutation not logged: %+v", repo.actions)
	}
}

func TestInventoryService_Update_RecomputesDerivedFields(t *testing.T) {
	repo := newStubInventoryRepo()
	svc := NewInventoryService(repo, zerolog.Nop())

	item, err := svc.Add(context.Background(), speculumInput(), "cred_9")
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	input := speculumInput()
	input.Quantity = 0
	updated, err := svc.Update(context.Background(), item.ID, input, "cred_9")
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Status != domain.StockOut || updated.TotalCost != 0 {
		t.Fatalf("derived fields stale: %+v", updated)
	}
	if len(repo.actions) != 2 || repo.actions[1].Action != "UPDATE" {
		t.Fatalf("update not logged: %+v", repo.actions)
	}
}

func TestInventoryService_Update_Missing(t *testing.T) {
	svc := NewInventoryService(newStubInventoryRepo(), zerolog.Nop())
	if _, err := svc.Update(context.Background(), "missing", speculumInput(), "cred_9"); err != domain.ErrItemNotFound {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestInventoryService_Delete(t *testing.T) {
	repo := newStubInventoryRepo()
	svc := NewInventoryService(repo, zerolog.Nop())

	item, err := svc.Add(context.Background(), speculumInput(), "cred_9")
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := svc.Delete(context.Background(), item.ID, "cred_9"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if err := svc.Delete(context.Background(), item.ID, "cred_9"); err != domain.ErrItemNotFound {
		t.Fatalf("expected ErrItemNotFound for repeat delete, got %v", err)
	}
	if repo.actions[len(repo.actions)-1].Action != "DELETE" {
		t.Fatalf("delete not logged")
	}
}

func TestInventoryService_Stats(t *testing.T) {
	repo := newStubInventoryRepo()
	svc := NewInventoryService(repo, zerolog.Nop())

	if _, err := svc.Add(context.Background(), speculumInput(), "cred_9"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	low := speculumInput()
	low.Name = "HPV Test Kit"
	low.Category = domain.CategoryTestKits
	low.Quantity = 5
	if _, err := svc.Add(context.Background(), low, "cred_9"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	out := speculumInput()
	out.Name = "Acetic Acid"
	out.Category = domain.CategoryMedications
	out.Quantity = 0
	if _, err := svc.Add(context.Background(), out, "cred_9"); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats returned error: %v", err)
	}
	if stats.TotalItems != 3 {
		t.Fatalf("total items: %d", stats.TotalItems)
	}
	if stats.LowStockItems != 1 || stats.OutOfStockItems != 1 {
		t.Fatalf("stock counts: low=%d out=%d", stats.LowStockItems, stats.OutOfStockItems)
	}
	if stats.CategoryCounts["consumables"] != 1 || stats.CategoryCounts["test_kits"] != 1 {
		t.Fatalf("category counts: %+v", stats.CategoryCounts)
	}
}
