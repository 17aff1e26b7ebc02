package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/afyakuu/platform-api/internal/core/domain"
)

const (
	inventoryCollection        = "inventory_items"
	inventoryHistoryCollection = "inventory_history"
)

// MongoInventoryRepository stores inventory items plus an append-only
// history log of mutations.
type MongoInventoryRepository struct {
	items   *mongo.Collection
	history *mongo.Collection
}

func NewInventoryRepository(db *mongo.Database) *MongoInventoryRepository {
	return &MongoInventoryRepository{
		items:   db.Collection(inventoryCollection),
		history: db.Collection(inventoryHistoryCollection),
	}
}

type mongoInventoryItem struct {
	ID               string  `bson:"_id"`
	Name             string  `bson:"name"`
	Category         string  `bson:"category"`
	Description      string  `bson:"description"`
	Quantity         int     `bson:"quantity"`
	UnitCost         float64 `bson:"unit_cost"`
	TotalCost        float64 `bson:"total_cost"`
	Supplier         string  `bson:"supplier"`
	ExpiryDate       string  `bson:"expiry_date,omitempty"`
	MinimumThreshold int     `bson:"minimum_threshold"`
	Status           string  `bson:"status"`
	AddedBy          string  `bson:"added_by"`
	LastUpdated      int64   `bson:"last_updated"`
}

func toMongoItem(item *domain.InventoryItem) mongoInventoryItem {
	return mongoInventoryItem{
		ID:               item.ID,
		Name:             item.Name,
		Category:         string(item.Category),
		Description:      item.Description,
		Quantity:         item.Quantity,
		UnitCost:         item.UnitCost,
		TotalCost:        item.TotalCost,
		Supplier:         item.Supplier,
		ExpiryDate:       item.ExpiryDate,
		MinimumThreshold: item.MinimumThreshold,
		Status:           string(item.Status),
		AddedBy:          item.AddedBy,
		LastUpdated:      item.LastUpdated.Unix(),
	}
}

func (m mongoInventoryItem) toDomain() *domain.InventoryItem {
	return &domain.InventoryItem{
		ID:               m.ID,
		Name:             m.Name,
		Category:         domain.ItemCategory(m.Category),
		Description:      m.Description,
		Quantity:         m.Quantity,
		UnitCost:         m.UnitCost,
		TotalCost:        m.TotalCost,
		Supplier:         m.Supplier,
		ExpiryDate:       m.ExpiryDate,
		MinimumThreshold: m.MinimumThreshold,
		Status:           domain.StockStatus(m.Status),
		AddedBy:          m.AddedBy,
		LastUpdated:      unixToTime(m.LastUpdated),
	}
}

func (r *MongoInventoryRepository) Insert(ctx context.Context, item *domain.InventoryItem) error {
	if _, err := r.items.InsertOne(ctx, toMongoItem(item)); err != nil {
		return fmt.Errorf("insert inventory item: %w", err)
	}
	return nil
}

func (r *MongoInventoryRepository) FindByID(ctx context.Context, id string) (*domain.InventoryItem, error) {
	var m mongoInventoryItem
	if err := r.items.FindOne(ctx, bson.M{"_id": id}).Decode(&m); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("find inventory item: %w", err)
	}
	return m.toDomain(), nil
}

func (r *MongoInventoryRepository) List(ctx context.Context) ([]*domain.InventoryItem, error) {
	cur, err := r.items.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer cur.Close(ctx)

	var items []*domain.InventoryItem
	for cur.Next(ctx) {
		var m mongoInventoryItem
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode inventory item: %w", err)
		}
		items = append(items, m.toDomain())
	}
	return items, cur.Err()
}

func (r *MongoInventoryRepository) Update(ctx context.Context, item *domain.InventoryItem) error {
	res, err := r.items.ReplaceOne(ctx, bson.M{"_id": item.ID}, toMongoItem(item))
	if err != nil {
		return fmt.Errorf("update inventory item: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

func (r *MongoInventoryRepository) Delete(ctx context.Context, id string) error {
	res, err := r.items.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete inventory item: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

func (r *MongoInventoryRepository) LogAction(ctx context.Context, action *domain.InventoryAction) error {
	doc := bson.M{
		"_id":       action.ID,
		"action":    action.Action,
		"item_id":   action.ItemID,
		"item_name": action.ItemName,
		"actor_id":  action.ActorID,
		"timestamp": action.Timestamp.Unix(),
	}
	if _, err := r.history.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("log inventory action: %w", err)
	}
	return nil
}
