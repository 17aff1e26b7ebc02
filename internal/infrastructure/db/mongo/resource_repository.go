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
	resourceCollection      = "resources"
	resourceGroupCollection = "resource_groups"
)

// MongoResourceRepository stores the shared resource library and its groups.
type MongoResourceRepository struct {
	items  *mongo.Collection
	groups *mongo.Collection
}

func NewResourceRepository(db *mongo.Database) *MongoResourceRepository {
	return &MongoResourceRepository{
		items:  db.Collection(resourceCollection),
		groups: db.Collection(resourceGroupCollection),
	}
}

type mongoResourceItem struct {
	ID             string   `bson:"_id"`
	Title          string   `bson:"title"`
	Description    string   `bson:"description"`
	Category       string   `bson:"category"`
	Type           string   `bson:"type"`
	FileURL        string   `bson:"file_url,omitempty"`
	FileName       string   `bson:"file_name,omitempty"`
	FileSize       int64    `bson:"file_size,omitempty"`
	DownloadCount  int      `bson:"download_count"`
	UploadedBy     string   `bson:"uploaded_by"`
	UploadedByRole string   `bson:"uploaded_by_role"`
	Tags           []string `bson:"tags"`
	IsPublic       bool     `bson:"is_public"`
	Language       string   `bson:"language"`
	Status         string   `bson:"status"`
	CreatedAt      int64    `bson:"created_at"`
	UpdatedAt      int64    `bson:"updated_at"`
}

func toMongoResource(item *domain.ResourceItem) mongoResourceItem {
	return mongoResourceItem{
		ID:             item.ID,
		Title:          item.Title,
		Description:    item.Description,
		Category:       string(item.Category),
		Type:           string(item.Type),
		FileURL:        item.FileURL,
		FileName:       item.FileName,
		FileSize:       item.FileSize,
		DownloadCount:  item.DownloadCount,
		UploadedBy:     item.UploadedBy,
		UploadedByRole: string(item.UploadedByRole),
		Tags:           item.Tags,
		IsPublic:       item.IsPublic,
		Language:       string(item.Language),
		Status:         string(item.Status),
		CreatedAt:      item.CreatedAt.Unix(),
		UpdatedAt:      item.UpdatedAt.Unix(),
	}
}

func (m mongoResourceItem) toDomain() *domain.ResourceItem {
	return &domain.ResourceItem{
		ID:             m.ID,
		Title:          m.Title,
		Description:    m.Description,
		Category:       domain.ResourceCategory(m.Category),
		Type:           domain.ResourceType(m.Type),
		FileURL:        m.FileURL,
		FileName:       m.FileName,
		FileSize:       m.FileSize,
		DownloadCount:  m.DownloadCount,
		UploadedBy:     m.UploadedBy,
		UploadedByRole: domain.Role(m.UploadedByRole),
		Tags:           m.Tags,
		IsPublic:       m.IsPublic,
		Language:       domain.ResourceLanguage(m.Language),
		Status:         domain.ResourceStatus(m.Status),
		CreatedAt:      unixToTime(m.CreatedAt),
		UpdatedAt:      unixToTime(m.UpdatedAt),
	}
}

func (r *MongoResourceRepository) Insert(ctx context.Context, item *domain.ResourceItem) error {
	if _, err := r.items.InsertOne(ctx, toMongoResource(item)); err != nil {
		return fmt.Errorf("insert resource: %w", err)
	}
	return nil
}

func (r *MongoResourceRepository) FindByID(ctx context.Context, id string) (*domain.ResourceItem, error) {
	var m mongoResourceItem
	if err := r.items.FindOne(ctx, bson.M{"_id": id}).Decode(&m); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrResourceNotFound
		}
		return nil, fmt.Errorf("find resource: %w", err)
	}
	return m.toDomain(), nil
}

func (r *MongoResourceRepository) List(ctx context.Context) ([]*domain.ResourceItem, error) {
	cur, err := r.items.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list resources: %w", err)
	}
	defer cur.Close(ctx)

	var items []*domain.ResourceItem
	for cur.Next(ctx) {
		var m mongoResourceItem
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode resource: %w", err)
		}
		items = append(items, m.toDomain())
	}
	return items, cur.Err()
}

func (r *MongoResourceRepository) Update(ctx context.Context, item *domain.ResourceItem) error {
	res, err := r.items.ReplaceOne(ctx, bson.M{"_id": item.ID}, toMongoResource(item))
	if err != nil {
		return fmt.Errorf("update resource: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrResourceNotFound
	}
	return nil
}

type mongoResourceGroup struct {
	ID            string   `bson:"_id"`
	Name          string   `bson:"name"`
	Description   string   `bson:"description"`
	ResourceIDs   []string `bson:"resource_ids"`
	CreatedBy     string   `bson:"created_by"`
	CreatedByRole string   `bson:"created_by_role"`
	IsPublic      bool     `bson:"is_public"`
	CreatedAt     int64    `bson:"created_at"`
	UpdatedAt     int64    `bson:"updated_at"`
}

func (r *MongoResourceRepository) InsertGroup(ctx context.Context, group *domain.ResourceGroup) error {
	doc := mongoResourceGroup{
		ID:            group.ID,
		Name:          group.Name,
		Description:   group.Description,
		ResourceIDs:   group.ResourceIDs,
		CreatedBy:     group.CreatedBy,
		CreatedByRole: string(group.CreatedByRole),
		IsPublic:      group.IsPublic,
		CreatedAt:     group.CreatedAt.Unix(),
		UpdatedAt:     group.UpdatedAt.Unix(),
	}
	if _, err := r.groups.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert resource group: %w", err)
	}
	return nil
}

func (r *MongoResourceRepository) ListGroups(ctx context.Context) ([]*domain.ResourceGroup, error) {
	cur, err := r.groups.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list resource groups: %w", err)
	}
	defer cur.Close(ctx)

	var groups []*domain.ResourceGroup
	for cur.Next(ctx) {
		var m mongoResourceGroup
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode resource group: %w", err)
		}
		groups = append(groups, &domain.ResourceGroup{
			ID:            m.ID,
			Name:          m.Name,
			Description:   m.Description,
			ResourceIDs:   m.ResourceIDs,
			CreatedBy:     m.CreatedBy,
			CreatedByRole: domain.Role(m.CreatedByRole),
			IsPublic:      m.IsPublic,
			CreatedAt:     unixToTime(m.CreatedAt),
			UpdatedAt:     unixToTime(m.UpdatedAt),
		})
	}
	return groups, cur.Err()
}
