package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/afyakuu/platform-api/internal/core/domain"
)

const feedbackCollection = "feedback"

// MongoFeedbackRepository stores feedback items.
type MongoFeedbackRepository struct {
	coll *mongo.Collection
}

func NewFeedbackRepository(db *mongo.Database) *MongoFeedbackRepository {
	return &MongoFeedbackRepository{coll: db.Collection(feedbackCollection)}
}

type mongoFeedbackItem struct {
	ID              string   `bson:"_id"`
	UserID          string   `bson:"user_id"`
	UserRole        string   `bson:"user_role"`
	UserName        string   `bson:"user_name"`
	Category        string   `bson:"category"`
	Title           string   `bson:"title"`
	Description     string   `bson:"description"`
	Priority        string   `bson:"priority"`
	Status          string   `bson:"status"`
	AdminResponse   string   `bson:"admin_response,omitempty"`
	AdminResponseBy string   `bson:"admin_response_by,omitempty"`
	AdminResponseAt int64    `bson:"admin_response_at,omitempty"`
	Votes           int      `bson:"votes"`
	VotedBy         []string `bson:"voted_by"`
	CreatedAt       int64    `bson:"created_at"`
	UpdatedAt       int64    `bson:"updated_at"`
}

func toMongoFeedback(item *domain.FeedbackItem) mongoFeedbackItem {
	m := mongoFeedbackItem{
		ID:              item.ID,
		UserID:          item.UserID,
		UserRole:        string(item.UserRole),
		UserName:        item.UserName,
		Category:        string(item.Category),
		Title:           item.Title,
		Description:     item.Description,
		Priority:        string(item.Priority),
		Status:          string(item.Status),
		AdminResponse:   item.AdminResponse,
		AdminResponseBy: item.AdminResponseBy,
		Votes:           item.Votes,
		VotedBy:         item.VotedBy,
		CreatedAt:       item.CreatedAt.Unix(),
		UpdatedAt:       item.UpdatedAt.Unix(),
	}
	if !item.AdminResponseAt.IsZero() {
		m.AdminResponseAt = item.AdminResponseAt.Unix()
	}
	return m
}

func (m mongoFeedbackItem) toDomain() *domain.FeedbackItem {
	item := &domain.FeedbackItem{
		ID:              m.ID,
		UserID:          m.UserID,
		UserRole:        domain.Role(m.UserRole),
		UserName:        m.UserName,
		Category:        domain.FeedbackCategory(m.Category),
		Title:           m.Title,
		Description:     m.Description,
		Priority:        domain.FeedbackPriority(m.Priority),
		Status:          domain.FeedbackStatus(m.Status),
		AdminResponse:   m.AdminResponse,
		AdminResponseBy: m.AdminResponseBy,
		Votes:           m.Votes,
		VotedBy:         m.VotedBy,
		CreatedAt:       unixToTime(m.CreatedAt),
		UpdatedAt:       unixToTime(m.UpdatedAt),
	}
	if m.AdminResponseAt != 0 {
		item.AdminResponseAt = unixToTime(m.AdminResponseAt)
	}
	return item
}

func (r *MongoFeedbackRepository) Insert(ctx context.Context, item *domain.FeedbackItem) error {
	if _, err := r.coll.InsertOne(ctx, toMongoFeedback(item)); err != nil {
		return fmt.Errorf("insert feedback: %w", err)
	}
	return nil
}

func (r *MongoFeedbackRepository) FindByID(ctx context.Context, id string) (*domain.FeedbackItem, error) {
	var m mongoFeedbackItem
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&m); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrFeedbackNotFound
		}
		return nil, fmt.Errorf("find feedback: %w", err)
	}
	return m.toDomain(), nil
}

func (r *MongoFeedbackRepository) List(ctx context.Context) ([]*domain.FeedbackItem, error) {
	return r.list(ctx, bson.M{})
}

func (r *MongoFeedbackRepository) ListByUser(ctx context.Context, userID string) ([]*domain.FeedbackItem, error) {
	return r.list(ctx, bson.M{"user_id": userID})
}

func (r *MongoFeedbackRepository) list(ctx context.Context, filter bson.M) ([]*domain.FeedbackItem, error) {
	cur, err := r.coll.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	defer cur.Close(ctx)

	var items []*domain.FeedbackItem
	for cur.Next(ctx) {
		var m mongoFeedbackItem
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode feedback: %w", err)
		}
		items = append(items, m.toDomain())
	}
	return items, cur.Err()
}

func (r *MongoFeedbackRepository) Update(ctx context.Context, item *domain.FeedbackItem) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": item.ID}, toMongoFeedback(item))
	if err != nil {
		return fmt.Errorf("update feedback: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrFeedbackNotFound
	}
	return nil
}
