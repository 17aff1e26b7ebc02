package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/afyakuu/platform-api/internal/core/domain"
)

const credentialCollection = "credentials"

// MongoAuthRepository stores credential records with uniqueness on the
// (email, role) pair: the same email may hold one doctor and one admin
// account independently.
type MongoAuthRepository struct {
	coll *mongo.Collection
}

func NewAuthRepository(db *mongo.Database) *MongoAuthRepository {
	return &MongoAuthRepository{coll: db.Collection(credentialCollection)}
}

// EnsureIndexes creates the compound unique index backing the
// (email, role) uniqueness invariant.
func (r *MongoAuthRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}, {Key: "role", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create credential index: %w", err)
	}
	return nil
}

type mongoCredential struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty"`
	Email              string             `bson:"email"`
	SecretHash         string             `bson:"secret_hash"`
	Role               string             `bson:"role"`
	HospitalName       string             `bson:"hospital_name,omitempty"`
	LicenseNumber      string             `bson:"license_number,omitempty"`
	BranchRegistration string             `bson:"branch_registration,omitempty"`
	AdminName          string             `bson:"admin_name,omitempty"`
	CreatedAt          int64              `bson:"created_at"`
}

func (r *MongoAuthRepository) Create(ctx context.Context, cred *domain.Credential) (*domain.Credential, error) {
	doc := mongoCredential{
		Email:              cred.Email,
		SecretHash:         cred.SecretHash,
		Role:               string(cred.Role),
		HospitalName:       cred.HospitalName,
		LicenseNumber:      cred.LicenseNumber,
		BranchRegistration: cred.BranchRegistration,
		AdminName:          cred.AdminName,
		CreatedAt:          cred.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert credential: %w", err)
	}

	created := *cred
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MongoAuthRepository) FindByEmailAndRole(ctx context.Context, email string, role domain.Role) (*domain.Credential, error) {
	var mc mongoCredential
	filter := bson.M{"email": email, "role": string(role)}
	if err := r.coll.FindOne(ctx, filter).Decode(&mc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find credential: %w", err)
	}

	return &domain.Credential{
		ID:                 mc.ID.Hex(),
		Email:              mc.Email,
		SecretHash:         mc.SecretHash,
		Role:               domain.Role(mc.Role),
		HospitalName:       mc.HospitalName,
		LicenseNumber:      mc.LicenseNumber,
		BranchRegistration: mc.BranchRegistration,
		AdminName:          mc.AdminName,
		CreatedAt:          unixToTime(mc.CreatedAt),
	}, nil
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
