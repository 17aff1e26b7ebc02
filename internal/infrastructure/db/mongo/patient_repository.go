package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/afyakuu/platform-api/internal/core/domain"
)

const patientCollection = "patient_records"

// MongoPatientRepository stores patient records keyed by the human-readable
// patient ID issued at creation time.
type MongoPatientRepository struct {
	coll *mongo.Collection
}

func NewPatientRepository(db *mongo.Database) *MongoPatientRepository {
	return &MongoPatientRepository{coll: db.Collection(patientCollection)}
}

// EnsureIndexes creates the lookup indexes for patient_id and created_by.
func (r *MongoPatientRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "patient_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "created_by", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("create patient indexes: %w", err)
	}
	return nil
}

type mongoPatientRecord struct {
	ID             string                  `bson:"_id"`
	PatientID      string                  `bson:"patient_id"`
	PersonalInfo   domain.PersonalInfo     `bson:"personal_info"`
	MedicalHistory domain.MedicalHistory   `bson:"medical_history"`
	Assessment     domain.AssessmentResult `bson:"assessment"`
	FollowUp       domain.FollowUp         `bson:"follow_up"`
	CreatedBy      string                  `bson:"created_by"`
	CreatedAt      int64                   `bson:"created_at"`
	UpdatedAt      int64                   `bson:"updated_at"`
}

func toMongoPatient(rec *domain.PatientRecord) mongoPatientRecord {
	return mongoPatientRecord{
		ID:             rec.ID,
		PatientID:      rec.PatientID,
		PersonalInfo:   rec.PersonalInfo,
		MedicalHistory: rec.MedicalHistory,
		Assessment:     rec.Assessment,
		FollowUp:       rec.FollowUp,
		CreatedBy:      rec.CreatedBy,
		CreatedAt:      rec.CreatedAt.Unix(),
		UpdatedAt:      rec.UpdatedAt.Unix(),
	}
}

func (m mongoPatientRecord) toDomain() *domain.PatientRecord {
	return &domain.PatientRecord{
		ID:             m.ID,
		PatientID:      m.PatientID,
		PersonalInfo:   m.PersonalInfo,
		MedicalHistory: m.MedicalHistory,
		Assessment:     m.Assessment,
		FollowUp:       m.FollowUp,
		CreatedBy:      m.CreatedBy,
		CreatedAt:      unixToTime(m.CreatedAt),
		UpdatedAt:      unixToTime(m.UpdatedAt),
	}
}

func (r *MongoPatientRepository) Create(ctx context.Context, rec *domain.PatientRecord) error {
	if _, err := r.coll.InsertOne(ctx, toMongoPatient(rec)); err != nil {
		return fmt.Errorf("insert patient record: %w", err)
	}
	return nil
}

func (r *MongoPatientRepository) FindByPatientID(ctx context.Context, patientID string) (*domain.PatientRecord, error) {
	var m mongoPatientRecord
	if err := r.coll.FindOne(ctx, bson.M{"patient_id": patientID}).Decode(&m); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrPatientNotFound
		}
		return nil, fmt.Errorf("find patient record: %w", err)
	}
	return m.toDomain(), nil
}

func (r *MongoPatientRepository) ListByDoctor(ctx context.Context, doctorID string) ([]*domain.PatientRecord, error) {
	cur, err := r.coll.Find(ctx, bson.M{"created_by": doctorID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list patient records: %w", err)
	}
	defer cur.Close(ctx)

	var records []*domain.PatientRecord
	for cur.Next(ctx) {
		var m mongoPatientRecord
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode patient record: %w", err)
		}
		records = append(records, m.toDomain())
	}
	return records, cur.Err()
}

func (r *MongoPatientRepository) UpdateFollowUp(ctx context.Context, patientID string, followUp domain.FollowUp) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"patient_id": patientID},
		bson.M{"$set": bson.M{"follow_up": followUp, "updated_at": nowUnix()}},
	)
	if err != nil {
		return fmt.Errorf("update follow-up: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPatientNotFound
	}
	return nil
}

func nowUnix() int64 {
	return time.Now().UTC().Unix()
}
