package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/afyakuu/platform-api/internal/core/domain"
)

const cancerResultCollection = "cancer_results"

// MongoCancerResultRepository stores examination results with staging.
type MongoCancerResultRepository struct {
	coll *mongo.Collection
}

func NewCancerResultRepository(db *mongo.Database) *MongoCancerResultRepository {
	return &MongoCancerResultRepository{coll: db.Collection(cancerResultCollection)}
}

// EnsureIndexes creates the lookup indexes for doctor_id and patient_id.
func (r *MongoCancerResultRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "doctor_id", Value: 1}}},
		{Keys: bson.D{{Key: "patient_id", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("create cancer result indexes: %w", err)
	}
	return nil
}

type mongoCancerResult struct {
	ID               string                  `bson:"_id"`
	PatientID        string                  `bson:"patient_id"`
	DoctorID         string                  `bson:"doctor_id"`
	TestDate         int64                   `bson:"test_date"`
	TestType         string                  `bson:"test_type"`
	Outcome          string                  `bson:"outcome"`
	Details          string                  `bson:"details"`
	CancerConfirmed  bool                    `bson:"cancer_confirmed"`
	Stage            string                  `bson:"stage,omitempty"`
	StageDescription string                  `bson:"stage_description,omitempty"`
	ClinicalFindings domain.ClinicalFindings `bson:"clinical_findings"`
	TreatmentPlan    domain.TreatmentPlan    `bson:"treatment_plan"`
	PathologyReport  string                  `bson:"pathology_report,omitempty"`
	RadiologyReport  string                  `bson:"radiology_report,omitempty"`
	Notes            string                  `bson:"notes,omitempty"`
	CreatedAt        int64                   `bson:"created_at"`
	UpdatedAt        int64                   `bson:"updated_at"`
}

func toMongoCancerResult(result *domain.CancerResult) mongoCancerResult {
	return mongoCancerResult{
		ID:               result.ID,
		PatientID:        result.PatientID,
		DoctorID:         result.DoctorID,
		TestDate:         result.TestDate.Unix(),
		TestType:         string(result.TestType),
		Outcome:          string(result.Outcome),
		Details:          result.Details,
		CancerConfirmed:  result.CancerConfirmed,
		Stage:            string(result.Stage),
		StageDescription: result.StageDescription,
		ClinicalFindings: result.ClinicalFindings,
		TreatmentPlan:    result.TreatmentPlan,
		PathologyReport:  result.PathologyReport,
		RadiologyReport:  result.RadiologyReport,
		Notes:            result.Notes,
		CreatedAt:        result.CreatedAt.Unix(),
		UpdatedAt:        result.UpdatedAt.Unix(),
	}
}

func (m mongoCancerResult) toDomain() *domain.CancerResult {
	return &domain.CancerResult{
		ID:               m.ID,
		PatientID:        m.PatientID,
		DoctorID:         m.DoctorID,
		TestDate:         unixToTime(m.TestDate),
		TestType:         domain.CancerTestType(m.TestType),
		Outcome:          domain.CancerTestOutcome(m.Outcome),
		Details:          m.Details,
		CancerConfirmed:  m.CancerConfirmed,
		Stage:            domain.CancerStage(m.Stage),
		StageDescription: m.StageDescription,
		ClinicalFindings: m.ClinicalFindings,
		TreatmentPlan:    m.TreatmentPlan,
		PathologyReport:  m.PathologyReport,
		RadiologyReport:  m.RadiologyReport,
		Notes:            m.Notes,
		CreatedAt:        unixToTime(m.CreatedAt),
		UpdatedAt:        unixToTime(m.UpdatedAt),
	}
}

func (r *MongoCancerResultRepository) Insert(ctx context.Context, result *domain.CancerResult) error {
	if _, err := r.coll.InsertOne(ctx, toMongoCancerResult(result)); err != nil {
		return fmt.Errorf("insert cancer result: %w", err)
	}
	return nil
}

func (r *MongoCancerResultRepository) FindByID(ctx context.Context, id string) (*domain.CancerResult, error) {
	var m mongoCancerResult
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&m); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrCancerResultNotFound
		}
		return nil, fmt.Errorf("find cancer result: %w", err)
	}
	return m.toDomain(), nil
}

func (r *MongoCancerResultRepository) ListByDoctor(ctx context.Context, doctorID string) ([]*domain.CancerResult, error) {
	return r.list(ctx, bson.M{"doctor_id": doctorID})
}

func (r *MongoCancerResultRepository) ListByPatient(ctx context.Context, patientID string) ([]*domain.CancerResult, error) {
	return r.list(ctx, bson.M{"patient_id": patientID})
}

func (r *MongoCancerResultRepository) list(ctx context.Context, filter bson.M) ([]*domain.CancerResult, error) {
	cur, err := r.coll.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "test_date", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list cancer results: %w", err)
	}
	defer cur.Close(ctx)

	var results []*domain.CancerResult
	for cur.Next(ctx) {
		var m mongoCancerResult
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode cancer result: %w", err)
		}
		results = append(results, m.toDomain())
	}
	return results, cur.Err()
}

func (r *MongoCancerResultRepository) Update(ctx context.Context, result *domain.CancerResult) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": result.ID}, toMongoCancerResult(result))
	if err != nil {
		return fmt.Errorf("update cancer result: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCancerResultNotFound
	}
	return nil
}
