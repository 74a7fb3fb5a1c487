package repository

import (
	"context"
	"errors"

	"career-compass-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	assessmentsCollection = "assessments"
	userEmailField        = "user.email"
)

type AssessmentRepo struct {
	collection *mongo.Collection
}

func NewAssessmentRepo(db *mongo.Database) *AssessmentRepo {
	return &AssessmentRepo{
		collection: db.Collection(assessmentsCollection),
	}
}

// FindByEmail returns the stored assessment for email without its _id, or
// nil when there is none.
func (r *AssessmentRepo) FindByEmail(ctx context.Context, email string) (models.Assessment, error) {
	opts := options.FindOne().SetProjection(bson.M{"_id": 0})

	var assessment models.Assessment
	err := r.collection.FindOne(ctx, bson.M{userEmailField: email}, opts).Decode(&assessment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return assessment, nil
}

// Upsert replaces the whole assessment stored for the document's user.email,
// inserting it when none exists yet.
func (r *AssessmentRepo) Upsert(ctx context.Context, assessment models.Assessment) error {
	email := assessment.UserEmail()
	if email == "" {
		return ErrMissingUserEmail
	}

	// _id is immutable on replace; the stored document keeps its own.
	doc := make(bson.M, len(assessment))
	for k, v := range assessment {
		if k == "_id" {
			continue
		}
		doc[k] = v
	}

	_, err := r.collection.ReplaceOne(ctx,
		bson.M{userEmailField: email},
		doc,
		options.Replace().SetUpsert(true),
	)
	return err
}

// EnsureIndexes creates necessary indexes for the assessments collection
func (r *AssessmentRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: userEmailField, Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
