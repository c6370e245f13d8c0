package assessments

import (
	"context"

	"vitalab-service/internal/app/contracts"
	"vitalab-service/internal/app/models"
	"vitalab-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const assessmentCollection = "assessments"

type assessmentMongoRepository struct {
	DB *mongo.Database
}

func NewAssessmentMongoRepository(db *mongo.Database) contracts.AssessmentRepository {
	return &assessmentMongoRepository{DB: db}
}

func (r *assessmentMongoRepository) CreateAssessment(ctx context.Context, assessment *models.Assessment) (*models.Assessment, error) {
	_, err := r.DB.Collection(assessmentCollection).InsertOne(ctx, assessment)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	return assessment, nil
}

func (r *assessmentMongoRepository) FindAssessmentByID(ctx context.Context, assessmentID string) (*models.Assessment, error) {
	var assessment models.Assessment
	err := r.DB.Collection(assessmentCollection).FindOne(ctx, bson.M{"_id": assessmentID}).Decode(&assessment)
	if err == mongo.ErrNoDocuments {
		return nil, exceptions.ErrAssessmentNotFound(err)
	}
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &assessment, nil
}

func (r *assessmentMongoRepository) DeleteAssessmentByID(ctx context.Context, assessmentID string) error {
	result, err := r.DB.Collection(assessmentCollection).DeleteOne(ctx, bson.M{"_id": assessmentID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	if result.DeletedCount == 0 {
		return exceptions.ErrAssessmentNotFound(nil)
	}
	return nil
}
