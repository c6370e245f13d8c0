package questionnaires

import (
	"context"

	"vitalab-service/internal/app/contracts"
	"vitalab-service/internal/app/models"
	"vitalab-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const submissionCollection = "submissions"

type submissionMongoRepository struct {
	DB  *mongo.Database
	Log *zap.Logger
}

func NewSubmissionMongoRepository(db *mongo.Database, log *zap.Logger) contracts.SubmissionRepository {
	return &submissionMongoRepository{DB: db, Log: log}
}

func (r *submissionMongoRepository) InsertSubmission(ctx context.Context, submission *models.Questionnaire) error {
	_, err := r.DB.Collection(submissionCollection).InsertOne(ctx, submission)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	r.Log.Debug("submission inserted",
		zap.String("submission_id", submission.ID),
		zap.String("assessment_id", submission.AssessmentID),
		zap.Bool("is_completed", submission.IsCompleted),
	)
	return nil
}
