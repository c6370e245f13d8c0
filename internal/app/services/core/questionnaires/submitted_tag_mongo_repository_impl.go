package questionnaires

import (
	"context"
	"time"

	"vitalab-service/internal/app/contracts"
	"vitalab-service/internal/app/models"
	"vitalab-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const submittedTagCollection = "submitted_tags"

type submittedTagMongoRepository struct {
	DB *mongo.Database
}

func NewSubmittedTagMongoRepository(db *mongo.Database) contracts.SubmittedTagRepository {
	return &submittedTagMongoRepository{DB: db}
}

func (r *submittedTagMongoRepository) FindTags(ctx context.Context, userID, assessmentID string) ([]string, error) {
	filter := bson.M{"user_id": userID, "assessment_id": assessmentID}

	var document models.SubmittedTags
	err := r.DB.Collection(submittedTagCollection).FindOne(ctx, filter).Decode(&document)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return document.Tags, nil
}

func (r *submittedTagMongoRepository) UpsertTags(ctx context.Context, userID, assessmentID string, tags []string) error {
	filter := bson.M{"user_id": userID, "assessment_id": assessmentID}
	update := bson.M{"$set": bson.M{
		"user_id":       userID,
		"assessment_id": assessmentID,
		"tags":          tags,
		"updated_at":    time.Now(),
	}}

	_, err := r.DB.Collection(submittedTagCollection).UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
