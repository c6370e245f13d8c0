package contracts

import (
	"context"
	"vitalab-service/internal/app/models"
)

// SubmissionRepository is the submission sink for completed and partial
// questionnaire payloads.
type SubmissionRepository interface {
	InsertSubmission(ctx context.Context, submission *models.Questionnaire) error
}

// SubmittedTagRepository stores the tags a user earned in previously
// completed sessions; the tag engine seeds its accumulator from these.
type SubmittedTagRepository interface {
	FindTags(ctx context.Context, userID, assessmentID string) ([]string, error)
	UpsertTags(ctx context.Context, userID, assessmentID string, tags []string) error
}
