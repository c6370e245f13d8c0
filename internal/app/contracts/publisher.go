package contracts

import (
	"context"
	"vitalab-service/internal/app/models"
)

// SubmissionPublisher emits completed-submission events for downstream
// analytics consumers.
type SubmissionPublisher interface {
	PublishSubmissionCompleted(ctx context.Context, submission *models.Questionnaire) error
}
