package contracts

import (
	"context"
	"vitalab-service/internal/app/models"
)

// AssessmentRepository is the question source: it owns the stored question
// graphs the questionnaire engine traverses.
type AssessmentRepository interface {
	CreateAssessment(ctx context.Context, assessment *models.Assessment) (*models.Assessment, error)
	FindAssessmentByID(ctx context.Context, assessmentID string) (*models.Assessment, error)
	DeleteAssessmentByID(ctx context.Context, assessmentID string) error
}
