package assessments

import (
	"context"

	"vitalab-service/internal/pkg/dto/requests"
	"vitalab-service/internal/pkg/dto/responses"
)

// AssessmentUsecase manages the stored question graphs that questionnaire
// sessions are created from. These are admin operations.
type AssessmentUsecase interface {
	CreateAssessment(ctx context.Context, request *requests.CreateAssessment) (*responses.Assessment, error)
	FindAssessmentByID(ctx context.Context, assessmentID string) (*responses.Assessment, error)
	DeleteAssessmentByID(ctx context.Context, assessmentID string) error
}
