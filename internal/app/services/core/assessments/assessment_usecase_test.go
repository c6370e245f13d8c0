package assessments

import (
	"context"
	"testing"

	"vitalab-service/internal/app/models"
	"vitalab-service/internal/pkg/constvars"
	"vitalab-service/internal/pkg/dto/requests"
	"vitalab-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAssessmentRepository struct {
	assessments map[string]*models.Assessment
}

func (f *fakeAssessmentRepository) CreateAssessment(ctx context.Context, assessment *models.Assessment) (*models.Assessment, error) {
	f.assessments[assessment.ID] = assessment
	return assessment, nil
}

func (f *fakeAssessmentRepository) FindAssessmentByID(ctx context.Context, assessmentID string) (*models.Assessment, error) {
	assessment, ok := f.assessments[assessmentID]
	if !ok {
		return nil, exceptions.ErrAssessmentNotFound(nil)
	}
	return assessment, nil
}

func (f *fakeAssessmentRepository) DeleteAssessmentByID(ctx context.Context, assessmentID string) error {
	if _, ok := f.assessments[assessmentID]; !ok {
		return exceptions.ErrAssessmentNotFound(nil)
	}
	delete(f.assessments, assessmentID)
	return nil
}

func TestAssessmentUsecase(t *testing.T) {
	ctx := context.Background()
	repository := &fakeAssessmentRepository{assessments: map[string]*models.Assessment{}}
	usecase := NewAssessmentUsecase(zap.NewNop(), repository)

	request := &requests.CreateAssessment{
		Title: "Lifestyle check",
		Questions: []requests.CreateAssessmentQuestion{
			{
				ID:                    "q1",
				Text:                  "Do you smoke?",
				DataType:              constvars.DataTypePlain,
				InputElement:          constvars.InputElementRadio,
				IsFirstQuestion:       true,
				Required:              true,
				DefaultNextQuestionID: "q2",
				Answers: []requests.CreateAssessmentAnswer{
					{ID: "a1", Value: "Yes", Tag: []string{"smoker"}, NextQuestionID: "q2"},
					{ID: "a2", Value: "No"},
				},
			},
			{
				ID:       "q2",
				Text:     "Anything else?",
				DataType: constvars.DataTypePlain,
			},
		},
	}

	var assessmentID string

	t.Run("Create maps the request onto the model", func(t *testing.T) {
		response, err := usecase.CreateAssessment(ctx, request)
		require.NoError(t, err)
		require.NotEmpty(t, response.ID)
		assessmentID = response.ID

		assert.Equal(t, "Lifestyle check", response.Title)
		assert.Equal(t, 2, response.QuestionCount)
		assert.Nil(t, response.Questions, "create response carries the count only")

		stored := repository.assessments[assessmentID]
		require.NotNil(t, stored)
		require.Len(t, stored.Questions, 2)
		assert.True(t, stored.Questions[0].IsFirstQuestion)
		require.Len(t, stored.Questions[0].Answers, 2)
		assert.Equal(t, []string{"smoker"}, stored.Questions[0].Answers[0].Tag)
		assert.Equal(t, "q2", stored.Questions[0].Answers[0].NextQuestionID)
	})

	t.Run("Find returns the full question graph", func(t *testing.T) {
		response, err := usecase.FindAssessmentByID(ctx, assessmentID)
		require.NoError(t, err)
		assert.Len(t, response.Questions, 2)
	})

	t.Run("Delete removes the assessment", func(t *testing.T) {
		require.NoError(t, usecase.DeleteAssessmentByID(ctx, assessmentID))

		_, err := usecase.FindAssessmentByID(ctx, assessmentID)
		assert.Error(t, err)
	})
}
