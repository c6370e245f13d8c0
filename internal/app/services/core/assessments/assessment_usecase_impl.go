package assessments

import (
	"context"
	"time"

	"vitalab-service/internal/app/contracts"
	"vitalab-service/internal/app/models"
	"vitalab-service/internal/pkg/dto/requests"
	"vitalab-service/internal/pkg/dto/responses"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type assessmentUsecase struct {
	Log                  *zap.Logger
	AssessmentRepository contracts.AssessmentRepository
}

func NewAssessmentUsecase(log *zap.Logger, assessmentRepository contracts.AssessmentRepository) AssessmentUsecase {
	return &assessmentUsecase{
		Log:                  log,
		AssessmentRepository: assessmentRepository,
	}
}

func (uc *assessmentUsecase) CreateAssessment(ctx context.Context, request *requests.CreateAssessment) (*responses.Assessment, error) {
	now := time.Now()
	assessment := &models.Assessment{
		ID:        uuid.NewString(),
		Title:     request.Title,
		Questions: buildQuestions(request.Questions),
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := uc.AssessmentRepository.CreateAssessment(ctx, assessment)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("assessment created",
		zap.String("assessment_id", created.ID),
		zap.Int("question_count", len(created.Questions)),
	)
	return buildAssessmentResponse(created, false), nil
}

func (uc *assessmentUsecase) FindAssessmentByID(ctx context.Context, assessmentID string) (*responses.Assessment, error) {
	assessment, err := uc.AssessmentRepository.FindAssessmentByID(ctx, assessmentID)
	if err != nil {
		return nil, err
	}
	return buildAssessmentResponse(assessment, true), nil
}

func (uc *assessmentUsecase) DeleteAssessmentByID(ctx context.Context, assessmentID string) error {
	return uc.AssessmentRepository.DeleteAssessmentByID(ctx, assessmentID)
}

func buildQuestions(questionRequests []requests.CreateAssessmentQuestion) []*models.Question {
	questions := make([]*models.Question, 0, len(questionRequests))
	for _, questionRequest := range questionRequests {
		question := &models.Question{
			ID:                    questionRequest.ID,
			Text:                  questionRequest.Text,
			Category:              questionRequest.Category,
			SubType:               questionRequest.SubType,
			DataType:              questionRequest.DataType,
			InputElement:          questionRequest.InputElement,
			Tag:                   questionRequest.Tag,
			DefaultNextQuestionID: questionRequest.DefaultNextQuestionID,
			PrimaryQuestionID:     questionRequest.PrimaryQuestionID,
			IsFirstQuestion:       questionRequest.IsFirstQuestion,
			Required:              questionRequest.Required,
		}
		for _, answerRequest := range questionRequest.Answers {
			question.Answers = append(question.Answers, &models.Answer{
				ID:             answerRequest.ID,
				Value:          answerRequest.Value,
				Description:    answerRequest.Description,
				Sequence:       answerRequest.Sequence,
				NextQuestionID: answerRequest.NextQuestionID,
				Tag:            answerRequest.Tag,
				TagRender:      answerRequest.TagRender,
			})
		}
		questions = append(questions, question)
	}
	return questions
}

func buildAssessmentResponse(assessment *models.Assessment, withQuestions bool) *responses.Assessment {
	response := &responses.Assessment{
		ID:            assessment.ID,
		Title:         assessment.Title,
		QuestionCount: len(assessment.Questions),
		CreatedAt:     assessment.CreatedAt,
		UpdatedAt:     assessment.UpdatedAt,
	}
	if withQuestions {
		response.Questions = assessment.Questions
	}
	return response
}
