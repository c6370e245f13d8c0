package questionnaires

import (
	"context"
	"mime/multipart"

	"vitalab-service/internal/pkg/dto/requests"
	"vitalab-service/internal/pkg/dto/responses"
)

// QuestionnaireUsecase drives questionnaire sessions: creation from a
// stored assessment, answer mutation, forward/backward navigation, progress
// reporting, image answers and final submission.
type QuestionnaireUsecase interface {
	StartSession(ctx context.Context, userID, assessmentID string) (*responses.SessionState, error)
	CurrentQuestion(ctx context.Context, userID, sessionID string) (*responses.SessionState, error)
	AnswerQuestion(ctx context.Context, userID, sessionID string, request *requests.AnswerQuestion) (*responses.SessionState, error)
	NextQuestion(ctx context.Context, userID, sessionID string, request *requests.NextQuestion) (*responses.SessionState, error)
	PreviousQuestion(ctx context.Context, userID, sessionID string) (*responses.SessionState, error)
	SessionProgress(ctx context.Context, userID, sessionID string) (*responses.SessionState, error)
	SubmitSession(ctx context.Context, userID, sessionID string, request *requests.SubmitSession) (*responses.SubmissionResult, error)
	UploadAnswerImage(ctx context.Context, userID, sessionID, questionID string, file multipart.File, fileHeader *multipart.FileHeader) (*responses.UploadAnswerImage, error)
}
