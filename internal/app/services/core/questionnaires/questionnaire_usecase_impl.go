package questionnaires

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"time"

	"vitalab-service/internal/app/config"
	"vitalab-service/internal/app/contracts"
	"vitalab-service/internal/app/models"
	"vitalab-service/internal/pkg/constvars"
	"vitalab-service/internal/pkg/dto/requests"
	"vitalab-service/internal/pkg/dto/responses"
	"vitalab-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type questionnaireUsecase struct {
	Log                    *zap.Logger
	SessionStore           *SessionStore
	AssessmentRepository   contracts.AssessmentRepository
	SubmissionRepository   contracts.SubmissionRepository
	SubmittedTagRepository contracts.SubmittedTagRepository
	RedisRepository        contracts.RedisRepository
	Storage                contracts.Storage
	Publisher              contracts.SubmissionPublisher
	InternalConfig         *config.InternalConfig
}

func NewQuestionnaireUsecase(
	log *zap.Logger,
	sessionStore *SessionStore,
	assessmentRepository contracts.AssessmentRepository,
	submissionRepository contracts.SubmissionRepository,
	submittedTagRepository contracts.SubmittedTagRepository,
	redisRepository contracts.RedisRepository,
	storage contracts.Storage,
	publisher contracts.SubmissionPublisher,
	internalConfig *config.InternalConfig,
) QuestionnaireUsecase {
	return &questionnaireUsecase{
		Log:                    log,
		SessionStore:           sessionStore,
		AssessmentRepository:   assessmentRepository,
		SubmissionRepository:   submissionRepository,
		SubmittedTagRepository: submittedTagRepository,
		RedisRepository:        redisRepository,
		Storage:                storage,
		Publisher:              publisher,
		InternalConfig:         internalConfig,
	}
}

func (uc *questionnaireUsecase) StartSession(ctx context.Context, userID, assessmentID string) (*responses.SessionState, error) {
	assessment, err := uc.AssessmentRepository.FindAssessmentByID(ctx, assessmentID)
	if err != nil {
		return nil, err
	}
	if len(assessment.Questions) == 0 {
		return nil, exceptions.ErrAssessmentHasNoQuestions(nil)
	}

	submittedTags, err := uc.loadSubmittedTags(ctx, userID, assessmentID)
	if err != nil {
		return nil, err
	}

	resumeStates, err := uc.loadResumeStates(ctx, userID)
	if err != nil {
		return nil, err
	}
	resumeQuestionID := ""
	for _, state := range resumeStates {
		if state.AssessmentID == assessmentID {
			resumeQuestionID = state.NextQuestionID
			break
		}
	}

	session := NewSession(uuid.NewString(), userID, assessmentID, assessment.Questions, submittedTags, resumeQuestionID)
	uc.SessionStore.Put(session)

	uc.Log.Info("questionnaire session started",
		zap.String("session_id", session.ID),
		zap.String("assessment_id", assessmentID),
		zap.Int("question_count", len(assessment.Questions)),
		zap.Bool("resumed", resumeQuestionID != ""),
	)
	return session.Start(), nil
}

func (uc *questionnaireUsecase) CurrentQuestion(ctx context.Context, userID, sessionID string) (*responses.SessionState, error) {
	session, err := uc.session(userID, sessionID)
	if err != nil {
		return nil, err
	}
	return session.Current(), nil
}

func (uc *questionnaireUsecase) AnswerQuestion(ctx context.Context, userID, sessionID string, request *requests.AnswerQuestion) (*responses.SessionState, error) {
	session, err := uc.session(userID, sessionID)
	if err != nil {
		return nil, err
	}
	return session.ApplyAnswer(request.QuestionID, request.AnswerID, request.Selected, request.TextAnswer)
}

func (uc *questionnaireUsecase) NextQuestion(ctx context.Context, userID, sessionID string, request *requests.NextQuestion) (*responses.SessionState, error) {
	session, err := uc.session(userID, sessionID)
	if err != nil {
		return nil, err
	}
	return session.Advance(request.AnswerID)
}

func (uc *questionnaireUsecase) PreviousQuestion(ctx context.Context, userID, sessionID string) (*responses.SessionState, error) {
	session, err := uc.session(userID, sessionID)
	if err != nil {
		return nil, err
	}
	return session.Back()
}

func (uc *questionnaireUsecase) SessionProgress(ctx context.Context, userID, sessionID string) (*responses.SessionState, error) {
	session, err := uc.session(userID, sessionID)
	if err != nil {
		return nil, err
	}
	progress, answered, total := session.ProgressSummary()
	return &responses.SessionState{
		SessionID:     session.ID,
		AssessmentID:  session.AssessmentID,
		Progress:      progress,
		AnsweredCount: answered,
		TotalCount:    total,
	}, nil
}

func (uc *questionnaireUsecase) SubmitSession(ctx context.Context, userID, sessionID string, request *requests.SubmitSession) (*responses.SubmissionResult, error) {
	session, err := uc.session(userID, sessionID)
	if err != nil {
		return nil, err
	}

	submission, err := session.BuildSubmission(request.Complete)
	if err != nil {
		return nil, err
	}
	submission.ID = uuid.NewString()
	submission.SubmittedAt = time.Now()

	if err := uc.SubmissionRepository.InsertSubmission(ctx, submission); err != nil {
		return nil, err
	}

	if request.Complete {
		if err := uc.finalizeCompleted(ctx, session, submission); err != nil {
			return nil, err
		}
	} else {
		if err := uc.saveResumeState(ctx, session, submission.NextQuestionID); err != nil {
			return nil, err
		}
	}

	progress, answered, _ := session.ProgressSummary()
	uc.SessionStore.Delete(session.ID)

	uc.Log.Info("questionnaire session submitted",
		zap.String("session_id", session.ID),
		zap.String("submission_id", submission.ID),
		zap.Bool("is_completed", request.Complete),
	)
	return &responses.SubmissionResult{
		SubmissionID:   submission.ID,
		AssessmentID:   session.AssessmentID,
		IsCompleted:    request.Complete,
		AnsweredCount:  answered,
		Progress:       progress,
		NextQuestionID: submission.NextQuestionID,
	}, nil
}

func (uc *questionnaireUsecase) UploadAnswerImage(ctx context.Context, userID, sessionID, questionID string, file multipart.File, fileHeader *multipart.FileHeader) (*responses.UploadAnswerImage, error) {
	session, err := uc.session(userID, sessionID)
	if err != nil {
		return nil, err
	}
	if err := session.ValidateAnswerImageTarget(questionID); err != nil {
		return nil, err
	}

	objectName := fmt.Sprintf("answers/%s/%s/%s%s", userID, session.AssessmentID, questionID, filepath.Ext(fileHeader.Filename))
	objectName, err = uc.Storage.UploadFile(ctx, file, fileHeader, uc.InternalConfig.Minio.BucketName, objectName)
	if err != nil {
		return nil, err
	}

	if err := session.AttachAnswerImage(questionID, objectName); err != nil {
		return nil, err
	}
	return &responses.UploadAnswerImage{
		QuestionID:  questionID,
		ImageObject: objectName,
	}, nil
}

// session resolves a live session and enforces ownership. A foreign session
// id reports not-found rather than forbidden, so ids cannot be probed.
func (uc *questionnaireUsecase) session(userID, sessionID string) (*Session, error) {
	session := uc.SessionStore.Get(sessionID)
	if session == nil || session.UserID != userID {
		return nil, exceptions.ErrSessionNotFound(nil)
	}
	return session, nil
}

// finalizeCompleted persists the earned tags, refreshes their cache,
// publishes the completion event and drops the resume pointer.
func (uc *questionnaireUsecase) finalizeCompleted(ctx context.Context, session *Session, submission *models.Questionnaire) error {
	tags := session.ActiveTagNames()
	if err := uc.SubmittedTagRepository.UpsertTags(ctx, session.UserID, session.AssessmentID, tags); err != nil {
		return err
	}

	cacheKey := fmt.Sprintf(constvars.RedisKeySubmittedTagsFormat, session.UserID, session.AssessmentID)
	cacheTTL := time.Duration(constvars.SubmittedTagsCacheExpiryInMinutes) * time.Minute
	if err := uc.RedisRepository.Set(ctx, cacheKey, tags, cacheTTL); err != nil {
		uc.Log.Warn("failed to refresh submitted tags cache", zap.String("session_id", session.ID), zap.Error(err))
	}

	if err := uc.Publisher.PublishSubmissionCompleted(ctx, submission); err != nil {
		return err
	}

	return uc.removeResumeState(ctx, session)
}

func (uc *questionnaireUsecase) loadSubmittedTags(ctx context.Context, userID, assessmentID string) ([]string, error) {
	cacheKey := fmt.Sprintf(constvars.RedisKeySubmittedTagsFormat, userID, assessmentID)
	cached, err := uc.RedisRepository.Get(ctx, cacheKey)
	if err != nil {
		return nil, err
	}
	if cached != "" {
		var tags []string
		if err := json.Unmarshal([]byte(cached), &tags); err != nil {
			return nil, exceptions.ErrSubmittedTagsDecode(err)
		}
		return tags, nil
	}

	tags, err := uc.SubmittedTagRepository.FindTags(ctx, userID, assessmentID)
	if err != nil {
		return nil, err
	}
	if len(tags) > 0 {
		cacheTTL := time.Duration(constvars.SubmittedTagsCacheExpiryInMinutes) * time.Minute
		if err := uc.RedisRepository.Set(ctx, cacheKey, tags, cacheTTL); err != nil {
			uc.Log.Warn("failed to cache submitted tags", zap.String("assessment_id", assessmentID), zap.Error(err))
		}
	}
	return tags, nil
}

func (uc *questionnaireUsecase) loadResumeStates(ctx context.Context, userID string) ([]models.ResumeState, error) {
	key := fmt.Sprintf(constvars.RedisKeyResumeStateFormat, userID)
	raw, err := uc.RedisRepository.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}
	var states []models.ResumeState
	if err := json.Unmarshal([]byte(raw), &states); err != nil {
		return nil, exceptions.ErrResumeStateDecode(err)
	}
	return states, nil
}

func (uc *questionnaireUsecase) saveResumeState(ctx context.Context, session *Session, nextQuestionID string) error {
	states, err := uc.loadResumeStates(ctx, session.UserID)
	if err != nil {
		return err
	}

	updated := false
	for i := range states {
		if states[i].AssessmentID == session.AssessmentID {
			states[i].NextQuestionID = nextQuestionID
			updated = true
			break
		}
	}
	if !updated {
		states = append(states, models.ResumeState{
			AssessmentID:   session.AssessmentID,
			NextQuestionID: nextQuestionID,
		})
	}

	key := fmt.Sprintf(constvars.RedisKeyResumeStateFormat, session.UserID)
	return uc.RedisRepository.Set(ctx, key, states, 0)
}

func (uc *questionnaireUsecase) removeResumeState(ctx context.Context, session *Session) error {
	states, err := uc.loadResumeStates(ctx, session.UserID)
	if err != nil {
		return err
	}

	kept := states[:0]
	for _, state := range states {
		if state.AssessmentID != session.AssessmentID {
			kept = append(kept, state)
		}
	}
	if len(kept) == len(states) {
		return nil
	}

	key := fmt.Sprintf(constvars.RedisKeyResumeStateFormat, session.UserID)
	if len(kept) == 0 {
		return uc.RedisRepository.Delete(ctx, key)
	}
	return uc.RedisRepository.Set(ctx, key, kept, 0)
}
