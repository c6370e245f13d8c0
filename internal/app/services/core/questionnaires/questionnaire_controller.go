package questionnaires

import (
	"context"
	"net/http"
	"time"

	"vitalab-service/internal/pkg/constvars"
	"vitalab-service/internal/pkg/dto/requests"
	"vitalab-service/internal/pkg/exceptions"
	"vitalab-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type QuestionnaireController struct {
	Log                  *zap.Logger
	QuestionnaireUsecase QuestionnaireUsecase
	MaxUploadSizeInMB    int
}

func NewQuestionnaireController(log *zap.Logger, questionnaireUsecase QuestionnaireUsecase, maxUploadSizeInMB int) *QuestionnaireController {
	return &QuestionnaireController{
		Log:                  log,
		QuestionnaireUsecase: questionnaireUsecase,
		MaxUploadSizeInMB:    maxUploadSizeInMB,
	}
}

func (c *QuestionnaireController) StartSession(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, ok := ctx.Value(constvars.ContextUserIDKey).(string)
	if !ok {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInvalidLoginSession(nil))
		return
	}
	assessmentID := chi.URLParam(r, constvars.URLParamAssessmentID)
	if assessmentID == "" {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamAssessmentID))
		return
	}

	state, err := c.QuestionnaireUsecase.StartSession(ctx, userID, assessmentID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.StartSessionSuccessMessage, state)
}

func (c *QuestionnaireController) CurrentQuestion(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, sessionID, err := c.sessionParams(ctx, r)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	state, err := c.QuestionnaireUsecase.CurrentQuestion(ctx, userID, sessionID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CurrentQuestionSuccessMessage, state)
}

func (c *QuestionnaireController) AnswerQuestion(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, sessionID, err := c.sessionParams(ctx, r)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	request := new(requests.AnswerQuestion)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	state, err := c.QuestionnaireUsecase.AnswerQuestion(ctx, userID, sessionID, request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AnswerQuestionSuccessMessage, state)
}

func (c *QuestionnaireController) NextQuestion(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, sessionID, err := c.sessionParams(ctx, r)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	request := new(requests.NextQuestion)
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(request); err != nil {
			utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
			return
		}
	}

	state, err := c.QuestionnaireUsecase.NextQuestion(ctx, userID, sessionID, request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.NextQuestionSuccessMessage, state)
}

func (c *QuestionnaireController) PreviousQuestion(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, sessionID, err := c.sessionParams(ctx, r)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	state, err := c.QuestionnaireUsecase.PreviousQuestion(ctx, userID, sessionID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PreviousQuestionSuccessMessage, state)
}

func (c *QuestionnaireController) SessionProgress(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, sessionID, err := c.sessionParams(ctx, r)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	state, err := c.QuestionnaireUsecase.SessionProgress(ctx, userID, sessionID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SessionProgressSuccessMessage, state)
}

func (c *QuestionnaireController) SubmitSession(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, sessionID, err := c.sessionParams(ctx, r)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	request := new(requests.SubmitSession)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	result, err := c.QuestionnaireUsecase.SubmitSession(ctx, userID, sessionID, request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SubmitSessionSuccessMessage, result)
}

func (c *QuestionnaireController) UploadAnswerImage(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	userID, sessionID, err := c.sessionParams(ctx, r)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	questionID := chi.URLParam(r, constvars.URLParamQuestionID)
	if questionID == "" {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamQuestionID))
		return
	}

	maxBytes := int64(c.MaxUploadSizeInMB) << 20
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	file, fileHeader, err := r.FormFile("image")
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	defer file.Close()

	result, err := c.QuestionnaireUsecase.UploadAnswerImage(ctx, userID, sessionID, questionID, file, fileHeader)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.UploadAnswerImageSuccessMessage, result)
}

func (c *QuestionnaireController) sessionParams(ctx context.Context, r *http.Request) (string, string, error) {
	userID, ok := ctx.Value(constvars.ContextUserIDKey).(string)
	if !ok {
		return "", "", exceptions.ErrInvalidLoginSession(nil)
	}
	sessionID := chi.URLParam(r, constvars.URLParamSessionID)
	if sessionID == "" {
		return "", "", exceptions.ErrURLParamIDValidation(nil, constvars.URLParamSessionID)
	}
	return userID, sessionID, nil
}
