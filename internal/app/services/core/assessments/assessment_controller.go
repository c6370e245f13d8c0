package assessments

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

type AssessmentController struct {
	Log               *zap.Logger
	AssessmentUsecase AssessmentUsecase
}

func NewAssessmentController(log *zap.Logger, assessmentUsecase AssessmentUsecase) *AssessmentController {
	return &AssessmentController{
		Log:               log,
		AssessmentUsecase: assessmentUsecase,
	}
}

func (c *AssessmentController) CreateAssessment(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	request := new(requests.CreateAssessment)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := c.AssessmentUsecase.CreateAssessment(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateAssessmentSuccessMessage, response)
}

func (c *AssessmentController) FindAssessmentByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	assessmentID := chi.URLParam(r, constvars.URLParamAssessmentID)
	if assessmentID == "" {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamAssessmentID))
		return
	}

	response, err := c.AssessmentUsecase.FindAssessmentByID(ctx, assessmentID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindAssessmentSuccessMessage, response)
}

func (c *AssessmentController) DeleteAssessmentByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	assessmentID := chi.URLParam(r, constvars.URLParamAssessmentID)
	if assessmentID == "" {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamAssessmentID))
		return
	}

	if err := c.AssessmentUsecase.DeleteAssessmentByID(ctx, assessmentID); err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteAssessmentSuccessMessage, nil)
}
