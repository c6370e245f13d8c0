package routers

import (
	"vitalab-service/internal/app/delivery/http/middlewares"
	"vitalab-service/internal/app/services/core/assessments"
	"vitalab-service/internal/app/services/core/questionnaires"

	"github.com/go-chi/chi/v5"
)

func attachAssessmentRoutes(
	r chi.Router,
	middlewares *middlewares.Middlewares,
	assessmentController *assessments.AssessmentController,
	questionnaireController *questionnaires.QuestionnaireController,
) {
	// Assessment management is admin-only.
	r.Group(func(r chi.Router) {
		r.Use(middlewares.RequireAdminAPIKey)
		r.Post("/", assessmentController.CreateAssessment)
		r.Get("/{assessment_id}", assessmentController.FindAssessmentByID)
		r.Delete("/{assessment_id}", assessmentController.DeleteAssessmentByID)
	})

	// Session creation belongs to the logged-in user.
	r.Group(func(r chi.Router) {
		r.Use(middlewares.Authenticate)
		r.Post("/{assessment_id}/sessions", questionnaireController.StartSession)
	})
}
