package routers

import (
	"vitalab-service/internal/app/delivery/http/middlewares"
	"vitalab-service/internal/app/services/core/questionnaires"

	"github.com/go-chi/chi/v5"
)

func attachSessionRoutes(
	r chi.Router,
	middlewares *middlewares.Middlewares,
	questionnaireController *questionnaires.QuestionnaireController,
) {
	r.Use(middlewares.Authenticate)

	r.Get("/{session_id}/current", questionnaireController.CurrentQuestion)
	r.Get("/{session_id}/progress", questionnaireController.SessionProgress)

	r.Group(func(r chi.Router) {
		r.Use(middlewares.RateLimiter.Limit)

		r.Put("/{session_id}/answer", questionnaireController.AnswerQuestion)
		r.Post("/{session_id}/next", questionnaireController.NextQuestion)
		r.Post("/{session_id}/previous", questionnaireController.PreviousQuestion)
		r.Post("/{session_id}/submit", questionnaireController.SubmitSession)
		r.Post("/{session_id}/questions/{question_id}/image", questionnaireController.UploadAnswerImage)
	})
}
