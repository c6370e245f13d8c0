package routers

import (
	"fmt"
	"time"

	"vitalab-service/internal/app/config"
	"vitalab-service/internal/app/delivery/http/middlewares"
	"vitalab-service/internal/app/services/core/assessments"
	"vitalab-service/internal/app/services/core/questionnaires"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	assessmentController *assessments.AssessmentController,
	questionnaireController *questionnaires.QuestionnaireController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))

	router.Use(middlewares.RequestID)
	router.Use(middlewares.Logging)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/assessments", func(r chi.Router) {
				attachAssessmentRoutes(r, middlewares, assessmentController, questionnaireController)
			})

			r.Route("/sessions", func(r chi.Router) {
				attachSessionRoutes(r, middlewares, questionnaireController)
			})
		})
	})
}
