package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vitalab-service/internal/app/config"
	"vitalab-service/internal/app/delivery/http/middlewares"
	"vitalab-service/internal/app/delivery/http/routers"
	"vitalab-service/internal/app/drivers/database"
	"vitalab-service/internal/app/drivers/logger"
	"vitalab-service/internal/app/drivers/messaging"
	"vitalab-service/internal/app/drivers/storage"
	"vitalab-service/internal/app/services/core/assessments"
	"vitalab-service/internal/app/services/core/questionnaires"
	"vitalab-service/internal/app/services/shared/publisher"
	"vitalab-service/internal/app/services/shared/redis"
	minioStorage "vitalab-service/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoClient := database.NewMongoDB(driverConfig)
	mongoDB := mongoClient.Database(driverConfig.MongoDB.DbName)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQConnection := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQConnection,
		Logger:         log,
		ZapLogger:      zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}, minioClient)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that were already received by the server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		log.Printf("Failed to disconnect mongo client: %v", err)
	}
	if err := redisClient.Close(); err != nil {
		log.Printf("Failed to close redis client: %v", err)
	}
	if err := rabbitMQConnection.Close(); err != nil {
		log.Printf("Failed to close rabbitmq connection: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap, minioClient *minio.Client) {
	// Shared infrastructure
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	objectStorage := minioStorage.NewMinioStorage(minioClient)
	submissionPublisher, err := publisher.NewSubmissionPublisher(bootstrap.RabbitMQ, bootstrap.InternalConfig.RabbitMQ.SubmissionQueue)
	if err != nil {
		bootstrap.Logger.Fatalf("Failed to initialize submission publisher: %v", err)
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.ZapLogger, redisRepository, bootstrap.InternalConfig)

	// Assessment
	assessmentMongoRepository := assessments.NewAssessmentMongoRepository(bootstrap.MongoDB)
	assessmentUsecase := assessments.NewAssessmentUsecase(bootstrap.ZapLogger, assessmentMongoRepository)
	assessmentController := assessments.NewAssessmentController(bootstrap.ZapLogger, assessmentUsecase)

	// Questionnaire
	sessionStore := questionnaires.NewSessionStore(time.Duration(bootstrap.InternalConfig.App.SessionTTLInMinutes) * time.Minute)
	go sweepSessions(sessionStore)

	submissionMongoRepository := questionnaires.NewSubmissionMongoRepository(bootstrap.MongoDB, bootstrap.ZapLogger)
	submittedTagMongoRepository := questionnaires.NewSubmittedTagMongoRepository(bootstrap.MongoDB)
	questionnaireUsecase := questionnaires.NewQuestionnaireUsecase(
		bootstrap.ZapLogger,
		sessionStore,
		assessmentMongoRepository,
		submissionMongoRepository,
		submittedTagMongoRepository,
		redisRepository,
		objectStorage,
		submissionPublisher,
		bootstrap.InternalConfig,
	)
	questionnaireController := questionnaires.NewQuestionnaireController(
		bootstrap.ZapLogger,
		questionnaireUsecase,
		bootstrap.InternalConfig.Minio.AnswerImageMaxUploadSizeInMB,
	)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, assessmentController, questionnaireController)
}

func sweepSessions(sessionStore *questionnaires.SessionStore) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		sessionStore.Sweep()
	}
}
