package config

import (
	"github.com/go-chi/chi/v5"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		MongoDB        *mongo.Database
		Redis          *redis.Client
		RabbitMQ       *amqp091.Connection
		Logger         *logrus.Logger
		ZapLogger      *zap.Logger
		DriverConfig   *DriverConfig
		InternalConfig *InternalConfig
	}

	InternalConfig struct {
		App      App
		JWT      JWT
		Minio    AppMinio
		RabbitMQ AppRabbitMQ
	}

	App struct {
		Env                        string
		Port                       string
		Version                    string
		Address                    string
		Timezone                   string
		EndpointPrefix             string
		MaxRequests                int
		ShutdownTimeout            int
		SessionTTLInMinutes        int
		RequestBodyLimitInMegabyte int
		AdminAPIKeyHash            string

		SessionMaxRequestsPerSecond int
		SessionBlockTimeInMinutes   int
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}

	AppMinio struct {
		BucketName                  string
		AnswerImageMaxUploadSizeInMB int
	}

	AppRabbitMQ struct {
		SubmissionQueue string
	}
)
