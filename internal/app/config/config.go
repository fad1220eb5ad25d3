package config

import (
	"medibook-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "medibook"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Username: utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                      utils.GetEnvString("APP_ENV", "development"),
			Port:                     utils.GetEnvString("APP_PORT", ":8080"),
			Address:                  utils.GetEnvString("APP_ADDRESS", "localhost"),
			Version:                  utils.GetEnvString("APP_VERSION", "v1.0"),
			EndpointPrefix:           utils.GetEnvString("APP_ENDPOINT_PREFIX", "/api"),
			ShutdownTimeoutInSeconds: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			MaxRequestsPerMinute:     utils.GetEnvInt("APP_MAX_REQUESTS_PER_MINUTE", 100),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 24),
		},
		GoogleAuth: GoogleAuth{
			Audience: utils.GetEnvString("GOOGLE_AUTH_AUDIENCE", ""),
		},
		Storage: Storage{
			ReportBucketName:          utils.GetEnvString("STORAGE_REPORT_BUCKET_NAME", "reports"),
			ProfilePictureBucketName:  utils.GetEnvString("STORAGE_PROFILE_PICTURE_BUCKET_NAME", "profile-pictures"),
			ProfilePictureMaxSizeInMB: int64(utils.GetEnvInt("STORAGE_PROFILE_PICTURE_MAX_SIZE_IN_MB", 5)),
			PresignedURLExpiryInHours: utils.GetEnvInt("STORAGE_PRESIGNED_URL_EXPIRY_IN_HOURS", 1),
		},
		Messaging: Messaging{
			NotificationQueue: utils.GetEnvString("MESSAGING_NOTIFICATION_QUEUE", "appointment-notifications"),
		},
		RateLimit: RateLimit{
			AuthMaxAttempts:     utils.GetEnvInt("RATE_LIMIT_AUTH_MAX_ATTEMPTS", 10),
			AuthWindowInSeconds: utils.GetEnvInt("RATE_LIMIT_AUTH_WINDOW_IN_SECONDS", 60),
		},
	}
}
