package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		Minio    Minio
		Logger   Logger
	}

	MongoDB struct {
		Host     string
		Port     string
		Username string
		Password string
		DbName   string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	RabbitMQ struct {
		Host     string
		Port     string
		Username string
		Password string
	}

	Minio struct {
		Host     string
		Port     string
		Username string
		Password string
		UseSSL   bool
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)

type (
	InternalConfig struct {
		App        App
		JWT        JWT
		GoogleAuth GoogleAuth
		Storage    Storage
		Messaging  Messaging
		RateLimit  RateLimit
	}

	App struct {
		Env                      string
		Port                     string
		Address                  string
		Version                  string
		EndpointPrefix           string
		ShutdownTimeoutInSeconds int
		MaxRequestsPerMinute     int
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}

	// GoogleAuth configures verification of externally issued ID tokens.
	GoogleAuth struct {
		Audience string
	}

	Storage struct {
		ReportBucketName          string
		ProfilePictureBucketName  string
		ProfilePictureMaxSizeInMB int64
		PresignedURLExpiryInHours int
	}

	Messaging struct {
		NotificationQueue string
	}

	// RateLimit bounds credential endpoints with a fixed window counter.
	RateLimit struct {
		AuthMaxAttempts     int
		AuthWindowInSeconds int
	}
)
