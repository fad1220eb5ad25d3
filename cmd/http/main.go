package main

import (
	"context"
	"log"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/delivery/http/routers"
	"medibook-service/internal/app/drivers/database"
	"medibook-service/internal/app/drivers/logger"
	"medibook-service/internal/app/drivers/messaging"
	minioDriver "medibook-service/internal/app/drivers/storage"
	"medibook-service/internal/app/services/appointments"
	"medibook-service/internal/app/services/catalog"
	"medibook-service/internal/app/services/demographics"
	"medibook-service/internal/app/services/physicians"
	"medibook-service/internal/app/services/reports"
	"medibook-service/internal/app/services/shared/identity"
	"medibook-service/internal/app/services/shared/notifications"
	"medibook-service/internal/app/services/shared/ratelimiter"
	"medibook-service/internal/app/services/shared/redis"
	"medibook-service/internal/app/services/shared/storage"
	"medibook-service/internal/app/services/users"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	accessLogger := logger.NewLogrusLogger(internalConfig)

	mongoClient := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQConnection := messaging.NewRabbitMQ(driverConfig)
	minioClient := minioDriver.NewMinio(driverConfig)

	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoClient:    mongoClient,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQConnection,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	bootstrapTheApp(bootstrap, accessLogger, minioClient)

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
	zapLogger.Info("Server started", zap.String("port", internalConfig.App.Port))

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c
	log.Println("Waiting for pending requests to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error while closing connections: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap, accessLogger *logrus.Logger, minioClient *minio.Client) {
	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	resourceLimiter := ratelimiter.NewResourceLimiter(redisRepository, bootstrap.Logger)
	minioStorage := storage.NewMinioStorage(minioClient)
	notificationPublisher := notifications.NewRabbitMQPublisher(bootstrap.RabbitMQ, bootstrap.InternalConfig.Messaging.NotificationQueue)
	tokenVerifier := identity.NewGoogleVerifier(bootstrap.InternalConfig.GoogleAuth.Audience)

	// User
	userMongoRepository := users.NewUserMongoRepository(bootstrap.MongoClient, bootstrap.DriverConfig.MongoDB.DbName)

	// Demographic
	demographicMongoRepository := demographics.NewDemographicMongoRepository(bootstrap.MongoClient, bootstrap.DriverConfig.MongoDB.DbName)
	demographicUsecase := demographics.NewDemographicUsecase(
		demographicMongoRepository,
		userMongoRepository,
		minioStorage,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	demographicController := demographics.NewDemographicController(demographicUsecase, bootstrap.Logger)

	userUsecase := users.NewUserUsecase(
		userMongoRepository,
		demographicMongoRepository,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	userController := users.NewUserController(userUsecase, bootstrap.Logger)

	// Physician
	physicianMongoRepository := physicians.NewPhysicianMongoRepository(bootstrap.MongoClient, bootstrap.DriverConfig.MongoDB.DbName)
	physicianUsecase := physicians.NewPhysicianUsecase(physicianMongoRepository)
	physicianController := physicians.NewPhysicianController(physicianUsecase, bootstrap.Logger)

	// Service catalog
	serviceMongoRepository := catalog.NewServiceMongoRepository(bootstrap.MongoClient, bootstrap.DriverConfig.MongoDB.DbName)
	serviceUsecase := catalog.NewServiceUsecase(serviceMongoRepository)
	serviceController := catalog.NewServiceController(serviceUsecase, bootstrap.Logger)

	// Appointment
	appointmentMongoRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoClient, bootstrap.DriverConfig.MongoDB.DbName)
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentMongoRepository,
		physicianMongoRepository,
		userMongoRepository,
		notificationPublisher,
		bootstrap.Logger,
	)
	appointmentController := appointments.NewAppointmentController(appointmentUsecase, bootstrap.Logger)

	// Report
	reportMongoRepository := reports.NewReportMongoRepository(bootstrap.MongoClient, bootstrap.DriverConfig.MongoDB.DbName)
	reportUsecase := reports.NewReportUsecase(
		reportMongoRepository,
		minioStorage,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	reportController := reports.NewReportController(reportUsecase, bootstrap.Logger)

	// Middlewares
	mw := &middlewares.Middlewares{
		Log:             bootstrap.Logger,
		InternalConfig:  bootstrap.InternalConfig,
		UserRepository:  userMongoRepository,
		TokenVerifier:   tokenVerifier,
		ResourceLimiter: resourceLimiter,
	}

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		mw,
		bootstrap.Logger,
		accessLogger,
		userController,
		physicianController,
		serviceController,
		appointmentController,
		demographicController,
		reportController,
	)
}
