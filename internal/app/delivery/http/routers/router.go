package routers

import (
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/services/appointments"
	"medibook-service/internal/app/services/catalog"
	"medibook-service/internal/app/services/demographics"
	"medibook-service/internal/app/services/physicians"
	"medibook-service/internal/app/services/reports"
	"medibook-service/internal/app/services/users"
	"medibook-service/internal/pkg/constvars"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	mw *middlewares.Middlewares,
	zapLogger *zap.Logger,
	accessLogger *logrus.Logger,
	userController *users.UserController,
	physicianController *physicians.PhysicianController,
	serviceController *catalog.ServiceController,
	appointmentController *appointments.AppointmentController,
	demographicController *demographics.DemographicController,
	reportController *reports.ReportController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", constvars.HeaderXAuthToken, constvars.HeaderXRequestID},
		ExposedHeaders:   []string{constvars.HeaderXAuthToken, constvars.HeaderXRequestID},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(httprate.LimitByIP(internalConfig.App.MaxRequestsPerMinute, time.Minute))

	router.Use(mw.RequestIDMiddleware)
	router.Use(mw.Logging(zapLogger))
	router.Use(mw.AccessLogger(accessLogger))
	router.Use(mw.ErrorHandler)

	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			attachUserRoutes(r, mw, userController)
		})

		r.Route("/physicians", func(r chi.Router) {
			attachPhysicianRoutes(r, mw, physicianController)
		})

		r.Route("/services", func(r chi.Router) {
			attachServiceRoutes(r, mw, serviceController)
		})

		r.Route("/appointments", func(r chi.Router) {
			attachAppointmentRoutes(r, mw, appointmentController)
		})

		r.Route("/demographics", func(r chi.Router) {
			attachDemographicRoutes(r, mw, demographicController)
		})

		r.Route("/pdf", func(r chi.Router) {
			attachReportRoutes(r, mw, reportController)
		})
	})
}
