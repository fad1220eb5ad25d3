package routers

import (
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/services/appointments"
	"medibook-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *appointments.AppointmentController) {
	router.With(middlewares.Authenticate).Post("/", appointmentController.BookAppointment)
	router.With(middlewares.Authenticate).Get("/all", appointmentController.GetMyAppointments)
	// Physician listing is public, the other appointment routes are not.
	router.Get("/physician/{"+constvars.URLParamPhysicianID+"}", appointmentController.GetAppointmentsByPhysician)
	router.With(middlewares.Authenticate).Put("/{"+constvars.URLParamAppointmentID+"}", appointmentController.UpdateAppointment)
}
