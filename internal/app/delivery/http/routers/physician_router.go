package routers

import (
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/services/physicians"
	"medibook-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachPhysicianRoutes(router chi.Router, middlewares *middlewares.Middlewares, physicianController *physicians.PhysicianController) {
	router.With(middlewares.Authenticate).Get("/all", physicianController.GetPhysicians)
	router.With(middlewares.Authenticate).Get("/{"+constvars.URLParamPhysicianID+"}", physicianController.GetPhysicianByID)
}
