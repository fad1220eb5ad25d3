package routers

import (
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/services/demographics"
	"medibook-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachDemographicRoutes(router chi.Router, middlewares *middlewares.Middlewares, demographicController *demographics.DemographicController) {
	router.With(middlewares.Authenticate).Get("/", demographicController.GetDemographic)
	router.With(middlewares.Authenticate).Post("/", demographicController.CreateDemographic)
	router.With(middlewares.Authenticate).Put("/{"+constvars.URLParamDemographicID+"}", demographicController.UpdateDemographic)
}
