package routers

import (
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/services/catalog"

	"github.com/go-chi/chi/v5"
)

func attachServiceRoutes(router chi.Router, middlewares *middlewares.Middlewares, serviceController *catalog.ServiceController) {
	router.With(middlewares.Authenticate).Get("/", serviceController.GetServices)
}
