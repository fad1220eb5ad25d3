package routers

import (
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/services/reports"
	"medibook-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachReportRoutes(router chi.Router, middlewares *middlewares.Middlewares, reportController *reports.ReportController) {
	router.With(middlewares.Authenticate).Post("/", reportController.UploadReport)
	router.With(middlewares.Authenticate).Get("/", reportController.GetReports)
	router.With(middlewares.Authenticate).Get("/{"+constvars.URLParamFilename+"}", reportController.DownloadReport)
}
