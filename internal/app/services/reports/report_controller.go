package reports

import (
	"context"
	"fmt"
	"io"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReportController struct {
	ReportUsecase ReportUsecase
	Logger        *zap.Logger
}

func NewReportController(reportUsecase ReportUsecase, logger *zap.Logger) *ReportController {
	return &ReportController{
		ReportUsecase: reportUsecase,
		Logger:        logger,
	}
}

func (ctrl *ReportController) UploadReport(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.GetPrincipal(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Logger, w, exceptions.ErrTokenInvalidOrExpired(nil))
		return
	}

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		utils.BuildErrorResponse(ctrl.Logger, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	file, fileHeader, err := r.FormFile(constvars.MultipartFieldPDF)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Logger, w, exceptions.ErrReportFileMissing(err))
		return
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	result, err := ctrl.ReportUsecase.UploadReport(ctx, principal, file, fileHeader)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Logger, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Logger, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UploadReportSuccessMessage, result)
}

func (ctrl *ReportController) GetReports(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.GetPrincipal(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Logger, w, exceptions.ErrTokenInvalidOrExpired(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ReportUsecase.GetReports(ctx, principal)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Logger, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Logger, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetReportsSuccessMessage, result)
}

func (ctrl *ReportController) DownloadReport(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.GetPrincipal(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Logger, w, exceptions.ErrTokenInvalidOrExpired(nil))
		return
	}

	filename := chi.URLParam(r, constvars.URLParamFilename)

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	object, report, err := ctrl.ReportUsecase.DownloadReport(ctx, principal, filename)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Logger, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Logger, w, err)
		return
	}
	defer object.Close()

	contentType := report.ContentType
	if contentType == "" {
		contentType = constvars.MIMEApplicationPDF
	}
	w.Header().Set(constvars.HeaderContentType, contentType)
	w.Header().Set(constvars.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", report.FileName))
	w.WriteHeader(constvars.StatusOK)

	if _, err := io.Copy(w, object); err != nil {
		ctrl.Logger.Error("failed to stream report",
			zap.String(constvars.LoggingFilenameKey, filename),
			zap.Error(err),
		)
	}
}
