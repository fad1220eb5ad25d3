package demographics

import (
	"context"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Demographic writes arrive as multipart forms because of the optional
// profile picture part.
type DemographicController struct {
	DemographicUsecase DemographicUsecase
	Logger             *zap.Logger
}

func NewDemographicController(demographicUsecase DemographicUsecase, logger *zap.Logger) *DemographicController {
	return &DemographicController{
		DemographicUsecase: demographicUsecase,
		Logger:             logger,
	}
}

func (ctrl *DemographicController) GetDemographic(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.GetPrincipal(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Logger, w, exceptions.ErrTokenInvalidOrExpired(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.DemographicUsecase.GetDemographic(ctx, principal)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Logger, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Logger, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDemographicSuccessMessage, result)
}

func (ctrl *DemographicController) CreateDemographic(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.GetPrincipal(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Logger, w, exceptions.ErrTokenInvalidOrExpired(nil))
		return
	}

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		utils.BuildErrorResponse(ctrl.Logger, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	request, err := utils.BuildDemographicRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Logger, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	utils.SanitizeDemographicRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Logger, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.DemographicUsecase.CreateDemographic(ctx, principal, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Logger, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Logger, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateDemographicSuccessMessage, result)
}

func (ctrl *DemographicController) UpdateDemographic(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.GetPrincipal(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Logger, w, exceptions.ErrTokenInvalidOrExpired(nil))
		return
	}

	demographicID := chi.URLParam(r, constvars.URLParamDemographicID)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		utils.BuildErrorResponse(ctrl.Logger, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	request, err := utils.BuildDemographicRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Logger, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	utils.SanitizeDemographicRequest(request)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.DemographicUsecase.UpdateDemographic(ctx, principal, demographicID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Logger, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Logger, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateDemographicSuccessMessage, result)
}
