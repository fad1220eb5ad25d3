package physicians

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

type PhysicianController struct {
	PhysicianUsecase PhysicianUsecase
	Logger           *zap.Logger
}

func NewPhysicianController(physicianUsecase PhysicianUsecase, logger *zap.Logger) *PhysicianController {
	return &PhysicianController{
		PhysicianUsecase: physicianUsecase,
		Logger:           logger,
	}
}

func (ctrl *PhysicianController) GetPhysicians(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.PhysicianUsecase.GetPhysicians(ctx)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Logger, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Logger, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPhysiciansSuccessMessage, result)
}

func (ctrl *PhysicianController) GetPhysicianByID(w http.ResponseWriter, r *http.Request) {
	physicianID := chi.URLParam(r, constvars.URLParamPhysicianID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.PhysicianUsecase.GetPhysicianByID(ctx, physicianID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Logger, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Logger, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPhysiciansSuccessMessage, result)
}
