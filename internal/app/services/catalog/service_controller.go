package catalog

import (
	"context"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type ServiceController struct {
	ServiceUsecase ServiceUsecase
	Logger         *zap.Logger
}

func NewServiceController(serviceUsecase ServiceUsecase, logger *zap.Logger) *ServiceController {
	return &ServiceController{
		ServiceUsecase: serviceUsecase,
		Logger:         logger,
	}
}

func (ctrl *ServiceController) GetServices(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ServiceUsecase.GetServices(ctx)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Logger, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Logger, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetServicesSuccessMessage, result)
}
