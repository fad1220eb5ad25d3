package catalog

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/responses"
)

type ServiceUsecase interface {
	GetServices(ctx context.Context) ([]responses.ServiceResponse, error)
}

type ServiceRepository interface {
	CreateService(ctx context.Context, service *models.Service) (string, error)
	FindAll(ctx context.Context) ([]models.Service, error)
	CountAll(ctx context.Context) (int64, error)
}
