package physicians

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/responses"
)

type PhysicianUsecase interface {
	GetPhysicians(ctx context.Context) ([]responses.PhysicianResponse, error)
	GetPhysicianByID(ctx context.Context, physicianID string) (*responses.PhysicianResponse, error)
}

type PhysicianRepository interface {
	CreatePhysician(ctx context.Context, physician *models.Physician) (string, error)
	FindAll(ctx context.Context) ([]models.Physician, error)
	FindByID(ctx context.Context, physicianID string) (*models.Physician, error)
	CountAll(ctx context.Context) (int64, error)
}
