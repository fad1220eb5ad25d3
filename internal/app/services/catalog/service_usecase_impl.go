package catalog

import (
	"context"
	"medibook-service/internal/pkg/dto/responses"
)

type serviceUsecase struct {
	ServiceRepository ServiceRepository
}

func NewServiceUsecase(serviceRepository ServiceRepository) ServiceUsecase {
	return &serviceUsecase{
		ServiceRepository: serviceRepository,
	}
}

func (uc *serviceUsecase) GetServices(ctx context.Context) ([]responses.ServiceResponse, error) {
	services, err := uc.ServiceRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]responses.ServiceResponse, 0, len(services))
	for _, service := range services {
		result = append(result, responses.ServiceResponse{
			ID:          service.ID.Hex(),
			Name:        service.Name,
			Category:    service.Category,
			Description: service.Description,
			Price:       service.Price,
			DurationMin: service.DurationMin,
		})
	}
	return result, nil
}
