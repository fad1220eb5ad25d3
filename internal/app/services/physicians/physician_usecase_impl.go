package physicians

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
)

type physicianUsecase struct {
	PhysicianRepository PhysicianRepository
}

func NewPhysicianUsecase(physicianRepository PhysicianRepository) PhysicianUsecase {
	return &physicianUsecase{
		PhysicianRepository: physicianRepository,
	}
}

func (uc *physicianUsecase) GetPhysicians(ctx context.Context) ([]responses.PhysicianResponse, error) {
	physicians, err := uc.PhysicianRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]responses.PhysicianResponse, 0, len(physicians))
	for i := range physicians {
		result = append(result, *buildPhysicianResponse(&physicians[i]))
	}
	return result, nil
}

func (uc *physicianUsecase) GetPhysicianByID(ctx context.Context, physicianID string) (*responses.PhysicianResponse, error) {
	physician, err := uc.PhysicianRepository.FindByID(ctx, physicianID)
	if err != nil {
		return nil, err
	}
	if physician == nil {
		return nil, exceptions.ErrPhysicianNotExist(nil)
	}
	return buildPhysicianResponse(physician), nil
}

func buildPhysicianResponse(physician *models.Physician) *responses.PhysicianResponse {
	response := &responses.PhysicianResponse{
		ID:             physician.ID.Hex(),
		Name:           physician.Name,
		Specialization: physician.Specialization,
		Qualification:  physician.Qualification,
		Experience:     physician.Experience,
		ConsultingFee:  physician.ConsultingFee,
	}

	for _, clinic := range physician.Clinics {
		workingDays := make([]responses.WorkingDay, 0, len(clinic.WorkingDays))
		for _, day := range clinic.WorkingDays {
			workingDays = append(workingDays, responses.WorkingDay{
				Day:       day.Day,
				StartTime: day.StartTime,
				EndTime:   day.EndTime,
			})
		}
		response.Clinics = append(response.Clinics, responses.Clinic{
			ClinicName:  clinic.ClinicName,
			Address:     clinic.Address,
			City:        clinic.City,
			WorkingDays: workingDays,
		})
	}

	if physician.Email != "" || physician.MobileNumber != "" {
		response.Contact = &responses.PhysicianContact{
			Email:        physician.Email,
			MobileNumber: physician.MobileNumber,
		}
	}

	return response
}
