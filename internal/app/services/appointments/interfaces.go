package appointments

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
)

type AppointmentUsecase interface {
	BookAppointment(ctx context.Context, principal *models.Principal, request *requests.BookAppointment) (*responses.AppointmentResponse, error)
	GetMyAppointments(ctx context.Context, principal *models.Principal) ([]responses.AppointmentResponse, error)
	GetAppointmentsByPhysician(ctx context.Context, physicianID string) ([]responses.AppointmentResponse, error)
	UpdateAppointment(ctx context.Context, principal *models.Principal, appointmentID string, request *requests.UpdateAppointment) (*responses.AppointmentResponse, error)
}

type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindBookedSlot(ctx context.Context, userID, physicianID, bookedTime string) (*models.Appointment, error)
	FindByUserID(ctx context.Context, userID string) ([]models.Appointment, error)
	FindByPhysicianID(ctx context.Context, physicianID string) ([]models.Appointment, error)
	UpdateAppointment(ctx context.Context, appointment *models.Appointment) error
}

// UserProvider resolves the booking account, satisfied by the users
// mongo repository.
type UserProvider interface {
	FindByID(ctx context.Context, userID string) (*models.User, error)
}
