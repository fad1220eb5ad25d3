package appointments

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/app/services/physicians"
	"medibook-service/internal/app/services/shared/notifications"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRepository AppointmentRepository
	PhysicianRepository   physicians.PhysicianRepository
	UserProvider          UserProvider
	NotificationPublisher notifications.NotificationPublisher
	Logger                *zap.Logger
}

func NewAppointmentUsecase(
	appointmentRepository AppointmentRepository,
	physicianRepository physicians.PhysicianRepository,
	userProvider UserProvider,
	notificationPublisher notifications.NotificationPublisher,
	logger *zap.Logger,
) AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository: appointmentRepository,
		PhysicianRepository:   physicianRepository,
		UserProvider:          userProvider,
		NotificationPublisher: notificationPublisher,
		Logger:                logger,
	}
}

// BookAppointment checks the slot with a read before the insert. Two
// concurrent requests for the same slot can both pass the check, there
// is no unique index backing it.
func (uc *appointmentUsecase) BookAppointment(ctx context.Context, principal *models.Principal, request *requests.BookAppointment) (*responses.AppointmentResponse, error) {
	// A token can outlive its account, re-check the user exists.
	user, err := uc.UserProvider.FindByID(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	physician, err := uc.PhysicianRepository.FindByID(ctx, request.PhysicianID)
	if err != nil {
		return nil, err
	}
	if physician == nil {
		return nil, exceptions.ErrPhysicianNotExist(nil)
	}

	existingSlot, err := uc.AppointmentRepository.FindBookedSlot(ctx, principal.UserID, request.PhysicianID, request.BookedTime)
	if err != nil {
		return nil, err
	}
	if existingSlot != nil {
		return nil, exceptions.ErrSlotAlreadyBooked(nil)
	}

	appointment := &models.Appointment{
		UserID:      user.ID,
		PhysicianID: physician.ID,
		BookedTime:  request.BookedTime,
		Status:      constvars.AppointmentStatusBooked,
	}
	appointmentID, err := uc.AppointmentRepository.CreateAppointment(ctx, appointment)
	if err != nil {
		return nil, err
	}

	uc.Logger.Info("appointment booked",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingPhysicianIDKey, request.PhysicianID),
	)

	uc.publishBookingEvent(ctx, appointmentID, appointment)

	created, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	response := buildAppointmentResponse(created)
	attachPhysician(response, physician)
	return response, nil
}

func (uc *appointmentUsecase) GetMyAppointments(ctx context.Context, principal *models.Principal) ([]responses.AppointmentResponse, error) {
	appointments, err := uc.AppointmentRepository.FindByUserID(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}

	result := buildAppointmentResponses(appointments)

	// Resolve each distinct physician once and embed the summary.
	resolved := make(map[string]*models.Physician)
	for i := range result {
		physician, seen := resolved[result[i].PhysicianID]
		if !seen {
			physician, err = uc.PhysicianRepository.FindByID(ctx, result[i].PhysicianID)
			if err != nil {
				return nil, err
			}
			resolved[result[i].PhysicianID] = physician
		}
		attachPhysician(&result[i], physician)
	}
	return result, nil
}

func (uc *appointmentUsecase) GetAppointmentsByPhysician(ctx context.Context, physicianID string) ([]responses.AppointmentResponse, error) {
	physician, err := uc.PhysicianRepository.FindByID(ctx, physicianID)
	if err != nil {
		return nil, err
	}
	if physician == nil {
		return nil, exceptions.ErrPhysicianNotExist(nil)
	}

	appointments, err := uc.AppointmentRepository.FindByPhysicianID(ctx, physicianID)
	if err != nil {
		return nil, err
	}

	result := buildAppointmentResponses(appointments)
	for i := range result {
		attachPhysician(&result[i], physician)
	}
	return result, nil
}

// UpdateAppointment applies a new time and a cancel in the same call
// when both are present. The reschedule runs first with its own slot
// check, a cancel then overrides the status but keeps the new time.
func (uc *appointmentUsecase) UpdateAppointment(ctx context.Context, principal *models.Principal, appointmentID string, request *requests.UpdateAppointment) (*responses.AppointmentResponse, error) {
	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil || appointment.UserID.Hex() != principal.UserID {
		return nil, exceptions.ErrAppointmentNotExist(nil)
	}

	if request.NewTime == "" && request.Status != constvars.AppointmentStatusCancelled {
		return nil, exceptions.ErrInputValidation(nil)
	}

	if request.NewTime != "" {
		existingSlot, err := uc.AppointmentRepository.FindBookedSlot(ctx, appointment.UserID.Hex(), appointment.PhysicianID.Hex(), request.NewTime)
		if err != nil {
			return nil, err
		}
		if existingSlot != nil {
			return nil, exceptions.ErrNewSlotAlreadyBooked(nil)
		}
		appointment.BookedTime = request.NewTime
		appointment.Status = constvars.AppointmentStatusRescheduled
	}

	if request.Status == constvars.AppointmentStatusCancelled {
		appointment.Status = constvars.AppointmentStatusCancelled
	}

	if err := uc.AppointmentRepository.UpdateAppointment(ctx, appointment); err != nil {
		return nil, err
	}

	uc.Logger.Info("appointment updated",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String("status", appointment.Status),
	)

	uc.publishBookingEvent(ctx, appointmentID, appointment)

	return buildAppointmentResponse(appointment), nil
}

// publishBookingEvent is fire and forget, a broker outage must not fail
// the booking that already committed.
func (uc *appointmentUsecase) publishBookingEvent(ctx context.Context, appointmentID string, appointment *models.Appointment) {
	event := &notifications.BookingEvent{
		AppointmentID: appointmentID,
		UserID:        appointment.UserID.Hex(),
		PhysicianID:   appointment.PhysicianID.Hex(),
		BookedTime:    appointment.BookedTime,
		Status:        appointment.Status,
	}
	if err := uc.NotificationPublisher.PublishBookingEvent(ctx, event); err != nil {
		uc.Logger.Warn("failed to publish booking event",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
	}
}

func attachPhysician(response *responses.AppointmentResponse, physician *models.Physician) {
	if physician == nil {
		return
	}
	clinicNames := make([]string, 0, len(physician.Clinics))
	for _, clinic := range physician.Clinics {
		clinicNames = append(clinicNames, clinic.ClinicName)
	}
	response.PhysicianName = physician.Name
	response.Physician = &responses.AppointmentPhysician{
		ID:             physician.ID.Hex(),
		Name:           physician.Name,
		Specialization: physician.Specialization,
		MobileNumber:   physician.MobileNumber,
		ClinicNames:    clinicNames,
	}
}

func buildAppointmentResponse(appointment *models.Appointment) *responses.AppointmentResponse {
	return &responses.AppointmentResponse{
		ID:          appointment.ID.Hex(),
		UserID:      appointment.UserID.Hex(),
		PhysicianID: appointment.PhysicianID.Hex(),
		BookedTime:  appointment.BookedTime,
		Status:      appointment.Status,
		CreatedAt:   appointment.CreatedAt.Format(time.RFC3339),
	}
}

func buildAppointmentResponses(appointments []models.Appointment) []responses.AppointmentResponse {
	result := make([]responses.AppointmentResponse, 0, len(appointments))
	for i := range appointments {
		result = append(result, *buildAppointmentResponse(&appointments[i]))
	}
	return result
}
