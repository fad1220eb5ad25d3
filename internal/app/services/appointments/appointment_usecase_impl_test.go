package appointments

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/app/services/shared/notifications"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type mockAppointmentRepository struct {
	mock.Mock
}

func (m *mockAppointmentRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error) {
	args := m.Called(ctx, appointment)
	return args.String(0), args.Error(1)
}

func (m *mockAppointmentRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *mockAppointmentRepository) FindBookedSlot(ctx context.Context, userID, physicianID, bookedTime string) (*models.Appointment, error) {
	args := m.Called(ctx, userID, physicianID, bookedTime)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *mockAppointmentRepository) FindByUserID(ctx context.Context, userID string) ([]models.Appointment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *mockAppointmentRepository) FindByPhysicianID(ctx context.Context, physicianID string) ([]models.Appointment, error) {
	args := m.Called(ctx, physicianID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *mockAppointmentRepository) UpdateAppointment(ctx context.Context, appointment *models.Appointment) error {
	args := m.Called(ctx, appointment)
	return args.Error(0)
}

type mockPhysicianRepository struct {
	mock.Mock
}

func (m *mockPhysicianRepository) CreatePhysician(ctx context.Context, physician *models.Physician) (string, error) {
	args := m.Called(ctx, physician)
	return args.String(0), args.Error(1)
}

func (m *mockPhysicianRepository) FindByID(ctx context.Context, physicianID string) (*models.Physician, error) {
	args := m.Called(ctx, physicianID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Physician), args.Error(1)
}

func (m *mockPhysicianRepository) FindAll(ctx context.Context) ([]models.Physician, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Physician), args.Error(1)
}

func (m *mockPhysicianRepository) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockUserProvider struct {
	mock.Mock
}

func (m *mockUserProvider) FindByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type mockNotificationPublisher struct {
	mock.Mock
}

func (m *mockNotificationPublisher) PublishBookingEvent(ctx context.Context, event *notifications.BookingEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func TestBookAppointment(t *testing.T) {
	userID := primitive.NewObjectID()
	physicianID := primitive.NewObjectID()
	appointmentID := primitive.NewObjectID()
	principal := &models.Principal{UserID: userID.Hex(), UserName: "janedoe"}
	bookRequest := &requests.BookAppointment{
		PhysicianID: physicianID.Hex(),
		BookedTime:  "20/09/2025 10:00 AM",
	}
	physician := &models.Physician{
		ID:             physicianID,
		Name:           "Dr. Budi Santoso",
		Specialization: "Cardiologist",
		Clinics:        []models.Clinic{{ClinicName: "Heart Care Clinic"}},
	}

	knownUser := func() *mockUserProvider {
		userProvider := new(mockUserProvider)
		userProvider.On("FindByID", mock.Anything, userID.Hex()).Return(&models.User{ID: userID, UserName: "janedoe"}, nil)
		return userProvider
	}

	t.Run("deleted account cannot book", func(t *testing.T) {
		userProvider := new(mockUserProvider)
		userProvider.On("FindByID", mock.Anything, userID.Hex()).Return(nil, nil)

		appointmentRepo := new(mockAppointmentRepository)
		uc := NewAppointmentUsecase(appointmentRepo, new(mockPhysicianRepository), userProvider, new(mockNotificationPublisher), zap.NewNop())
		_, err := uc.BookAppointment(context.Background(), principal, bookRequest)

		customError := err.(*exceptions.CustomError)
		assert.Equal(t, http.StatusNotFound, customError.StatusCode)
		appointmentRepo.AssertNotCalled(t, "CreateAppointment")
	})

	t.Run("unknown physician returns not found", func(t *testing.T) {
		physicianRepo := new(mockPhysicianRepository)
		physicianRepo.On("FindByID", mock.Anything, bookRequest.PhysicianID).Return(nil, nil)

		uc := NewAppointmentUsecase(new(mockAppointmentRepository), physicianRepo, knownUser(), new(mockNotificationPublisher), zap.NewNop())
		_, err := uc.BookAppointment(context.Background(), principal, bookRequest)

		customError := err.(*exceptions.CustomError)
		assert.Equal(t, http.StatusNotFound, customError.StatusCode)
		assert.Equal(t, constvars.ErrClientPhysicianNotFound, customError.ClientMessage)
	})

	t.Run("occupied slot is rejected", func(t *testing.T) {
		physicianRepo := new(mockPhysicianRepository)
		physicianRepo.On("FindByID", mock.Anything, bookRequest.PhysicianID).Return(physician, nil)

		appointmentRepo := new(mockAppointmentRepository)
		appointmentRepo.On("FindBookedSlot", mock.Anything, userID.Hex(), bookRequest.PhysicianID, bookRequest.BookedTime).
			Return(&models.Appointment{Status: constvars.AppointmentStatusBooked}, nil)

		uc := NewAppointmentUsecase(appointmentRepo, physicianRepo, knownUser(), new(mockNotificationPublisher), zap.NewNop())
		_, err := uc.BookAppointment(context.Background(), principal, bookRequest)

		customError := err.(*exceptions.CustomError)
		assert.Equal(t, http.StatusBadRequest, customError.StatusCode)
		assert.Equal(t, constvars.ErrClientSlotAlreadyBooked, customError.ClientMessage)
		appointmentRepo.AssertNotCalled(t, "CreateAppointment")
	})

	t.Run("free slot books and publishes the event", func(t *testing.T) {
		physicianRepo := new(mockPhysicianRepository)
		physicianRepo.On("FindByID", mock.Anything, bookRequest.PhysicianID).Return(physician, nil)

		appointmentRepo := new(mockAppointmentRepository)
		appointmentRepo.On("FindBookedSlot", mock.Anything, userID.Hex(), bookRequest.PhysicianID, bookRequest.BookedTime).Return(nil, nil)
		appointmentRepo.On("CreateAppointment", mock.Anything, mock.MatchedBy(func(appointment *models.Appointment) bool {
			return appointment.Status == constvars.AppointmentStatusBooked && appointment.UserID == userID
		})).Return(appointmentID.Hex(), nil)
		appointmentRepo.On("FindByID", mock.Anything, appointmentID.Hex()).Return(&models.Appointment{
			ID:          appointmentID,
			UserID:      userID,
			PhysicianID: physicianID,
			BookedTime:  bookRequest.BookedTime,
			Status:      constvars.AppointmentStatusBooked,
		}, nil)

		publisher := new(mockNotificationPublisher)
		publisher.On("PublishBookingEvent", mock.Anything, mock.MatchedBy(func(event *notifications.BookingEvent) bool {
			return event.AppointmentID == appointmentID.Hex() &&
				event.UserID == userID.Hex() &&
				event.Status == constvars.AppointmentStatusBooked
		})).Return(nil)

		uc := NewAppointmentUsecase(appointmentRepo, physicianRepo, knownUser(), publisher, zap.NewNop())
		response, err := uc.BookAppointment(context.Background(), principal, bookRequest)

		assert.NoError(t, err)
		assert.Equal(t, constvars.AppointmentStatusBooked, response.Status)
		assert.Equal(t, userID.Hex(), response.UserID)
		assert.Equal(t, "Dr. Budi Santoso", response.PhysicianName)
		publisher.AssertExpectations(t)
	})

	t.Run("publish failure does not fail the booking", func(t *testing.T) {
		physicianRepo := new(mockPhysicianRepository)
		physicianRepo.On("FindByID", mock.Anything, bookRequest.PhysicianID).Return(physician, nil)

		appointmentRepo := new(mockAppointmentRepository)
		appointmentRepo.On("FindBookedSlot", mock.Anything, userID.Hex(), bookRequest.PhysicianID, bookRequest.BookedTime).Return(nil, nil)
		appointmentRepo.On("CreateAppointment", mock.Anything, mock.Anything).Return(appointmentID.Hex(), nil)
		appointmentRepo.On("FindByID", mock.Anything, appointmentID.Hex()).Return(&models.Appointment{
			ID:          appointmentID,
			UserID:      userID,
			PhysicianID: physicianID,
			Status:      constvars.AppointmentStatusBooked,
		}, nil)

		publisher := new(mockNotificationPublisher)
		publisher.On("PublishBookingEvent", mock.Anything, mock.Anything).Return(assert.AnError)

		uc := NewAppointmentUsecase(appointmentRepo, physicianRepo, knownUser(), publisher, zap.NewNop())
		response, err := uc.BookAppointment(context.Background(), principal, bookRequest)

		assert.NoError(t, err)
		assert.NotNil(t, response)
	})
}

func TestGetMyAppointments(t *testing.T) {
	userID := primitive.NewObjectID()
	physicianID := primitive.NewObjectID()
	principal := &models.Principal{UserID: userID.Hex(), UserName: "janedoe"}

	t.Run("listing embeds the physician summary", func(t *testing.T) {
		appointmentRepo := new(mockAppointmentRepository)
		appointmentRepo.On("FindByUserID", mock.Anything, userID.Hex()).Return([]models.Appointment{
			{ID: primitive.NewObjectID(), UserID: userID, PhysicianID: physicianID, BookedTime: "20/09/2025 10:00 AM", Status: constvars.AppointmentStatusBooked},
			{ID: primitive.NewObjectID(), UserID: userID, PhysicianID: physicianID, BookedTime: "22/09/2025 9:00 AM", Status: constvars.AppointmentStatusCancelled},
		}, nil)

		physicianRepo := new(mockPhysicianRepository)
		physicianRepo.On("FindByID", mock.Anything, physicianID.Hex()).Return(&models.Physician{
			ID:             physicianID,
			Name:           "Dr. Budi Santoso",
			Specialization: "Cardiologist",
			MobileNumber:   "9811123002",
			Clinics:        []models.Clinic{{ClinicName: "Heart Care Clinic"}, {ClinicName: "MediBook Central"}},
		}, nil).Once()

		uc := NewAppointmentUsecase(appointmentRepo, physicianRepo, new(mockUserProvider), new(mockNotificationPublisher), zap.NewNop())
		result, err := uc.GetMyAppointments(context.Background(), principal)

		assert.NoError(t, err)
		assert.Len(t, result, 2)
		assert.Equal(t, "Dr. Budi Santoso", result[0].Physician.Name)
		assert.Equal(t, "Cardiologist", result[0].Physician.Specialization)
		assert.Equal(t, []string{"Heart Care Clinic", "MediBook Central"}, result[0].Physician.ClinicNames)
		assert.Equal(t, "Dr. Budi Santoso", result[1].PhysicianName)
		// One lookup per distinct physician.
		physicianRepo.AssertExpectations(t)
	})

	t.Run("empty history returns an empty list", func(t *testing.T) {
		appointmentRepo := new(mockAppointmentRepository)
		appointmentRepo.On("FindByUserID", mock.Anything, userID.Hex()).Return([]models.Appointment{}, nil)

		uc := NewAppointmentUsecase(appointmentRepo, new(mockPhysicianRepository), new(mockUserProvider), new(mockNotificationPublisher), zap.NewNop())
		result, err := uc.GetMyAppointments(context.Background(), principal)

		assert.NoError(t, err)
		assert.Empty(t, result)
	})
}

func TestUpdateAppointment(t *testing.T) {
	userID := primitive.NewObjectID()
	physicianID := primitive.NewObjectID()
	appointmentID := primitive.NewObjectID()
	principal := &models.Principal{UserID: userID.Hex(), UserName: "janedoe"}

	storedAppointment := func() *models.Appointment {
		return &models.Appointment{
			ID:          appointmentID,
			UserID:      userID,
			PhysicianID: physicianID,
			BookedTime:  "20/09/2025 10:00 AM",
			Status:      constvars.AppointmentStatusBooked,
		}
	}

	t.Run("someone else's appointment reads as missing", func(t *testing.T) {
		appointmentRepo := new(mockAppointmentRepository)
		other := storedAppointment()
		other.UserID = primitive.NewObjectID()
		appointmentRepo.On("FindByID", mock.Anything, appointmentID.Hex()).Return(other, nil)

		uc := NewAppointmentUsecase(appointmentRepo, new(mockPhysicianRepository), new(mockUserProvider), new(mockNotificationPublisher), zap.NewNop())
		_, err := uc.UpdateAppointment(context.Background(), principal, appointmentID.Hex(), &requests.UpdateAppointment{Status: constvars.AppointmentStatusCancelled})

		customError := err.(*exceptions.CustomError)
		assert.Equal(t, http.StatusNotFound, customError.StatusCode)
		assert.Equal(t, constvars.ErrClientAppointmentNotFound, customError.ClientMessage)
	})

	t.Run("cancel flips the status", func(t *testing.T) {
		appointmentRepo := new(mockAppointmentRepository)
		appointmentRepo.On("FindByID", mock.Anything, appointmentID.Hex()).Return(storedAppointment(), nil)
		appointmentRepo.On("UpdateAppointment", mock.Anything, mock.MatchedBy(func(appointment *models.Appointment) bool {
			return appointment.Status == constvars.AppointmentStatusCancelled
		})).Return(nil)

		publisher := new(mockNotificationPublisher)
		publisher.On("PublishBookingEvent", mock.Anything, mock.Anything).Return(nil)

		uc := NewAppointmentUsecase(appointmentRepo, new(mockPhysicianRepository), new(mockUserProvider), publisher, zap.NewNop())
		response, err := uc.UpdateAppointment(context.Background(), principal, appointmentID.Hex(), &requests.UpdateAppointment{Status: constvars.AppointmentStatusCancelled})

		assert.NoError(t, err)
		assert.Equal(t, constvars.AppointmentStatusCancelled, response.Status)
		appointmentRepo.AssertNotCalled(t, "FindBookedSlot")
	})

	t.Run("reschedule into an occupied slot is rejected", func(t *testing.T) {
		appointmentRepo := new(mockAppointmentRepository)
		appointmentRepo.On("FindByID", mock.Anything, appointmentID.Hex()).Return(storedAppointment(), nil)
		appointmentRepo.On("FindBookedSlot", mock.Anything, userID.Hex(), physicianID.Hex(), "21/09/2025 11:00 AM").
			Return(&models.Appointment{Status: constvars.AppointmentStatusBooked}, nil)

		uc := NewAppointmentUsecase(appointmentRepo, new(mockPhysicianRepository), new(mockUserProvider), new(mockNotificationPublisher), zap.NewNop())
		_, err := uc.UpdateAppointment(context.Background(), principal, appointmentID.Hex(), &requests.UpdateAppointment{NewTime: "21/09/2025 11:00 AM"})

		customError := err.(*exceptions.CustomError)
		assert.Equal(t, constvars.ErrClientNewSlotAlreadyBooked, customError.ClientMessage)
		appointmentRepo.AssertNotCalled(t, "UpdateAppointment")
	})

	t.Run("reschedule into a free slot updates time and status", func(t *testing.T) {
		appointmentRepo := new(mockAppointmentRepository)
		appointmentRepo.On("FindByID", mock.Anything, appointmentID.Hex()).Return(storedAppointment(), nil)
		appointmentRepo.On("FindBookedSlot", mock.Anything, userID.Hex(), physicianID.Hex(), "21/09/2025 11:00 AM").Return(nil, nil)
		appointmentRepo.On("UpdateAppointment", mock.Anything, mock.MatchedBy(func(appointment *models.Appointment) bool {
			return appointment.BookedTime == "21/09/2025 11:00 AM" &&
				appointment.Status == constvars.AppointmentStatusRescheduled
		})).Return(nil)

		publisher := new(mockNotificationPublisher)
		publisher.On("PublishBookingEvent", mock.Anything, mock.Anything).Return(nil)

		uc := NewAppointmentUsecase(appointmentRepo, new(mockPhysicianRepository), new(mockUserProvider), publisher, zap.NewNop())
		response, err := uc.UpdateAppointment(context.Background(), principal, appointmentID.Hex(), &requests.UpdateAppointment{NewTime: "21/09/2025 11:00 AM"})

		assert.NoError(t, err)
		assert.Equal(t, constvars.AppointmentStatusRescheduled, response.Status)
		assert.Equal(t, "21/09/2025 11:00 AM", response.BookedTime)
	})

	t.Run("cancel with a new time applies both", func(t *testing.T) {
		appointmentRepo := new(mockAppointmentRepository)
		appointmentRepo.On("FindByID", mock.Anything, appointmentID.Hex()).Return(storedAppointment(), nil)
		appointmentRepo.On("FindBookedSlot", mock.Anything, userID.Hex(), physicianID.Hex(), "21/09/2025 11:00 AM").Return(nil, nil)
		appointmentRepo.On("UpdateAppointment", mock.Anything, mock.MatchedBy(func(appointment *models.Appointment) bool {
			return appointment.BookedTime == "21/09/2025 11:00 AM" &&
				appointment.Status == constvars.AppointmentStatusCancelled
		})).Return(nil)

		publisher := new(mockNotificationPublisher)
		publisher.On("PublishBookingEvent", mock.Anything, mock.Anything).Return(nil)

		uc := NewAppointmentUsecase(appointmentRepo, new(mockPhysicianRepository), new(mockUserProvider), publisher, zap.NewNop())
		response, err := uc.UpdateAppointment(context.Background(), principal, appointmentID.Hex(), &requests.UpdateAppointment{
			NewTime: "21/09/2025 11:00 AM",
			Status:  constvars.AppointmentStatusCancelled,
		})

		assert.NoError(t, err)
		assert.Equal(t, constvars.AppointmentStatusCancelled, response.Status)
		assert.Equal(t, "21/09/2025 11:00 AM", response.BookedTime)
	})

	t.Run("empty update is a validation error", func(t *testing.T) {
		appointmentRepo := new(mockAppointmentRepository)
		appointmentRepo.On("FindByID", mock.Anything, appointmentID.Hex()).Return(storedAppointment(), nil)

		uc := NewAppointmentUsecase(appointmentRepo, new(mockPhysicianRepository), new(mockUserProvider), new(mockNotificationPublisher), zap.NewNop())
		_, err := uc.UpdateAppointment(context.Background(), principal, appointmentID.Hex(), &requests.UpdateAppointment{})

		customError := err.(*exceptions.CustomError)
		assert.Equal(t, http.StatusBadRequest, customError.StatusCode)
	})
}
