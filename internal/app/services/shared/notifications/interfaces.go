package notifications

import "context"

// BookingEvent is published whenever an appointment changes state so
// downstream consumers can notify the patient.
type BookingEvent struct {
	AppointmentID string `json:"appointmentId"`
	UserID        string `json:"userId"`
	PhysicianID   string `json:"physicianId"`
	BookedTime    string `json:"bookedTime"`
	Status        string `json:"status"`
}

type NotificationPublisher interface {
	PublishBookingEvent(ctx context.Context, event *BookingEvent) error
}
