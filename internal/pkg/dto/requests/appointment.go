package requests

type BookAppointment struct {
	PhysicianID string `json:"physicianId" validate:"required"`
	BookedTime  string `json:"bookedTime" validate:"required,booked_time"`
}

// UpdateAppointment reschedules when NewTime is present, the cancel
// branch only looks at Status.
type UpdateAppointment struct {
	NewTime string `json:"newTime" validate:"omitempty,booked_time"`
	Status  string `json:"status" validate:"omitempty,oneof=booked cancelled rescheduled"`
}
