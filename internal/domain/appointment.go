package domain

import "time"

// AppointmentStatus labels the lifecycle state of a booking. Transitions are
// unconstrained; any status may be set to any other.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Valid reports whether the status is one of the known labels.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// TimeSlots is the fixed set of bookable time labels per calendar day, in
// display order.
var TimeSlots = []string{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00", "17:00"}

// Appointment is a booked service record bound to a date/time slot and an
// owning account. Date is an ISO 8601 calendar day, Time one of TimeSlots.
type Appointment struct {
	ID        string            `json:"id"`
	UserID    string            `json:"userId"`
	Date      string            `json:"date"`
	Time      string            `json:"time"`
	Service   string            `json:"service"`
	Status    AppointmentStatus `json:"status"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt *time.Time        `json:"updatedAt,omitempty"`
}

// ClaimsSlot reports whether this appointment holds its date/time slot.
// Cancelled appointments release their slot.
func (a *Appointment) ClaimsSlot() bool {
	return a.Status != StatusCancelled
}

// Pending reports whether the appointment counts as pending. Records written
// before the status field existed have an empty status and count as pending.
func (a *Appointment) Pending() bool {
	return a.Status == "" || a.Status == StatusPending
}

// AppointmentDetail is an appointment enriched with its owner's contact data
// for admin listings. When the owning account no longer exists the name falls
// back to a placeholder and the contact fields stay empty.
type AppointmentDetail struct {
	Appointment
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
	UserPhone string `json:"userPhone"`
}

// Stats aggregates the admin dashboard counters.
type Stats struct {
	TotalUsers          int `json:"totalUsers"`
	TotalAppointments   int `json:"totalAppointments"`
	AppointmentsToday   int `json:"appointmentsToday"`
	PendingAppointments int `json:"pendingAppointments"`
}
