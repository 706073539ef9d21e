package events

import (
	"time"

	"github.com/spec-kit/pharmacy-booking/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventAppointmentBooked        EventType = "appointment_booked"
	EventAppointmentStatusChanged EventType = "appointment_status_changed"
	EventAppointmentCancelled     EventType = "appointment_cancelled"
)

// Event represents a domain event emitted by the ledger.
type Event struct {
	ID            string      `json:"id"`
	Type          EventType   `json:"type"`
	AppointmentID string      `json:"appointment_id"`
	OwnerID       string      `json:"owner_id"`
	Timestamp     time.Time   `json:"timestamp"`
	Payload       interface{} `json:"payload"`
}

// AppointmentBookedPayload payload.
type AppointmentBookedPayload struct {
	Date    string `json:"date"`
	Time    string `json:"time"`
	Service string `json:"service"`
}

// StatusChangedPayload payload.
type StatusChangedPayload struct {
	OldStatus domain.AppointmentStatus `json:"old_status"`
	NewStatus domain.AppointmentStatus `json:"new_status"`
}
