package dto

// AppointmentCreateRequest payload for bookings.
type AppointmentCreateRequest struct {
	Date    string `json:"date"`
	Time    string `json:"time"`
	Service string `json:"service"`
}

// StatusUpdateRequest payload for admin status changes.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}
