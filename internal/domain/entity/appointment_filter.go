package entity

// AppointmentFilter is a domain-level filter for querying appointments.
// Used by repository layer to avoid coupling with delivery DTOs.
type AppointmentFilter struct {
	StartAt    string            // Format: YYYY-MM-DD, inclusive lower bound on start_time
	EndAt      string            // Format: YYYY-MM-DD, inclusive upper bound on start_time
	Status     AppointmentStatus // Empty matches all statuses
	DoctorName string            // Filter by doctor name (ILIKE)
}
