package entity

import "time"

// Appointment statuses. Only non-cancelled appointments occupy a slot.
const (
	StatusScheduled = "Scheduled"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

// Appointment is a booked calendar slot for a doctor.
// Date and Time are stored as the client supplied them ("2024-06-01", "10:00");
// slot equality is exact-match on these strings.
type Appointment struct {
	ID              string    `json:"id"`
	DoctorID        string    `json:"doctor_id"`
	PatientName     string    `json:"patient_name"`
	PatientEmail    string    `json:"patient_email"`
	AppointmentDate string    `json:"appointment_date"`
	AppointmentTime string    `json:"appointment_time"`
	Reason          string    `json:"reason"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	// Doctor is attached on reads that join the doctor row; nil otherwise.
	Doctor *Doctor `json:"doctor,omitempty"`
}
