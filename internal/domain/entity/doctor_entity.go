package entity

import "time"

// Doctor availability labels shown in listings.
const (
	AvailabilityToday       = "Available Today"
	AvailabilityFullyBooked = "Fully Booked"
	AvailabilityOnLeave     = "On Leave"
)

// Doctor is the bookable practitioner profile.
type Doctor struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Specialization string    `json:"specialization"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	ProfileImage   string    `json:"profile_image"`
	Availability   string    `json:"availability"`
	Experience     int       `json:"experience"`
	Description    string    `json:"description"`
	WorkStart      string    `json:"work_start"` // "09:00"
	WorkEnd        string    `json:"work_end"`   // "17:00"
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
