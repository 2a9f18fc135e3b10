package repository

import (
	"context"

	"github.com/niroggyan/healthcare-api/internal/domain/entity"
)

// AppointmentRepository defines the interface for appointment database operations.
type AppointmentRepository interface {
	Create(ctx context.Context, a *entity.Appointment) error
	GetByID(ctx context.Context, id string) (*entity.Appointment, error)
	ListByPatientEmail(ctx context.Context, email string) ([]entity.Appointment, error)
	ListByDoctor(ctx context.Context, doctorID string) ([]entity.Appointment, error)
	Update(ctx context.Context, a *entity.Appointment) error
	Delete(ctx context.Context, id string) error

	// ExistsActiveForSlot reports whether a non-cancelled appointment already
	// occupies the exact (doctor, date, time) triple.
	ExistsActiveForSlot(ctx context.Context, doctorID, date, timeOfDay string) (bool, error)
}
