package application

import (
	"context"

	"github.com/niroggyan/healthcare-api/internal/domain/repository"
)

// SlotKey identifies one bookable calendar slot. Equality is exact-match on
// the stored date/time strings; 10:00 and 10:01 are different slots.
type SlotKey struct {
	DoctorID string
	Date     string
	Time     string
}

func (k SlotKey) String() string {
	return k.DoctorID + ":" + k.Date + ":" + k.Time
}

// SlotGuard answers whether a slot is already occupied by a non-cancelled
// appointment. The read is a point-in-time observation, not a lock: without
// external arbitration the caller's subsequent write races with concurrent
// admissions for the same key.
type SlotGuard struct {
	Repo repository.AppointmentRepository
}

func NewSlotGuard(repo repository.AppointmentRepository) *SlotGuard {
	return &SlotGuard{Repo: repo}
}

func (g *SlotGuard) IsOccupied(ctx context.Context, key SlotKey) (bool, error) {
	return g.Repo.ExistsActiveForSlot(ctx, key.DoctorID, key.Date, key.Time)
}
