package repository

import (
	"context"

	"github.com/niroggyan/healthcare-api/internal/domain/entity"
)

// DoctorRepository defines the interface for doctor database operations.
// Search is a case-insensitive substring match on name or specialization.
type DoctorRepository interface {
	Create(ctx context.Context, d *entity.Doctor) error
	GetByID(ctx context.Context, id string) (*entity.Doctor, error)
	List(ctx context.Context) ([]entity.Doctor, error)
	Search(ctx context.Context, query string) ([]entity.Doctor, error)
	Update(ctx context.Context, d *entity.Doctor) error
	Delete(ctx context.Context, id string) error
}
