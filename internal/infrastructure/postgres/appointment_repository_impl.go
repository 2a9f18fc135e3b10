package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/niroggyan/healthcare-api/internal/domain/entity"
	"github.com/niroggyan/healthcare-api/internal/domain/repository"
)

const appointmentJoin = `
	SELECT a.id, a.doctor_id, a.patient_name, a.patient_email,
		a.appointment_date, a.appointment_time, a.reason, a.status,
		a.created_at, a.updated_at,
		d.id, d.name, d.specialization, d.email, d.phone, d.profile_image,
		d.availability, d.experience, d.description, d.work_start, d.work_end,
		d.created_at, d.updated_at
	FROM appointments a
	JOIN doctors d ON d.id = a.doctor_id`

type AppointmentRepository struct {
	pool *pgxpool.Pool
}

func NewAppointmentRepository(pool *pgxpool.Pool) *AppointmentRepository {
	return &AppointmentRepository{pool: pool}
}

func scanAppointmentWithDoctor(row pgx.Row) (*entity.Appointment, error) {
	a := &entity.Appointment{Doctor: &entity.Doctor{}}
	d := a.Doctor
	err := row.Scan(
		&a.ID, &a.DoctorID, &a.PatientName, &a.PatientEmail,
		&a.AppointmentDate, &a.AppointmentTime, &a.Reason, &a.Status,
		&a.CreatedAt, &a.UpdatedAt,
		&d.ID, &d.Name, &d.Specialization, &d.Email, &d.Phone, &d.ProfileImage,
		&d.Availability, &d.Experience, &d.Description, &d.WorkStart, &d.WorkEnd,
		&d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func collectAppointments(rows pgx.Rows) ([]entity.Appointment, error) {
	defer rows.Close()
	out := make([]entity.Appointment, 0)
	for rows.Next() {
		a, err := scanAppointmentWithDoctor(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

func (r *AppointmentRepository) Create(ctx context.Context, a *entity.Appointment) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO appointments (doctor_id, patient_name, patient_email,
			appointment_date, appointment_time, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`, a.DoctorID, a.PatientName, a.PatientEmail,
		a.AppointmentDate, a.AppointmentTime, a.Reason, a.Status)

	return row.Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

func (r *AppointmentRepository) GetByID(ctx context.Context, id string) (*entity.Appointment, error) {
	row := r.pool.QueryRow(ctx, appointmentJoin+` WHERE a.id = $1`, id)
	return scanAppointmentWithDoctor(row)
}

func (r *AppointmentRepository) ListByPatientEmail(ctx context.Context, email string) ([]entity.Appointment, error) {
	rows, err := r.pool.Query(ctx, appointmentJoin+`
		WHERE a.patient_email = $1
		ORDER BY a.appointment_date, a.appointment_time
	`, email)
	if err != nil {
		return nil, err
	}
	return collectAppointments(rows)
}

func (r *AppointmentRepository) ListByDoctor(ctx context.Context, doctorID string) ([]entity.Appointment, error) {
	rows, err := r.pool.Query(ctx, appointmentJoin+`
		WHERE a.doctor_id = $1
		ORDER BY a.appointment_date, a.appointment_time
	`, doctorID)
	if err != nil {
		return nil, err
	}
	return collectAppointments(rows)
}

func (r *AppointmentRepository) Update(ctx context.Context, a *entity.Appointment) error {
	a.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE appointments
		SET patient_name = $1, appointment_date = $2, appointment_time = $3,
			reason = $4, status = $5, updated_at = $6
		WHERE id = $7
	`, a.PatientName, a.AppointmentDate, a.AppointmentTime,
		a.Reason, a.Status, a.UpdatedAt, a.ID)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *AppointmentRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// ExistsActiveForSlot is a point-in-time read; it takes no lock, so the
// subsequent insert is not atomic with this check.
func (r *AppointmentRepository) ExistsActiveForSlot(ctx context.Context, doctorID, date, timeOfDay string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM appointments
			WHERE doctor_id = $1
				AND appointment_date = $2
				AND appointment_time = $3
				AND status <> $4
		)
	`, doctorID, date, timeOfDay, entity.StatusCancelled).Scan(&exists)
	return exists, err
}

var _ repository.AppointmentRepository = (*AppointmentRepository)(nil)
