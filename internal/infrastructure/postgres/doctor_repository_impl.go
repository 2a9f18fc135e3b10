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

const doctorColumns = `id, name, specialization, email, phone, profile_image,
	availability, experience, description, work_start, work_end, created_at, updated_at`

type DoctorRepository struct {
	pool *pgxpool.Pool
}

func NewDoctorRepository(pool *pgxpool.Pool) *DoctorRepository {
	return &DoctorRepository{pool: pool}
}

func scanDoctor(row pgx.Row) (*entity.Doctor, error) {
	d := &entity.Doctor{}
	err := row.Scan(
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
	return d, nil
}

func collectDoctors(rows pgx.Rows) ([]entity.Doctor, error) {
	defer rows.Close()
	out := make([]entity.Doctor, 0)
	for rows.Next() {
		d, err := scanDoctor(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	return out, rows.Err()
}

func (r *DoctorRepository) Create(ctx context.Context, d *entity.Doctor) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO doctors (name, specialization, email, phone, profile_image,
			availability, experience, description, work_start, work_end)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`, d.Name, d.Specialization, d.Email, d.Phone, d.ProfileImage,
		d.Availability, d.Experience, d.Description, d.WorkStart, d.WorkEnd)

	return row.Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
}

func (r *DoctorRepository) GetByID(ctx context.Context, id string) (*entity.Doctor, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+doctorColumns+`
		FROM doctors
		WHERE id = $1
	`, id)
	return scanDoctor(row)
}

func (r *DoctorRepository) List(ctx context.Context) ([]entity.Doctor, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+doctorColumns+`
		FROM doctors
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	return collectDoctors(rows)
}

func (r *DoctorRepository) Search(ctx context.Context, query string) ([]entity.Doctor, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+doctorColumns+`
		FROM doctors
		WHERE name ILIKE '%' || $1 || '%' OR specialization ILIKE '%' || $1 || '%'
		ORDER BY name
	`, query)
	if err != nil {
		return nil, err
	}
	return collectDoctors(rows)
}

func (r *DoctorRepository) Update(ctx context.Context, d *entity.Doctor) error {
	d.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE doctors
		SET name = $1, specialization = $2, email = $3, phone = $4, profile_image = $5,
			availability = $6, experience = $7, description = $8, work_start = $9,
			work_end = $10, updated_at = $11
		WHERE id = $12
	`, d.Name, d.Specialization, d.Email, d.Phone, d.ProfileImage,
		d.Availability, d.Experience, d.Description, d.WorkStart, d.WorkEnd,
		d.UpdatedAt, d.ID)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *DoctorRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM doctors WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.DoctorRepository = (*DoctorRepository)(nil)
