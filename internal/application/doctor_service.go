package application

import (
	"context"
	"strings"

	"github.com/niroggyan/healthcare-api/internal/domain/entity"
	"github.com/niroggyan/healthcare-api/internal/domain/repository"
)

// DoctorService is routine CRUD over the doctor catalogue.
type DoctorService struct {
	Repo repository.DoctorRepository
}

func NewDoctorService(repo repository.DoctorRepository) *DoctorService {
	return &DoctorService{Repo: repo}
}

type DoctorInput struct {
	Name           string
	Specialization string
	Email          string
	Phone          string
	ProfileImage   string
	Availability   string
	Experience     int
	Description    string
	WorkStart      string
	WorkEnd        string
}

func (s *DoctorService) Create(ctx context.Context, in DoctorInput) (*entity.Doctor, error) {
	d := &entity.Doctor{
		Name:           in.Name,
		Specialization: in.Specialization,
		Email:          in.Email,
		Phone:          in.Phone,
		ProfileImage:   in.ProfileImage,
		Availability:   in.Availability,
		Experience:     in.Experience,
		Description:    in.Description,
		WorkStart:      in.WorkStart,
		WorkEnd:        in.WorkEnd,
	}
	if d.ProfileImage == "" {
		d.ProfileImage = "https://via.placeholder.com/150"
	}
	if d.Availability == "" {
		d.Availability = entity.AvailabilityToday
	}
	if d.Description == "" {
		d.Description = "Experienced healthcare professional"
	}
	if d.WorkStart == "" {
		d.WorkStart = "09:00"
	}
	if d.WorkEnd == "" {
		d.WorkEnd = "17:00"
	}
	if err := s.Repo.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *DoctorService) Get(ctx context.Context, id string) (*entity.Doctor, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DoctorService) List(ctx context.Context) ([]entity.Doctor, error) {
	return s.Repo.List(ctx)
}

// Search matches name or specialization, case-insensitive substring.
func (s *DoctorService) Search(ctx context.Context, query string) ([]entity.Doctor, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.Repo.List(ctx)
	}
	return s.Repo.Search(ctx, query)
}

func (s *DoctorService) Update(ctx context.Context, id string, in DoctorInput) (*entity.Doctor, error) {
	d, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != "" {
		d.Name = in.Name
	}
	if in.Specialization != "" {
		d.Specialization = in.Specialization
	}
	if in.Email != "" {
		d.Email = in.Email
	}
	if in.Phone != "" {
		d.Phone = in.Phone
	}
	if in.ProfileImage != "" {
		d.ProfileImage = in.ProfileImage
	}
	if in.Availability != "" {
		d.Availability = in.Availability
	}
	if in.Experience != 0 {
		d.Experience = in.Experience
	}
	if in.Description != "" {
		d.Description = in.Description
	}
	if in.WorkStart != "" {
		d.WorkStart = in.WorkStart
	}
	if in.WorkEnd != "" {
		d.WorkEnd = in.WorkEnd
	}
	if err := s.Repo.Update(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *DoctorService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
