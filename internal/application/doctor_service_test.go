package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niroggyan/healthcare-api/internal/domain/entity"
)

type recordingDoctors struct {
	stubDoctors
	created    *entity.Doctor
	listCalls  int
	searchQuery string
}

func (r *recordingDoctors) Create(ctx context.Context, d *entity.Doctor) error {
	r.created = d
	return nil
}

func (r *recordingDoctors) List(ctx context.Context) ([]entity.Doctor, error) {
	r.listCalls++
	return []entity.Doctor{}, nil
}

func (r *recordingDoctors) Search(ctx context.Context, q string) ([]entity.Doctor, error) {
	r.searchQuery = q
	return []entity.Doctor{}, nil
}

func TestDoctorCreateAppliesDefaults(t *testing.T) {
	repo := &recordingDoctors{}
	svc := NewDoctorService(repo)

	d, err := svc.Create(context.Background(), DoctorInput{Name: "Asha Rao", Specialization: "Cardiology"})
	require.NoError(t, err)
	assert.Equal(t, "https://via.placeholder.com/150", d.ProfileImage)
	assert.Equal(t, entity.AvailabilityToday, d.Availability)
	assert.Equal(t, "Experienced healthcare professional", d.Description)
	assert.Equal(t, "09:00", d.WorkStart)
	assert.Equal(t, "17:00", d.WorkEnd)
}

func TestDoctorCreateKeepsProvidedValues(t *testing.T) {
	repo := &recordingDoctors{}
	svc := NewDoctorService(repo)

	d, err := svc.Create(context.Background(), DoctorInput{
		Name:           "Asha Rao",
		Specialization: "Cardiology",
		Availability:   entity.AvailabilityOnLeave,
		WorkStart:      "08:30",
		WorkEnd:        "16:30",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.AvailabilityOnLeave, d.Availability)
	assert.Equal(t, "08:30", d.WorkStart)
	assert.Equal(t, "16:30", d.WorkEnd)
}

func TestDoctorSearchBlankFallsBackToList(t *testing.T) {
	repo := &recordingDoctors{}
	svc := NewDoctorService(repo)

	_, err := svc.Search(context.Background(), "   ")
	require.NoError(t, err)
	assert.Equal(t, 1, repo.listCalls)
	assert.Empty(t, repo.searchQuery)

	_, err = svc.Search(context.Background(), "  cardio ")
	require.NoError(t, err)
	assert.Equal(t, "cardio", repo.searchQuery)
}
