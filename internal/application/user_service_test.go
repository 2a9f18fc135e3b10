package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niroggyan/healthcare-api/internal/domain/entity"
	"github.com/niroggyan/healthcare-api/internal/domain/repository"
	"github.com/niroggyan/healthcare-api/pkg/helpers"
)

type memUsers struct {
	byEmail map[string]*entity.User
}

func newMemUsers() *memUsers {
	return &memUsers{byEmail: map[string]*entity.User{}}
}

func (m *memUsers) Create(ctx context.Context, u *entity.User) error {
	u.ID = "user-" + u.Email
	m.byEmail[u.Email] = u
	return nil
}

func (m *memUsers) GetByID(ctx context.Context, id string) (*entity.User, error) {
	for _, u := range m.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memUsers) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	if u, ok := m.byEmail[email]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

func newUserSvc() (*UserService, *memUsers) {
	repo := newMemUsers()
	jwt := helpers.NewJWTManager("access-secret", "refresh-secret", time.Hour, 24*time.Hour)
	return NewUserService(repo, jwt, nil, nil), repo
}

func TestRegisterHashesPassword(t *testing.T) {
	svc, repo := newUserSvc()

	u, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Jane Doe",
		Email:    "jane@corp.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotEqual(t, "password123", u.Password)
	assert.True(t, helpers.CompareHashAndPassword(u.Password, "password123"))
	assert.Contains(t, repo.byEmail, "jane@corp.com")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newUserSvc()

	_, err := svc.Register(context.Background(), RegisterInput{Name: "Jane", Email: "jane@corp.com", Password: "password123"})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), RegisterInput{Name: "Other", Email: "jane@corp.com", Password: "different1"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthenticate(t *testing.T) {
	svc, _ := newUserSvc()
	_, err := svc.Register(context.Background(), RegisterInput{Name: "Jane", Email: "jane@corp.com", Password: "password123"})
	require.NoError(t, err)

	u, err := svc.Authenticate(context.Background(), "jane@corp.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "jane@corp.com", u.Email)

	_, err = svc.Authenticate(context.Background(), "jane@corp.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(context.Background(), "nobody@corp.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginIssuesTokenPair(t *testing.T) {
	svc, _ := newUserSvc()
	_, err := svc.Register(context.Background(), RegisterInput{Name: "Jane", Email: "jane@corp.com", Password: "password123"})
	require.NoError(t, err)

	res, pair, err := svc.Login(context.Background(), "jane@corp.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "jane@corp.com", res.Email)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.True(t, pair.AccessTokenExpiry.After(time.Now()))

	claims, err := svc.JWT.ParseAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, res.UserID, claims.UserID)
	assert.Equal(t, "jane@corp.com", claims.Email)
}

func TestRefreshRejectsGarbageToken(t *testing.T) {
	svc, _ := newUserSvc()
	_, _, err := svc.Refresh(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
