package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/course-booking-api/internal/models"
	appErrors "github.com/noah-isme/course-booking-api/pkg/errors"
)

func newTestUserService(repo *mockUserRepo) *UserService {
	svc := NewUserService(repo, validator.New(), zap.NewNop())
	svc.now = func() time.Time { return fakeNow }
	return svc
}

func validSignup() CreateUserRequest {
	return CreateUserRequest{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john@example.com",
		Birthdate: "1990-01-01",
	}
}

func TestUserServiceCreate(t *testing.T) {
	repo := newMockUserRepo()
	svc := newTestUserService(repo)

	user, err := svc.Create(context.Background(), validSignup())
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "1990-01-01", user.Birthdate.String())
	assert.Len(t, repo.items, 1)
}

func TestUserServiceCreateValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*CreateUserRequest)
		want   *appErrors.Error
	}{
		{"missing first name", func(r *CreateUserRequest) { r.FirstName = "" }, appErrors.ErrMissingFields},
		{"missing birthdate", func(r *CreateUserRequest) { r.Birthdate = "" }, appErrors.ErrMissingFields},
		{"impossible date", func(r *CreateUserRequest) { r.Birthdate = "1990-02-30" }, appErrors.ErrInvalidBirthdate},
		{"garbage date", func(r *CreateUserRequest) { r.Birthdate = "yesterday" }, appErrors.ErrInvalidBirthdate},
		{"underage", func(r *CreateUserRequest) { r.Birthdate = "2010-05-05" }, appErrors.ErrUnderage},
		{"eighteen tomorrow", func(r *CreateUserRequest) { r.Birthdate = "2006-06-19" }, appErrors.ErrUnderage},
		{"bad email", func(r *CreateUserRequest) { r.Email = "john.example.com" }, appErrors.ErrInvalidEmail},
		{"email without tld", func(r *CreateUserRequest) { r.Email = "john@example" }, appErrors.ErrInvalidEmail},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newMockUserRepo()
			svc := newTestUserService(repo)
			req := validSignup()
			tc.mutate(&req)

			_, err := svc.Create(context.Background(), req)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
			assert.Empty(t, repo.items)
		})
	}
}

func TestUserServiceCreateEighteenToday(t *testing.T) {
	svc := newTestUserService(newMockUserRepo())
	req := validSignup()
	req.Birthdate = "2006-06-18"

	_, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
}

func TestUserServiceCreateStoreFailure(t *testing.T) {
	repo := newMockUserRepo()
	repo.err = errors.New("connection reset")
	svc := newTestUserService(repo)

	_, err := svc.Create(context.Background(), validSignup())
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrInternal.Code, appErr.Code)
	assert.Equal(t, "Internal server error", appErr.Message)
}

func TestUserServiceGetNotFound(t *testing.T) {
	svc := newTestUserService(newMockUserRepo())

	_, err := svc.Get(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
	assert.Equal(t, "User not found", appErrors.FromError(err).Message)
}

func TestUserServiceGetByEmail(t *testing.T) {
	repo := newMockUserRepo(models.User{ID: 3, FirstName: "Ana", Email: "ana@example.com"})
	svc := newTestUserService(repo)

	user, err := svc.GetByEmail(context.Background(), "ANA@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(3), user.ID)

	_, err = svc.GetByEmail(context.Background(), "nobody@example.com")
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))

	_, err = svc.GetByEmail(context.Background(), "not-an-email")
	assert.True(t, errors.Is(err, appErrors.ErrInvalidEmail))
}

func TestUserServiceUpdate(t *testing.T) {
	repo := newMockUserRepo(models.User{ID: 1, FirstName: "John", LastName: "Doe", Email: "john@example.com", Birthdate: models.NewDate(1990, 1, 1)})
	svc := newTestUserService(repo)

	user, err := svc.Update(context.Background(), 1, UpdateUserRequest{
		FirstName: "Johnny",
		LastName:  "Doe",
		Birthdate: "1991-02-03",
	})
	require.NoError(t, err)
	assert.Equal(t, "Johnny", user.FirstName)
	assert.Equal(t, "john@example.com", user.Email)
	assert.Equal(t, "1991-02-03", repo.items[1].Birthdate.String())

	_, err = svc.Update(context.Background(), 1, UpdateUserRequest{FirstName: "J", LastName: "D", Birthdate: "1991-02-03", Email: "broken"})
	assert.True(t, errors.Is(err, appErrors.ErrInvalidEmail))

	_, err = svc.Update(context.Background(), 99, UpdateUserRequest{FirstName: "J", LastName: "D", Birthdate: "1991-02-03"})
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
}

func TestUserServiceUpdateSkipsAgeRule(t *testing.T) {
	repo := newMockUserRepo(models.User{ID: 1, FirstName: "John", LastName: "Doe", Email: "john@example.com", Birthdate: models.NewDate(1990, 1, 1)})
	svc := newTestUserService(repo)

	user, err := svc.Update(context.Background(), 1, UpdateUserRequest{FirstName: "John", LastName: "Doe", Birthdate: "2010-05-05"})
	require.NoError(t, err)
	assert.Equal(t, "2010-05-05", user.Birthdate.String())

	_, err = svc.Update(context.Background(), 1, UpdateUserRequest{FirstName: "John", LastName: "Doe", Birthdate: "2010-02-30"})
	assert.True(t, errors.Is(err, appErrors.ErrInvalidBirthdate))
	assert.Equal(t, "2010-05-05", repo.items[1].Birthdate.String())
}

func TestUserServiceDeleteThenGet(t *testing.T) {
	repo := newMockUserRepo(models.User{ID: 1, FirstName: "John"})
	svc := newTestUserService(repo)

	require.NoError(t, svc.Delete(context.Background(), 1))
	_, err := svc.Get(context.Background(), 1)
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))

	err = svc.Delete(context.Background(), 1)
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
}

func TestUserServiceListEmpty(t *testing.T) {
	svc := newTestUserService(newMockUserRepo())

	users, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}
