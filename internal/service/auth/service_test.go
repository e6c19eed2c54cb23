package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/clinic-api/internal/model"
	"github.com/jwalitptl/clinic-api/internal/repository/memory"
	"github.com/jwalitptl/clinic-api/pkg/auth"
	"github.com/jwalitptl/clinic-api/pkg/errors"
)

func newService() *Service {
	store := memory.NewSeededStore()
	jwtSvc := auth.NewJWTService("test-secret", time.Hour)
	return NewService(memory.NewDoctorRepository(store), jwtSvc)
}

func TestResolveDoctor(t *testing.T) {
	svc := newService()

	user, err := svc.Resolve(context.Background(), "aisha@clinic.com", model.RoleDoctor)
	require.NoError(t, err)

	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "Dr. Aisha Patel", user.Name)
	assert.Equal(t, "Cardiologist", user.Specialty)
	assert.Equal(t, model.RoleDoctor, user.Role)
}

func TestResolveUnknownDoctor(t *testing.T) {
	svc := newService()

	_, err := svc.Resolve(context.Background(), "unknown@x.com", model.RoleDoctor)
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestResolvePatientSynthesizesIdentity(t *testing.T) {
	svc := newService()

	user, err := svc.Resolve(context.Background(), "john.doe@x.com", model.RolePatient)
	require.NoError(t, err)

	assert.Equal(t, "Johndoe", user.Name, "local-part stripped to alphanumerics, first letter capitalized")
	assert.Equal(t, "john.doe@x.com", user.Email)
	assert.Equal(t, model.RolePatient, user.Role)
	assert.NotZero(t, user.ID)
}

func TestResolvePatientIdentityStableWithinSession(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	first, err := svc.Resolve(ctx, "mary@x.com", model.RolePatient)
	require.NoError(t, err)
	second, err := svc.Resolve(ctx, "mary@x.com", model.RolePatient)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "repeated logins reuse the cached identity")
}

func TestResolveValidation(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.Resolve(ctx, "", model.RolePatient)
	assert.True(t, errors.IsValidation(err))

	_, err = svc.Resolve(ctx, "a@b.com", "")
	assert.True(t, errors.IsValidation(err))

	_, err = svc.Resolve(ctx, "a@b.com", "admin")
	assert.True(t, errors.IsCode(err, errors.ErrInvalidRole))
}

func TestLoginIssuesToken(t *testing.T) {
	svc := newService()

	resp, err := svc.Login(context.Background(), &model.LoginRequest{
		Email:    "chloe@clinic.com",
		Password: "anything",
		Role:     model.RoleDoctor,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(3), resp.ID)
	assert.Equal(t, model.RoleDoctor, resp.Role)
	require.NotEmpty(t, resp.Token)

	jwtSvc := auth.NewJWTService("test-secret", time.Hour)
	claims, err := jwtSvc.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(3), claims.UserID)
	assert.Equal(t, model.RoleDoctor, claims.Role)
}

func TestLoginUnknownDoctorFails(t *testing.T) {
	svc := newService()

	_, err := svc.Login(context.Background(), &model.LoginRequest{
		Email: "ghost@clinic.com",
		Role:  model.RoleDoctor,
	})
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}
