package auth

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/crypto/bcrypt"

	"github.com/jwalitptl/clinic-api/internal/model"
	"github.com/jwalitptl/clinic-api/internal/repository"
	"github.com/jwalitptl/clinic-api/pkg/auth"
	"github.com/jwalitptl/clinic-api/pkg/errors"
)

const (
	// Synthesized patient identities live this long, so repeated logins
	// within a session keep a stable id while staying ephemeral.
	identityTTL    = 30 * time.Minute
	identitySweep  = 10 * time.Minute
	missingLogin   = "Email and role are required"
	badCredentials = "invalid credentials"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)

type Service struct {
	doctors    repository.DoctorRepository
	jwtSvc     auth.JWTService
	identities *cache.Cache
	now        func() time.Time
}

func NewService(doctors repository.DoctorRepository, jwtSvc auth.JWTService) *Service {
	return &Service{
		doctors:    doctors,
		jwtSvc:     jwtSvc,
		identities: cache.New(identityTTL, identitySweep),
		now:        time.Now,
	}
}

// Resolve maps a login email and claimed role to a session identity.
// Doctors must exist in the roster; patients are synthesized from the
// email and never fail for well-formed input.
func (s *Service) Resolve(ctx context.Context, email, role string) (*model.User, error) {
	if email == "" || role == "" {
		return nil, errors.NewValidation(missingLogin)
	}

	switch role {
	case model.RoleDoctor:
		doctor, err := s.doctors.GetByEmail(ctx, email)
		if err != nil {
			if errors.IsNotFound(err) {
				return nil, errors.NewNotFound("doctor", err)
			}
			return nil, fmt.Errorf("failed to look up doctor: %w", err)
		}
		return &model.User{
			ID:        doctor.ID,
			Name:      doctor.Name,
			Email:     doctor.Email,
			Specialty: doctor.Specialty,
			Bio:       doctor.Bio,
			Role:      model.RoleDoctor,
		}, nil

	case model.RolePatient:
		if cached, ok := s.identities.Get(email); ok {
			user := cached.(model.User)
			return &user, nil
		}
		user := s.synthesizePatient(email)
		s.identities.SetDefault(email, *user)
		return user, nil
	}

	return nil, errors.NewInvalidRole(role)
}

// synthesizePatient derives a display name from the email local-part:
// alphanumerics only, first character upper-cased.
func (s *Service) synthesizePatient(email string) *model.User {
	local := email
	if at := strings.Index(email, "@"); at >= 0 {
		local = email[:at]
	}
	name := nonAlphanumeric.ReplaceAllString(local, "")
	if name != "" {
		name = strings.ToUpper(name[:1]) + name[1:]
	}

	return &model.User{
		ID:    s.now().UnixMilli(),
		Name:  name,
		Email: email,
		Role:  model.RolePatient,
	}
}

// Login resolves the identity, verifies the password when the doctor
// record carries a hash, and issues an access token. Seed doctors carry
// no hash, so by default any password is accepted (mock authentication).
func (s *Service) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	user, err := s.Resolve(ctx, req.Email, req.Role)
	if err != nil {
		return nil, err
	}

	if req.Role == model.RoleDoctor {
		doctor, err := s.doctors.GetByEmail(ctx, req.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to look up doctor: %w", err)
		}
		if doctor.PasswordHash != "" {
			if err := bcrypt.CompareHashAndPassword([]byte(doctor.PasswordHash), []byte(req.Password)); err != nil {
				return nil, errors.NewUnauthorized(badCredentials, err)
			}
		}
	}

	token, err := s.jwtSvc.GenerateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &model.LoginResponse{
		User:  *user,
		Token: token,
	}, nil
}
