package appointment

import (
	"context"
	"fmt"

	"github.com/jwalitptl/clinic-api/internal/model"
	"github.com/jwalitptl/clinic-api/internal/repository"
	"github.com/jwalitptl/clinic-api/pkg/errors"
	"github.com/jwalitptl/clinic-api/pkg/metrics"
)

type Service struct {
	repo    repository.AppointmentRepository
	doctors repository.DoctorRepository
	metrics *metrics.Metrics
}

func NewService(repo repository.AppointmentRepository, doctors repository.DoctorRepository, m *metrics.Metrics) *Service {
	return &Service{
		repo:    repo,
		doctors: doctors,
		metrics: m,
	}
}

func (s *Service) ListByDoctor(ctx context.Context, doctorID int64) ([]*model.Appointment, error) {
	appointments, err := s.repo.ListByDoctor(ctx, doctorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}

// Create validates the booking request and appends the appointment. The
// store is only touched once every field is present and the doctor
// exists, so a rejected booking leaves it untouched.
func (s *Service) Create(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	if req.DoctorID == 0 || req.PatientName == "" || req.Date == "" || req.Time == "" || req.Reason == "" {
		return nil, errors.NewValidation("Missing required fields for appointment booking.")
	}

	if _, err := s.doctors.Get(ctx, req.DoctorID); err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NewValidation(fmt.Sprintf("doctor %d does not exist", req.DoctorID))
		}
		return nil, fmt.Errorf("failed to look up doctor: %w", err)
	}

	appointment := &model.Appointment{
		DoctorID:    req.DoctorID,
		PatientName: req.PatientName,
		Date:        req.Date,
		Time:        req.Time,
		Reason:      req.Reason,
	}
	if err := s.repo.Create(ctx, appointment); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	if s.metrics != nil {
		s.metrics.AppointmentsCreated.Inc()
		s.metrics.StoreOperations.WithLabelValues("create", "success").Inc()
	}
	return appointment, nil
}

// UpdateStatus is the status-transition gateway. Only the two terminal
// statuses are accepted; the store rejects transitions off records that
// are already terminal. The returned error is the caller's single signal
// for rolling back an optimistic update.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status model.AppointmentStatus) (*model.Appointment, error) {
	if !status.Terminal() {
		return nil, errors.NewValidation(fmt.Sprintf("status must be %s or %s",
			model.AppointmentStatusCompleted, model.AppointmentStatusCancelled))
	}

	appointment, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		if s.metrics != nil {
			s.metrics.StoreOperations.WithLabelValues("update_status", "error").Inc()
		}
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.StoreOperations.WithLabelValues("update_status", "success").Inc()
		s.metrics.StatusTransitions.WithLabelValues(string(status)).Inc()
	}
	return appointment, nil
}
