package repository

import (
	"context"

	"github.com/jwalitptl/clinic-api/internal/model"
)

type (
	DoctorRepository interface {
		List(ctx context.Context) ([]*model.Doctor, error)
		Get(ctx context.Context, id int64) (*model.Doctor, error)
		GetByEmail(ctx context.Context, email string) (*model.Doctor, error)
	}

	AppointmentRepository interface {
		ListByDoctor(ctx context.Context, doctorID int64) ([]*model.Appointment, error)
		Create(ctx context.Context, appointment *model.Appointment) error
		UpdateStatus(ctx context.Context, id int64, status model.AppointmentStatus) (*model.Appointment, error)
	}
)
