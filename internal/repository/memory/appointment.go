package memory

import (
	"context"
	"fmt"

	"github.com/jwalitptl/clinic-api/internal/model"
	"github.com/jwalitptl/clinic-api/pkg/errors"
)

type appointmentRepository struct {
	store *Store
}

func NewAppointmentRepository(store *Store) *appointmentRepository {
	return &appointmentRepository{store: store}
}

// ListByDoctor returns every appointment for the doctor in insertion
// order, all statuses included. No matches is an empty slice, not an
// error. Callers get copies; the store's slice is the only shared state.
func (r *appointmentRepository) ListByDoctor(ctx context.Context, doctorID int64) ([]*model.Appointment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	appointments := make([]*model.Appointment, 0)
	for _, a := range r.store.appointments {
		if a.DoctorID == doctorID {
			cp := *a
			appointments = append(appointments, &cp)
		}
	}
	return appointments, nil
}

// Create assigns a unique id and the Upcoming status, then appends the
// record. Field presence validation belongs to the service layer.
func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	appointment.ID = r.store.nextID()
	appointment.Status = model.AppointmentStatusUpcoming

	cp := *appointment
	r.store.apptIndex[cp.ID] = len(r.store.appointments)
	r.store.appointments = append(r.store.appointments, &cp)
	return nil
}

// UpdateStatus mutates the record in place and returns the updated copy.
// Terminal records are immutable: transitions from Completed or Cancelled
// are rejected with a conflict.
func (r *appointmentRepository) UpdateStatus(ctx context.Context, id int64, status model.AppointmentStatus) (*model.Appointment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	pos, ok := r.store.apptIndex[id]
	if !ok {
		return nil, errors.NewNotFound("appointment", fmt.Errorf("id %d", id))
	}

	appointment := r.store.appointments[pos]
	if appointment.Status.Terminal() {
		return nil, errors.NewConflict(fmt.Sprintf("appointment is already %s", appointment.Status))
	}

	appointment.Status = status
	cp := *appointment
	return &cp, nil
}
