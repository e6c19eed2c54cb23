package memory

import (
	"context"
	"fmt"

	"github.com/jwalitptl/clinic-api/internal/model"
	"github.com/jwalitptl/clinic-api/pkg/errors"
)

type doctorRepository struct {
	store *Store
}

func NewDoctorRepository(store *Store) *doctorRepository {
	return &doctorRepository{store: store}
}

func (r *doctorRepository) List(ctx context.Context) ([]*model.Doctor, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	doctors := make([]*model.Doctor, 0, len(r.store.doctors))
	for _, d := range r.store.doctors {
		cp := *d
		doctors = append(doctors, &cp)
	}
	return doctors, nil
}

func (r *doctorRepository) Get(ctx context.Context, id int64) (*model.Doctor, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	d, ok := r.store.doctorsByID[id]
	if !ok {
		return nil, errors.NewNotFound("doctor", fmt.Errorf("id %d", id))
	}
	cp := *d
	return &cp, nil
}

func (r *doctorRepository) GetByEmail(ctx context.Context, email string) (*model.Doctor, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, d := range r.store.doctors {
		if d.Email == email {
			cp := *d
			return &cp, nil
		}
	}
	return nil, errors.NewNotFound("doctor", fmt.Errorf("email %s", email))
}
