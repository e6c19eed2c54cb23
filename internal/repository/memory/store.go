package memory

import (
	"sync"
	"time"

	"github.com/jwalitptl/clinic-api/internal/model"
)

// Store is the process-lifetime backing collection shared by the
// repositories in this package. Create and UpdateStatus are
// read-modify-write, so all mutation goes through the write lock.
type Store struct {
	mu sync.RWMutex

	doctors     []*model.Doctor
	doctorsByID map[int64]*model.Doctor

	appointments []*model.Appointment
	apptIndex    map[int64]int // appointment id -> position, insertion order

	lastID int64
}

func NewStore() *Store {
	return &Store{
		doctorsByID: make(map[int64]*model.Doctor),
		apptIndex:   make(map[int64]int),
	}
}

// LoadDoctors replaces the doctor reference data. Doctors are immutable
// once loaded; there is no write path for them.
func (s *Store) LoadDoctors(doctors []*model.Doctor) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.doctors = make([]*model.Doctor, 0, len(doctors))
	s.doctorsByID = make(map[int64]*model.Doctor, len(doctors))
	for _, d := range doctors {
		cp := *d
		s.doctors = append(s.doctors, &cp)
		s.doctorsByID[cp.ID] = &cp
	}
}

// LoadAppointments seeds the appointment collection, preserving the
// order given. Seeded ids are tracked so generated ids never collide.
func (s *Store) LoadAppointments(appointments []*model.Appointment) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.appointments = make([]*model.Appointment, 0, len(appointments))
	s.apptIndex = make(map[int64]int, len(appointments))
	for _, a := range appointments {
		cp := *a
		s.apptIndex[cp.ID] = len(s.appointments)
		s.appointments = append(s.appointments, &cp)
		if cp.ID > s.lastID {
			s.lastID = cp.ID
		}
	}
}

// nextID derives a unique id from the clock and bumps past the last
// issued id, so two creations in the same millisecond cannot collide.
// Callers hold the write lock.
func (s *Store) nextID() int64 {
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}
