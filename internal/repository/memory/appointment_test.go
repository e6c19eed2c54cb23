package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/clinic-api/internal/model"
	"github.com/jwalitptl/clinic-api/pkg/errors"
)

func TestListByDoctorFiltersAndKeepsOrder(t *testing.T) {
	repo := NewAppointmentRepository(NewSeededStore())

	appointments, err := repo.ListByDoctor(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, appointments, 5)
	for _, a := range appointments {
		assert.Equal(t, int64(1), a.DoctorID)
	}
	// Insertion order: seeded upcoming first, then the history records.
	assert.Equal(t, int64(1001), appointments[0].ID)
	assert.Equal(t, int64(2003), appointments[4].ID)
}

func TestListByDoctorNoMatchesIsEmptyNotNil(t *testing.T) {
	repo := NewAppointmentRepository(NewSeededStore())

	appointments, err := repo.ListByDoctor(context.Background(), 42)
	require.NoError(t, err)
	assert.NotNil(t, appointments)
	assert.Empty(t, appointments)
}

func TestCreateAssignsUniqueIDsAndUpcomingStatus(t *testing.T) {
	repo := NewAppointmentRepository(NewSeededStore())

	seen := make(map[int64]bool)
	for i := 0; i < 100; i++ {
		a := &model.Appointment{
			DoctorID:    2,
			PatientName: "Test Patient",
			Date:        "2025-08-01",
			Time:        "09:00 AM",
			Reason:      "Checkup",
		}
		require.NoError(t, repo.Create(context.Background(), a))
		assert.Equal(t, model.AppointmentStatusUpcoming, a.Status)
		assert.False(t, seen[a.ID], "id %d issued twice", a.ID)
		seen[a.ID] = true
	}
}

func TestUpdateStatusMutatesInPlace(t *testing.T) {
	repo := NewAppointmentRepository(NewSeededStore())

	updated, err := repo.UpdateStatus(context.Background(), 1001, model.AppointmentStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentStatusCompleted, updated.Status)

	appointments, err := repo.ListByDoctor(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentStatusCompleted, appointments[0].Status)
	assert.Len(t, appointments, 5, "update must not add or remove records")
}

func TestUpdateStatusUnknownID(t *testing.T) {
	repo := NewAppointmentRepository(NewSeededStore())

	_, err := repo.UpdateStatus(context.Background(), 999999, model.AppointmentStatusCompleted)
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestUpdateStatusTerminalRecordConflicts(t *testing.T) {
	repo := NewAppointmentRepository(NewSeededStore())

	// 2001 is seeded Completed; history is immutable.
	_, err := repo.UpdateStatus(context.Background(), 2001, model.AppointmentStatusCancelled)
	require.Error(t, err)
	assert.True(t, errors.IsConflict(err))

	appointments, err := repo.ListByDoctor(context.Background(), 1)
	require.NoError(t, err)
	for _, a := range appointments {
		if a.ID == 2001 {
			assert.Equal(t, model.AppointmentStatusCompleted, a.Status)
		}
	}
}

func TestReturnedRecordsAreCopies(t *testing.T) {
	repo := NewAppointmentRepository(NewSeededStore())

	first, err := repo.ListByDoctor(context.Background(), 1)
	require.NoError(t, err)
	first[0].Status = model.AppointmentStatusCancelled

	second, err := repo.ListByDoctor(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentStatusUpcoming, second[0].Status, "callers must not reach store state")
}
