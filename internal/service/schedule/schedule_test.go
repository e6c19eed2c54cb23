package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/clinic-api/internal/model"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func appt(id int64, date string, status model.AppointmentStatus) *model.Appointment {
	return &model.Appointment{
		ID:       id,
		DoctorID: 1,
		Date:     date,
		Status:   status,
	}
}

func TestGroupUpcomingByDate(t *testing.T) {
	appointments := []*model.Appointment{
		appt(1, "2025-07-29", model.AppointmentStatusUpcoming),
		appt(2, "2025-07-29", model.AppointmentStatusUpcoming),
		appt(3, "2025-07-30", model.AppointmentStatusUpcoming),
		appt(4, "2025-07-29", model.AppointmentStatusCompleted),
		appt(5, "2025-07-22", model.AppointmentStatusCancelled),
	}

	groups := GroupUpcomingByDate(appointments)

	require.Len(t, groups, 2)
	require.Len(t, groups["2025-07-29"], 2)
	assert.Equal(t, int64(1), groups["2025-07-29"][0].ID, "group must preserve input order")
	assert.Equal(t, int64(2), groups["2025-07-29"][1].ID)
	require.Len(t, groups["2025-07-30"], 1)
}

func TestGroupAndHistoryPartitionTheSet(t *testing.T) {
	appointments := []*model.Appointment{
		appt(1, "2025-07-29", model.AppointmentStatusUpcoming),
		appt(2, "2025-07-30", model.AppointmentStatusUpcoming),
		appt(3, "2025-07-28", model.AppointmentStatusCompleted),
		appt(4, "2025-07-22", model.AppointmentStatusCancelled),
		appt(5, "2025-08-05", model.AppointmentStatusUpcoming),
	}

	groups := GroupUpcomingByDate(appointments)
	history := History(appointments)

	seen := make(map[int64]int)
	for _, group := range groups {
		for _, a := range group {
			seen[a.ID]++
		}
	}
	for _, a := range history {
		seen[a.ID]++
	}

	require.Len(t, seen, len(appointments), "every appointment appears in a view")
	for id, count := range seen {
		assert.Equal(t, 1, count, "appointment %d must appear exactly once", id)
	}
}

func TestSortedDateKeys(t *testing.T) {
	groups := map[string][]*model.Appointment{
		"2025-08-05": nil,
		"2025-07-30": nil,
		"2025-12-01": nil,
		"2025-07-29": nil,
	}

	keys := SortedDateKeys(groups)

	assert.Equal(t, []string{"2025-07-29", "2025-07-30", "2025-08-05", "2025-12-01"}, keys)
}

func TestSortedDateKeysNonPaddedDates(t *testing.T) {
	// "2025-7-9" must sort by calendar date, where a string comparison
	// would put it after "2025-10-01".
	groups := map[string][]*model.Appointment{
		"2025-10-01": nil,
		"2025-7-9":   nil,
	}

	keys := SortedDateKeys(groups)

	assert.Equal(t, []string{"2025-7-9", "2025-10-01"}, keys)
}

func TestHistorySortedDescendingAndStable(t *testing.T) {
	appointments := []*model.Appointment{
		appt(1, "2025-07-22", model.AppointmentStatusCancelled),
		appt(2, "2025-07-28", model.AppointmentStatusCompleted),
		appt(3, "2025-07-22", model.AppointmentStatusCompleted),
		appt(4, "2025-07-30", model.AppointmentStatusUpcoming),
	}

	history := History(appointments)

	require.Len(t, history, 3)
	assert.Equal(t, int64(2), history[0].ID)
	assert.Equal(t, int64(1), history[1].ID, "equal dates keep input order")
	assert.Equal(t, int64(3), history[2].ID)
}

func TestDateHeading(t *testing.T) {
	today := mustDate(t, "2025-07-29")

	tests := []struct {
		date string
		want string
	}{
		{"2025-07-29", "Today"},
		{"2025-07-30", "Tomorrow"},
		{"2025-08-05", "Tuesday, August 5"},
		{"2025-07-28", "Monday, July 28"},
		{"not-a-date", "not-a-date"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DateHeading(tt.date, today), "date %s", tt.date)
	}
}

func TestDateHeadingAcrossMonthBoundary(t *testing.T) {
	today := mustDate(t, "2025-07-31")
	assert.Equal(t, "Tomorrow", DateHeading("2025-08-01", today))
}

func TestCounters(t *testing.T) {
	today := mustDate(t, "2025-07-29")
	appointments := []*model.Appointment{
		appt(1, "2025-07-29", model.AppointmentStatusUpcoming),
		appt(2, "2025-07-29", model.AppointmentStatusUpcoming),
		appt(3, "2025-07-29", model.AppointmentStatusCompleted),
		appt(4, "2025-08-05", model.AppointmentStatusUpcoming),
	}

	assert.Equal(t, 2, CountToday(appointments, today), "terminal records do not count toward today")
	assert.Equal(t, 3, CountUpcoming(appointments), "upcoming count ignores the date entirely")
}
