package schedule

import (
	"sort"
	"time"

	"github.com/jwalitptl/clinic-api/internal/model"
)

const dateLayout = "2006-01-02"

// dateLayouts accepted when comparing group keys. Seed data is always
// zero-padded but keys sort on parsed dates, not strings, so a
// non-padded date still lands in the right place.
var dateLayouts = []string{dateLayout, "2006-1-2"}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// GroupUpcomingByDate buckets the Upcoming appointments by their exact
// date string, preserving input order within each bucket.
func GroupUpcomingByDate(appointments []*model.Appointment) map[string][]*model.Appointment {
	groups := make(map[string][]*model.Appointment)
	for _, a := range appointments {
		if a.Status != model.AppointmentStatusUpcoming {
			continue
		}
		groups[a.Date] = append(groups[a.Date], a)
	}
	return groups
}

// SortedDateKeys returns the group keys in ascending calendar order.
// Unparseable keys sort after everything else.
func SortedDateKeys(groups map[string][]*model.Appointment) []string {
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}

	sort.SliceStable(keys, func(i, j int) bool {
		ti, iok := parseDate(keys[i])
		tj, jok := parseDate(keys[j])
		if iok != jok {
			return iok
		}
		if !iok {
			return keys[i] < keys[j]
		}
		return ti.Before(tj)
	})
	return keys
}

// History returns the Completed and Cancelled appointments, most recent
// date first. The sort is stable so same-day records keep input order.
func History(appointments []*model.Appointment) []*model.Appointment {
	history := make([]*model.Appointment, 0)
	for _, a := range appointments {
		if a.Status.Terminal() {
			history = append(history, a)
		}
	}

	sort.SliceStable(history, func(i, j int) bool {
		ti, iok := parseDate(history[i].Date)
		tj, jok := parseDate(history[j].Date)
		if iok != jok {
			return iok
		}
		if !iok {
			return false
		}
		return ti.After(tj)
	})
	return history
}

// DateHeading renders a date for display: "Today", "Tomorrow", or a
// long-form weekday label. The reference day is an explicit parameter so
// callers and tests control the clock.
func DateHeading(date string, today time.Time) string {
	t, ok := parseDate(date)
	if !ok {
		return date
	}

	switch t.Format(dateLayout) {
	case today.Format(dateLayout):
		return "Today"
	case today.AddDate(0, 0, 1).Format(dateLayout):
		return "Tomorrow"
	}
	return t.Format("Monday, January 2")
}

// CountToday counts the Upcoming appointments on the reference day.
func CountToday(appointments []*model.Appointment, today time.Time) int {
	key := today.Format(dateLayout)
	count := 0
	for _, a := range appointments {
		if a.Status == model.AppointmentStatusUpcoming && a.Date == key {
			count++
		}
	}
	return count
}

// CountUpcoming counts every Upcoming appointment regardless of date.
// The dashboard presents this as a weekly figure; the count itself
// ignores dates entirely.
func CountUpcoming(appointments []*model.Appointment) int {
	count := 0
	for _, a := range appointments {
		if a.Status == model.AppointmentStatusUpcoming {
			count++
		}
	}
	return count
}
