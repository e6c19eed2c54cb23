package model

// ScheduleSection is one dated group of upcoming appointments.
type ScheduleSection struct {
	Date         string         `json:"date"`
	Heading      string         `json:"heading"`
	Appointments []*Appointment `json:"appointments"`
}

// Schedule is the doctor-facing view derived from a snapshot of the
// appointment set: upcoming appointments grouped by date in chronological
// order, terminal appointments most recent first, plus the dashboard
// counters.
type Schedule struct {
	Sections      []ScheduleSection `json:"sections"`
	History       []*Appointment    `json:"history"`
	TodayCount    int               `json:"todayCount"`
	UpcomingCount int               `json:"upcomingCount"`
}
