package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/jwalitptl/clinic-api/internal/model"
	"github.com/jwalitptl/clinic-api/internal/repository"
)

// Service derives doctor-facing schedule views from appointment
// snapshots. Views are recomputed from the full set on every read; at
// clinic scale that beats maintaining them incrementally.
type Service struct {
	repo repository.AppointmentRepository
}

func NewService(repo repository.AppointmentRepository) *Service {
	return &Service{repo: repo}
}

// Schedule composes the grouped upcoming view, the history view and the
// dashboard counters for one doctor, relative to the given day.
func (s *Service) Schedule(ctx context.Context, doctorID int64, today time.Time) (*model.Schedule, error) {
	appointments, err := s.repo.ListByDoctor(ctx, doctorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}

	groups := GroupUpcomingByDate(appointments)
	keys := SortedDateKeys(groups)

	sections := make([]model.ScheduleSection, 0, len(keys))
	for _, key := range keys {
		sections = append(sections, model.ScheduleSection{
			Date:         key,
			Heading:      DateHeading(key, today),
			Appointments: groups[key],
		})
	}

	return &model.Schedule{
		Sections:      sections,
		History:       History(appointments),
		TodayCount:    CountToday(appointments, today),
		UpcomingCount: CountUpcoming(appointments),
	}, nil
}
