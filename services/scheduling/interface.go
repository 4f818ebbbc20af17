package scheduling

import (
	"context"
	"time"

	timeslotRepo "barkbook/database/repository/timeslot"
	"barkbook/models"
	"barkbook/services/notification"
)

// SchedulingService is the calendar-availability engine: window listing with
// the external busy overlay, transactional booking with sub-slot splitting,
// recurring-series auditing, and deletion.
type SchedulingService interface {
	ListAvailability(ctx context.Context, from, to time.Time) (*models.AvailabilityView, error)
	BookTimeslot(ctx context.Context, req models.BookTimeslotRequest) (*models.BookTimeslotResponse, error)
	CreateTimeslot(ctx context.Context, req models.CreateTimeslotRequest) (*models.Timeslot, error)
	CreateRecurringSeries(ctx context.Context, req models.CreateRecurringSeriesRequest) ([]models.Timeslot, error)
	DeleteTimeslot(ctx context.Context, id string, all bool) (*models.DeleteTimeslotResult, error)
	RunAudit(ctx context.Context) (*models.AuditReport, error)
}

// DefaultSchedulingService implements SchedulingService on top of the
// timeslot repository. Zone anchors all "today"/day-of-week reasoning;
// HorizonWeeks and MatchTolerance are the recurring-audit knobs. Clock is
// injectable for tests and defaults to time.Now.
type DefaultSchedulingService struct {
	Repo           timeslotRepo.TimeslotRepository
	Busy           BusyFeed
	Notifier       notification.NotificationService
	Zone           *time.Location
	HorizonWeeks   int
	MatchTolerance time.Duration
	Clock          func() time.Time
}

func (s *DefaultSchedulingService) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

func (s *DefaultSchedulingService) zone() *time.Location {
	if s.Zone != nil {
		return s.Zone
	}
	return time.Local
}

func (s *DefaultSchedulingService) horizonWeeks() int {
	if s.HorizonWeeks > 0 {
		return s.HorizonWeeks
	}
	return 6
}

func (s *DefaultSchedulingService) matchTolerance() time.Duration {
	if s.MatchTolerance > 0 {
		return s.MatchTolerance
	}
	return time.Minute
}
