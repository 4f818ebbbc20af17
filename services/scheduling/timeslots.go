package scheduling

import (
	"context"
	"time"

	"barkbook/models"
	"barkbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ListAvailability returns the stored windows in [from, to) plus the external
// busy-time overlay. The overlay is presentation-only: a failing feed
// degrades to an empty overlay and never blocks the listing, and booking
// never consults it.
func (s *DefaultSchedulingService) ListAvailability(ctx context.Context, from, to time.Time) (*models.AvailabilityView, error) {
	if !to.After(from) {
		return nil, ValidationError{Reason: "range end must be after range start"}
	}

	slots, err := s.Repo.ListRange(ctx, from, to)
	if err != nil {
		return nil, TransientError{Op: "list timeslots", Err: err}
	}

	view := &models.AvailabilityView{Timeslots: slots}
	if s.Busy != nil {
		busy, err := s.Busy.BusyIntervals(ctx, from, to)
		if err != nil {
			utils.GetLogger().Warn("busy-time overlay unavailable", zap.Error(err))
		} else {
			view.Busy = busy
		}
	}
	return view, nil
}

// CreateTimeslot adds a single open window.
func (s *DefaultSchedulingService) CreateTimeslot(ctx context.Context, req models.CreateTimeslotRequest) (*models.Timeslot, error) {
	if !req.EndTime.After(req.StartTime) {
		return nil, ValidationError{Reason: "endTime must be after startTime"}
	}

	slot := models.Timeslot{
		ID:          uuid.New().String(),
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		IsAvailable: true,
		Notes:       req.Notes,
	}
	if _, err := s.Repo.CreateMany(ctx, []models.Timeslot{slot}); err != nil {
		return nil, TransientError{Op: "create timeslot", Err: err}
	}
	return &slot, nil
}

// CreateRecurringSeries seeds a fresh weekly series: a new series id and one
// open window per week out to the configured horizon, starting from the next
// occurrence of the requested weekday/time. The audit keeps the series
// topped up from then on.
func (s *DefaultSchedulingService) CreateRecurringSeries(ctx context.Context, req models.CreateRecurringSeriesRequest) ([]models.Timeslot, error) {
	if req.Weekday < time.Sunday || req.Weekday > time.Saturday {
		return nil, ValidationError{Reason: "weekday must be between 0 (Sunday) and 6 (Saturday)"}
	}
	if req.StartMinutes < 0 || req.StartMinutes >= 24*60 {
		return nil, ValidationError{Reason: "startMinutes must fall within the day"}
	}
	if req.DurationMinutes <= 0 {
		return nil, ValidationError{Reason: "durationMinutes must be positive"}
	}

	pattern := weeklyPattern{
		Weekday:     req.Weekday,
		MinuteOfDay: req.StartMinutes,
		Duration:    time.Duration(req.DurationMinutes) * time.Minute,
		Notes:       req.Notes,
	}

	seriesID := uuid.New().String()
	now := s.now().In(s.zone())
	first := nextOccurrence(pattern, now)

	slots := make([]models.Timeslot, 0, s.horizonWeeks())
	for i := 0; i < s.horizonWeeks(); i++ {
		occ := first.AddDate(0, 0, 7*i)
		slots = append(slots, models.Timeslot{
			ID:                uuid.New().String(),
			StartTime:         occ,
			EndTime:           occ.Add(pattern.Duration),
			IsAvailable:       true,
			Notes:             req.Notes,
			RepeatingSeriesID: seriesID,
		})
	}

	if _, err := s.Repo.CreateMany(ctx, slots); err != nil {
		return nil, TransientError{Op: "create recurring series", Err: err}
	}
	return slots, nil
}
