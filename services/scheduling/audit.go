package scheduling

import (
	"context"
	"time"

	"barkbook/models"
	"barkbook/utils"

	"go.uber.org/zap"
)

// weeklyPattern is the implicit definition of a recurring series, derived
// each run from the earliest-starting member.
type weeklyPattern struct {
	Weekday     time.Weekday
	MinuteOfDay int // minutes since midnight in the scheduling zone
	Duration    time.Duration
	Notes       string
}

// RunAudit is the recurring-series maintenance sweep. For every series it
// tops up a rolling horizon of weekly occurrences, then prunes past unbooked
// windows. The sweep is idempotent: re-running it immediately creates
// nothing. One series failing is logged and skipped so the rest of the sweep
// still makes progress; the next run heals whatever was missed.
func (s *DefaultSchedulingService) RunAudit(ctx context.Context) (*models.AuditReport, error) {
	logger := utils.GetLogger()
	now := s.now().In(s.zone())
	report := &models.AuditReport{}

	seriesIDs, err := s.Repo.DistinctSeriesIDs(ctx)
	if err != nil {
		return nil, TransientError{Op: "list series ids", Err: err}
	}

	for _, seriesID := range seriesIDs {
		created, err := s.auditSeries(ctx, seriesID, now)
		if err != nil {
			logger.Warn("audit: series failed, continuing",
				zap.String("seriesId", seriesID), zap.Error(err))
			continue
		}
		report.CreatedCount += created
	}

	// Prune unbooked slots that ended before today. Booked slots stay as
	// historical record no matter how old.
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.zone())
	deleted, err := s.Repo.DeletePastAvailable(ctx, today)
	if err != nil {
		return report, TransientError{Op: "prune past slots", Err: err}
	}
	report.DeletedCount = int(deleted)

	logger.Info("audit complete",
		zap.Int("created", report.CreatedCount),
		zap.Int("deleted", report.DeletedCount))
	return report, nil
}

// auditSeries tops up one series to the configured horizon and returns how
// many occurrences it created.
func (s *DefaultSchedulingService) auditSeries(ctx context.Context, seriesID string, now time.Time) (int, error) {
	slots, err := s.Repo.ListBySeries(ctx, seriesID)
	if err != nil {
		return 0, err
	}
	if len(slots) == 0 {
		return 0, nil
	}

	pattern := seriesPattern(slots, s.zone())
	first := nextOccurrence(pattern, now)

	var missing []models.Timeslot
	for i := 0; i < s.horizonWeeks(); i++ {
		occ := first.AddDate(0, 0, 7*i)
		if hasOccurrence(slots, occ, s.matchTolerance()) {
			continue
		}
		missing = append(missing, models.Timeslot{
			StartTime:         occ,
			EndTime:           occ.Add(pattern.Duration),
			IsAvailable:       true,
			Notes:             pattern.Notes,
			RepeatingSeriesID: seriesID,
		})
	}

	if len(missing) == 0 {
		return 0, nil
	}
	if _, err := s.Repo.CreateMany(ctx, missing); err != nil {
		return 0, err
	}
	return len(missing), nil
}

// seriesPattern derives the weekly pattern from the earliest-starting member
// of the series. The series definition is implicit and recomputed each run;
// swapping in a stored pattern record later only means replacing this
// function.
func seriesPattern(slots []models.Timeslot, zone *time.Location) weeklyPattern {
	earliest := slots[0]
	for _, slot := range slots[1:] {
		if slot.StartTime.Before(earliest.StartTime) {
			earliest = slot
		}
	}
	start := earliest.StartTime.In(zone)
	return weeklyPattern{
		Weekday:     start.Weekday(),
		MinuteOfDay: start.Hour()*60 + start.Minute(),
		Duration:    earliest.EndTime.Sub(earliest.StartTime),
		Notes:       earliest.Notes,
	}
}

// nextOccurrence finds the first occurrence of the pattern on or after now.
// When the pattern's weekday is today but its time-of-day has already passed,
// the occurrence moves to next week.
func nextOccurrence(p weeklyPattern, now time.Time) time.Time {
	days := (int(p.Weekday) - int(now.Weekday()) + 7) % 7
	if days == 0 {
		nowMinute := now.Hour()*60 + now.Minute()
		if nowMinute > p.MinuteOfDay {
			days = 7
		}
	}
	d := now.AddDate(0, 0, days)
	return time.Date(d.Year(), d.Month(), d.Day(), p.MinuteOfDay/60, p.MinuteOfDay%60, 0, 0, now.Location())
}

// hasOccurrence reports whether a member of the series already sits within
// tolerance of the instant. The tolerance absorbs timezone round-trip noise
// in stored timestamps.
func hasOccurrence(slots []models.Timeslot, at time.Time, tolerance time.Duration) bool {
	for _, slot := range slots {
		diff := slot.StartTime.Sub(at)
		if diff < 0 {
			diff = -diff
		}
		if diff <= tolerance {
			return true
		}
	}
	return false
}
