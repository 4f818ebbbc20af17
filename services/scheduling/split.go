package scheduling

import (
	"time"

	"barkbook/models"
)

// SessionDuration is the fixed length of a booked training session.
const SessionDuration = time.Hour

// SplitResult describes how an open window decomposes around a booked session.
type SplitResult struct {
	// Booked is the anchor record rewritten to the one-hour sub-window. It
	// keeps the original slot's id.
	Booked models.Timeslot
	// Siblings are the leftover open windows, leading ones first, in
	// chronological order.
	Siblings []models.Timeslot
}

// SplitWindow computes how an arbitrary-length open window tiles around a
// requested one-hour session. The requested start is truncated down to the
// start of its clock hour; a zero requestedStart defaults to the window's own
// start. Leading and trailing leftovers are cut into consecutive one-hour
// windows, with the final one capped at the window edge (it may be shorter
// than an hour). Sibling windows inherit the original's notes and series id.
//
// The function is pure: no side effects, deterministic for a given input.
func SplitWindow(original models.Timeslot, requestedStart time.Time) (*SplitResult, error) {
	if requestedStart.IsZero() {
		requestedStart = original.StartTime
	}

	subStart := truncateToHour(requestedStart.In(original.StartTime.Location()))
	subEnd := subStart.Add(SessionDuration)

	if subStart.Before(original.StartTime) || subEnd.After(original.EndTime) {
		return nil, OutOfRangeError{
			SubStart:    subStart,
			SubEnd:      subEnd,
			WindowStart: original.StartTime,
			WindowEnd:   original.EndTime,
		}
	}

	booked := original
	booked.StartTime = subStart
	booked.EndTime = subEnd
	booked.IsAvailable = false

	siblings := append(
		tile(original, original.StartTime, subStart),
		tile(original, subEnd, original.EndTime)...,
	)

	return &SplitResult{Booked: booked, Siblings: siblings}, nil
}

// tile cuts [from, to) into consecutive one-hour open windows, capping the
// last one at to.
func tile(original models.Timeslot, from, to time.Time) []models.Timeslot {
	var out []models.Timeslot
	for cur := from; cur.Before(to); cur = cur.Add(SessionDuration) {
		end := cur.Add(SessionDuration)
		if end.After(to) {
			end = to
		}
		out = append(out, models.Timeslot{
			StartTime:         cur,
			EndTime:           end,
			IsAvailable:       true,
			Notes:             original.Notes,
			RepeatingSeriesID: original.RepeatingSeriesID,
		})
	}
	return out
}

// truncateToHour drops minutes and seconds of the wall-clock hour.
func truncateToHour(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
}
