package scheduling

import (
	"fmt"
	"time"
)

// ValidationError rejects malformed input before any store access.
type ValidationError struct {
	Reason string
}

func (e ValidationError) Error() string {
	return "validation failed: " + e.Reason
}

// NotFoundError signals that the referenced timeslot does not exist.
type NotFoundError struct {
	TimeslotID string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("timeslot %s not found", e.TimeslotID)
}

// ConflictError signals that the timeslot is already booked or the
// conditional claim lost a race. The caller should re-fetch availability
// and retry with fresh data.
type ConflictError struct {
	Reason string
}

func (e ConflictError) Error() string {
	return e.Reason
}

// OutOfRangeError is returned by the splitter when the requested one-hour
// sub-window does not fit inside the original window.
type OutOfRangeError struct {
	SubStart    time.Time
	SubEnd      time.Time
	WindowStart time.Time
	WindowEnd   time.Time
}

func (e OutOfRangeError) Error() string {
	return fmt.Sprintf("requested session [%s, %s) is outside the window [%s, %s)",
		e.SubStart.Format(time.RFC3339), e.SubEnd.Format(time.RFC3339),
		e.WindowStart.Format(time.RFC3339), e.WindowEnd.Format(time.RFC3339))
}

// InvalidRangeError is the client-visible form of OutOfRangeError.
type InvalidRangeError struct {
	Cause OutOfRangeError
}

func (e InvalidRangeError) Error() string {
	return "requested start time does not fit in the selected timeslot: " + e.Cause.Error()
}

func (e InvalidRangeError) Unwrap() error {
	return e.Cause
}

// TransientError wraps an underlying store or transaction failure. The
// operation rolled back completely, so retrying from scratch is safe.
type TransientError struct {
	Op  string
	Err error
}

func (e TransientError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e TransientError) Unwrap() error {
	return e.Err
}
