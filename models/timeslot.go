package models

import "time"

// Timeslot represents a single window of Madeline's time on the calendar.
// A window is either open for booking or claimed by a client. Slots created
// from the same weekly pattern share a RepeatingSeriesID; the pattern itself
// is never stored, it is re-derived from the earliest member of the series.
type Timeslot struct {
	ID                string    `bson:"id" json:"id"`
	StartTime         time.Time `bson:"startTime" json:"startTime"`
	EndTime           time.Time `bson:"endTime" json:"endTime"`
	IsAvailable       bool      `bson:"isAvailable" json:"isAvailable"`
	BookedByClientID  string    `bson:"bookedByClientId,omitempty" json:"bookedByClientId,omitempty"`
	SessionID         string    `bson:"sessionId,omitempty" json:"sessionId,omitempty"`
	PackageInstanceID string    `bson:"packageInstanceId,omitempty" json:"packageInstanceId,omitempty"`
	Notes             string    `bson:"notes,omitempty" json:"notes,omitempty"`
	RepeatingSeriesID string    `bson:"repeatingSeriesId,omitempty" json:"repeatingSeriesId,omitempty"`
	// GcalEventID is reserved for external calendar sync; no current logic reads it.
	GcalEventID string `bson:"gcalEventId,omitempty" json:"gcalEventId,omitempty"`
}

// BookTimeslotRequest is the inbound payload for booking a one-hour session
// inside an open window. SelectedStartTime is optional; when omitted the
// window's own start is used.
type BookTimeslotRequest struct {
	TimeslotID        string     `json:"timeslotId" binding:"required"`
	ClientID          string     `json:"clientId" binding:"required"`
	ClientName        string     `json:"clientName" binding:"required"`
	DogName           string     `json:"dogName" binding:"required"`
	SelectedStartTime *time.Time `json:"selectedStartTime,omitempty"`
}

// BookTimeslotResponse echoes the confirmed booking back to the caller with
// the final start/end of the booked sub-window.
type BookTimeslotResponse struct {
	TimeslotID string    `json:"timeslotId"`
	ClientID   string    `json:"clientId"`
	ClientName string    `json:"clientName"`
	DogName    string    `json:"dogName"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
}

// CreateTimeslotRequest defines the payload for adding a single open window.
type CreateTimeslotRequest struct {
	StartTime time.Time `json:"startTime" binding:"required"`
	EndTime   time.Time `json:"endTime" binding:"required"`
	Notes     string    `json:"notes,omitempty"`
}

// CreateRecurringSeriesRequest defines the payload for seeding a weekly
// recurring series of open windows.
type CreateRecurringSeriesRequest struct {
	Weekday         time.Weekday `json:"weekday"`
	StartMinutes    int          `json:"startMinutes"`    // minutes from midnight in the scheduling zone
	DurationMinutes int          `json:"durationMinutes"` // window length
	Notes           string       `json:"notes,omitempty"`
}

// BusyInterval is a read-only block of unavailability from the external
// calendar feed, merged into availability listings at presentation time only.
type BusyInterval struct {
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Summary   string    `json:"summary,omitempty"`
}

// AvailabilityView is the availability listing response: the stored windows
// for the requested range plus the external busy-time overlay.
type AvailabilityView struct {
	Timeslots []Timeslot     `json:"timeslots"`
	Busy      []BusyInterval `json:"busy,omitempty"`
}

// AuditReport summarizes one recurring-series audit sweep.
type AuditReport struct {
	CreatedCount int `json:"createdCount"`
	DeletedCount int `json:"deletedCount"`
}

// DeleteTimeslotResult reports how many records a deletion removed.
type DeleteTimeslotResult struct {
	DeletedCount int64 `json:"deletedCount"`
}
