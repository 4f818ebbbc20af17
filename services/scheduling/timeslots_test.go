package scheduling

import (
	"context"
	"errors"
	"testing"
	"time"

	"barkbook/models"
)

type stubBusyFeed struct {
	busy []models.BusyInterval
	err  error
}

func (f *stubBusyFeed) BusyIntervals(ctx context.Context, from, to time.Time) ([]models.BusyInterval, error) {
	return f.busy, f.err
}

func TestListAvailability(t *testing.T) {
	repo := newFakeTimeslotRepo(
		models.Timeslot{ID: "in-1", StartTime: day(9, 0), EndTime: day(10, 0), IsAvailable: true},
		models.Timeslot{ID: "in-2", StartTime: day(11, 0), EndTime: day(12, 0), IsAvailable: false},
		models.Timeslot{ID: "out", StartTime: day(9, 0).AddDate(0, 0, 10), EndTime: day(10, 0).AddDate(0, 0, 10), IsAvailable: true},
	)
	busy := []models.BusyInterval{{StartTime: day(13, 0), EndTime: day(14, 0), Summary: "vet"}}
	svc := &DefaultSchedulingService{
		Repo: repo,
		Busy: &stubBusyFeed{busy: busy},
		Zone: time.UTC,
	}

	view, err := svc.ListAvailability(context.Background(), day(0, 0), day(0, 0).AddDate(0, 0, 7))
	if err != nil {
		t.Fatalf("ListAvailability() error = %v", err)
	}
	if len(view.Timeslots) != 2 {
		t.Errorf("len(Timeslots) = %d, want 2 inside the range", len(view.Timeslots))
	}
	if len(view.Busy) != 1 || view.Busy[0].Summary != "vet" {
		t.Errorf("Busy overlay = %+v, want the stubbed interval", view.Busy)
	}
}

func TestListAvailabilityDegradesOnOverlayFailure(t *testing.T) {
	repo := newFakeTimeslotRepo(
		models.Timeslot{ID: "in-1", StartTime: day(9, 0), EndTime: day(10, 0), IsAvailable: true},
	)
	svc := &DefaultSchedulingService{
		Repo: repo,
		Busy: &stubBusyFeed{err: errors.New("upstream 503")},
		Zone: time.UTC,
	}

	view, err := svc.ListAvailability(context.Background(), day(0, 0), day(0, 0).AddDate(0, 0, 7))
	if err != nil {
		t.Fatalf("ListAvailability() error = %v, want nil when only the overlay fails", err)
	}
	if len(view.Timeslots) != 1 {
		t.Errorf("len(Timeslots) = %d, want 1", len(view.Timeslots))
	}
	if len(view.Busy) != 0 {
		t.Errorf("Busy = %+v, want empty on overlay failure", view.Busy)
	}
}

func TestListAvailabilityRejectsInvertedRange(t *testing.T) {
	svc := &DefaultSchedulingService{Repo: newFakeTimeslotRepo(), Zone: time.UTC}

	_, err := svc.ListAvailability(context.Background(), day(12, 0), day(9, 0))
	var verr ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("ListAvailability() error = %v, want ValidationError", err)
	}
}

func TestCreateTimeslot(t *testing.T) {
	repo := newFakeTimeslotRepo()
	svc := &DefaultSchedulingService{Repo: repo, Zone: time.UTC}

	slot, err := svc.CreateTimeslot(context.Background(), models.CreateTimeslotRequest{
		StartTime: day(9, 0),
		EndTime:   day(12, 0),
		Notes:     "open gym",
	})
	if err != nil {
		t.Fatalf("CreateTimeslot() error = %v", err)
	}
	if slot.ID == "" {
		t.Error("created slot has no id")
	}
	if !slot.IsAvailable {
		t.Error("created slot should be available")
	}

	stored, err := repo.GetByID(context.Background(), slot.ID)
	if err != nil {
		t.Fatalf("created slot not in store: %v", err)
	}
	if !stored.StartTime.Equal(day(9, 0)) || !stored.EndTime.Equal(day(12, 0)) {
		t.Errorf("stored window = [%v, %v)", stored.StartTime, stored.EndTime)
	}

	_, err = svc.CreateTimeslot(context.Background(), models.CreateTimeslotRequest{
		StartTime: day(12, 0),
		EndTime:   day(9, 0),
	})
	var verr ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("inverted window: error = %v, want ValidationError", err)
	}
}

func TestCreateRecurringSeries(t *testing.T) {
	repo := newFakeTimeslotRepo()
	now := time.Date(2026, time.September, 2, 12, 0, 0, 0, time.UTC) // Wednesday
	svc := &DefaultSchedulingService{
		Repo:         repo,
		Zone:         time.UTC,
		HorizonWeeks: 4,
		Clock:        func() time.Time { return now },
	}

	slots, err := svc.CreateRecurringSeries(context.Background(), models.CreateRecurringSeriesRequest{
		Weekday:         time.Monday,
		StartMinutes:    10 * 60,
		DurationMinutes: 90,
		Notes:           "agility class",
	})
	if err != nil {
		t.Fatalf("CreateRecurringSeries() error = %v", err)
	}
	if len(slots) != 4 {
		t.Fatalf("seeded %d slots, want 4", len(slots))
	}

	seriesID := slots[0].RepeatingSeriesID
	if seriesID == "" {
		t.Fatal("seeded slots carry no series id")
	}
	for i, s := range slots {
		want := day(10, 0).AddDate(0, 0, 7*i) // next Monday is 2026-09-07
		if !s.StartTime.Equal(want) {
			t.Errorf("slot[%d] starts %v, want %v", i, s.StartTime, want)
		}
		if got := s.EndTime.Sub(s.StartTime); got != 90*time.Minute {
			t.Errorf("slot[%d] duration = %v, want 90m", i, got)
		}
		if s.RepeatingSeriesID != seriesID {
			t.Errorf("slot[%d] series id = %q, want shared %q", i, s.RepeatingSeriesID, seriesID)
		}
		if s.Notes != "agility class" {
			t.Errorf("slot[%d].Notes = %q", i, s.Notes)
		}
	}

	stored, _ := repo.ListBySeries(context.Background(), seriesID)
	if len(stored) != 4 {
		t.Errorf("store holds %d series members, want 4", len(stored))
	}
}

func TestCreateRecurringSeriesValidation(t *testing.T) {
	svc := &DefaultSchedulingService{Repo: newFakeTimeslotRepo(), Zone: time.UTC}

	tests := []struct {
		name string
		req  models.CreateRecurringSeriesRequest
	}{
		{"weekday out of range", models.CreateRecurringSeriesRequest{Weekday: 7, StartMinutes: 600, DurationMinutes: 60}},
		{"negative start minutes", models.CreateRecurringSeriesRequest{Weekday: time.Monday, StartMinutes: -10, DurationMinutes: 60}},
		{"start minutes past midnight", models.CreateRecurringSeriesRequest{Weekday: time.Monday, StartMinutes: 24 * 60, DurationMinutes: 60}},
		{"zero duration", models.CreateRecurringSeriesRequest{Weekday: time.Monday, StartMinutes: 600, DurationMinutes: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateRecurringSeries(context.Background(), tt.req)
			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("CreateRecurringSeries() error = %v, want ValidationError", err)
			}
		})
	}
}
