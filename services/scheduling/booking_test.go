package scheduling

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"barkbook/models"

	"github.com/google/uuid"
)

func newBookingService(repo *fakeTimeslotRepo) *DefaultSchedulingService {
	return &DefaultSchedulingService{
		Repo: repo,
		Zone: time.UTC,
	}
}

func bookingRequest(slotID string, start time.Time) models.BookTimeslotRequest {
	req := models.BookTimeslotRequest{
		TimeslotID: slotID,
		ClientID:   uuid.New().String(),
		ClientName: "Dana Reyes",
		DogName:    "Biscuit",
	}
	if !start.IsZero() {
		req.SelectedStartTime = &start
	}
	return req
}

func TestBookTimeslot(t *testing.T) {
	slotID := uuid.New().String()
	repo := newFakeTimeslotRepo(models.Timeslot{
		ID:          slotID,
		StartTime:   day(9, 0),
		EndTime:     day(12, 0),
		IsAvailable: true,
		Notes:       "park meetup",
	})
	svc := newBookingService(repo)

	resp, err := svc.BookTimeslot(context.Background(), bookingRequest(slotID, day(10, 15)))
	if err != nil {
		t.Fatalf("BookTimeslot() error = %v", err)
	}
	if resp.TimeslotID != slotID {
		t.Errorf("resp.TimeslotID = %q, want %q", resp.TimeslotID, slotID)
	}
	if !resp.StartTime.Equal(day(10, 0)) || !resp.EndTime.Equal(day(11, 0)) {
		t.Errorf("booked window = [%v, %v), want [%v, %v)",
			resp.StartTime, resp.EndTime, day(10, 0), day(11, 0))
	}

	slots := repo.all()
	if len(slots) != 3 {
		t.Fatalf("store holds %d slots, want 3", len(slots))
	}
	var booked, open int
	for _, s := range slots {
		if s.IsAvailable {
			open++
			continue
		}
		booked++
		if s.ID != slotID {
			t.Errorf("booked slot id = %q, want anchor id %q", s.ID, slotID)
		}
		if s.BookedByClientID != resp.ClientID {
			t.Errorf("booked slot client = %q, want %q", s.BookedByClientID, resp.ClientID)
		}
	}
	if booked != 1 || open != 2 {
		t.Errorf("store has %d booked / %d open, want 1 / 2", booked, open)
	}
}

func TestBookTimeslotValidation(t *testing.T) {
	svc := newBookingService(newFakeTimeslotRepo())

	tests := []struct {
		name   string
		mutate func(*models.BookTimeslotRequest)
	}{
		{"missing timeslot id", func(r *models.BookTimeslotRequest) { r.TimeslotID = "" }},
		{"malformed timeslot id", func(r *models.BookTimeslotRequest) { r.TimeslotID = "slot-42" }},
		{"missing client id", func(r *models.BookTimeslotRequest) { r.ClientID = "" }},
		{"malformed client id", func(r *models.BookTimeslotRequest) { r.ClientID = "dana" }},
		{"missing client name", func(r *models.BookTimeslotRequest) { r.ClientName = "" }},
		{"missing dog name", func(r *models.BookTimeslotRequest) { r.DogName = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := bookingRequest(uuid.New().String(), time.Time{})
			tt.mutate(&req)
			_, err := svc.BookTimeslot(context.Background(), req)
			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("BookTimeslot() error = %v, want ValidationError", err)
			}
		})
	}
}

func TestBookTimeslotNotFound(t *testing.T) {
	svc := newBookingService(newFakeTimeslotRepo())

	_, err := svc.BookTimeslot(context.Background(), bookingRequest(uuid.New().String(), time.Time{}))
	var nf NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("BookTimeslot() error = %v, want NotFoundError", err)
	}
}

func TestBookTimeslotAlreadyBooked(t *testing.T) {
	slotID := uuid.New().String()
	repo := newFakeTimeslotRepo(models.Timeslot{
		ID:               slotID,
		StartTime:        day(9, 0),
		EndTime:          day(10, 0),
		IsAvailable:      false,
		BookedByClientID: uuid.New().String(),
	})
	svc := newBookingService(repo)

	_, err := svc.BookTimeslot(context.Background(), bookingRequest(slotID, time.Time{}))
	var conflict ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("BookTimeslot() error = %v, want ConflictError", err)
	}
}

func TestBookTimeslotInvalidRange(t *testing.T) {
	slotID := uuid.New().String()
	repo := newFakeTimeslotRepo(models.Timeslot{
		ID:          slotID,
		StartTime:   day(9, 0),
		EndTime:     day(12, 0),
		IsAvailable: true,
	})
	svc := newBookingService(repo)

	_, err := svc.BookTimeslot(context.Background(), bookingRequest(slotID, day(13, 0)))
	var ir InvalidRangeError
	if !errors.As(err, &ir) {
		t.Fatalf("BookTimeslot() error = %v, want InvalidRangeError", err)
	}

	// A doomed request must not touch the store.
	if got := len(repo.all()); got != 1 {
		t.Errorf("store holds %d slots after failed booking, want 1", got)
	}
}

func TestBookTimeslotConcurrentClaims(t *testing.T) {
	slotID := uuid.New().String()
	repo := newFakeTimeslotRepo(models.Timeslot{
		ID:          slotID,
		StartTime:   day(9, 0),
		EndTime:     day(12, 0),
		IsAvailable: true,
	})
	svc := newBookingService(repo)

	// Two clients race for the same window at different hours. Exactly one
	// claim commits; the loser sees a conflict.
	starts := []time.Time{day(9, 0), day(11, 0)}
	errs := make([]error, len(starts))
	var wg sync.WaitGroup
	for i, start := range starts {
		wg.Add(1)
		go func(i int, start time.Time) {
			defer wg.Done()
			_, errs[i] = svc.BookTimeslot(context.Background(), bookingRequest(slotID, start))
		}(i, start)
	}
	wg.Wait()

	var wins, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		default:
			var conflict ConflictError
			if !errors.As(err, &conflict) {
				t.Fatalf("unexpected booking error: %v", err)
			}
			conflicts++
		}
	}
	if wins != 1 || conflicts != 1 {
		t.Fatalf("got %d wins and %d conflicts, want exactly 1 of each", wins, conflicts)
	}

	var booked int
	for _, s := range repo.all() {
		if !s.IsAvailable {
			booked++
		}
	}
	if booked != 1 {
		t.Errorf("store has %d booked slots, want 1", booked)
	}
}
