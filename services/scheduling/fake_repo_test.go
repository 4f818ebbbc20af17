package scheduling

import (
	"context"
	"sort"
	"sync"
	"time"

	timeslotRepo "barkbook/database/repository/timeslot"
	"barkbook/models"

	"github.com/google/uuid"
)

// fakeTimeslotRepo is an in-memory TimeslotRepository. ClaimAndSplit mirrors
// the store's conditional-update semantics under a mutex: the guard and the
// sibling inserts are one atomic step, so concurrent bookings race exactly
// like they do against the real collection.
type fakeTimeslotRepo struct {
	mu    sync.Mutex
	slots map[string]models.Timeslot

	// failSeries makes ListBySeries fail for specific series ids.
	failSeries map[string]error
}

func newFakeTimeslotRepo(slots ...models.Timeslot) *fakeTimeslotRepo {
	repo := &fakeTimeslotRepo{slots: make(map[string]models.Timeslot)}
	for _, s := range slots {
		if s.ID == "" {
			s.ID = uuid.New().String()
		}
		repo.slots[s.ID] = s
	}
	return repo
}

func (r *fakeTimeslotRepo) GetByID(ctx context.Context, id string) (*models.Timeslot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	slot, ok := r.slots[id]
	if !ok {
		return nil, timeslotRepo.ErrNotFound
	}
	out := slot
	return &out, nil
}

func (r *fakeTimeslotRepo) ListRange(ctx context.Context, from, to time.Time) ([]models.Timeslot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Timeslot
	for _, s := range r.slots {
		if !s.StartTime.Before(from) && s.StartTime.Before(to) {
			out = append(out, s)
		}
	}
	sortByStart(out)
	return out, nil
}

func (r *fakeTimeslotRepo) ListBySeries(ctx context.Context, seriesID string) ([]models.Timeslot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err, ok := r.failSeries[seriesID]; ok {
		return nil, err
	}
	var out []models.Timeslot
	for _, s := range r.slots {
		if s.RepeatingSeriesID == seriesID {
			out = append(out, s)
		}
	}
	sortByStart(out)
	return out, nil
}

func (r *fakeTimeslotRepo) DistinctSeriesIDs(ctx context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	seen := make(map[string]bool)
	for _, s := range r.slots {
		if s.RepeatingSeriesID != "" {
			seen[s.RepeatingSeriesID] = true
		}
	}
	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (r *fakeTimeslotRepo) CreateMany(ctx context.Context, slots []models.Timeslot) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, len(slots))
	for i, s := range slots {
		if s.ID == "" {
			s.ID = uuid.New().String()
		}
		ids[i] = s.ID
		r.slots[s.ID] = s
	}
	return ids, nil
}

func (r *fakeTimeslotRepo) ClaimAndSplit(ctx context.Context, anchor models.Timeslot, siblings []models.Timeslot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.slots[anchor.ID]
	if !ok || !cur.IsAvailable {
		return timeslotRepo.ErrSlotTaken
	}

	cur.StartTime = anchor.StartTime
	cur.EndTime = anchor.EndTime
	cur.IsAvailable = false
	cur.BookedByClientID = anchor.BookedByClientID
	r.slots[anchor.ID] = cur

	for _, s := range siblings {
		if s.ID == "" {
			s.ID = uuid.New().String()
		}
		r.slots[s.ID] = s
	}
	return nil
}

func (r *fakeTimeslotRepo) DeleteByID(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.slots[id]; !ok {
		return timeslotRepo.ErrNotFound
	}
	delete(r.slots, id)
	return nil
}

func (r *fakeTimeslotRepo) DeleteBySeries(ctx context.Context, seriesID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, s := range r.slots {
		if s.RepeatingSeriesID == seriesID {
			delete(r.slots, id)
			n++
		}
	}
	return n, nil
}

func (r *fakeTimeslotRepo) DeletePastAvailable(ctx context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, s := range r.slots {
		if s.IsAvailable && s.EndTime.Before(cutoff) {
			delete(r.slots, id)
			n++
		}
	}
	return n, nil
}

func (r *fakeTimeslotRepo) all() []models.Timeslot {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Timeslot, 0, len(r.slots))
	for _, s := range r.slots {
		out = append(out, s)
	}
	sortByStart(out)
	return out
}

func sortByStart(slots []models.Timeslot) {
	sort.Slice(slots, func(i, j int) bool {
		return slots[i].StartTime.Before(slots[j].StartTime)
	})
}
