package scheduling

import (
	"context"
	"errors"

	timeslotRepo "barkbook/database/repository/timeslot"
	"barkbook/models"
)

// DeleteTimeslot removes a single window, or the whole recurring series the
// window belongs to when all is set. A slot without a series id falls back to
// single deletion even when all is requested. Session and package references
// pointing at deleted slots are not cascaded here.
func (s *DefaultSchedulingService) DeleteTimeslot(ctx context.Context, id string, all bool) (*models.DeleteTimeslotResult, error) {
	if id == "" {
		return nil, ValidationError{Reason: "timeslot id is required"}
	}

	slot, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, timeslotRepo.ErrNotFound) {
		return nil, NotFoundError{TimeslotID: id}
	}
	if err != nil {
		return nil, TransientError{Op: "fetch timeslot", Err: err}
	}

	if all && slot.RepeatingSeriesID != "" {
		deleted, err := s.Repo.DeleteBySeries(ctx, slot.RepeatingSeriesID)
		if err != nil {
			return nil, TransientError{Op: "delete series", Err: err}
		}
		return &models.DeleteTimeslotResult{DeletedCount: deleted}, nil
	}

	if err := s.Repo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, timeslotRepo.ErrNotFound) {
			return nil, NotFoundError{TimeslotID: id}
		}
		return nil, TransientError{Op: "delete timeslot", Err: err}
	}
	return &models.DeleteTimeslotResult{DeletedCount: 1}, nil
}
