package scheduling

import (
	"context"
	"errors"
	"time"

	timeslotRepo "barkbook/database/repository/timeslot"
	"barkbook/models"
	"barkbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookTimeslot turns a booking request into a consistent store mutation.
// Preconditions are checked before entering the transaction so that obviously
// doomed requests (missing slot, already booked) fail fast without touching
// the store transactionally. The actual claim is a conditional update inside
// one transaction together with the sibling inserts, so exactly one of two
// concurrent attempts on the same slot can win.
func (s *DefaultSchedulingService) BookTimeslot(ctx context.Context, req models.BookTimeslotRequest) (*models.BookTimeslotResponse, error) {
	if err := validateBookingRequest(req); err != nil {
		return nil, err
	}

	slot, err := s.Repo.GetByID(ctx, req.TimeslotID)
	if errors.Is(err, timeslotRepo.ErrNotFound) {
		return nil, NotFoundError{TimeslotID: req.TimeslotID}
	}
	if err != nil {
		return nil, TransientError{Op: "fetch timeslot", Err: err}
	}
	if !slot.IsAvailable || slot.BookedByClientID != "" {
		return nil, ConflictError{Reason: "timeslot is already booked"}
	}

	var requested time.Time
	if req.SelectedStartTime != nil {
		requested = *req.SelectedStartTime
	}
	split, err := SplitWindow(*slot, requested)
	if err != nil {
		var oor OutOfRangeError
		if errors.As(err, &oor) {
			return nil, InvalidRangeError{Cause: oor}
		}
		return nil, err
	}

	anchor := split.Booked
	anchor.BookedByClientID = req.ClientID

	err = s.Repo.ClaimAndSplit(ctx, anchor, split.Siblings)
	if errors.Is(err, timeslotRepo.ErrSlotTaken) {
		return nil, ConflictError{Reason: "timeslot was booked by another request"}
	}
	if err != nil {
		return nil, TransientError{Op: "book timeslot", Err: err}
	}

	resp := &models.BookTimeslotResponse{
		TimeslotID: anchor.ID,
		ClientID:   req.ClientID,
		ClientName: req.ClientName,
		DogName:    req.DogName,
		StartTime:  anchor.StartTime,
		EndTime:    anchor.EndTime,
	}

	// Confirmation delivery is best-effort and must never undo a committed
	// booking.
	if s.Notifier != nil {
		if nerr := s.Notifier.SendBookingConfirmation(ctx, resp); nerr != nil {
			utils.GetLogger().Warn("booking confirmation failed",
				zap.String("timeslotId", anchor.ID), zap.Error(nerr))
		}
	}

	return resp, nil
}

func validateBookingRequest(req models.BookTimeslotRequest) error {
	if req.TimeslotID == "" {
		return ValidationError{Reason: "timeslotId is required"}
	}
	if err := uuid.Validate(req.TimeslotID); err != nil {
		return ValidationError{Reason: "timeslotId is not a valid identifier"}
	}
	if req.ClientID == "" {
		return ValidationError{Reason: "clientId is required"}
	}
	if err := uuid.Validate(req.ClientID); err != nil {
		return ValidationError{Reason: "clientId is not a valid identifier"}
	}
	if req.ClientName == "" {
		return ValidationError{Reason: "clientName is required"}
	}
	if req.DogName == "" {
		return ValidationError{Reason: "dogName is required"}
	}
	return nil
}
