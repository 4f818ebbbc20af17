package notification

import (
	"context"

	"barkbook/models"
	"barkbook/utils"

	"go.uber.org/zap"
)

// NotificationService is the outbound email/SMS collaborator. Delivery runs
// through a hosted provider whose internals live outside this codebase; the
// engine only ever calls this interface, best-effort, after a booking has
// committed.
type NotificationService interface {
	SendBookingConfirmation(ctx context.Context, booking *models.BookTimeslotResponse) error
}

// LogNotificationService writes confirmations to the application log. It
// stands in wherever no delivery provider is configured.
type LogNotificationService struct{}

func (s *LogNotificationService) SendBookingConfirmation(ctx context.Context, booking *models.BookTimeslotResponse) error {
	utils.GetLogger().Info("booking confirmation",
		zap.String("timeslotId", booking.TimeslotID),
		zap.String("clientName", booking.ClientName),
		zap.String("dogName", booking.DogName),
		zap.Time("startTime", booking.StartTime),
		zap.Time("endTime", booking.EndTime),
	)
	return nil
}
