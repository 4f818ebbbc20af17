// File: database/repository/timeslot/interface.go
package timeslotRepo

import (
	"context"
	"errors"
	"time"

	"barkbook/database"
	"barkbook/models"
	"barkbook/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ErrNotFound is returned when a referenced timeslot does not exist.
var ErrNotFound = errors.New("timeslot not found")

// ErrSlotTaken is returned by ClaimAndSplit when the conditional update on the
// anchor record matches nothing, i.e. another booking won the race.
var ErrSlotTaken = errors.New("timeslot already claimed")

type TimeslotRepository interface {
	GetByID(ctx context.Context, id string) (*models.Timeslot, error)
	ListRange(ctx context.Context, from, to time.Time) ([]models.Timeslot, error)
	ListBySeries(ctx context.Context, seriesID string) ([]models.Timeslot, error)
	DistinctSeriesIDs(ctx context.Context) ([]string, error)
	CreateMany(ctx context.Context, slots []models.Timeslot) ([]string, error)

	// ClaimAndSplit atomically rewrites the anchor record into the booked
	// sub-window (guarded by isAvailable) and inserts the leftover sibling
	// windows in the same transaction.
	ClaimAndSplit(ctx context.Context, anchor models.Timeslot, siblings []models.Timeslot) error

	DeleteByID(ctx context.Context, id string) error
	DeleteBySeries(ctx context.Context, seriesID string) (int64, error)
	// DeletePastAvailable removes unbooked slots whose end falls strictly
	// before the cutoff. Booked slots are never touched.
	DeletePastAvailable(ctx context.Context, cutoff time.Time) (int64, error)
}

type mongoTimeslotRepo struct {
	coll *mongo.Collection
}

// NewMongoTimeslotRepo constructs a new MongoDB TimeslotRepository.
func NewMongoTimeslotRepo(dbName string) TimeslotRepository {
	db := database.MongoClient.Database(dbName)
	repo := &mongoTimeslotRepo{
		coll: db.Collection("timeslots"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		utils.GetLogger().Warn("failed to ensure timeslot indexes", zap.Error(err))
	}
	return repo
}
