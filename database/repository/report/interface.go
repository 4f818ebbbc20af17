package reportRepo

import (
	"context"
	"errors"

	"barkbook/database"
	"barkbook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when a referenced report card does not exist.
var ErrNotFound = errors.New("report card not found")

type ReportCardRepository interface {
	Create(ctx context.Context, report models.ReportCard) (string, error)
	GetByID(ctx context.Context, id string) (*models.ReportCard, error)
	GetByClientID(ctx context.Context, clientID string) ([]models.ReportCard, error)
	SetPhotoURL(ctx context.Context, id, photoURL string) error
	DeleteByID(ctx context.Context, id string) error
}

type mongoReportRepo struct {
	coll *mongo.Collection
}

// NewMongoReportRepo returns a new ReportCardRepository instance using MongoDB.
func NewMongoReportRepo(dbName string) ReportCardRepository {
	db := database.MongoClient.Database(dbName)
	return &mongoReportRepo{
		coll: db.Collection("report_cards"),
	}
}
