package clientRepo

import (
	"context"
	"errors"

	"barkbook/database"
	"barkbook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when a referenced client does not exist.
var ErrNotFound = errors.New("client not found")

type ClientRepository interface {
	Create(ctx context.Context, client models.Client) (string, error)
	GetByID(ctx context.Context, id string) (*models.Client, error)
	List(ctx context.Context) ([]models.Client, error)
	Update(ctx context.Context, client *models.Client) error
	DeleteByID(ctx context.Context, id string) error
}

type mongoClientRepo struct {
	coll *mongo.Collection
}

// NewMongoClientRepo returns a new ClientRepository instance using MongoDB.
func NewMongoClientRepo(dbName string) ClientRepository {
	db := database.MongoClient.Database(dbName)
	return &mongoClientRepo{
		coll: db.Collection("clients"),
	}
}
