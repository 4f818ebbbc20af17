package clientintake

import (
	"context"

	clientRepo "barkbook/database/repository/client"
	"barkbook/models"
)

// ClientService manages dog-owner intake records.
type ClientService interface {
	CreateClient(ctx context.Context, req models.CreateClientRequest) (*models.Client, error)
	GetClient(ctx context.Context, id string) (*models.Client, error)
	ListClients(ctx context.Context) ([]models.Client, error)
	UpdateClient(ctx context.Context, id string, req models.UpdateClientRequest) (*models.Client, error)
	DeleteClient(ctx context.Context, id string) error
}

// DefaultClientService implements ClientService.
type DefaultClientService struct {
	Repo clientRepo.ClientRepository
}
