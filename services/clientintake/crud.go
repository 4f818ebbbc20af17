package clientintake

import (
	"context"

	"barkbook/models"
)

func (s *DefaultClientService) CreateClient(ctx context.Context, req models.CreateClientRequest) (*models.Client, error) {
	client := models.Client{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		DogName:      req.DogName,
		DogBreed:     req.DogBreed,
		DogBirthdate: req.DogBirthdate,
		Notes:        req.Notes,
	}
	id, err := s.Repo.Create(ctx, client)
	if err != nil {
		return nil, err
	}
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultClientService) GetClient(ctx context.Context, id string) (*models.Client, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultClientService) ListClients(ctx context.Context) ([]models.Client, error) {
	return s.Repo.List(ctx)
}

// UpdateClient applies the non-empty fields of the request to an existing
// client record.
func (s *DefaultClientService) UpdateClient(ctx context.Context, id string, req models.UpdateClientRequest) (*models.Client, error) {
	client, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		client.Name = req.Name
	}
	if req.Email != "" {
		client.Email = req.Email
	}
	if req.Phone != "" {
		client.Phone = req.Phone
	}
	if req.DogName != "" {
		client.DogName = req.DogName
	}
	if req.DogBreed != "" {
		client.DogBreed = req.DogBreed
	}
	if req.DogBirthdate != "" {
		client.DogBirthdate = req.DogBirthdate
	}
	if req.Notes != "" {
		client.Notes = req.Notes
	}

	if err := s.Repo.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *DefaultClientService) DeleteClient(ctx context.Context, id string) error {
	return s.Repo.DeleteByID(ctx, id)
}
