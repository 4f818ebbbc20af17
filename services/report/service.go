package report

import (
	"context"
	"fmt"

	"barkbook/models"
)

// CreateReportCard writes a new report card after verifying the client exists.
func (s *DefaultReportCardService) CreateReportCard(ctx context.Context, req models.CreateReportCardRequest) (*models.ReportCard, error) {
	if _, err := s.Clients.GetByID(ctx, req.ClientID); err != nil {
		return nil, fmt.Errorf("report card client lookup failed: %w", err)
	}

	card := models.ReportCard{
		ClientID:     req.ClientID,
		SessionDate:  req.SessionDate,
		Summary:      req.Summary,
		SkillsWorked: req.SkillsWorked,
		Homework:     req.Homework,
	}
	id, err := s.Repo.Create(ctx, card)
	if err != nil {
		return nil, err
	}
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultReportCardService) GetReportCard(ctx context.Context, id string) (*models.ReportCard, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultReportCardService) ListByClient(ctx context.Context, clientID string) ([]models.ReportCard, error) {
	return s.Repo.GetByClientID(ctx, clientID)
}

// AttachPhoto uploads a session photo for the report card and records its
// delivery URL. Returns the URL.
func (s *DefaultReportCardService) AttachPhoto(ctx context.Context, id, localFilePath string) (string, error) {
	if s.Storage == nil {
		return "", fmt.Errorf("photo storage is not configured")
	}
	if _, err := s.Repo.GetByID(ctx, id); err != nil {
		return "", err
	}

	publicID, err := s.Storage.UploadFile(ctx, localFilePath, "report-cards")
	if err != nil {
		return "", fmt.Errorf("photo upload failed: %w", err)
	}
	url, err := s.Storage.GetDownloadURL(publicID)
	if err != nil {
		return "", fmt.Errorf("photo URL lookup failed: %w", err)
	}

	if err := s.Repo.SetPhotoURL(ctx, id, url); err != nil {
		return "", err
	}
	return url, nil
}

func (s *DefaultReportCardService) DeleteReportCard(ctx context.Context, id string) error {
	return s.Repo.DeleteByID(ctx, id)
}
