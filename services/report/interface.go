package report

import (
	"context"

	clientRepo "barkbook/database/repository/client"
	reportRepo "barkbook/database/repository/report"
	"barkbook/models"
	"barkbook/services/storage"
)

// ReportCardService manages after-session report cards and their photos.
type ReportCardService interface {
	CreateReportCard(ctx context.Context, req models.CreateReportCardRequest) (*models.ReportCard, error)
	GetReportCard(ctx context.Context, id string) (*models.ReportCard, error)
	ListByClient(ctx context.Context, clientID string) ([]models.ReportCard, error)
	AttachPhoto(ctx context.Context, id, localFilePath string) (string, error)
	DeleteReportCard(ctx context.Context, id string) error
}

// DefaultReportCardService implements ReportCardService.
type DefaultReportCardService struct {
	Repo    reportRepo.ReportCardRepository
	Clients clientRepo.ClientRepository
	Storage storage.StorageService
}
