package reports

import (
	"context"
	"io"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/responses"
	"mime/multipart"
)

type ReportUsecase interface {
	UploadReport(ctx context.Context, principal *models.Principal, file multipart.File, fileHeader *multipart.FileHeader) (*responses.ReportResponse, error)
	GetReports(ctx context.Context, principal *models.Principal) ([]responses.ReportResponse, error)
	DownloadReport(ctx context.Context, principal *models.Principal, filename string) (io.ReadCloser, *models.Report, error)
}

type ReportRepository interface {
	CreateReport(ctx context.Context, report *models.Report) (string, error)
	FindByUserID(ctx context.Context, userID string) ([]models.Report, error)
	FindByFileNameAndUserID(ctx context.Context, filename, userID string) (*models.Report, error)
}
