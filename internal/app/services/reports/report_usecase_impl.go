package reports

import (
	"context"
	"errors"
	"io"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/models"
	"medibook-service/internal/app/services/shared/storage"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"mime/multipart"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type reportUsecase struct {
	ReportRepository ReportRepository
	MinioStorage     storage.Storage
	InternalConfig   *config.InternalConfig
	Logger           *zap.Logger
}

func NewReportUsecase(
	reportRepository ReportRepository,
	minioStorage storage.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) ReportUsecase {
	return &reportUsecase{
		ReportRepository: reportRepository,
		MinioStorage:     minioStorage,
		InternalConfig:   internalConfig,
		Logger:           logger,
	}
}

func (uc *reportUsecase) UploadReport(ctx context.Context, principal *models.Principal, file multipart.File, fileHeader *multipart.FileHeader) (*responses.ReportResponse, error) {
	if !utils.IsPDFFilename(fileHeader.Filename) {
		return nil, exceptions.ErrReportFileInvalid(errors.New("unsupported extension"))
	}

	userObjectID, err := primitive.ObjectIDFromHex(principal.UserID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	objectName := utils.GenerateFileName("report", principal.UserName, ".pdf")
	bucketName := uc.InternalConfig.Storage.ReportBucketName
	if err := uc.MinioStorage.UploadFile(ctx, file, fileHeader, bucketName, objectName); err != nil {
		return nil, err
	}

	contentType := fileHeader.Header.Get(constvars.HeaderContentType)
	if contentType == "" {
		contentType = constvars.MIMEApplicationPDF
	}

	report := &models.Report{
		UserID:      userObjectID,
		FileName:    fileHeader.Filename,
		ObjectName:  objectName,
		ContentType: contentType,
		SizeBytes:   fileHeader.Size,
	}
	reportID, err := uc.ReportRepository.CreateReport(ctx, report)
	if err != nil {
		return nil, err
	}

	uc.Logger.Info("report uploaded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingUserIDKey, principal.UserID),
		zap.String(constvars.LoggingFilenameKey, fileHeader.Filename),
	)

	report.ID, _ = primitive.ObjectIDFromHex(reportID)
	return buildReportResponse(report), nil
}

func (uc *reportUsecase) GetReports(ctx context.Context, principal *models.Principal) ([]responses.ReportResponse, error) {
	reports, err := uc.ReportRepository.FindByUserID(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}

	result := make([]responses.ReportResponse, 0, len(reports))
	for i := range reports {
		result = append(result, *buildReportResponse(&reports[i]))
	}
	return result, nil
}

func (uc *reportUsecase) DownloadReport(ctx context.Context, principal *models.Principal, filename string) (io.ReadCloser, *models.Report, error) {
	report, err := uc.ReportRepository.FindByFileNameAndUserID(ctx, filename, principal.UserID)
	if err != nil {
		return nil, nil, err
	}
	if report == nil {
		return nil, nil, exceptions.ErrReportNotExist(nil)
	}

	object, err := uc.MinioStorage.GetObject(ctx, uc.InternalConfig.Storage.ReportBucketName, report.ObjectName)
	if err != nil {
		return nil, nil, err
	}
	return object, report, nil
}

func buildReportResponse(report *models.Report) *responses.ReportResponse {
	return &responses.ReportResponse{
		ID:         report.ID.Hex(),
		FileName:   report.FileName,
		SizeBytes:  report.SizeBytes,
		UploadedAt: report.CreatedAt.Format(time.RFC3339),
	}
}
