package demographics

import (
	"context"
	"errors"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/models"
	"medibook-service/internal/app/services/shared/storage"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

type demographicUsecase struct {
	DemographicRepository DemographicRepository
	UserProvider          UserProvider
	MinioStorage          storage.Storage
	InternalConfig        *config.InternalConfig
	Logger                *zap.Logger
}

func NewDemographicUsecase(
	demographicRepository DemographicRepository,
	userProvider UserProvider,
	minioStorage storage.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) DemographicUsecase {
	return &demographicUsecase{
		DemographicRepository: demographicRepository,
		UserProvider:          userProvider,
		MinioStorage:          minioStorage,
		InternalConfig:        internalConfig,
		Logger:                logger,
	}
}

// GetDemographic never 404s: accounts without a demographic document get
// a fallback payload carrying the user record instead.
func (uc *demographicUsecase) GetDemographic(ctx context.Context, principal *models.Principal) (interface{}, error) {
	demographic, err := uc.DemographicRepository.FindByUserName(ctx, principal.UserName)
	if err != nil {
		return nil, err
	}

	if demographic == nil {
		user, err := uc.UserProvider.FindByID(ctx, principal.UserID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, exceptions.ErrUserNotExist(nil)
		}
		return &responses.DemographicFallback{
			Message: constvars.NoDemographicsFoundMessage,
			User: responses.UserResponse{
				ID:           user.ID.Hex(),
				UserName:     user.UserName,
				Email:        user.Email,
				MobileNumber: user.MobileNumber,
			},
		}, nil
	}

	return uc.buildDemographicResponse(ctx, demographic), nil
}

func (uc *demographicUsecase) CreateDemographic(ctx context.Context, principal *models.Principal, request *requests.Demographic) (*responses.DemographicResponse, error) {
	existing, err := uc.DemographicRepository.FindByUserName(ctx, principal.UserName)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		// One demographic document per account, repeat creates update it.
		return uc.applyUpdate(ctx, existing, principal, request)
	}

	demographic := &models.Demographic{
		UserName:         principal.UserName,
		FirstName:        request.FirstName,
		LastName:         request.LastName,
		DateOfBirth:      request.DateOfBirth,
		Gender:           request.Gender,
		BloodGroup:       request.BloodGroup,
		MaritalStatus:    request.MaritalStatus,
		Height:           request.Height,
		Weight:           request.Weight,
		Occupation:       request.Occupation,
		Address:          request.Address,
		City:             request.City,
		State:            request.State,
		ZipCode:          request.ZipCode,
		EmergencyContact: request.EmergencyContact,
	}

	if len(request.ProfilePicture) > 0 {
		objectName, err := uc.uploadProfilePicture(ctx, principal.UserName, request)
		if err != nil {
			return nil, err
		}
		demographic.ProfilePicturePath = objectName
	}

	if _, err := uc.DemographicRepository.CreateDemographic(ctx, demographic); err != nil {
		return nil, err
	}

	uc.Logger.Info("demographic created",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingUserIDKey, principal.UserID),
	)

	created, err := uc.DemographicRepository.FindByUserName(ctx, principal.UserName)
	if err != nil {
		return nil, err
	}
	return uc.buildDemographicResponse(ctx, created), nil
}

func (uc *demographicUsecase) UpdateDemographic(ctx context.Context, principal *models.Principal, demographicID string, request *requests.Demographic) (*responses.DemographicResponse, error) {
	demographic, err := uc.DemographicRepository.FindByID(ctx, demographicID)
	if err != nil {
		return nil, err
	}
	if demographic == nil {
		return nil, exceptions.ErrDemographicNotExist(nil)
	}
	return uc.applyUpdate(ctx, demographic, principal, request)
}

func (uc *demographicUsecase) applyUpdate(ctx context.Context, demographic *models.Demographic, principal *models.Principal, request *requests.Demographic) (*responses.DemographicResponse, error) {
	previousUserName := demographic.UserName
	if request.UserName != "" && request.UserName != demographic.UserName {
		existingUser, err := uc.UserProvider.FindByUsername(ctx, request.UserName)
		if err != nil {
			return nil, err
		}
		if existingUser != nil {
			return nil, exceptions.ErrUsernameAlreadyExist(nil)
		}
		demographic.UserName = request.UserName
	}

	if request.FirstName != "" {
		demographic.FirstName = request.FirstName
	}
	if request.LastName != "" {
		demographic.LastName = request.LastName
	}
	if request.DateOfBirth != "" {
		demographic.DateOfBirth = request.DateOfBirth
	}
	if request.Gender != "" {
		demographic.Gender = request.Gender
	}
	if request.BloodGroup != "" {
		demographic.BloodGroup = request.BloodGroup
	}
	if request.MaritalStatus != "" {
		demographic.MaritalStatus = request.MaritalStatus
	}
	if request.Height > 0 {
		demographic.Height = request.Height
	}
	if request.Weight > 0 {
		demographic.Weight = request.Weight
	}
	if request.Occupation != "" {
		demographic.Occupation = request.Occupation
	}
	if request.Address != "" {
		demographic.Address = request.Address
	}
	if request.City != "" {
		demographic.City = request.City
	}
	if request.State != "" {
		demographic.State = request.State
	}
	if request.ZipCode != "" {
		demographic.ZipCode = request.ZipCode
	}
	if request.EmergencyContact != "" {
		demographic.EmergencyContact = request.EmergencyContact
	}

	if len(request.ProfilePicture) > 0 {
		objectName, err := uc.uploadProfilePicture(ctx, principal.UserName, request)
		if err != nil {
			return nil, err
		}
		demographic.ProfilePicturePath = objectName
	}

	if err := uc.DemographicRepository.UpdateDemographic(ctx, demographic); err != nil {
		return nil, err
	}

	// A username carried in the payload renames the account document in a
	// second write. There is no transaction spanning both documents.
	if demographic.UserName != previousUserName {
		if err := uc.UserProvider.UpdateUserName(ctx, previousUserName, demographic.UserName); err != nil {
			return nil, err
		}
	}

	return uc.buildDemographicResponse(ctx, demographic), nil
}

func (uc *demographicUsecase) uploadProfilePicture(ctx context.Context, userName string, request *requests.Demographic) (string, error) {
	if !utils.IsAllowedImageExtension(request.ProfilePictureName, constvars.ImageAllowedProfilePictureFormats) {
		return "", exceptions.ErrImageValidation(errors.New("unsupported extension"), constvars.ErrClientInvalidImageType)
	}

	maxSize := uc.InternalConfig.Storage.ProfilePictureMaxSizeInMB * 1024 * 1024
	if int64(len(request.ProfilePicture)) > maxSize {
		return "", exceptions.ErrImageValidation(errors.New("file too large"), constvars.ErrClientImageTooLarge)
	}

	fileExtension := strings.ToLower(filepath.Ext(request.ProfilePictureName))
	objectName := utils.GenerateFileName("profile", userName, fileExtension)
	contentType := mime.TypeByExtension(fileExtension)

	err := uc.MinioStorage.UploadBytes(ctx, request.ProfilePicture, uc.InternalConfig.Storage.ProfilePictureBucketName, objectName, contentType)
	if err != nil {
		return "", err
	}
	return objectName, nil
}

func (uc *demographicUsecase) buildDemographicResponse(ctx context.Context, demographic *models.Demographic) *responses.DemographicResponse {
	response := &responses.DemographicResponse{
		ID:               demographic.ID.Hex(),
		UserName:         demographic.UserName,
		FirstName:        demographic.FirstName,
		LastName:         demographic.LastName,
		DateOfBirth:      demographic.DateOfBirth,
		Gender:           demographic.Gender,
		BloodGroup:       demographic.BloodGroup,
		MaritalStatus:    demographic.MaritalStatus,
		Height:           demographic.Height,
		Weight:           demographic.Weight,
		Occupation:       demographic.Occupation,
		Address:          demographic.Address,
		City:             demographic.City,
		State:            demographic.State,
		ZipCode:          demographic.ZipCode,
		EmergencyContact: demographic.EmergencyContact,
	}

	if demographic.ProfilePicturePath != "" {
		expiry := time.Duration(uc.InternalConfig.Storage.PresignedURLExpiryInHours) * time.Hour
		url, err := uc.MinioStorage.PresignedGetURL(ctx, uc.InternalConfig.Storage.ProfilePictureBucketName, demographic.ProfilePicturePath, expiry)
		if err != nil {
			uc.Logger.Warn("failed to presign profile picture url",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
				zap.Error(err),
			)
		} else {
			response.ProfilePictureURL = url
		}
	}

	return response
}
