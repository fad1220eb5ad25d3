package demographics

import (
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"testing"
	"time"

	"medibook-service/internal/app/config"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type mockDemographicRepository struct {
	mock.Mock
}

func (m *mockDemographicRepository) CreateDemographic(ctx context.Context, demographic *models.Demographic) (string, error) {
	args := m.Called(ctx, demographic)
	return args.String(0), args.Error(1)
}

func (m *mockDemographicRepository) FindByUserName(ctx context.Context, userName string) (*models.Demographic, error) {
	args := m.Called(ctx, userName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Demographic), args.Error(1)
}

func (m *mockDemographicRepository) FindByID(ctx context.Context, demographicID string) (*models.Demographic, error) {
	args := m.Called(ctx, demographicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Demographic), args.Error(1)
}

func (m *mockDemographicRepository) UpdateDemographic(ctx context.Context, demographic *models.Demographic) error {
	args := m.Called(ctx, demographic)
	return args.Error(0)
}

func (m *mockDemographicRepository) UpdateUserName(ctx context.Context, oldUserName, newUserName string) error {
	args := m.Called(ctx, oldUserName, newUserName)
	return args.Error(0)
}

type mockUserProvider struct {
	mock.Mock
}

func (m *mockUserProvider) FindByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserProvider) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserProvider) UpdateUserName(ctx context.Context, oldUserName, newUserName string) error {
	args := m.Called(ctx, oldUserName, newUserName)
	return args.Error(0)
}

type mockStorage struct {
	mock.Mock
}

func (m *mockStorage) UploadFile(ctx context.Context, file io.Reader, fileHeader *multipart.FileHeader, bucketName, objectName string) error {
	args := m.Called(ctx, file, fileHeader, bucketName, objectName)
	return args.Error(0)
}

func (m *mockStorage) UploadBytes(ctx context.Context, data []byte, bucketName, objectName, contentType string) error {
	args := m.Called(ctx, data, bucketName, objectName, contentType)
	return args.Error(0)
}

func (m *mockStorage) GetObject(ctx context.Context, bucketName, objectName string) (io.ReadCloser, error) {
	args := m.Called(ctx, bucketName, objectName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

func (m *mockStorage) PresignedGetURL(ctx context.Context, bucketName, objectName string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, bucketName, objectName, expiry)
	return args.String(0), args.Error(1)
}

func testDemographicConfig() *config.InternalConfig {
	internalConfig := &config.InternalConfig{}
	internalConfig.Storage.ProfilePictureBucketName = "profile-pictures"
	internalConfig.Storage.ProfilePictureMaxSizeInMB = 1
	internalConfig.Storage.PresignedURLExpiryInHours = 1
	return internalConfig
}

func TestGetDemographic(t *testing.T) {
	userID := primitive.NewObjectID()
	principal := &models.Principal{UserID: userID.Hex(), UserName: "janedoe"}

	t.Run("missing document falls back to the user record", func(t *testing.T) {
		demographicRepo := new(mockDemographicRepository)
		demographicRepo.On("FindByUserName", mock.Anything, "janedoe").Return(nil, nil)

		userProvider := new(mockUserProvider)
		userProvider.On("FindByID", mock.Anything, userID.Hex()).Return(&models.User{
			ID:       userID,
			UserName: "janedoe",
			Email:    "jane@example.com",
		}, nil)

		uc := NewDemographicUsecase(demographicRepo, userProvider, new(mockStorage), testDemographicConfig(), zap.NewNop())
		result, err := uc.GetDemographic(context.Background(), principal)

		assert.NoError(t, err)
		fallback, ok := result.(*responses.DemographicFallback)
		assert.True(t, ok)
		assert.Equal(t, constvars.NoDemographicsFoundMessage, fallback.Message)
		assert.Equal(t, "janedoe", fallback.User.UserName)
	})

	t.Run("existing document carries a presigned picture url", func(t *testing.T) {
		demographicRepo := new(mockDemographicRepository)
		demographicRepo.On("FindByUserName", mock.Anything, "janedoe").Return(&models.Demographic{
			ID:                 primitive.NewObjectID(),
			UserName:           "janedoe",
			FirstName:          "Jane",
			ProfilePicturePath: "profile_janedoe_20260828.png",
		}, nil)

		minioStorage := new(mockStorage)
		minioStorage.On("PresignedGetURL", mock.Anything, "profile-pictures", "profile_janedoe_20260828.png", time.Hour).
			Return("https://minio.example/profile-pictures/profile_janedoe_20260828.png", nil)

		uc := NewDemographicUsecase(demographicRepo, new(mockUserProvider), minioStorage, testDemographicConfig(), zap.NewNop())
		result, err := uc.GetDemographic(context.Background(), principal)

		assert.NoError(t, err)
		response, ok := result.(*responses.DemographicResponse)
		assert.True(t, ok)
		assert.Equal(t, "Jane", response.FirstName)
		assert.NotEmpty(t, response.ProfilePictureURL)
	})

	t.Run("presign failure still returns the document", func(t *testing.T) {
		demographicRepo := new(mockDemographicRepository)
		demographicRepo.On("FindByUserName", mock.Anything, "janedoe").Return(&models.Demographic{
			UserName:           "janedoe",
			ProfilePicturePath: "profile_janedoe_20260828.png",
		}, nil)

		minioStorage := new(mockStorage)
		minioStorage.On("PresignedGetURL", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return("", assert.AnError)

		uc := NewDemographicUsecase(demographicRepo, new(mockUserProvider), minioStorage, testDemographicConfig(), zap.NewNop())
		result, err := uc.GetDemographic(context.Background(), principal)

		assert.NoError(t, err)
		response := result.(*responses.DemographicResponse)
		assert.Empty(t, response.ProfilePictureURL)
	})
}

func TestCreateDemographic(t *testing.T) {
	principal := &models.Principal{UserID: primitive.NewObjectID().Hex(), UserName: "janedoe"}

	t.Run("repeat create updates the existing document", func(t *testing.T) {
		existing := &models.Demographic{
			ID:       primitive.NewObjectID(),
			UserName: "janedoe",
			City:     "Jakarta",
		}
		demographicRepo := new(mockDemographicRepository)
		demographicRepo.On("FindByUserName", mock.Anything, "janedoe").Return(existing, nil)
		demographicRepo.On("UpdateDemographic", mock.Anything, mock.MatchedBy(func(demographic *models.Demographic) bool {
			return demographic.City == "Bandung"
		})).Return(nil)

		uc := NewDemographicUsecase(demographicRepo, new(mockUserProvider), new(mockStorage), testDemographicConfig(), zap.NewNop())
		response, err := uc.CreateDemographic(context.Background(), principal, &requests.Demographic{City: "Bandung"})

		assert.NoError(t, err)
		assert.Equal(t, "Bandung", response.City)
		demographicRepo.AssertNotCalled(t, "CreateDemographic")
	})

	t.Run("oversized profile picture is rejected", func(t *testing.T) {
		demographicRepo := new(mockDemographicRepository)
		demographicRepo.On("FindByUserName", mock.Anything, "janedoe").Return(nil, nil)

		request := &requests.Demographic{
			ProfilePicture:     make([]byte, 2*1024*1024),
			ProfilePictureName: "me.png",
		}

		uc := NewDemographicUsecase(demographicRepo, new(mockUserProvider), new(mockStorage), testDemographicConfig(), zap.NewNop())
		_, err := uc.CreateDemographic(context.Background(), principal, request)

		customError := err.(*exceptions.CustomError)
		assert.Equal(t, http.StatusBadRequest, customError.StatusCode)
		assert.Equal(t, constvars.ErrClientImageTooLarge, customError.ClientMessage)
	})

	t.Run("wrong picture extension is rejected", func(t *testing.T) {
		demographicRepo := new(mockDemographicRepository)
		demographicRepo.On("FindByUserName", mock.Anything, "janedoe").Return(nil, nil)

		request := &requests.Demographic{
			ProfilePicture:     []byte("not-an-image"),
			ProfilePictureName: "me.bmp",
		}

		uc := NewDemographicUsecase(demographicRepo, new(mockUserProvider), new(mockStorage), testDemographicConfig(), zap.NewNop())
		_, err := uc.CreateDemographic(context.Background(), principal, request)

		customError := err.(*exceptions.CustomError)
		assert.Equal(t, constvars.ErrClientInvalidImageType, customError.ClientMessage)
	})
}

func TestUpdateDemographic(t *testing.T) {
	principal := &models.Principal{UserID: primitive.NewObjectID().Hex(), UserName: "janedoe"}
	demographicID := primitive.NewObjectID()

	t.Run("missing document is not found", func(t *testing.T) {
		demographicRepo := new(mockDemographicRepository)
		demographicRepo.On("FindByID", mock.Anything, demographicID.Hex()).Return(nil, nil)

		uc := NewDemographicUsecase(demographicRepo, new(mockUserProvider), new(mockStorage), testDemographicConfig(), zap.NewNop())
		_, err := uc.UpdateDemographic(context.Background(), principal, demographicID.Hex(), &requests.Demographic{City: "Bandung"})

		customError := err.(*exceptions.CustomError)
		assert.Equal(t, http.StatusNotFound, customError.StatusCode)
		assert.Equal(t, constvars.ErrClientDemographicNotFound, customError.ClientMessage)
	})

	t.Run("empty fields keep their stored values", func(t *testing.T) {
		demographicRepo := new(mockDemographicRepository)
		demographicRepo.On("FindByID", mock.Anything, demographicID.Hex()).Return(&models.Demographic{
			ID:        demographicID,
			UserName:  "janedoe",
			FirstName: "Jane",
			City:      "Jakarta",
		}, nil)
		demographicRepo.On("UpdateDemographic", mock.Anything, mock.MatchedBy(func(demographic *models.Demographic) bool {
			return demographic.FirstName == "Jane" && demographic.City == "Bandung"
		})).Return(nil)

		uc := NewDemographicUsecase(demographicRepo, new(mockUserProvider), new(mockStorage), testDemographicConfig(), zap.NewNop())
		response, err := uc.UpdateDemographic(context.Background(), principal, demographicID.Hex(), &requests.Demographic{City: "Bandung"})

		assert.NoError(t, err)
		assert.Equal(t, "Jane", response.FirstName)
	})

	t.Run("username in the payload renames the account", func(t *testing.T) {
		demographicRepo := new(mockDemographicRepository)
		demographicRepo.On("FindByID", mock.Anything, demographicID.Hex()).Return(&models.Demographic{
			ID:       demographicID,
			UserName: "janedoe",
		}, nil)
		demographicRepo.On("UpdateDemographic", mock.Anything, mock.MatchedBy(func(demographic *models.Demographic) bool {
			return demographic.UserName == "janedough"
		})).Return(nil)

		userProvider := new(mockUserProvider)
		userProvider.On("FindByUsername", mock.Anything, "janedough").Return(nil, nil)
		userProvider.On("UpdateUserName", mock.Anything, "janedoe", "janedough").Return(nil)

		uc := NewDemographicUsecase(demographicRepo, userProvider, new(mockStorage), testDemographicConfig(), zap.NewNop())
		response, err := uc.UpdateDemographic(context.Background(), principal, demographicID.Hex(), &requests.Demographic{UserName: "janedough"})

		assert.NoError(t, err)
		assert.Equal(t, "janedough", response.UserName)
		userProvider.AssertExpectations(t)
	})

	t.Run("taken username is rejected before any write", func(t *testing.T) {
		demographicRepo := new(mockDemographicRepository)
		demographicRepo.On("FindByID", mock.Anything, demographicID.Hex()).Return(&models.Demographic{
			ID:       demographicID,
			UserName: "janedoe",
		}, nil)

		userProvider := new(mockUserProvider)
		userProvider.On("FindByUsername", mock.Anything, "taken").Return(&models.User{UserName: "taken"}, nil)

		uc := NewDemographicUsecase(demographicRepo, userProvider, new(mockStorage), testDemographicConfig(), zap.NewNop())
		_, err := uc.UpdateDemographic(context.Background(), principal, demographicID.Hex(), &requests.Demographic{UserName: "taken"})

		customError := err.(*exceptions.CustomError)
		assert.Equal(t, constvars.ErrClientUsernameAlreadyExists, customError.ClientMessage)
		demographicRepo.AssertNotCalled(t, "UpdateDemographic")
	})
}
