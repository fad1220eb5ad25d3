package users

import (
	"context"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user *models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *mockUserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepository) FindByMobileNumber(ctx context.Context, mobileNumber string) (*models.User, error) {
	args := m.Called(ctx, mobileNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepository) FindByEmailOrUsername(ctx context.Context, identifier string) (*models.User, error) {
	args := m.Called(ctx, identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepository) UpdateUser(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) UpdateUserName(ctx context.Context, oldUserName, newUserName string) error {
	args := m.Called(ctx, oldUserName, newUserName)
	return args.Error(0)
}

func (m *mockUserRepository) DeleteByID(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

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

func testInternalConfig() *config.InternalConfig {
	internalConfig := &config.InternalConfig{}
	internalConfig.JWT.Secret = "test-secret"
	internalConfig.JWT.ExpTimeInHour = 1
	return internalConfig
}

func asCustomError(t *testing.T, err error) *exceptions.CustomError {
	t.Helper()
	customError, ok := err.(*exceptions.CustomError)
	assert.True(t, ok)
	return customError
}

func TestRegister(t *testing.T) {
	registerRequest := &requests.RegisterUser{
		UserName:     "janedoe",
		Email:        "jane@example.com",
		Password:     "Sup3rSecret",
		MobileNumber: "9811230099",
	}

	t.Run("rejects duplicate username first", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		userRepo.On("FindByUsername", mock.Anything, "janedoe").Return(&models.User{UserName: "janedoe"}, nil)

		uc := NewUserUsecase(userRepo, new(mockDemographicRepository), testInternalConfig(), zap.NewNop())
		_, _, err := uc.Register(context.Background(), registerRequest)

		customError := asCustomError(t, err)
		assert.Equal(t, http.StatusBadRequest, customError.StatusCode)
		assert.Equal(t, constvars.ErrClientUsernameAlreadyExists, customError.ClientMessage)
		userRepo.AssertNotCalled(t, "FindByEmail")
	})

	t.Run("rejects duplicate email before mobile", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		userRepo.On("FindByUsername", mock.Anything, "janedoe").Return(nil, nil)
		userRepo.On("FindByEmail", mock.Anything, "jane@example.com").Return(&models.User{Email: "jane@example.com"}, nil)

		uc := NewUserUsecase(userRepo, new(mockDemographicRepository), testInternalConfig(), zap.NewNop())
		_, _, err := uc.Register(context.Background(), registerRequest)

		customError := asCustomError(t, err)
		assert.Equal(t, constvars.ErrClientEmailAlreadyExists, customError.ClientMessage)
		userRepo.AssertNotCalled(t, "FindByMobileNumber")
	})

	t.Run("mobile number is optional", func(t *testing.T) {
		userID := primitive.NewObjectID()
		userRepo := new(mockUserRepository)
		userRepo.On("FindByUsername", mock.Anything, "janedoe").Return(nil, nil)
		userRepo.On("FindByEmail", mock.Anything, "jane@example.com").Return(nil, nil)
		userRepo.On("CreateUser", mock.Anything, mock.Anything).Return(userID.Hex(), nil)
		userRepo.On("FindByID", mock.Anything, userID.Hex()).Return(&models.User{
			ID:       userID,
			UserName: "janedoe",
			Email:    "jane@example.com",
		}, nil)

		uc := NewUserUsecase(userRepo, new(mockDemographicRepository), testInternalConfig(), zap.NewNop())
		_, token, err := uc.Register(context.Background(), &requests.RegisterUser{
			UserName: "janedoe",
			Email:    "jane@example.com",
			Password: "Sup3rSecret",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		userRepo.AssertNotCalled(t, "FindByMobileNumber")
	})

	t.Run("creates user and returns token", func(t *testing.T) {
		userID := primitive.NewObjectID()
		userRepo := new(mockUserRepository)
		userRepo.On("FindByUsername", mock.Anything, "janedoe").Return(nil, nil)
		userRepo.On("FindByEmail", mock.Anything, "jane@example.com").Return(nil, nil)
		userRepo.On("FindByMobileNumber", mock.Anything, "9811230099").Return(nil, nil)
		userRepo.On("CreateUser", mock.Anything, mock.MatchedBy(func(user *models.User) bool {
			return user.UserName == "janedoe" &&
				user.AuthProvider == constvars.AuthTypeLocal &&
				user.Password != "Sup3rSecret"
		})).Return(userID.Hex(), nil)
		userRepo.On("FindByID", mock.Anything, userID.Hex()).Return(&models.User{
			ID:       userID,
			UserName: "janedoe",
			Email:    "jane@example.com",
		}, nil)

		uc := NewUserUsecase(userRepo, new(mockDemographicRepository), testInternalConfig(), zap.NewNop())
		response, token, err := uc.Register(context.Background(), registerRequest)

		assert.NoError(t, err)
		assert.Equal(t, "janedoe", response.UserName)
		assert.NotEmpty(t, token)

		tokenUserID, tokenUserName, err := utils.ParseAuthJWT(token, "test-secret")
		assert.NoError(t, err)
		assert.Equal(t, userID.Hex(), tokenUserID)
		assert.Equal(t, "janedoe", tokenUserName)
	})
}

func TestLogin(t *testing.T) {
	hashedPassword, _ := utils.HashPassword("Sup3rSecret")
	storedUser := &models.User{
		ID:       primitive.NewObjectID(),
		UserName: "janedoe",
		Email:    "jane@example.com",
		Password: hashedPassword,
	}

	t.Run("unknown identifier returns not found", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		userRepo.On("FindByEmailOrUsername", mock.Anything, "ghost").Return(nil, nil)

		uc := NewUserUsecase(userRepo, new(mockDemographicRepository), testInternalConfig(), zap.NewNop())
		_, _, err := uc.Login(context.Background(), &requests.LoginUser{EmailOrUsername: "ghost", Password: "whatever"})

		customError := asCustomError(t, err)
		assert.Equal(t, http.StatusNotFound, customError.StatusCode)
		assert.Equal(t, constvars.ErrClientUserNotFound, customError.ClientMessage)
	})

	t.Run("wrong password returns unauthorized", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		userRepo.On("FindByEmailOrUsername", mock.Anything, "janedoe").Return(storedUser, nil)

		uc := NewUserUsecase(userRepo, new(mockDemographicRepository), testInternalConfig(), zap.NewNop())
		_, _, err := uc.Login(context.Background(), &requests.LoginUser{EmailOrUsername: "janedoe", Password: "wrong"})

		customError := asCustomError(t, err)
		assert.Equal(t, http.StatusUnauthorized, customError.StatusCode)
		assert.Equal(t, constvars.ErrClientInvalidPassword, customError.ClientMessage)
	})

	t.Run("valid credentials return token", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		userRepo.On("FindByEmailOrUsername", mock.Anything, "jane@example.com").Return(storedUser, nil)

		uc := NewUserUsecase(userRepo, new(mockDemographicRepository), testInternalConfig(), zap.NewNop())
		response, token, err := uc.Login(context.Background(), &requests.LoginUser{EmailOrUsername: "jane@example.com", Password: "Sup3rSecret"})

		assert.NoError(t, err)
		assert.Equal(t, storedUser.ID.Hex(), response.ID)
		assert.NotEmpty(t, token)
	})
}

func TestFirebaseSignin(t *testing.T) {
	signinRequest := &requests.FirebaseSignin{
		UserName: "janedoe",
		Email:    "jane@example.com",
		UID:      "firebase-uid-123",
	}

	t.Run("first contact creates the account", func(t *testing.T) {
		userID := primitive.NewObjectID()
		userRepo := new(mockUserRepository)
		userRepo.On("FindByEmail", mock.Anything, "jane@example.com").Return(nil, nil)
		userRepo.On("FindByUsername", mock.Anything, "janedoe").Return(nil, nil)
		userRepo.On("CreateUser", mock.Anything, mock.MatchedBy(func(user *models.User) bool {
			return user.AuthProvider == constvars.AuthTypeExternal &&
				utils.CheckPasswordHash("firebase-uid-123", user.Password)
		})).Return(userID.Hex(), nil)
		userRepo.On("FindByID", mock.Anything, userID.Hex()).Return(&models.User{
			ID:           userID,
			UserName:     "janedoe",
			Email:        "jane@example.com",
			AuthProvider: constvars.AuthTypeExternal,
		}, nil)

		uc := NewUserUsecase(userRepo, new(mockDemographicRepository), testInternalConfig(), zap.NewNop())
		response, token, err := uc.FirebaseSignin(context.Background(), signinRequest)

		assert.NoError(t, err)
		assert.Equal(t, constvars.AuthTypeExternal, response.AuthProvider)
		assert.NotEmpty(t, token)
	})

	t.Run("returning account logs in with matching uid", func(t *testing.T) {
		hashedUID, _ := utils.HashPassword("firebase-uid-123")
		userRepo := new(mockUserRepository)
		userRepo.On("FindByEmail", mock.Anything, "jane@example.com").Return(&models.User{
			ID:           primitive.NewObjectID(),
			UserName:     "janedoe",
			Email:        "jane@example.com",
			Password:     hashedUID,
			AuthProvider: constvars.AuthTypeExternal,
		}, nil)

		uc := NewUserUsecase(userRepo, new(mockDemographicRepository), testInternalConfig(), zap.NewNop())
		_, token, err := uc.FirebaseSignin(context.Background(), signinRequest)

		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		userRepo.AssertNotCalled(t, "CreateUser")
	})

	t.Run("existing account signs in without a credential check", func(t *testing.T) {
		hashedUID, _ := utils.HashPassword("someone-else")
		userRepo := new(mockUserRepository)
		userRepo.On("FindByEmail", mock.Anything, "jane@example.com").Return(&models.User{
			ID:       primitive.NewObjectID(),
			UserName: "janedoe",
			Email:    "jane@example.com",
			Password: hashedUID,
		}, nil)

		uc := NewUserUsecase(userRepo, new(mockDemographicRepository), testInternalConfig(), zap.NewNop())
		_, token, err := uc.FirebaseSignin(context.Background(), signinRequest)

		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		userRepo.AssertNotCalled(t, "CreateUser")
	})
}

func TestUpdateUser(t *testing.T) {
	userID := primitive.NewObjectID()

	freshUser := func() *models.User {
		return &models.User{
			ID:           userID,
			UserName:     "janedoe",
			Email:        "jane@example.com",
			MobileNumber: "9811230099",
		}
	}

	t.Run("username change renames the demographic document", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		userRepo.On("FindByID", mock.Anything, userID.Hex()).Return(freshUser(), nil)
		userRepo.On("FindByUsername", mock.Anything, "janedough").Return(nil, nil)
		userRepo.On("UpdateUser", mock.Anything, mock.Anything).Return(nil)

		demographicRepo := new(mockDemographicRepository)
		demographicRepo.On("UpdateUserName", mock.Anything, "janedoe", "janedough").Return(nil)

		uc := NewUserUsecase(userRepo, demographicRepo, testInternalConfig(), zap.NewNop())
		response, err := uc.UpdateUser(context.Background(), userID.Hex(), &requests.UpdateUser{UserName: "janedough"})

		assert.NoError(t, err)
		assert.Equal(t, "janedough", response.UserName)
		demographicRepo.AssertExpectations(t)
	})

	t.Run("unchanged username skips the rename", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		userRepo.On("FindByID", mock.Anything, userID.Hex()).Return(freshUser(), nil)
		userRepo.On("UpdateUser", mock.Anything, mock.Anything).Return(nil)

		demographicRepo := new(mockDemographicRepository)

		uc := NewUserUsecase(userRepo, demographicRepo, testInternalConfig(), zap.NewNop())
		_, err := uc.UpdateUser(context.Background(), userID.Hex(), &requests.UpdateUser{UserName: "janedoe"})

		assert.NoError(t, err)
		demographicRepo.AssertNotCalled(t, "UpdateUserName")
	})

	t.Run("taken username is rejected", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		userRepo.On("FindByID", mock.Anything, userID.Hex()).Return(freshUser(), nil)
		userRepo.On("FindByUsername", mock.Anything, "taken").Return(&models.User{UserName: "taken"}, nil)

		uc := NewUserUsecase(userRepo, new(mockDemographicRepository), testInternalConfig(), zap.NewNop())
		_, err := uc.UpdateUser(context.Background(), userID.Hex(), &requests.UpdateUser{UserName: "taken"})

		customError := asCustomError(t, err)
		assert.Equal(t, constvars.ErrClientUsernameAlreadyExists, customError.ClientMessage)
		userRepo.AssertNotCalled(t, "UpdateUser")
	})
}
