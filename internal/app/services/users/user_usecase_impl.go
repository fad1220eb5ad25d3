package users

import (
	"context"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/models"
	"medibook-service/internal/app/services/demographics"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type userUsecase struct {
	UserRepository        UserRepository
	DemographicRepository demographics.DemographicRepository
	InternalConfig        *config.InternalConfig
	Logger                *zap.Logger
}

func NewUserUsecase(
	userRepository UserRepository,
	demographicRepository demographics.DemographicRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) UserUsecase {
	return &userUsecase{
		UserRepository:        userRepository,
		DemographicRepository: demographicRepository,
		InternalConfig:        internalConfig,
		Logger:                logger,
	}
}

func (uc *userUsecase) Register(ctx context.Context, request *requests.RegisterUser) (*responses.UserResponse, string, error) {
	// Duplicates are reported in a fixed order: username, email, mobile.
	existingUser, err := uc.UserRepository.FindByUsername(ctx, request.UserName)
	if err != nil {
		return nil, "", err
	}
	if existingUser != nil {
		return nil, "", exceptions.ErrUsernameAlreadyExist(nil)
	}

	existingUser, err = uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, "", err
	}
	if existingUser != nil {
		return nil, "", exceptions.ErrEmailAlreadyExist(nil)
	}

	if request.MobileNumber != "" {
		existingUser, err = uc.UserRepository.FindByMobileNumber(ctx, request.MobileNumber)
		if err != nil {
			return nil, "", err
		}
		if existingUser != nil {
			return nil, "", exceptions.ErrMobileAlreadyExist(nil)
		}
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, "", exceptions.ErrHashPassword(err)
	}

	user := &models.User{
		UserName:     request.UserName,
		Email:        request.Email,
		Password:     hashedPassword,
		MobileNumber: request.MobileNumber,
		AuthProvider: constvars.AuthTypeLocal,
	}
	userID, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, "", err
	}

	token, err := utils.GenerateAuthJWT(userID, user.UserName, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, "", err
	}

	uc.Logger.Info("user registered",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	created, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, "", err
	}
	return buildUserResponse(created), token, nil
}

func (uc *userUsecase) Login(ctx context.Context, request *requests.LoginUser) (*responses.UserResponse, string, error) {
	user, err := uc.UserRepository.FindByEmailOrUsername(ctx, request.EmailOrUsername)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", exceptions.ErrUserNotFound(nil)
	}

	if !utils.CheckPasswordHash(request.Password, user.Password) {
		uc.Logger.Warn("login rejected",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingUserIDKey, user.ID.Hex()),
		)
		return nil, "", exceptions.ErrInvalidPassword(nil)
	}

	token, err := utils.GenerateAuthJWT(user.ID.Hex(), user.UserName, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, "", err
	}

	return buildUserResponse(user), token, nil
}

// FirebaseSignin registers the account on first contact and logs it in
// afterwards. The provider UID is stored hashed in the password field so
// such accounts share the credential path with local ones.
func (uc *userUsecase) FirebaseSignin(ctx context.Context, request *requests.FirebaseSignin) (*responses.UserResponse, string, error) {
	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, "", err
	}

	if user == nil {
		existingUser, err := uc.UserRepository.FindByUsername(ctx, request.UserName)
		if err != nil {
			return nil, "", err
		}
		if existingUser != nil {
			return nil, "", exceptions.ErrUsernameAlreadyExist(nil)
		}

		hashedUID, err := utils.HashPassword(request.UID)
		if err != nil {
			return nil, "", exceptions.ErrHashPassword(err)
		}

		user = &models.User{
			UserName:     request.UserName,
			Email:        request.Email,
			Password:     hashedUID,
			AuthProvider: constvars.AuthTypeExternal,
		}
		userID, err := uc.UserRepository.CreateUser(ctx, user)
		if err != nil {
			return nil, "", err
		}

		uc.Logger.Info("external account created",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingUserIDKey, userID),
		)

		user, err = uc.UserRepository.FindByID(ctx, userID)
		if err != nil {
			return nil, "", err
		}
	}

	// An existing account found by email signs in without a credential
	// check, the provider already asserted the identity.

	token, err := utils.GenerateAuthJWT(user.ID.Hex(), user.UserName, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, "", err
	}

	return buildUserResponse(user), token, nil
}

func (uc *userUsecase) GetProfile(ctx context.Context, principal *models.Principal) (*responses.UserResponse, error) {
	user, err := uc.UserRepository.FindByID(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}
	return buildUserResponse(user), nil
}

func (uc *userUsecase) UpdateUser(ctx context.Context, userID string, request *requests.UpdateUser) (*responses.UserResponse, error) {
	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	previousUserName := user.UserName

	if request.UserName != "" && request.UserName != user.UserName {
		existingUser, err := uc.UserRepository.FindByUsername(ctx, request.UserName)
		if err != nil {
			return nil, err
		}
		if existingUser != nil {
			return nil, exceptions.ErrUsernameAlreadyExist(nil)
		}
		user.UserName = request.UserName
	}

	if request.Email != "" && request.Email != user.Email {
		existingUser, err := uc.UserRepository.FindByEmail(ctx, request.Email)
		if err != nil {
			return nil, err
		}
		if existingUser != nil {
			return nil, exceptions.ErrEmailAlreadyExist(nil)
		}
		user.Email = request.Email
	}

	if request.MobileNumber != "" && request.MobileNumber != user.MobileNumber {
		existingUser, err := uc.UserRepository.FindByMobileNumber(ctx, request.MobileNumber)
		if err != nil {
			return nil, err
		}
		if existingUser != nil {
			return nil, exceptions.ErrMobileAlreadyExist(nil)
		}
		user.MobileNumber = request.MobileNumber
	}

	if request.Password != "" {
		hashedPassword, err := utils.HashPassword(request.Password)
		if err != nil {
			return nil, exceptions.ErrHashPassword(err)
		}
		user.Password = hashedPassword
	}

	if err := uc.UserRepository.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	// The demographic document references the username, rename it in a
	// second write. There is no transaction spanning both documents.
	if user.UserName != previousUserName {
		if err := uc.DemographicRepository.UpdateUserName(ctx, previousUserName, user.UserName); err != nil {
			return nil, err
		}
	}

	return buildUserResponse(user), nil
}

func (uc *userUsecase) DeleteUser(ctx context.Context, userID string) error {
	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return exceptions.ErrUserNotExist(nil)
	}

	if err := uc.UserRepository.DeleteByID(ctx, userID); err != nil {
		return err
	}

	uc.Logger.Info("user deleted",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingUserIDKey, userID),
	)
	return nil
}

func buildUserResponse(user *models.User) *responses.UserResponse {
	return &responses.UserResponse{
		ID:           user.ID.Hex(),
		UserName:     user.UserName,
		Email:        user.Email,
		MobileNumber: user.MobileNumber,
		AuthProvider: user.AuthProvider,
		CreatedAt:    user.CreatedAt.Format(time.RFC3339),
	}
}
