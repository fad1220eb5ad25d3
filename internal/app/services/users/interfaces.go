package users

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
)

type UserUsecase interface {
	Register(ctx context.Context, request *requests.RegisterUser) (*responses.UserResponse, string, error)
	Login(ctx context.Context, request *requests.LoginUser) (*responses.UserResponse, string, error)
	FirebaseSignin(ctx context.Context, request *requests.FirebaseSignin) (*responses.UserResponse, string, error)
	GetProfile(ctx context.Context, principal *models.Principal) (*responses.UserResponse, error)
	UpdateUser(ctx context.Context, userID string, request *requests.UpdateUser) (*responses.UserResponse, error)
	DeleteUser(ctx context.Context, userID string) error
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) (string, error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByMobileNumber(ctx context.Context, mobileNumber string) (*models.User, error)
	FindByEmailOrUsername(ctx context.Context, identifier string) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	UpdateUserName(ctx context.Context, oldUserName, newUserName string) error
	DeleteByID(ctx context.Context, userID string) error
}
