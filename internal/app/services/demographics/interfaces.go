package demographics

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
)

type DemographicUsecase interface {
	GetDemographic(ctx context.Context, principal *models.Principal) (interface{}, error)
	CreateDemographic(ctx context.Context, principal *models.Principal, request *requests.Demographic) (*responses.DemographicResponse, error)
	UpdateDemographic(ctx context.Context, principal *models.Principal, demographicID string, request *requests.Demographic) (*responses.DemographicResponse, error)
}

type DemographicRepository interface {
	CreateDemographic(ctx context.Context, demographic *models.Demographic) (string, error)
	FindByID(ctx context.Context, demographicID string) (*models.Demographic, error)
	FindByUserName(ctx context.Context, userName string) (*models.Demographic, error)
	UpdateDemographic(ctx context.Context, demographic *models.Demographic) error
	UpdateUserName(ctx context.Context, oldUserName, newUserName string) error
}

// UserProvider is the slice of the user store this package needs: the
// fallback payload and the rename cascade.
type UserProvider interface {
	FindByID(ctx context.Context, userID string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateUserName(ctx context.Context, oldUserName, newUserName string) error
}
