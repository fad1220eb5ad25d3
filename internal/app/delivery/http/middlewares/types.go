package middlewares

import (
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/services/shared/identity"
	"medibook-service/internal/app/services/shared/ratelimiter"
	"medibook-service/internal/app/services/users"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log             *zap.Logger
	InternalConfig  *config.InternalConfig
	UserRepository  users.UserRepository
	TokenVerifier   identity.TokenVerifier
	ResourceLimiter *ratelimiter.ResourceLimiter
}
