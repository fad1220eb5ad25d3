package utils

import (
	"context"

	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
)

func GetPrincipal(ctx context.Context) (*models.Principal, bool) {
	principal, ok := ctx.Value(constvars.CONTEXT_PRINCIPAL_KEY).(*models.Principal)
	return principal, ok
}
