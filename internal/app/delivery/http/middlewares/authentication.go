package middlewares

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// Authenticate accepts two token shapes on the same header: externally
// issued ID tokens are tried first, then locally signed session tokens.
// External identities must resolve to an existing account by email.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractToken(r)
		if token == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		principal, err := m.resolvePrincipal(r.Context(), token)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(nil))
			return
		}

		m.Log.Debug("request authenticated",
			zap.Any(constvars.LoggingRequestIDKey, r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY)),
			zap.String(constvars.LoggingAuthTypeKey, principal.AuthType),
			zap.String(constvars.LoggingUserIDKey, principal.UserID),
		)

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_PRINCIPAL_KEY, principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middlewares) resolvePrincipal(ctx context.Context, token string) (*models.Principal, error) {
	if externalIdentity, err := m.TokenVerifier.Verify(ctx, token); err == nil {
		user, err := m.UserRepository.FindByEmail(ctx, externalIdentity.Email)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, exceptions.ErrTokenInvalidOrExpired(nil)
		}
		return &models.Principal{
			UserID:   user.ID.Hex(),
			UserName: user.UserName,
			Email:    user.Email,
			AuthType: constvars.AuthTypeExternal,
		}, nil
	}

	userID, username, err := utils.ParseAuthJWT(token, m.InternalConfig.JWT.Secret)
	if err != nil {
		return nil, err
	}
	return &models.Principal{
		UserID:   userID,
		UserName: username,
		AuthType: constvars.AuthTypeLocal,
	}, nil
}

func extractToken(r *http.Request) string {
	if token := r.Header.Get(constvars.HeaderXAuthToken); token != "" {
		return token
	}

	// The Authorization value is the token itself when the Bearer
	// prefix is absent.
	authHeader := r.Header.Get(constvars.HeaderAuthorization)
	if strings.HasPrefix(authHeader, constvars.BearerTokenPrefix) {
		return strings.TrimPrefix(authHeader, constvars.BearerTokenPrefix)
	}
	return authHeader
}
