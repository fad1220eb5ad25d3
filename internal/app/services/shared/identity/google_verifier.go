package identity

import (
	"context"
	"medibook-service/internal/pkg/exceptions"

	"google.golang.org/api/idtoken"
)

type googleVerifier struct {
	audience string
}

func NewGoogleVerifier(audience string) TokenVerifier {
	return &googleVerifier{audience: audience}
}

func (v *googleVerifier) Verify(ctx context.Context, token string) (*ExternalIdentity, error) {
	payload, err := idtoken.Validate(ctx, token, v.audience)
	if err != nil {
		return nil, exceptions.ErrTokenInvalidOrExpired(err)
	}

	id := &ExternalIdentity{Subject: payload.Subject}
	if email, ok := payload.Claims["email"].(string); ok {
		id.Email = email
	}
	if name, ok := payload.Claims["name"].(string); ok {
		id.Name = name
	}
	return id, nil
}
