package identity

import "context"

// ExternalIdentity is the subset of provider token claims the platform
// cares about.
type ExternalIdentity struct {
	Subject string
	Email   string
	Name    string
}

// TokenVerifier validates an externally issued ID token and extracts
// the asserted identity.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*ExternalIdentity, error)
}
