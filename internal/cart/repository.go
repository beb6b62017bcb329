package cart

import (
	"context"

	"nutribites-storefront/internal/domain"
)

// State is the persisted subset of the cart session: the remote cart
// reference and the local lines. UI flags never reach storage.
type State struct {
	RemoteCartID string            `json:"remoteCartId,omitempty"`
	Lines        []domain.CartLine `json:"lines"`
}

// Repository is the serialize/deserialize boundary for cart sessions.
// Load runs once at store construction; Save runs after every mutation.
type Repository interface {
	Load(ctx context.Context) (State, error)
	Save(ctx context.Context, state State) error
}
