package session

import (
	"context"
	"log"
	"sync"

	"nutribites-storefront/internal/cart"
	"nutribites-storefront/internal/domain"
)

// State of the remote cart reconciliation.
type State int

const (
	// Unconfigured means no backend credentials exist. Terminal; the
	// session runs on local lines only and never touches the network.
	Unconfigured State = iota
	// Initializing means credentials exist but no remote cart has been
	// established yet. A session stuck here keeps working locally.
	Initializing
	// Ready means a remote cart is established and its id cached.
	Ready
)

func (s State) String() string {
	switch s {
	case Unconfigured:
		return "unconfigured"
	case Initializing:
		return "initializing"
	case Ready:
		return "ready"
	default:
		return "unknown"
	}
}

// RemoteCartAPI is the slice of the storefront client the bootstrap
// needs. Cart returning (nil, nil) means the backend reports the cart as
// gone.
type RemoteCartAPI interface {
	CreateCart(ctx context.Context) (*domain.RemoteCart, error)
	Cart(ctx context.Context, cartID string) (*domain.RemoteCart, error)
}

// Bootstrap reconciles the persisted remote cart reference with the
// backend at session start.
type Bootstrap struct {
	mu     sync.Mutex
	store  *cart.Store
	remote RemoteCartAPI
	logger *log.Logger
	state  State
}

// NewBootstrap with a nil remote yields a terminal Unconfigured session.
func NewBootstrap(store *cart.Store, remote RemoteCartAPI, logger *log.Logger) *Bootstrap {
	state := Unconfigured
	if remote != nil {
		state = Initializing
	}
	return &Bootstrap{store: store, remote: remote, logger: logger, state: state}
}

func (b *Bootstrap) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Initialize runs the reconciliation: fetch the persisted cart if its id
// survives, fall through to creating a fresh cart when the id is absent
// or the backend reports the cart expired, and on any call failure retry
// cart creation exactly once. A second failure leaves the session in
// Initializing; local cart operation is never blocked by any of this.
// Safe to invoke repeatedly: an established cart resolves through the
// fetch-success path as a cheap refresh.
func (b *Bootstrap) Initialize(ctx context.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == Unconfigured {
		return
	}

	b.store.SetLoading(true)
	defer b.store.SetLoading(false)

	if err := b.establish(ctx); err != nil {
		if b.logger != nil {
			b.logger.Printf("initialize remote cart: %v", err)
		}
		if err := b.createFresh(ctx); err != nil && b.logger != nil {
			b.logger.Printf("create replacement cart: %v", err)
		}
	}
}

func (b *Bootstrap) establish(ctx context.Context) error {
	if id := b.store.RemoteCartID(); id != "" {
		remote, err := b.remote.Cart(ctx, id)
		if err != nil {
			return err
		}
		if remote != nil {
			b.store.SetRemoteCart(ctx, remote)
			b.state = Ready
			return nil
		}
		// The backend no longer knows this cart; treat the id as absent.
	}
	return b.createFresh(ctx)
}

func (b *Bootstrap) createFresh(ctx context.Context) error {
	remote, err := b.remote.CreateCart(ctx)
	if err != nil {
		return err
	}
	b.store.SetRemoteCart(ctx, remote)
	b.store.SetRemoteCartID(ctx, remote.ID)
	b.state = Ready
	return nil
}
