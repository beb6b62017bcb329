package cart

import (
	"context"
	"log"
	"sync"

	"github.com/shopspring/decimal"

	"nutribites-storefront/internal/domain"
)

// Snapshot is an immutable view of the store handed to subscribers and
// handlers. Drawer and loading flags are session UI state and are never
// persisted.
type Snapshot struct {
	RemoteCartID string             `json:"remoteCartId,omitempty"`
	RemoteCart   *domain.RemoteCart `json:"remoteCart,omitempty"`
	Lines        []domain.CartLine  `json:"lines"`
	DrawerOpen   bool               `json:"drawerOpen"`
	Loading      bool               `json:"loading"`
}

// Store is the client-side view of the cart. It is authoritative when no
// remote backend is configured and the optimistic local cache otherwise.
// It is constructed explicitly per session and injected where needed; the
// repository boundary keeps mutation logic free of storage concerns.
type Store struct {
	mu     sync.Mutex
	repo   Repository
	logger *log.Logger

	remoteCartID string
	remoteCart   *domain.RemoteCart
	lines        []domain.CartLine
	drawerOpen   bool
	loading      bool

	nextSubID   int
	subscribers map[int]func(Snapshot)
}

// NewStore rehydrates persisted state synchronously. Rehydration alone
// never triggers remote reconciliation; that is the session bootstrap's
// job, invoked explicitly.
func NewStore(ctx context.Context, repo Repository, logger *log.Logger) *Store {
	s := &Store{
		repo:        repo,
		logger:      logger,
		subscribers: make(map[int]func(Snapshot)),
	}
	if repo != nil {
		state, err := repo.Load(ctx)
		if err != nil {
			if logger != nil {
				logger.Printf("load cart state: %v", err)
			}
		} else {
			s.remoteCartID = state.RemoteCartID
			s.lines = state.Lines
		}
	}
	return s
}

// Subscribe registers a callback fired after every state change and
// returns an unsubscribe func.
func (s *Store) Subscribe(fn func(Snapshot)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}

// AddItem adds one unit of the variant, snapshotting product and price at
// the time of add. An existing product+variant line has its quantity
// incremented instead of a duplicate being created. Always succeeds.
func (s *Store) AddItem(ctx context.Context, product domain.Product, variant domain.ProductVariant) {
	s.mu.Lock()
	lineID := domain.LineID(product.ID, variant.ID)
	found := false
	for i := range s.lines {
		if s.lines[i].ID == lineID {
			s.lines[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		line := domain.CartLine{
			ID:            lineID,
			ProductID:     product.ID,
			ProductHandle: product.Handle,
			ProductTitle:  product.Title,
			VariantID:     variant.ID,
			VariantTitle:  variant.Title,
			Price:         variant.Price,
			Quantity:      1,
		}
		if product.FeaturedImage != nil {
			line.ImageURL = product.FeaturedImage.URL
		}
		s.lines = append(s.lines, line)
	}
	s.finishMutation(ctx)
}

// RemoveItem deletes the line if present; removing an absent line is a
// no-op, not an error.
func (s *Store) RemoveItem(ctx context.Context, lineID string) {
	s.mu.Lock()
	for i := range s.lines {
		if s.lines[i].ID == lineID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			break
		}
	}
	s.finishMutation(ctx)
}

// UpdateQuantity sets the line quantity exactly. A quantity of zero or
// below removes the line; zero-quantity rows are never retained.
func (s *Store) UpdateQuantity(ctx context.Context, lineID string, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(ctx, lineID)
		return
	}
	s.mu.Lock()
	for i := range s.lines {
		if s.lines[i].ID == lineID {
			s.lines[i].Quantity = quantity
			break
		}
	}
	s.finishMutation(ctx)
}

// ClearCart drops all local lines and the cached remote snapshot. The
// remote cart id survives so the session can keep reconciling against the
// same backend cart.
func (s *Store) ClearCart(ctx context.Context) {
	s.mu.Lock()
	s.lines = nil
	s.remoteCart = nil
	s.finishMutation(ctx)
}

// SetRemoteCart caches the last-fetched remote snapshot.
func (s *Store) SetRemoteCart(ctx context.Context, cart *domain.RemoteCart) {
	s.mu.Lock()
	s.remoteCart = cart
	s.finishMutation(ctx)
}

func (s *Store) SetRemoteCartID(ctx context.Context, id string) {
	s.mu.Lock()
	s.remoteCartID = id
	s.finishMutation(ctx)
}

func (s *Store) SetLoading(loading bool) {
	s.mu.Lock()
	s.loading = loading
	s.notifyLocked()
}

func (s *Store) OpenDrawer() {
	s.mu.Lock()
	s.drawerOpen = true
	s.notifyLocked()
}

func (s *Store) CloseDrawer() {
	s.mu.Lock()
	s.drawerOpen = false
	s.notifyLocked()
}

func (s *Store) ToggleDrawer() {
	s.mu.Lock()
	s.drawerOpen = !s.drawerOpen
	s.notifyLocked()
}

func (s *Store) RemoteCartID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remoteCartID
}

func (s *Store) RemoteCart() *domain.RemoteCart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remoteCart
}

func (s *Store) Lines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.CartLine(nil), s.lines...)
}

// Count is the total item quantity. A cached remote snapshot takes
// precedence over local lines whenever both exist.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.remoteCart != nil {
		return s.remoteCart.TotalQuantity
	}
	count := 0
	for _, line := range s.lines {
		count += line.Quantity
	}
	return count
}

// Total is the cart total. Remote precedence is identical to Count. Local
// lines are summed assuming a uniform currency.
func (s *Store) Total() domain.Money {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.remoteCart != nil {
		return s.remoteCart.Cost.TotalAmount
	}
	total := decimal.Zero
	currencyCode := "INR"
	for i, line := range s.lines {
		if i == 0 {
			currencyCode = line.Price.CurrencyCode
		}
		total = total.Add(line.Price.Decimal().Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return domain.NewMoney(total, currencyCode)
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{
		RemoteCartID: s.remoteCartID,
		RemoteCart:   s.remoteCart,
		Lines:        append([]domain.CartLine(nil), s.lines...),
		DrawerOpen:   s.drawerOpen,
		Loading:      s.loading,
	}
}

// finishMutation persists the durable subset, then notifies subscribers.
// Persistence failure is logged, never surfaced; the in-memory state is
// already updated and the UI must keep working. Callers hold the lock.
func (s *Store) finishMutation(ctx context.Context) {
	if s.repo != nil {
		state := State{
			RemoteCartID: s.remoteCartID,
			Lines:        append([]domain.CartLine(nil), s.lines...),
		}
		if err := s.repo.Save(ctx, state); err != nil && s.logger != nil {
			s.logger.Printf("save cart state: %v", err)
		}
	}
	s.notifyLocked()
}

// notifyLocked releases the lock and fires subscribers with a snapshot.
func (s *Store) notifyLocked() {
	snap := s.snapshotLocked()
	subs := make([]func(Snapshot), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subs = append(subs, fn)
	}
	s.mu.Unlock()
	for _, fn := range subs {
		fn(snap)
	}
}
