package httpserver

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"nutribites-storefront/internal/cart"
	"nutribites-storefront/internal/domain"
	"nutribites-storefront/internal/session"
	"nutribites-storefront/internal/storefront"
)

const sessionCookie = "nb_session"

const (
	remoteSyncTimeout = 15 * time.Second

	// sessionTTL matches the cookie lifetime; an idle session older than
	// this can only belong to an expired cookie.
	sessionTTL    = 30 * 24 * time.Hour
	sweepInterval = time.Hour
)

// RemoteCartClient is the backend cart surface the HTTP layer pushes
// mutations through, on top of what the session bootstrap needs.
type RemoteCartClient interface {
	session.RemoteCartAPI
	AddCartLines(ctx context.Context, cartID string, lines []storefront.CartLineInput) (*domain.RemoteCart, error)
	UpdateCartLines(ctx context.Context, cartID string, lines []storefront.CartLineUpdate) (*domain.RemoteCart, error)
	RemoveCartLines(ctx context.Context, cartID string, lineIDs []string) (*domain.RemoteCart, error)
}

// Session is one browser session: a cart store plus its remote
// reconciliation bootstrap.
type Session struct {
	ID        string
	Store     *cart.Store
	Bootstrap *session.Bootstrap

	bootOnce sync.Once
	remote   RemoteCartClient
	logger   *log.Logger
	lastSeen time.Time // guarded by the manager's mutex
}

// SessionManager lazily builds one Session per cookie id. Stores are
// backed by Postgres rows when a pool is configured, otherwise kept in
// process memory.
type SessionManager struct {
	mu        sync.Mutex
	sessions  map[string]*Session
	lastSweep time.Time
	pool      *pgxpool.Pool
	remote    RemoteCartClient
	logger    *log.Logger
}

func NewSessionManager(pool *pgxpool.Pool, remote RemoteCartClient, logger *log.Logger) *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*Session),
		pool:     pool,
		remote:   remote,
		logger:   logger,
	}
}

// Resolve returns the session for the request cookie, minting a new
// cookie when absent or malformed.
func (m *SessionManager) Resolve(c *gin.Context) *Session {
	id, err := c.Cookie(sessionCookie)
	if err != nil || uuid.Validate(id) != nil {
		id = uuid.NewString()
		c.SetCookie(sessionCookie, id, int((30 * 24 * time.Hour).Seconds()), "/", "", false, true)
	}

	now := time.Now()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sweepLocked(now)
	if sess, ok := m.sessions[id]; ok {
		sess.lastSeen = now
		return sess
	}

	var repo cart.Repository
	if m.pool != nil {
		repo = cart.NewPostgres(m.pool, id)
	} else {
		repo = cart.NewMemory()
	}
	store := cart.NewStore(c.Request.Context(), repo, m.logger)
	sess := &Session{
		ID:        id,
		Store:     store,
		Bootstrap: session.NewBootstrap(store, m.remote, m.logger),
		remote:    m.remote,
		logger:    m.logger,
		lastSeen:  now,
	}
	m.sessions[id] = sess
	return sess
}

// sweepLocked drops sessions idle past the cookie lifetime, at most once
// per sweepInterval. An evicted session rebuilds from its repository on
// the shopper's next request.
func (m *SessionManager) sweepLocked(now time.Time) {
	if now.Sub(m.lastSweep) < sweepInterval {
		return
	}
	m.lastSweep = now
	for id, sess := range m.sessions {
		if now.Sub(sess.lastSeen) > sessionTTL {
			delete(m.sessions, id)
		}
	}
}

// EnsureBootstrap kicks off remote reconciliation in the background the
// first time the session's cart is touched. Cart responses never wait on
// it; a failed bootstrap leaves the session serving local lines.
func (s *Session) EnsureBootstrap() {
	s.bootOnce.Do(func() {
		go s.Bootstrap.Initialize(context.Background())
	})
}

// remoteReady reports whether backend cart mutations can be pushed right
// now. Before the bootstrap settles, local mutations simply stay local;
// the next reconciliation carries no obligation to replay them.
func (s *Session) remoteReady() (string, bool) {
	if s.remote == nil || s.Bootstrap.State() != session.Ready {
		return "", false
	}
	id := s.Store.RemoteCartID()
	return id, id != ""
}

// syncAddRemote pushes an add to the backend cart without blocking the
// response. The refreshed remote snapshot is cached on success; failures
// are logged and the local line stands.
func (s *Session) syncAddRemote(variantID string, quantity int) {
	cartID, ok := s.remoteReady()
	if !ok {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), remoteSyncTimeout)
		defer cancel()
		lines := []storefront.CartLineInput{{MerchandiseID: variantID, Quantity: quantity}}
		remote, err := s.remote.AddCartLines(ctx, cartID, lines)
		if err != nil {
			s.logger.Printf("session %s: remote add: %v", s.ID, err)
			return
		}
		s.Store.SetRemoteCart(ctx, remote)
	}()
}

// syncQuantityRemote mirrors a local quantity change on the backend cart.
// The backend line is located by variant id in the cached remote
// snapshot; a quantity of zero or below removes the line.
func (s *Session) syncQuantityRemote(variantID string, quantity int) {
	cartID, ok := s.remoteReady()
	if !ok {
		return
	}
	snap := s.Store.RemoteCart()
	if snap == nil {
		return
	}
	var remoteLineID string
	for _, line := range snap.Lines {
		if line.Merchandise.ID == variantID {
			remoteLineID = line.ID
			break
		}
	}
	if remoteLineID == "" {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), remoteSyncTimeout)
		defer cancel()
		var (
			remote *domain.RemoteCart
			err    error
		)
		if quantity <= 0 {
			remote, err = s.remote.RemoveCartLines(ctx, cartID, []string{remoteLineID})
		} else {
			remote, err = s.remote.UpdateCartLines(ctx, cartID, []storefront.CartLineUpdate{{ID: remoteLineID, Quantity: quantity}})
		}
		if err != nil {
			s.logger.Printf("session %s: remote quantity update: %v", s.ID, err)
			return
		}
		s.Store.SetRemoteCart(ctx, remote)
	}()
}

// syncClearRemote removes every line from the backend cart so the next
// reconciliation does not resurrect a cart the shopper just emptied.
func (s *Session) syncClearRemote() {
	cartID, ok := s.remoteReady()
	if !ok {
		return
	}
	snap := s.Store.RemoteCart()
	if snap == nil || len(snap.Lines) == 0 {
		return
	}
	lineIDs := make([]string, 0, len(snap.Lines))
	for _, line := range snap.Lines {
		lineIDs = append(lineIDs, line.ID)
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), remoteSyncTimeout)
		defer cancel()
		remote, err := s.remote.RemoveCartLines(ctx, cartID, lineIDs)
		if err != nil {
			s.logger.Printf("session %s: remote clear: %v", s.ID, err)
			return
		}
		s.Store.SetRemoteCart(ctx, remote)
	}()
}
