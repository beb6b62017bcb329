package cart

import (
	"context"
	"sync"

	"nutribites-storefront/internal/domain"
)

// MemoryRepository keeps cart state in process memory. Used when no
// database is configured, and in tests.
type MemoryRepository struct {
	mu    sync.Mutex
	state State
}

func NewMemory() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Load(_ context.Context) (State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return State{
		RemoteCartID: r.state.RemoteCartID,
		Lines:        append([]domain.CartLine(nil), r.state.Lines...),
	}, nil
}

func (r *MemoryRepository) Save(_ context.Context, state State) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = State{
		RemoteCartID: state.RemoteCartID,
		Lines:        append([]domain.CartLine(nil), state.Lines...),
	}
	return nil
}
