package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"nutribites-storefront/internal/domain"
)

// PostgresRepository persists one cart session per row, with the local
// lines as a JSONB document.
type PostgresRepository struct {
	pool      *pgxpool.Pool
	sessionID string
}

func NewPostgres(pool *pgxpool.Pool, sessionID string) *PostgresRepository {
	return &PostgresRepository{pool: pool, sessionID: sessionID}
}

func (r *PostgresRepository) Load(ctx context.Context) (State, error) {
	const q = `
SELECT remote_cart_id, lines
FROM cart_sessions
WHERE session_id = $1
`
	var (
		remoteCartID string
		rawLines     []byte
	)
	err := r.pool.QueryRow(ctx, q, r.sessionID).Scan(&remoteCartID, &rawLines)
	if errors.Is(err, pgx.ErrNoRows) {
		return State{}, nil
	}
	if err != nil {
		return State{}, fmt.Errorf("load cart session: %w", err)
	}

	var lines []domain.CartLine
	if len(rawLines) > 0 {
		if err := json.Unmarshal(rawLines, &lines); err != nil {
			return State{}, fmt.Errorf("decode cart lines: %w", err)
		}
	}
	return State{RemoteCartID: remoteCartID, Lines: lines}, nil
}

func (r *PostgresRepository) Save(ctx context.Context, state State) error {
	lines := state.Lines
	if lines == nil {
		lines = []domain.CartLine{}
	}
	rawLines, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("encode cart lines: %w", err)
	}

	const q = `
INSERT INTO cart_sessions (session_id, remote_cart_id, lines)
VALUES ($1, $2, $3)
ON CONFLICT (session_id) DO UPDATE
SET remote_cart_id = EXCLUDED.remote_cart_id,
    lines = EXCLUDED.lines,
    updated_at = now()
`
	if _, err := r.pool.Exec(ctx, q, r.sessionID, state.RemoteCartID, rawLines); err != nil {
		return fmt.Errorf("save cart session: %w", err)
	}
	return nil
}
