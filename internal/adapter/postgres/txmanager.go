package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TxManager manages database transactions using the context pattern.
// Nested RunInTx calls are not supported.
type TxManager struct {
	pool *pgxpool.Pool
}

// NewTxManager creates a new TxManager.
func NewTxManager(pool *pgxpool.Pool) *TxManager {
	return &TxManager{pool: pool}
}

// RunInTx executes fn within a Read Committed transaction.
// Commits on success, rolls back on error or panic (and re-panics).
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return MapError(err, "transaction", "begin")
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
	}()

	if err := fn(withTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback failed: %w (original error: %v)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return MapError(err, "transaction", "commit")
	}

	return nil
}

// RunWithStatementTimeout runs fn in a transaction whose statements are
// cancelled by the server after timeout. A zero timeout disables the limit.
func (m *TxManager) RunWithStatementTimeout(ctx context.Context, timeout time.Duration, fn func(ctx context.Context) error) error {
	return m.RunInTx(ctx, func(ctx context.Context) error {
		if timeout > 0 {
			q := QuerierFromCtx(ctx, m.pool)
			// SET LOCAL does not accept bind parameters.
			stmt := fmt.Sprintf("SET LOCAL statement_timeout = %d", timeout.Milliseconds())
			if _, err := q.Exec(ctx, stmt); err != nil {
				return MapError(err, "transaction", "statement_timeout")
			}
		}
		return fn(ctx)
	})
}
