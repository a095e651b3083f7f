package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aguatrack/aguatrack-api/internal/application/usecase"
	"github.com/aguatrack/aguatrack-api/internal/domain/repository"
)

var _ usecase.OnboardingTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta un bloque de escrituras dentro de una transacción del pool.
// Los repos que recibe el callback operan sobre la tx, no sobre el pool.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner transaccional.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run abre la transacción, invoca fn y hace commit; cualquier error hace
// rollback completo.
func (t *TxRunner) Run(ctx context.Context, fn func(
	businessRepo repository.BusinessRepository,
	userRepo repository.UserRepository,
) error) error {
	tx, err := t.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(NewBusinessRepository(tx), NewUserRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
