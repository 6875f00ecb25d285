package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/construdata/pedidos-api/internal/application/auth"
	"github.com/construdata/pedidos-api/internal/domain/repository"
)

// Ensure TxRunner implements auth.RegistroTxRunner.
var _ auth.RegistroTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunRegistro inicia una transacción con los repos de persona y usuario atados a la tx
// y hace Commit o Rollback. Garantiza que el alta Persona+Usuario sea atómica: si el
// insert de Usuario falla, la Persona no queda huérfana.
func (r *TxRunner) RunRegistro(ctx context.Context, fn func(
	personaRepo repository.PersonaRepository,
	usuarioRepo repository.UsuarioRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	personaRepo := NewPersonaRepository(tx)
	usuarioRepo := NewUsuarioRepository(tx)

	if err := fn(personaRepo, usuarioRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
