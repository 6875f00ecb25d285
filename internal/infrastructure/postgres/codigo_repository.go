package postgres

import (
	"context"
	"fmt"

	"github.com/construdata/pedidos-api/internal/domain/entity"
	"github.com/construdata/pedidos-api/internal/domain/repository"
)

var _ repository.CodigoRepository = (*CodigoRepo)(nil)

// CodigoRepo implementación del puerto CodigoRepository sobre PostgreSQL (usable con pool o tx).
type CodigoRepo struct {
	q Querier
}

// NewCodigoRepository construye el adaptador de persistencia para códigos de validación.
func NewCodigoRepository(q Querier) *CodigoRepo {
	return &CodigoRepo{q: q}
}

// Create inserta un código activo para el usuario.
func (r *CodigoRepo) Create(c *entity.CodigoValidacion) error {
	query := `INSERT INTO codigo_validacion (codigo, id_usuario, estado) VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query, c.Codigo, c.IDUsuario, c.Estado)
	if err != nil {
		return fmt.Errorf("insert codigo: %w", err)
	}
	return nil
}

// Consume elimina el código (codigo, idUsuario, activo) en una sola sentencia
// condicional, por lo que bajo validaciones concurrentes del mismo código
// exactamente una gana: el DELETE es atómico en la base de datos.
func (r *CodigoRepo) Consume(codigo string, idUsuario int64) (bool, error) {
	query := `
		DELETE FROM codigo_validacion
		WHERE codigo = $1 AND id_usuario = $2 AND estado = $3`
	cmd, err := r.q.Exec(context.Background(), query, codigo, idUsuario, entity.EstadoCodigoActivo)
	if err != nil {
		return false, fmt.Errorf("consume codigo: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
