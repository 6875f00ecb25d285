package postgres

import (
	"context"
	"fmt"

	"github.com/construdata/pedidos-api/internal/domain"
	"github.com/construdata/pedidos-api/internal/domain/entity"
	"github.com/construdata/pedidos-api/internal/domain/repository"
)

var _ repository.EnvioRepository = (*EnvioRepo)(nil)

// EnvioRepo implementación del puerto EnvioRepository sobre PostgreSQL (usable con pool o tx).
type EnvioRepo struct {
	q Querier
}

// NewEnvioRepository construye el adaptador de persistencia para envíos. Pasar pool o tx (Querier).
func NewEnvioRepository(q Querier) *EnvioRepo {
	return &EnvioRepo{q: q}
}

// Create persiste un envío y devuelve el ID generado. El código de pedido debe existir.
func (r *EnvioRepo) Create(e *entity.Envio) (int64, error) {
	query := `
		INSERT INTO envio (fecha_envio, observacion, valorizado, facturado, pagado, codigo_pedido)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id_envio`
	var id int64
	err := r.q.QueryRow(context.Background(), query,
		e.FechaEnvio, e.Observacion, e.Valorizado, e.Facturado, e.Pagado, e.CodigoPedido,
	).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, domain.ErrReferencia
		}
		return 0, fmt.Errorf("insert envio: %w", err)
	}
	return id, nil
}

// List lista todos los envíos.
func (r *EnvioRepo) List() ([]*entity.Envio, error) {
	query := `
		SELECT id_envio, fecha_envio, observacion, valorizado, facturado, pagado, codigo_pedido
		FROM envio ORDER BY fecha_envio DESC, id_envio`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list envios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Envio
	for rows.Next() {
		var e entity.Envio
		if err := rows.Scan(&e.ID, &e.FechaEnvio, &e.Observacion, &e.Valorizado, &e.Facturado, &e.Pagado, &e.CodigoPedido); err != nil {
			return nil, fmt.Errorf("scan envio: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
