package repository

import "github.com/construdata/pedidos-api/internal/domain/entity"

// EnvioRepository define el puerto de persistencia para Envio.
type EnvioRepository interface {
	// Create devuelve ErrReferencia si el código de pedido no existe.
	Create(envio *entity.Envio) (int64, error)
	List() ([]*entity.Envio, error)
}
