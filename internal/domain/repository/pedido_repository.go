package repository

import "github.com/construdata/pedidos-api/internal/domain/entity"

// PedidoRepository define el puerto de persistencia para Pedido (DIP).
type PedidoRepository interface {
	// Create inserta el pedido completo. Una violación de FK devuelve ErrReferencia
	// y un código de pedido duplicado devuelve ErrDuplicado.
	Create(pedido *entity.Pedido) error
	// GetByCodigo devuelve nil, nil si el pedido no existe.
	GetByCodigo(codigo string) (*entity.Pedido, error)
	// ListDetalles devuelve la proyección enriquecida. Si idUsuario no es nil,
	// filtra los pedidos de ese usuario. Sin filas coincidentes devuelve slice vacío.
	ListDetalles(idUsuario *int64) ([]*entity.DetallePedido, error)
	// GetDetalleByCodigo devuelve nil, nil si el pedido no existe.
	GetDetalleByCodigo(codigo string) (*entity.DetallePedido, error)
	// Update aplica la actualización parcial y devuelve la fila resultante.
	// Devuelve ErrPedidoNotFound si codigo no existe (cero filas afectadas).
	Update(codigo string, cambios *entity.ActualizacionPedido) (*entity.Pedido, error)
}
