package usecase

import (
	"context"

	"github.com/construdata/pedidos-api/internal/domain"
	"github.com/construdata/pedidos-api/internal/domain/entity"
	"github.com/construdata/pedidos-api/internal/domain/repository"
)

// HojaPedidoGenerator genera la representación imprimible de un pedido.
// Lo implementa pdf.MarotoHojaPedido; la interfaz permite un fake en tests.
type HojaPedidoGenerator interface {
	GenerateHojaPedido(ctx context.Context, detalle *entity.DetallePedido) ([]byte, error)
}

// PedidoPDFUseCase produce la hoja de pedido en PDF a partir de la proyección enriquecida.
type PedidoPDFUseCase struct {
	pedidos   repository.PedidoRepository
	generator HojaPedidoGenerator
}

// NewPedidoPDFUseCase construye el caso de uso.
func NewPedidoPDFUseCase(pedidos repository.PedidoRepository, generator HojaPedidoGenerator) *PedidoPDFUseCase {
	return &PedidoPDFUseCase{pedidos: pedidos, generator: generator}
}

// Generar devuelve los bytes del PDF. ErrPedidoNotFound si el código no existe.
func (uc *PedidoPDFUseCase) Generar(ctx context.Context, codigo string) ([]byte, error) {
	if codigo == "" {
		return nil, domain.ErrEntradaInvalida
	}
	detalle, err := uc.pedidos.GetDetalleByCodigo(codigo)
	if err != nil {
		return nil, err
	}
	if detalle == nil {
		return nil, domain.ErrPedidoNotFound
	}
	return uc.generator.GenerateHojaPedido(ctx, detalle)
}
