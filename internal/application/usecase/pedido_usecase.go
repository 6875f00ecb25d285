package usecase

import (
	"time"

	"github.com/construdata/pedidos-api/internal/application/dto"
	"github.com/construdata/pedidos-api/internal/domain"
	"github.com/construdata/pedidos-api/internal/domain/entity"
	"github.com/construdata/pedidos-api/internal/domain/repository"
)

const formatoFecha = "2006-01-02"

// PedidoUseCase aplica las reglas de negocio del ciclo de vida del pedido.
type PedidoUseCase struct {
	repo repository.PedidoRepository
}

// NewPedidoUseCase construye el caso de uso con el puerto de persistencia.
func NewPedidoUseCase(repo repository.PedidoRepository) *PedidoUseCase {
	return &PedidoUseCase{repo: repo}
}

// Registrar valida que los 16 campos estén presentes y persiste el pedido.
// Devuelve ErrEntradaInvalida si falta cualquier campo, ErrDuplicado si el
// código ya existe y ErrReferencia si alguna FK no resuelve a catálogo.
func (uc *PedidoUseCase) Registrar(in dto.RegistrarPedidoRequest) (*dto.PedidoResponse, error) {
	if in.CodigoPedido == "" || in.Fecha == "" || in.Hora == "" ||
		in.CodigoPlano == "" || in.Planta == "" || in.IDProyectoCUP == "" ||
		in.Nivel == nil || in.MetrosCuadrados == nil || in.MetrosLineales == nil ||
		in.Kilogramos == nil || in.Frisos == nil || in.Chatas == nil ||
		in.IDProducto == nil || in.IDUsuario == nil || in.IDTransporte == nil || in.IDOficina == nil {
		return nil, domain.ErrEntradaInvalida
	}
	fecha, err := time.Parse(formatoFecha, in.Fecha)
	if err != nil {
		return nil, domain.ErrEntradaInvalida
	}

	pedido := &entity.Pedido{
		CodigoPedido:    in.CodigoPedido,
		Fecha:           fecha,
		Hora:            in.Hora,
		Nivel:           *in.Nivel,
		MetrosCuadrados: *in.MetrosCuadrados,
		MetrosLineales:  *in.MetrosLineales,
		Kilogramos:      *in.Kilogramos,
		Frisos:          *in.Frisos,
		Chatas:          *in.Chatas,
		CodigoPlano:     in.CodigoPlano,
		Planta:          in.Planta,
		IDProyectoCUP:   in.IDProyectoCUP,
		IDProducto:      *in.IDProducto,
		IDUsuario:       *in.IDUsuario,
		IDTransporte:    *in.IDTransporte,
		IDOficina:       *in.IDOficina,
	}
	if err := uc.repo.Create(pedido); err != nil {
		return nil, err
	}
	return pedidoToResponse(pedido), nil
}

// Listar devuelve la proyección enriquecida de todos los pedidos, o solo los
// del usuario indicado. Sin coincidencias devuelve lista vacía, no error.
func (uc *PedidoUseCase) Listar(idUsuario *int64) ([]*dto.DetallePedidoResponse, error) {
	detalles, err := uc.repo.ListDetalles(idUsuario)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.DetallePedidoResponse, 0, len(detalles))
	for _, d := range detalles {
		out = append(out, detalleToResponse(d))
	}
	return out, nil
}

// Actualizar aplica la actualización parcial sobre codigo y devuelve la fila
// resultante. Devuelve ErrPedidoNotFound si el código no existe.
func (uc *PedidoUseCase) Actualizar(codigo string, in dto.ActualizarPedidoRequest) (*dto.PedidoResponse, error) {
	if codigo == "" {
		return nil, domain.ErrEntradaInvalida
	}
	var fecha time.Time
	if in.Fecha != "" {
		f, err := time.Parse(formatoFecha, in.Fecha)
		if err != nil {
			return nil, domain.ErrEntradaInvalida
		}
		fecha = f
	}
	cambios := &entity.ActualizacionPedido{
		Fecha:           fecha,
		Hora:            in.Hora,
		Nivel:           in.Nivel,
		MetrosCuadrados: in.MetrosCuadrados,
		MetrosLineales:  in.MetrosLineales,
		Kilogramos:      in.Kilogramos,
		Frisos:          in.Frisos,
		Chatas:          in.Chatas,
		CodigoPlano:     in.CodigoPlano,
		Planta:          in.Planta,
		IDProyectoCUP:   in.IDProyectoCUP,
		IDProducto:      in.IDProducto,
		IDUsuario:       in.IDUsuario,
		IDTransporte:    in.IDTransporte,
		IDOficina:       in.IDOficina,
	}
	pedido, err := uc.repo.Update(codigo, cambios)
	if err != nil {
		return nil, err
	}
	return pedidoToResponse(pedido), nil
}

func pedidoToResponse(p *entity.Pedido) *dto.PedidoResponse {
	return &dto.PedidoResponse{
		CodigoPedido:    p.CodigoPedido,
		Fecha:           p.Fecha.Format(formatoFecha),
		Hora:            p.Hora,
		Nivel:           p.Nivel,
		MetrosCuadrados: p.MetrosCuadrados,
		MetrosLineales:  p.MetrosLineales,
		Kilogramos:      p.Kilogramos,
		Frisos:          p.Frisos,
		Chatas:          p.Chatas,
		CodigoPlano:     p.CodigoPlano,
		Planta:          p.Planta,
		IDProyectoCUP:   p.IDProyectoCUP,
		IDProducto:      p.IDProducto,
		IDUsuario:       p.IDUsuario,
		IDTransporte:    p.IDTransporte,
		IDOficina:       p.IDOficina,
	}
}

func detalleToResponse(d *entity.DetallePedido) *dto.DetallePedidoResponse {
	return &dto.DetallePedidoResponse{
		PedidoResponse:    *pedidoToResponse(&d.Pedido),
		NombreProyecto:    d.NombreProyecto,
		SUF:               d.SUF,
		NombreProducto:    d.NombreProducto,
		Solicitante:       d.Solicitante,
		CorreoSolicitante: d.CorreoSolicitante,
		EmpresaTransporte: d.EmpresaTransporte,
		PlacaTransporte:   d.PlacaTransporte,
		Especialidad:      d.Especialidad,
		Especialista:      d.Especialista,
	}
}
