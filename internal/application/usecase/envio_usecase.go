package usecase

import (
	"time"

	"github.com/construdata/pedidos-api/internal/application/dto"
	"github.com/construdata/pedidos-api/internal/domain"
	"github.com/construdata/pedidos-api/internal/domain/entity"
	"github.com/construdata/pedidos-api/internal/domain/repository"
)

// EnvioUseCase registra despachos de pedidos.
type EnvioUseCase struct {
	repo repository.EnvioRepository
}

// NewEnvioUseCase construye el caso de uso con el puerto de persistencia.
func NewEnvioUseCase(repo repository.EnvioRepository) *EnvioUseCase {
	return &EnvioUseCase{repo: repo}
}

// Registrar persiste un envío. ErrReferencia si el código de pedido no existe.
func (uc *EnvioUseCase) Registrar(in dto.RegistrarEnvioRequest) (*dto.EnvioResponse, error) {
	if in.FechaEnvio == "" || in.CodigoPedido == "" {
		return nil, domain.ErrEntradaInvalida
	}
	fecha, err := time.Parse(formatoFecha, in.FechaEnvio)
	if err != nil {
		return nil, domain.ErrEntradaInvalida
	}
	e := &entity.Envio{
		FechaEnvio:   fecha,
		Observacion:  in.Observacion,
		Valorizado:   in.Valorizado,
		Facturado:    in.Facturado,
		Pagado:       in.Pagado,
		CodigoPedido: in.CodigoPedido,
	}
	id, err := uc.repo.Create(e)
	if err != nil {
		return nil, err
	}
	return envioToResponse(id, e), nil
}

// Listar lista todos los envíos.
func (uc *EnvioUseCase) Listar() ([]*dto.EnvioResponse, error) {
	envios, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.EnvioResponse, 0, len(envios))
	for _, e := range envios {
		out = append(out, envioToResponse(e.ID, e))
	}
	return out, nil
}

func envioToResponse(id int64, e *entity.Envio) *dto.EnvioResponse {
	return &dto.EnvioResponse{
		IDEnvio:      id,
		FechaEnvio:   e.FechaEnvio.Format(formatoFecha),
		Observacion:  e.Observacion,
		Valorizado:   e.Valorizado,
		Facturado:    e.Facturado,
		Pagado:       e.Pagado,
		CodigoPedido: e.CodigoPedido,
	}
}
