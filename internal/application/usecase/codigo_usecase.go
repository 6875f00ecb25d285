package usecase

import (
	"github.com/google/uuid"

	"github.com/construdata/pedidos-api/internal/application/dto"
	"github.com/construdata/pedidos-api/internal/domain"
	"github.com/construdata/pedidos-api/internal/domain/entity"
	"github.com/construdata/pedidos-api/internal/domain/repository"
)

// CodigoUseCase emite y consume códigos de validación de un solo uso.
type CodigoUseCase struct {
	repo repository.CodigoRepository
}

// NewCodigoUseCase construye el caso de uso con el puerto de persistencia.
func NewCodigoUseCase(repo repository.CodigoRepository) *CodigoUseCase {
	return &CodigoUseCase{repo: repo}
}

// Emitir inserta un código activo para el usuario. No impide que el usuario
// tenga varios códigos activos a la vez. Si el código llega vacío se genera uno.
func (uc *CodigoUseCase) Emitir(in dto.EmitirCodigoRequest) (*dto.CodigoResponse, error) {
	if in.IDUsuario == 0 {
		return nil, domain.ErrEntradaInvalida
	}
	codigo := in.Codigo
	if codigo == "" {
		codigo = uuid.New().String()
	}
	c := &entity.CodigoValidacion{
		Codigo:    codigo,
		IDUsuario: in.IDUsuario,
		Estado:    entity.EstadoCodigoActivo,
	}
	if err := uc.repo.Create(c); err != nil {
		return nil, err
	}
	return &dto.CodigoResponse{Codigo: c.Codigo, IDUsuario: c.IDUsuario, Estado: c.Estado}, nil
}

// VerificarYConsumir valida el código y lo consume en la misma operación.
// Consumir es terminal: la segunda llamada con los mismos argumentos devuelve
// ErrCodigoInvalido. Bajo llamadas concurrentes exactamente una gana.
func (uc *CodigoUseCase) VerificarYConsumir(in dto.VerificarCodigoRequest) error {
	if in.Codigo == "" || in.IDUsuario == 0 {
		return domain.ErrEntradaInvalida
	}
	consumido, err := uc.repo.Consume(in.Codigo, in.IDUsuario)
	if err != nil {
		return err
	}
	if !consumido {
		return domain.ErrCodigoInvalido
	}
	return nil
}
