package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/construdata/pedidos-api/internal/application/dto"
	"github.com/construdata/pedidos-api/internal/application/usecase"
	"github.com/construdata/pedidos-api/internal/domain"
	"github.com/construdata/pedidos-api/internal/domain/entity"
)

// Fake en memoria del repositorio de códigos. Consume elimina la fila en la
// misma operación, igual que el DELETE condicional del repositorio real.
type fakeCodigoRepo struct {
	activos map[[2]interface{}]bool
}

func newFakeCodigoRepo() *fakeCodigoRepo {
	return &fakeCodigoRepo{activos: make(map[[2]interface{}]bool)}
}

func (f *fakeCodigoRepo) Create(c *entity.CodigoValidacion) error {
	f.activos[[2]interface{}{c.Codigo, c.IDUsuario}] = true
	return nil
}

func (f *fakeCodigoRepo) Consume(codigo string, idUsuario int64) (bool, error) {
	key := [2]interface{}{codigo, idUsuario}
	if !f.activos[key] {
		return false, nil
	}
	delete(f.activos, key)
	return true, nil
}

func TestEmitirCodigo_ConCodigoExplicito(t *testing.T) {
	uc := usecase.NewCodigoUseCase(newFakeCodigoRepo())

	out, err := uc.Emitir(dto.EmitirCodigoRequest{Codigo: "ABC-123", IDUsuario: 7})
	require.NoError(t, err)

	assert.Equal(t, "ABC-123", out.Codigo)
	assert.Equal(t, int64(7), out.IDUsuario)
	assert.Equal(t, entity.EstadoCodigoActivo, out.Estado)
}

func TestEmitirCodigo_SinCodigo_GeneraUno(t *testing.T) {
	uc := usecase.NewCodigoUseCase(newFakeCodigoRepo())

	out, err := uc.Emitir(dto.EmitirCodigoRequest{IDUsuario: 7})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Codigo, "sin código explícito debe generarse uno")
}

func TestEmitirCodigo_SinUsuario_RetornaEntradaInvalida(t *testing.T) {
	uc := usecase.NewCodigoUseCase(newFakeCodigoRepo())
	_, err := uc.Emitir(dto.EmitirCodigoRequest{Codigo: "ABC-123"})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

// El usuario puede tener varios códigos activos a la vez; cada uno se consume
// de forma independiente.
func TestEmitirCodigo_VariosActivosPorUsuario(t *testing.T) {
	uc := usecase.NewCodigoUseCase(newFakeCodigoRepo())

	_, err := uc.Emitir(dto.EmitirCodigoRequest{Codigo: "UNO", IDUsuario: 7})
	require.NoError(t, err)
	_, err = uc.Emitir(dto.EmitirCodigoRequest{Codigo: "DOS", IDUsuario: 7})
	require.NoError(t, err)

	require.NoError(t, uc.VerificarYConsumir(dto.VerificarCodigoRequest{Codigo: "UNO", IDUsuario: 7}))
	require.NoError(t, uc.VerificarYConsumir(dto.VerificarCodigoRequest{Codigo: "DOS", IDUsuario: 7}))
}

// Consumir es terminal: la segunda verificación del mismo código falla.
func TestVerificarCodigo_SegundoConsumoFalla(t *testing.T) {
	uc := usecase.NewCodigoUseCase(newFakeCodigoRepo())

	_, err := uc.Emitir(dto.EmitirCodigoRequest{Codigo: "UNICO", IDUsuario: 7})
	require.NoError(t, err)

	require.NoError(t, uc.VerificarYConsumir(dto.VerificarCodigoRequest{Codigo: "UNICO", IDUsuario: 7}))

	err = uc.VerificarYConsumir(dto.VerificarCodigoRequest{Codigo: "UNICO", IDUsuario: 7})
	assert.ErrorIs(t, err, domain.ErrCodigoInvalido,
		"el segundo consumo del mismo código debe fallar")
}

func TestVerificarCodigo_CodigoDeOtroUsuario_Falla(t *testing.T) {
	uc := usecase.NewCodigoUseCase(newFakeCodigoRepo())

	_, err := uc.Emitir(dto.EmitirCodigoRequest{Codigo: "ABC-123", IDUsuario: 7})
	require.NoError(t, err)

	err = uc.VerificarYConsumir(dto.VerificarCodigoRequest{Codigo: "ABC-123", IDUsuario: 9})
	assert.ErrorIs(t, err, domain.ErrCodigoInvalido,
		"el código está ligado al usuario que lo emitió")
}

func TestVerificarCodigo_EntradaIncompleta_RetornaEntradaInvalida(t *testing.T) {
	uc := usecase.NewCodigoUseCase(newFakeCodigoRepo())

	assert.ErrorIs(t, uc.VerificarYConsumir(dto.VerificarCodigoRequest{IDUsuario: 7}), domain.ErrEntradaInvalida)
	assert.ErrorIs(t, uc.VerificarYConsumir(dto.VerificarCodigoRequest{Codigo: "ABC"}), domain.ErrEntradaInvalida)
}
