package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/construdata/pedidos-api/internal/application/dto"
	"github.com/construdata/pedidos-api/internal/application/usecase"
	"github.com/construdata/pedidos-api/internal/domain"
	"github.com/construdata/pedidos-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria del repositorio de pedidos. Replica el contrato del puerto:
// Create rechaza códigos duplicados, Update sobreescribe los escalares y
// conserva las FK cuando llegan nil (COALESCE), y las búsquedas sin
// coincidencia devuelven nil / slice vacío sin error.
// ──────────────────────────────────────────────────────────────────────────────

type fakePedidoRepo struct {
	pedidos map[string]*entity.Pedido
}

func newFakePedidoRepo() *fakePedidoRepo {
	return &fakePedidoRepo{pedidos: make(map[string]*entity.Pedido)}
}

func (f *fakePedidoRepo) Create(p *entity.Pedido) error {
	if _, ok := f.pedidos[p.CodigoPedido]; ok {
		return domain.ErrDuplicado
	}
	cp := *p
	f.pedidos[p.CodigoPedido] = &cp
	return nil
}

func (f *fakePedidoRepo) GetByCodigo(codigo string) (*entity.Pedido, error) {
	p, ok := f.pedidos[codigo]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakePedidoRepo) ListDetalles(idUsuario *int64) ([]*entity.DetallePedido, error) {
	out := make([]*entity.DetallePedido, 0)
	for _, p := range f.pedidos {
		if idUsuario != nil && p.IDUsuario != *idUsuario {
			continue
		}
		out = append(out, &entity.DetallePedido{Pedido: *p})
	}
	return out, nil
}

func (f *fakePedidoRepo) GetDetalleByCodigo(codigo string) (*entity.DetallePedido, error) {
	p, ok := f.pedidos[codigo]
	if !ok {
		return nil, nil
	}
	return &entity.DetallePedido{Pedido: *p}, nil
}

func (f *fakePedidoRepo) Update(codigo string, cambios *entity.ActualizacionPedido) (*entity.Pedido, error) {
	p, ok := f.pedidos[codigo]
	if !ok {
		return nil, domain.ErrPedidoNotFound
	}
	p.Fecha = cambios.Fecha
	p.Hora = cambios.Hora
	p.Nivel = cambios.Nivel
	p.MetrosCuadrados = cambios.MetrosCuadrados
	p.MetrosLineales = cambios.MetrosLineales
	p.Kilogramos = cambios.Kilogramos
	p.Frisos = cambios.Frisos
	p.Chatas = cambios.Chatas
	p.CodigoPlano = cambios.CodigoPlano
	p.Planta = cambios.Planta
	if cambios.IDProyectoCUP != nil {
		p.IDProyectoCUP = *cambios.IDProyectoCUP
	}
	if cambios.IDProducto != nil {
		p.IDProducto = *cambios.IDProducto
	}
	if cambios.IDUsuario != nil {
		p.IDUsuario = *cambios.IDUsuario
	}
	if cambios.IDTransporte != nil {
		p.IDTransporte = *cambios.IDTransporte
	}
	if cambios.IDOficina != nil {
		p.IDOficina = *cambios.IDOficina
	}
	cp := *p
	return &cp, nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }

func decPtr(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

func buildRegistrarRequest() dto.RegistrarPedidoRequest {
	return dto.RegistrarPedidoRequest{
		CodigoPedido:    "PED-001",
		Fecha:           "2024-03-15",
		Hora:            "09:30",
		Nivel:           intPtr(3),
		MetrosCuadrados: decPtr(120.5),
		MetrosLineales:  decPtr(48.25),
		Kilogramos:      decPtr(1500),
		Frisos:          decPtr(12),
		Chatas:          decPtr(8),
		CodigoPlano:     "PL-A-03",
		Planta:          "torre A",
		IDProyectoCUP:   "CUP-2024-001",
		IDProducto:      int64Ptr(1),
		IDUsuario:       int64Ptr(7),
		IDTransporte:    int64Ptr(2),
		IDOficina:       int64Ptr(4),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Registrar
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrarPedido_CamposCompletos_Persiste(t *testing.T) {
	repo := newFakePedidoRepo()
	uc := usecase.NewPedidoUseCase(repo)

	out, err := uc.Registrar(buildRegistrarRequest())
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "PED-001", out.CodigoPedido)
	assert.Equal(t, "2024-03-15", out.Fecha)
	assert.Equal(t, 3, out.Nivel)
	assert.True(t, out.MetrosCuadrados.Equal(decimal.NewFromFloat(120.5)))

	guardado, err := repo.GetByCodigo("PED-001")
	require.NoError(t, err)
	require.NotNil(t, guardado, "el pedido debe quedar persistido")
	assert.Equal(t, int64(7), guardado.IDUsuario)
}

// Los 16 campos son obligatorios: cada ausencia debe rechazarse antes de
// llegar al repositorio.
func TestRegistrarPedido_CampoAusente_RetornaEntradaInvalida(t *testing.T) {
	casos := map[string]func(*dto.RegistrarPedidoRequest){
		"codigo_pedido":    func(r *dto.RegistrarPedidoRequest) { r.CodigoPedido = "" },
		"fecha":            func(r *dto.RegistrarPedidoRequest) { r.Fecha = "" },
		"hora":             func(r *dto.RegistrarPedidoRequest) { r.Hora = "" },
		"nivel":            func(r *dto.RegistrarPedidoRequest) { r.Nivel = nil },
		"metros_cuadrados": func(r *dto.RegistrarPedidoRequest) { r.MetrosCuadrados = nil },
		"metros_lineales":  func(r *dto.RegistrarPedidoRequest) { r.MetrosLineales = nil },
		"kilogramos":       func(r *dto.RegistrarPedidoRequest) { r.Kilogramos = nil },
		"frisos":           func(r *dto.RegistrarPedidoRequest) { r.Frisos = nil },
		"chatas":           func(r *dto.RegistrarPedidoRequest) { r.Chatas = nil },
		"codigo_plano":     func(r *dto.RegistrarPedidoRequest) { r.CodigoPlano = "" },
		"planta":           func(r *dto.RegistrarPedidoRequest) { r.Planta = "" },
		"id_proyecto_cup":  func(r *dto.RegistrarPedidoRequest) { r.IDProyectoCUP = "" },
		"id_producto":      func(r *dto.RegistrarPedidoRequest) { r.IDProducto = nil },
		"id_usuario":       func(r *dto.RegistrarPedidoRequest) { r.IDUsuario = nil },
		"id_transporte":    func(r *dto.RegistrarPedidoRequest) { r.IDTransporte = nil },
		"id_oficina":       func(r *dto.RegistrarPedidoRequest) { r.IDOficina = nil },
	}
	for nombre, quitar := range casos {
		t.Run(nombre, func(t *testing.T) {
			uc := usecase.NewPedidoUseCase(newFakePedidoRepo())
			req := buildRegistrarRequest()
			quitar(&req)
			_, err := uc.Registrar(req)
			assert.ErrorIs(t, err, domain.ErrEntradaInvalida,
				"la ausencia de %s debe rechazarse", nombre)
		})
	}
}

// El cero explícito es un valor válido, distinto de la ausencia del campo.
func TestRegistrarPedido_CeroExplicitoEsValido(t *testing.T) {
	uc := usecase.NewPedidoUseCase(newFakePedidoRepo())
	req := buildRegistrarRequest()
	req.Nivel = intPtr(0)
	req.Frisos = decPtr(0)

	out, err := uc.Registrar(req)
	require.NoError(t, err)
	assert.Equal(t, 0, out.Nivel)
	assert.True(t, out.Frisos.IsZero())
}

func TestRegistrarPedido_FechaMalformada_RetornaEntradaInvalida(t *testing.T) {
	uc := usecase.NewPedidoUseCase(newFakePedidoRepo())
	req := buildRegistrarRequest()
	req.Fecha = "15/03/2024"

	_, err := uc.Registrar(req)
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestRegistrarPedido_CodigoDuplicado_RetornaDuplicado(t *testing.T) {
	uc := usecase.NewPedidoUseCase(newFakePedidoRepo())

	_, err := uc.Registrar(buildRegistrarRequest())
	require.NoError(t, err)

	_, err = uc.Registrar(buildRegistrarRequest())
	assert.ErrorIs(t, err, domain.ErrDuplicado)
}

// ──────────────────────────────────────────────────────────────────────────────
// Listar
// ──────────────────────────────────────────────────────────────────────────────

func TestListarPedidos_SinFiltro_DevuelveTodos(t *testing.T) {
	uc := usecase.NewPedidoUseCase(newFakePedidoRepo())

	req1 := buildRegistrarRequest()
	req2 := buildRegistrarRequest()
	req2.CodigoPedido = "PED-002"
	req2.IDUsuario = int64Ptr(9)
	_, err := uc.Registrar(req1)
	require.NoError(t, err)
	_, err = uc.Registrar(req2)
	require.NoError(t, err)

	todos, err := uc.Listar(nil)
	require.NoError(t, err)
	assert.Len(t, todos, 2)
}

func TestListarPedidos_ConFiltroUsuario_DevuelveSoloSuyos(t *testing.T) {
	uc := usecase.NewPedidoUseCase(newFakePedidoRepo())

	req1 := buildRegistrarRequest() // usuario 7
	req2 := buildRegistrarRequest()
	req2.CodigoPedido = "PED-002"
	req2.IDUsuario = int64Ptr(9)
	_, err := uc.Registrar(req1)
	require.NoError(t, err)
	_, err = uc.Registrar(req2)
	require.NoError(t, err)

	propios, err := uc.Listar(int64Ptr(9))
	require.NoError(t, err)
	require.Len(t, propios, 1)
	assert.Equal(t, "PED-002", propios[0].CodigoPedido)
}

func TestListarPedidos_SinCoincidencias_DevuelveListaVacia(t *testing.T) {
	uc := usecase.NewPedidoUseCase(newFakePedidoRepo())
	out, err := uc.Listar(nil)
	require.NoError(t, err)
	assert.NotNil(t, out, "sin pedidos debe devolver lista vacía, no nil")
	assert.Empty(t, out)
}

// ──────────────────────────────────────────────────────────────────────────────
// Actualizar — asimetría escalares vs. referencias
// ──────────────────────────────────────────────────────────────────────────────

// Los escalares ausentes llegan como cero/vacío y sobreescriben; las
// referencias a catálogo ausentes (nil) conservan el valor actual.
func TestActualizarPedido_EscalaresSobreescriben_FKsSeConservan(t *testing.T) {
	uc := usecase.NewPedidoUseCase(newFakePedidoRepo())
	_, err := uc.Registrar(buildRegistrarRequest())
	require.NoError(t, err)

	out, err := uc.Actualizar("PED-001", dto.ActualizarPedidoRequest{
		Hora:   "14:00",
		Planta: "torre B",
		// nivel, medidas, fecha y codigo_plano ausentes → cero/vacío
		// las cinco FK ausentes → se conservan
	})
	require.NoError(t, err)

	assert.Equal(t, "14:00", out.Hora)
	assert.Equal(t, "torre B", out.Planta)
	assert.Equal(t, 0, out.Nivel, "nivel ausente debe quedar en cero")
	assert.True(t, out.MetrosCuadrados.IsZero(), "medida ausente debe quedar en cero")
	assert.Empty(t, out.CodigoPlano, "codigo_plano ausente debe quedar vacío")
	assert.Equal(t, time.Time{}.Format("2006-01-02"), out.Fecha)

	assert.Equal(t, "CUP-2024-001", out.IDProyectoCUP, "FK ausente debe conservarse")
	assert.Equal(t, int64(1), out.IDProducto)
	assert.Equal(t, int64(7), out.IDUsuario)
	assert.Equal(t, int64(2), out.IDTransporte)
	assert.Equal(t, int64(4), out.IDOficina)
}

func TestActualizarPedido_FKPresente_Sobreescribe(t *testing.T) {
	uc := usecase.NewPedidoUseCase(newFakePedidoRepo())
	_, err := uc.Registrar(buildRegistrarRequest())
	require.NoError(t, err)

	nuevoProyecto := "CUP-2024-099"
	out, err := uc.Actualizar("PED-001", dto.ActualizarPedidoRequest{
		Fecha:         "2024-04-01",
		Hora:          "08:00",
		IDProyectoCUP: &nuevoProyecto,
		IDTransporte:  int64Ptr(5),
	})
	require.NoError(t, err)

	assert.Equal(t, "CUP-2024-099", out.IDProyectoCUP)
	assert.Equal(t, int64(5), out.IDTransporte)
	assert.Equal(t, int64(1), out.IDProducto, "FK no enviada debe conservarse")
	assert.Equal(t, "2024-04-01", out.Fecha)
}

func TestActualizarPedido_CodigoInexistente_RetornaNotFound(t *testing.T) {
	uc := usecase.NewPedidoUseCase(newFakePedidoRepo())
	_, err := uc.Actualizar("NO-EXISTE", dto.ActualizarPedidoRequest{Hora: "10:00"})
	assert.ErrorIs(t, err, domain.ErrPedidoNotFound)
}

func TestActualizarPedido_FechaMalformada_RetornaEntradaInvalida(t *testing.T) {
	uc := usecase.NewPedidoUseCase(newFakePedidoRepo())
	_, err := uc.Registrar(buildRegistrarRequest())
	require.NoError(t, err)

	_, err = uc.Actualizar("PED-001", dto.ActualizarPedidoRequest{Fecha: "abril 1"})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}
