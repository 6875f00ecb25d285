package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/construdata/pedidos-api/internal/application/auth"
	"github.com/construdata/pedidos-api/internal/application/dto"
	"github.com/construdata/pedidos-api/internal/domain"
	"github.com/construdata/pedidos-api/internal/domain/entity"
	"github.com/construdata/pedidos-api/internal/domain/repository"
	pkgjwt "github.com/construdata/pedidos-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria. El tx runner de prueba ejecuta el callback contra los
// mismos repos fake y, si falla, revierte el estado previo para emular el
// rollback de la transacción real.
// ──────────────────────────────────────────────────────────────────────────────

type fakePersonaRepo struct {
	personas map[int64]*entity.Persona
	nextID   int64
	failNext bool
}

func newFakePersonaRepo() *fakePersonaRepo {
	return &fakePersonaRepo{personas: make(map[int64]*entity.Persona), nextID: 1}
}

func (f *fakePersonaRepo) Create(p *entity.Persona) (int64, error) {
	if f.failNext {
		return 0, assert.AnError
	}
	id := f.nextID
	f.nextID++
	cp := *p
	cp.ID = id
	f.personas[id] = &cp
	return id, nil
}

func (f *fakePersonaRepo) GetByID(id int64) (*entity.Persona, error) {
	p, ok := f.personas[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakePersonaRepo) List() ([]*entity.Persona, error) {
	out := make([]*entity.Persona, 0, len(f.personas))
	for _, p := range f.personas {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

type fakeUsuarioRepo struct {
	usuarios map[string]*entity.Usuario // correo → usuario
	nextID   int64
	failNext bool
}

func newFakeUsuarioRepo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{usuarios: make(map[string]*entity.Usuario), nextID: 1}
}

func (f *fakeUsuarioRepo) Create(u *entity.Usuario) (int64, error) {
	if f.failNext {
		return 0, assert.AnError
	}
	if _, ok := f.usuarios[u.Correo]; ok {
		return 0, domain.ErrCorreoRegistrado
	}
	id := f.nextID
	f.nextID++
	cp := *u
	cp.ID = id
	f.usuarios[u.Correo] = &cp
	return id, nil
}

func (f *fakeUsuarioRepo) FindByCorreo(correo string) (*entity.Usuario, error) {
	u, ok := f.usuarios[correo]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsuarioRepo) List() ([]*entity.Usuario, error) {
	out := make([]*entity.Usuario, 0, len(f.usuarios))
	for _, u := range f.usuarios {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

type fakeTxRunner struct {
	personaRepo *fakePersonaRepo
	usuarioRepo *fakeUsuarioRepo
}

func (f *fakeTxRunner) RunRegistro(ctx context.Context, fn func(
	personaRepo repository.PersonaRepository,
	usuarioRepo repository.UsuarioRepository,
) error) error {
	// Snapshot para emular el rollback
	antes := make(map[int64]*entity.Persona, len(f.personaRepo.personas))
	for k, v := range f.personaRepo.personas {
		antes[k] = v
	}
	antesNextID := f.personaRepo.nextID

	if err := fn(f.personaRepo, f.usuarioRepo); err != nil {
		f.personaRepo.personas = antes
		f.personaRepo.nextID = antesNextID
		return err
	}
	return nil
}

func buildAuthUseCase() (*auth.AuthUseCase, *fakeUsuarioRepo, *fakePersonaRepo) {
	usuarioRepo := newFakeUsuarioRepo()
	personaRepo := newFakePersonaRepo()
	runner := &fakeTxRunner{personaRepo: personaRepo, usuarioRepo: usuarioRepo}
	uc := auth.NewAuthUseCase(usuarioRepo, personaRepo, runner, auth.JWTConfig{
		Secret:     "test-secret-key-for-unit-tests",
		ExpMinutes: 60,
		Issuer:     "pedidos-api-test",
	})
	return uc, usuarioRepo, personaRepo
}

func buildRegistroRequest() dto.RegistrarClienteRequest {
	return dto.RegistrarClienteRequest{
		Nombre:     "María Quispe",
		Correo:     "maria@construdata.pe",
		Telefono:   "+51 999 888 777",
		Pais:       "Perú",
		Rol:        entity.RolCliente,
		Contrasena: "secreta-muy-larga",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// RegistrarCliente
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrarCliente_CreaPersonaYUsuario(t *testing.T) {
	uc, usuarioRepo, personaRepo := buildAuthUseCase()

	out, err := uc.RegistrarCliente(context.Background(), buildRegistroRequest())
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "María Quispe", out.Nombre)
	assert.Equal(t, "maria@construdata.pe", out.Correo)
	assert.Equal(t, entity.RolCliente, out.Rol)
	assert.NotZero(t, out.IDUsuario)
	assert.NotZero(t, out.IDPersona)

	persona, err := personaRepo.GetByID(out.IDPersona)
	require.NoError(t, err)
	require.NotNil(t, persona, "la persona debe quedar persistida")

	usuario, err := usuarioRepo.FindByCorreo("maria@construdata.pe")
	require.NoError(t, err)
	require.NotNil(t, usuario)
	assert.Equal(t, out.IDPersona, usuario.IDPersona, "el usuario debe referenciar a su persona")
}

// La contraseña nunca se persiste en texto plano.
func TestRegistrarCliente_HasheaContrasenaConBcrypt(t *testing.T) {
	uc, usuarioRepo, _ := buildAuthUseCase()

	_, err := uc.RegistrarCliente(context.Background(), buildRegistroRequest())
	require.NoError(t, err)

	usuario, err := usuarioRepo.FindByCorreo("maria@construdata.pe")
	require.NoError(t, err)
	require.NotNil(t, usuario)

	assert.NotEqual(t, "secreta-muy-larga", usuario.ContrasenaHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(usuario.ContrasenaHash), []byte("secreta-muy-larga")),
		"el hash debe validar contra la contraseña original")
}

func TestRegistrarCliente_CorreoDuplicado_RetornaCorreoRegistrado(t *testing.T) {
	uc, _, _ := buildAuthUseCase()

	_, err := uc.RegistrarCliente(context.Background(), buildRegistroRequest())
	require.NoError(t, err)

	_, err = uc.RegistrarCliente(context.Background(), buildRegistroRequest())
	assert.ErrorIs(t, err, domain.ErrCorreoRegistrado)
}

func TestRegistrarCliente_CampoAusente_RetornaEntradaInvalida(t *testing.T) {
	uc, _, _ := buildAuthUseCase()

	req := buildRegistroRequest()
	req.Correo = ""
	_, err := uc.RegistrarCliente(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)

	req = buildRegistroRequest()
	req.Contrasena = ""
	_, err = uc.RegistrarCliente(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

// Si el insert del usuario falla, la persona no debe quedar huérfana.
func TestRegistrarCliente_FallaUsuario_NoDejaPersonaHuerfana(t *testing.T) {
	uc, usuarioRepo, personaRepo := buildAuthUseCase()
	usuarioRepo.failNext = true

	_, err := uc.RegistrarCliente(context.Background(), buildRegistroRequest())
	require.Error(t, err)

	personas, err := personaRepo.List()
	require.NoError(t, err)
	assert.Empty(t, personas, "el alta fallida no debe dejar personas sueltas")
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesValidas_DevuelveTokenYNombre(t *testing.T) {
	uc, _, _ := buildAuthUseCase()
	_, err := uc.RegistrarCliente(context.Background(), buildRegistroRequest())
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{
		Correo:     "maria@construdata.pe",
		Contrasena: "secreta-muy-larga",
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.NotEmpty(t, out.Token)
	assert.Equal(t, entity.RolCliente, out.Rol)
	assert.Equal(t, "María Quispe", out.Nombre)

	// El token debe llevar la identidad del usuario en los claims
	userID, correo, rol, err := pkgjwt.Parse("test-secret-key-for-unit-tests", out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.IDUsuario, userID)
	assert.Equal(t, "maria@construdata.pe", correo)
	assert.Equal(t, entity.RolCliente, rol)
}

func TestLogin_ContrasenaIncorrecta_RetornaUnauthorized(t *testing.T) {
	uc, _, _ := buildAuthUseCase()
	_, err := uc.RegistrarCliente(context.Background(), buildRegistroRequest())
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{
		Correo:     "maria@construdata.pe",
		Contrasena: "equivocada",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_CorreoDesconocido_RetornaUsuarioNotFound(t *testing.T) {
	uc, _, _ := buildAuthUseCase()

	_, err := uc.Login(dto.LoginRequest{
		Correo:     "nadie@construdata.pe",
		Contrasena: "lo-que-sea",
	})
	assert.ErrorIs(t, err, domain.ErrUsuarioNotFound)
}

func TestLogin_EntradaIncompleta_RetornaEntradaInvalida(t *testing.T) {
	uc, _, _ := buildAuthUseCase()

	_, err := uc.Login(dto.LoginRequest{Correo: "maria@construdata.pe"})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)

	_, err = uc.Login(dto.LoginRequest{Contrasena: "secreta"})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}
