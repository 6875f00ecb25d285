package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/construdata/pedidos-api/internal/application/dto"
	"github.com/construdata/pedidos-api/internal/domain"
	"github.com/construdata/pedidos-api/internal/domain/entity"
	"github.com/construdata/pedidos-api/internal/domain/repository"
	"github.com/construdata/pedidos-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// RegistroTxRunner ejecuta el alta Persona+Usuario dentro de una transacción.
// Lo implementa postgres.TxRunner; la interfaz evita el import circular y
// permite usar un fake en tests.
type RegistroTxRunner interface {
	RunRegistro(ctx context.Context, fn func(
		personaRepo repository.PersonaRepository,
		usuarioRepo repository.UsuarioRepository,
	) error) error
}

// AuthUseCase casos de uso de autenticación: registro de cliente y login.
type AuthUseCase struct {
	usuarioRepo repository.UsuarioRepository
	personaRepo repository.PersonaRepository
	txRunner    RegistroTxRunner
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(usuarioRepo repository.UsuarioRepository, personaRepo repository.PersonaRepository, txRunner RegistroTxRunner, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{usuarioRepo: usuarioRepo, personaRepo: personaRepo, txRunner: txRunner, jwtCfg: jwtCfg}
}

// RegistrarCliente crea Persona y Usuario en una sola transacción: si el insert
// del usuario falla, la persona no queda huérfana. La contraseña se hashea con
// bcrypt siempre. Devuelve ErrCorreoRegistrado si el correo ya existe.
func (uc *AuthUseCase) RegistrarCliente(ctx context.Context, in dto.RegistrarClienteRequest) (*dto.ClienteResponse, error) {
	if in.Nombre == "" || in.Correo == "" || in.Telefono == "" || in.Pais == "" || in.Rol == "" || in.Contrasena == "" {
		return nil, domain.ErrEntradaInvalida
	}

	// Chequeo temprano; el constraint único en usuario.correo cubre la carrera.
	existente, err := uc.usuarioRepo.FindByCorreo(in.Correo)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrCorreoRegistrado
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Contrasena), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	var out dto.ClienteResponse
	err = uc.txRunner.RunRegistro(ctx, func(
		personaRepo repository.PersonaRepository,
		usuarioRepo repository.UsuarioRepository,
	) error {
		idPersona, err := personaRepo.Create(&entity.Persona{
			Nombre:   in.Nombre,
			Correo:   in.Correo,
			Telefono: in.Telefono,
			Pais:     in.Pais,
		})
		if err != nil {
			return err
		}
		idUsuario, err := usuarioRepo.Create(&entity.Usuario{
			Correo:         in.Correo,
			ContrasenaHash: string(hash),
			Rol:            in.Rol,
			IDPersona:      idPersona,
		})
		if err != nil {
			return err
		}
		out = dto.ClienteResponse{
			IDUsuario: idUsuario,
			IDPersona: idPersona,
			Nombre:    in.Nombre,
			Correo:    in.Correo,
			Rol:       in.Rol,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Login verifica correo/contraseña, genera JWT y retorna token + datos del usuario.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Correo == "" || in.Contrasena == "" {
		return nil, domain.ErrEntradaInvalida
	}
	usuario, err := uc.usuarioRepo.FindByCorreo(in.Correo)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUsuarioNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.ContrasenaHash), []byte(in.Contrasena)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, usuario.ID, usuario.Correo, usuario.Rol, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	nombre := ""
	if persona, err := uc.personaRepo.GetByID(usuario.IDPersona); err == nil && persona != nil {
		nombre = persona.Nombre
	}
	return &dto.LoginResponse{
		Token:     token,
		IDUsuario: usuario.ID,
		Rol:       usuario.Rol,
		Nombre:    nombre,
	}, nil
}
