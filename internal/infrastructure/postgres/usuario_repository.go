package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/construdata/pedidos-api/internal/domain"
	"github.com/construdata/pedidos-api/internal/domain/entity"
	"github.com/construdata/pedidos-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL (usable con pool o tx).
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository construye el adaptador de persistencia para usuarios. Pasar pool o tx (Querier).
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// Create persiste un nuevo usuario y devuelve el ID generado.
func (r *UsuarioRepo) Create(u *entity.Usuario) (int64, error) {
	query := `
		INSERT INTO usuario (correo, contrasena, rol, id_persona)
		VALUES ($1, $2, $3, $4) RETURNING id_usuario`
	var id int64
	err := r.q.QueryRow(context.Background(), query,
		u.Correo, u.ContrasenaHash, u.Rol, u.IDPersona,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrCorreoRegistrado
		}
		return 0, fmt.Errorf("insert usuario: %w", err)
	}
	return id, nil
}

// FindByCorreo obtiene un usuario por correo. Devuelve nil, nil si no existe.
func (r *UsuarioRepo) FindByCorreo(correo string) (*entity.Usuario, error) {
	query := `
		SELECT id_usuario, correo, contrasena, rol, id_persona
		FROM usuario WHERE correo = $1 LIMIT 1`
	var u entity.Usuario
	err := r.q.QueryRow(context.Background(), query, correo).Scan(
		&u.ID, &u.Correo, &u.ContrasenaHash, &u.Rol, &u.IDPersona,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario by correo: %w", err)
	}
	return &u, nil
}

// List lista todos los usuarios.
func (r *UsuarioRepo) List() ([]*entity.Usuario, error) {
	query := `
		SELECT id_usuario, correo, contrasena, rol, id_persona
		FROM usuario ORDER BY id_usuario`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Usuario
	for rows.Next() {
		var u entity.Usuario
		if err := rows.Scan(&u.ID, &u.Correo, &u.ContrasenaHash, &u.Rol, &u.IDPersona); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}
