package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/construdata/pedidos-api/internal/domain/entity"
	"github.com/construdata/pedidos-api/internal/domain/repository"
)

var _ repository.PersonaRepository = (*PersonaRepo)(nil)

// PersonaRepo implementación del puerto PersonaRepository sobre PostgreSQL (usable con pool o tx).
type PersonaRepo struct {
	q Querier
}

// NewPersonaRepository construye el adaptador de persistencia para personas. Pasar pool o tx (Querier).
func NewPersonaRepository(q Querier) *PersonaRepo {
	return &PersonaRepo{q: q}
}

// Create persiste una nueva persona y devuelve el ID generado.
func (r *PersonaRepo) Create(p *entity.Persona) (int64, error) {
	query := `
		INSERT INTO persona (nombre, correo, telefono, pais)
		VALUES ($1, $2, $3, $4) RETURNING id_persona`
	var id int64
	err := r.q.QueryRow(context.Background(), query,
		p.Nombre, p.Correo, p.Telefono, p.Pais,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert persona: %w", err)
	}
	return id, nil
}

// GetByID obtiene una persona por ID. Devuelve nil, nil si no existe.
func (r *PersonaRepo) GetByID(id int64) (*entity.Persona, error) {
	query := `SELECT id_persona, nombre, correo, telefono, pais FROM persona WHERE id_persona = $1`
	var p entity.Persona
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Nombre, &p.Correo, &p.Telefono, &p.Pais,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get persona: %w", err)
	}
	return &p, nil
}

// List lista todas las personas.
func (r *PersonaRepo) List() ([]*entity.Persona, error) {
	query := `SELECT id_persona, nombre, correo, telefono, pais FROM persona ORDER BY id_persona`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list personas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Persona
	for rows.Next() {
		var p entity.Persona
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Correo, &p.Telefono, &p.Pais); err != nil {
			return nil, fmt.Errorf("scan persona: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
