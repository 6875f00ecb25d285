package postgres

import (
	"context"
	"fmt"

	"github.com/construdata/pedidos-api/internal/domain"
	"github.com/construdata/pedidos-api/internal/domain/entity"
	"github.com/construdata/pedidos-api/internal/domain/repository"
)

var (
	_ repository.ProyectoRepository   = (*ProyectoRepo)(nil)
	_ repository.ProductoRepository   = (*ProductoRepo)(nil)
	_ repository.TransporteRepository = (*TransporteRepo)(nil)
	_ repository.OficinaRepository    = (*OficinaRepo)(nil)
)

// ProyectoRepo persistencia de proyectos sobre PostgreSQL.
type ProyectoRepo struct {
	q Querier
}

// NewProyectoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProyectoRepository(q Querier) *ProyectoRepo {
	return &ProyectoRepo{q: q}
}

// Create persiste un proyecto con su código CUP (único).
func (r *ProyectoRepo) Create(p *entity.Proyecto) error {
	query := `INSERT INTO proyecto (id_proyecto_cup, nombre, suf) VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query, p.IDProyectoCUP, p.Nombre, p.SUF)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert proyecto: %w", err)
	}
	return nil
}

// List lista todos los proyectos.
func (r *ProyectoRepo) List() ([]*entity.Proyecto, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id_proyecto_cup, nombre, suf FROM proyecto ORDER BY id_proyecto_cup`)
	if err != nil {
		return nil, fmt.Errorf("list proyectos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Proyecto
	for rows.Next() {
		var p entity.Proyecto
		if err := rows.Scan(&p.IDProyectoCUP, &p.Nombre, &p.SUF); err != nil {
			return nil, fmt.Errorf("scan proyecto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// ProductoRepo persistencia de productos sobre PostgreSQL.
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

// Create persiste un producto y devuelve el ID generado.
func (r *ProductoRepo) Create(p *entity.Producto) (int64, error) {
	var id int64
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO producto (nombre, descripcion) VALUES ($1, $2) RETURNING id_producto`,
		p.Nombre, p.Descripcion,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert producto: %w", err)
	}
	return id, nil
}

// List lista todos los productos.
func (r *ProductoRepo) List() ([]*entity.Producto, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id_producto, nombre, descripcion FROM producto ORDER BY id_producto`)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Producto
	for rows.Next() {
		var p entity.Producto
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Descripcion); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// TransporteRepo persistencia de transportes sobre PostgreSQL.
type TransporteRepo struct {
	q Querier
}

// NewTransporteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransporteRepository(q Querier) *TransporteRepo {
	return &TransporteRepo{q: q}
}

// Create persiste un transporte y devuelve el ID generado.
func (r *TransporteRepo) Create(t *entity.Transporte) (int64, error) {
	var id int64
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO transporte (empresa, placa) VALUES ($1, $2) RETURNING id_transporte`,
		t.Empresa, t.Placa,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert transporte: %w", err)
	}
	return id, nil
}

// List lista todos los transportes.
func (r *TransporteRepo) List() ([]*entity.Transporte, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id_transporte, empresa, placa FROM transporte ORDER BY id_transporte`)
	if err != nil {
		return nil, fmt.Errorf("list transportes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transporte
	for rows.Next() {
		var t entity.Transporte
		if err := rows.Scan(&t.ID, &t.Empresa, &t.Placa); err != nil {
			return nil, fmt.Errorf("scan transporte: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// OficinaRepo persistencia de oficinas técnicas sobre PostgreSQL.
type OficinaRepo struct {
	q Querier
}

// NewOficinaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOficinaRepository(q Querier) *OficinaRepo {
	return &OficinaRepo{q: q}
}

// Create persiste una oficina técnica. La persona responsable debe existir.
func (r *OficinaRepo) Create(o *entity.OficinaTecnica) (int64, error) {
	var id int64
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO oficina_tecnica (especialidad, id_persona) VALUES ($1, $2) RETURNING id_oficina`,
		o.Especialidad, o.IDPersona,
	).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, domain.ErrReferencia
		}
		return 0, fmt.Errorf("insert oficina tecnica: %w", err)
	}
	return id, nil
}

// List lista todas las oficinas técnicas.
func (r *OficinaRepo) List() ([]*entity.OficinaTecnica, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id_oficina, especialidad, id_persona FROM oficina_tecnica ORDER BY id_oficina`)
	if err != nil {
		return nil, fmt.Errorf("list oficinas tecnicas: %w", err)
	}
	defer rows.Close()
	var list []*entity.OficinaTecnica
	for rows.Next() {
		var o entity.OficinaTecnica
		if err := rows.Scan(&o.ID, &o.Especialidad, &o.IDPersona); err != nil {
			return nil, fmt.Errorf("scan oficina tecnica: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}
