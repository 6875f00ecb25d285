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

var _ repository.PedidoRepository = (*PedidoRepo)(nil)

// PedidoRepo implementación del puerto PedidoRepository sobre PostgreSQL (usable con pool o tx).
type PedidoRepo struct {
	q Querier
}

// NewPedidoRepository construye el adaptador de persistencia para pedidos. Pasar pool o tx (Querier).
func NewPedidoRepository(q Querier) *PedidoRepo {
	return &PedidoRepo{q: q}
}

const pedidoColumns = `codigo_pedido, fecha, hora, nivel, metros_cuadrados, metros_lineales,
		kilogramos, frisos, chatas, codigo_plano, planta,
		id_proyecto_cup, id_producto, id_usuario, id_transporte, id_oficina`

// Create inserta un pedido con sus 16 campos. Las FK a proyecto, producto, usuario,
// transporte y oficina técnica se validan por constraint en la base de datos.
func (r *PedidoRepo) Create(p *entity.Pedido) error {
	query := `
		INSERT INTO detalle_pedido (` + pedidoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		p.CodigoPedido, p.Fecha, p.Hora, p.Nivel, p.MetrosCuadrados, p.MetrosLineales,
		p.Kilogramos, p.Frisos, p.Chatas, p.CodigoPlano, p.Planta,
		p.IDProyectoCUP, p.IDProducto, p.IDUsuario, p.IDTransporte, p.IDOficina,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		if isForeignKeyViolation(err) {
			return domain.ErrReferencia
		}
		return fmt.Errorf("insert pedido: %w", err)
	}
	return nil
}

// GetByCodigo obtiene un pedido por su código de negocio.
func (r *PedidoRepo) GetByCodigo(codigo string) (*entity.Pedido, error) {
	query := `SELECT ` + pedidoColumns + ` FROM detalle_pedido WHERE codigo_pedido = $1`
	var p entity.Pedido
	err := r.q.QueryRow(context.Background(), query, codigo).Scan(
		&p.CodigoPedido, &p.Fecha, &p.Hora, &p.Nivel, &p.MetrosCuadrados, &p.MetrosLineales,
		&p.Kilogramos, &p.Frisos, &p.Chatas, &p.CodigoPlano, &p.Planta,
		&p.IDProyectoCUP, &p.IDProducto, &p.IDUsuario, &p.IDTransporte, &p.IDOficina,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pedido: %w", err)
	}
	return &p, nil
}

const detalleSelect = `
	SELECT p.codigo_pedido, p.fecha, p.hora, p.nivel, p.metros_cuadrados, p.metros_lineales,
	       p.kilogramos, p.frisos, p.chatas, p.codigo_plano, p.planta,
	       p.id_proyecto_cup, p.id_producto, p.id_usuario, p.id_transporte, p.id_oficina,
	       pr.nombre, pr.suf, prod.nombre, per.nombre, per.correo,
	       t.empresa, t.placa, o.especialidad, esp.nombre
	FROM detalle_pedido p
	JOIN proyecto pr        ON pr.id_proyecto_cup = p.id_proyecto_cup
	JOIN producto prod      ON prod.id_producto = p.id_producto
	JOIN usuario u          ON u.id_usuario = p.id_usuario
	JOIN persona per        ON per.id_persona = u.id_persona
	JOIN transporte t       ON t.id_transporte = p.id_transporte
	JOIN oficina_tecnica o  ON o.id_oficina = p.id_oficina
	JOIN persona esp        ON esp.id_persona = o.id_persona`

func scanDetalle(row pgx.Row) (*entity.DetallePedido, error) {
	var d entity.DetallePedido
	err := row.Scan(
		&d.CodigoPedido, &d.Fecha, &d.Hora, &d.Nivel, &d.MetrosCuadrados, &d.MetrosLineales,
		&d.Kilogramos, &d.Frisos, &d.Chatas, &d.CodigoPlano, &d.Planta,
		&d.IDProyectoCUP, &d.IDProducto, &d.IDUsuario, &d.IDTransporte, &d.IDOficina,
		&d.NombreProyecto, &d.SUF, &d.NombreProducto, &d.Solicitante, &d.CorreoSolicitante,
		&d.EmpresaTransporte, &d.PlacaTransporte, &d.Especialidad, &d.Especialista,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ListDetalles lista la proyección enriquecida. Con idUsuario filtra por solicitante.
// Sin filas coincidentes devuelve slice vacío, no error.
func (r *PedidoRepo) ListDetalles(idUsuario *int64) ([]*entity.DetallePedido, error) {
	query := detalleSelect
	args := []any{}
	if idUsuario != nil {
		query += ` WHERE p.id_usuario = $1`
		args = append(args, *idUsuario)
	}
	query += ` ORDER BY p.fecha DESC, p.codigo_pedido`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list pedidos: %w", err)
	}
	defer rows.Close()

	list := []*entity.DetallePedido{}
	for rows.Next() {
		d, err := scanDetalle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan detalle pedido: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// GetDetalleByCodigo obtiene la proyección enriquecida de un solo pedido.
func (r *PedidoRepo) GetDetalleByCodigo(codigo string) (*entity.DetallePedido, error) {
	query := detalleSelect + ` WHERE p.codigo_pedido = $1`
	d, err := scanDetalle(r.q.QueryRow(context.Background(), query, codigo))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get detalle pedido: %w", err)
	}
	return d, nil
}

// Update aplica la actualización parcial. Los campos escalares se sobreescriben siempre
// con lo recibido; las cinco FK conservan su valor actual cuando llegan en nil (COALESCE).
// Cero filas afectadas significa que el código no existe: ErrPedidoNotFound.
func (r *PedidoRepo) Update(codigo string, c *entity.ActualizacionPedido) (*entity.Pedido, error) {
	query := `
		UPDATE detalle_pedido SET
			fecha = $1, hora = $2, nivel = $3,
			metros_cuadrados = $4, metros_lineales = $5, kilogramos = $6,
			frisos = $7, chatas = $8, codigo_plano = $9, planta = $10,
			id_proyecto_cup = COALESCE($11, id_proyecto_cup),
			id_producto     = COALESCE($12, id_producto),
			id_usuario      = COALESCE($13, id_usuario),
			id_transporte   = COALESCE($14, id_transporte),
			id_oficina      = COALESCE($15, id_oficina)
		WHERE codigo_pedido = $16
		RETURNING ` + pedidoColumns
	var p entity.Pedido
	err := r.q.QueryRow(context.Background(), query,
		c.Fecha, c.Hora, c.Nivel,
		c.MetrosCuadrados, c.MetrosLineales, c.Kilogramos,
		c.Frisos, c.Chatas, c.CodigoPlano, c.Planta,
		c.IDProyectoCUP, c.IDProducto, c.IDUsuario, c.IDTransporte, c.IDOficina,
		codigo,
	).Scan(
		&p.CodigoPedido, &p.Fecha, &p.Hora, &p.Nivel, &p.MetrosCuadrados, &p.MetrosLineales,
		&p.Kilogramos, &p.Frisos, &p.Chatas, &p.CodigoPlano, &p.Planta,
		&p.IDProyectoCUP, &p.IDProducto, &p.IDUsuario, &p.IDTransporte, &p.IDOficina,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPedidoNotFound
		}
		if isForeignKeyViolation(err) {
			return nil, domain.ErrReferencia
		}
		return nil, fmt.Errorf("update pedido: %w", err)
	}
	return &p, nil
}
