package repository

import "github.com/construdata/pedidos-api/internal/domain/entity"

// Puertos de catálogo: tablas de referencia planas, lecturas y altas simples.

// ProyectoRepository persistencia para Proyecto.
type ProyectoRepository interface {
	// Create devuelve ErrDuplicado si el código CUP ya existe.
	Create(proyecto *entity.Proyecto) error
	List() ([]*entity.Proyecto, error)
}

// ProductoRepository persistencia para Producto.
type ProductoRepository interface {
	Create(producto *entity.Producto) (int64, error)
	List() ([]*entity.Producto, error)
}

// TransporteRepository persistencia para Transporte.
type TransporteRepository interface {
	Create(transporte *entity.Transporte) (int64, error)
	List() ([]*entity.Transporte, error)
}

// OficinaRepository persistencia para OficinaTecnica.
type OficinaRepository interface {
	// Create devuelve ErrReferencia si la persona responsable no existe.
	Create(oficina *entity.OficinaTecnica) (int64, error)
	List() ([]*entity.OficinaTecnica, error)
}
