package entity

// Entidades de catálogo: tablas de referencia planas, sin lógica de negocio.
// Los pedidos las referencian, nunca las poseen.

// Proyecto obra identificada por su código CUP externo.
type Proyecto struct {
	IDProyectoCUP string // código externo, único
	Nombre        string
	SUF           string
}

// Producto material prefabricado solicitable en un pedido.
type Producto struct {
	ID          int64
	Nombre      string
	Descripcion string
}

// Transporte unidad de transporte disponible para despachos.
type Transporte struct {
	ID      int64
	Empresa string
	Placa   string
}

// OficinaTecnica rol de especialista ocupado por una Persona responsable.
type OficinaTecnica struct {
	ID           int64
	Especialidad string
	IDPersona    int64
}
