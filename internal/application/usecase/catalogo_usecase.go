package usecase

import (
	"github.com/construdata/pedidos-api/internal/application/dto"
	"github.com/construdata/pedidos-api/internal/domain"
	"github.com/construdata/pedidos-api/internal/domain/entity"
	"github.com/construdata/pedidos-api/internal/domain/repository"
)

// CatalogoUseCase lecturas y altas de las tablas de referencia
// (proyectos, productos, transportes, oficinas técnicas, personas, usuarios).
type CatalogoUseCase struct {
	proyectos   repository.ProyectoRepository
	productos   repository.ProductoRepository
	transportes repository.TransporteRepository
	oficinas    repository.OficinaRepository
	personas    repository.PersonaRepository
	usuarios    repository.UsuarioRepository
}

// NewCatalogoUseCase construye el caso de uso con los puertos de catálogo.
func NewCatalogoUseCase(
	proyectos repository.ProyectoRepository,
	productos repository.ProductoRepository,
	transportes repository.TransporteRepository,
	oficinas repository.OficinaRepository,
	personas repository.PersonaRepository,
	usuarios repository.UsuarioRepository,
) *CatalogoUseCase {
	return &CatalogoUseCase{
		proyectos:   proyectos,
		productos:   productos,
		transportes: transportes,
		oficinas:    oficinas,
		personas:    personas,
		usuarios:    usuarios,
	}
}

// RegistrarProyecto da de alta un proyecto. ErrDuplicado si el código CUP ya existe.
func (uc *CatalogoUseCase) RegistrarProyecto(in dto.RegistrarProyectoRequest) (*dto.ProyectoResponse, error) {
	if in.IDProyectoCUP == "" || in.Nombre == "" || in.SUF == "" {
		return nil, domain.ErrEntradaInvalida
	}
	p := &entity.Proyecto{IDProyectoCUP: in.IDProyectoCUP, Nombre: in.Nombre, SUF: in.SUF}
	if err := uc.proyectos.Create(p); err != nil {
		return nil, err
	}
	return &dto.ProyectoResponse{IDProyectoCUP: p.IDProyectoCUP, Nombre: p.Nombre, SUF: p.SUF}, nil
}

// ListarProyectos lista todos los proyectos.
func (uc *CatalogoUseCase) ListarProyectos() ([]*dto.ProyectoResponse, error) {
	proyectos, err := uc.proyectos.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProyectoResponse, 0, len(proyectos))
	for _, p := range proyectos {
		out = append(out, &dto.ProyectoResponse{IDProyectoCUP: p.IDProyectoCUP, Nombre: p.Nombre, SUF: p.SUF})
	}
	return out, nil
}

// RegistrarProducto da de alta un producto.
func (uc *CatalogoUseCase) RegistrarProducto(in dto.RegistrarProductoRequest) (*dto.ProductoResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrEntradaInvalida
	}
	p := &entity.Producto{Nombre: in.Nombre, Descripcion: in.Descripcion}
	id, err := uc.productos.Create(p)
	if err != nil {
		return nil, err
	}
	return &dto.ProductoResponse{IDProducto: id, Nombre: p.Nombre, Descripcion: p.Descripcion}, nil
}

// ListarProductos lista todos los productos.
func (uc *CatalogoUseCase) ListarProductos() ([]*dto.ProductoResponse, error) {
	productos, err := uc.productos.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		out = append(out, &dto.ProductoResponse{IDProducto: p.ID, Nombre: p.Nombre, Descripcion: p.Descripcion})
	}
	return out, nil
}

// RegistrarTransporte da de alta un transporte.
func (uc *CatalogoUseCase) RegistrarTransporte(in dto.RegistrarTransporteRequest) (*dto.TransporteResponse, error) {
	if in.Empresa == "" || in.Placa == "" {
		return nil, domain.ErrEntradaInvalida
	}
	t := &entity.Transporte{Empresa: in.Empresa, Placa: in.Placa}
	id, err := uc.transportes.Create(t)
	if err != nil {
		return nil, err
	}
	return &dto.TransporteResponse{IDTransporte: id, Empresa: t.Empresa, Placa: t.Placa}, nil
}

// ListarTransportes lista todos los transportes.
func (uc *CatalogoUseCase) ListarTransportes() ([]*dto.TransporteResponse, error) {
	transportes, err := uc.transportes.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.TransporteResponse, 0, len(transportes))
	for _, t := range transportes {
		out = append(out, &dto.TransporteResponse{IDTransporte: t.ID, Empresa: t.Empresa, Placa: t.Placa})
	}
	return out, nil
}

// RegistrarOficina da de alta una oficina técnica. La persona responsable debe existir.
func (uc *CatalogoUseCase) RegistrarOficina(in dto.RegistrarOficinaRequest) (*dto.OficinaResponse, error) {
	if in.Especialidad == "" || in.IDPersona == 0 {
		return nil, domain.ErrEntradaInvalida
	}
	o := &entity.OficinaTecnica{Especialidad: in.Especialidad, IDPersona: in.IDPersona}
	id, err := uc.oficinas.Create(o)
	if err != nil {
		return nil, err
	}
	return &dto.OficinaResponse{IDOficina: id, Especialidad: o.Especialidad, IDPersona: o.IDPersona}, nil
}

// ListarOficinas lista todas las oficinas técnicas.
func (uc *CatalogoUseCase) ListarOficinas() ([]*dto.OficinaResponse, error) {
	oficinas, err := uc.oficinas.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.OficinaResponse, 0, len(oficinas))
	for _, o := range oficinas {
		out = append(out, &dto.OficinaResponse{IDOficina: o.ID, Especialidad: o.Especialidad, IDPersona: o.IDPersona})
	}
	return out, nil
}

// RegistrarPersona da de alta una persona suelta (contacto de catálogo, sin usuario).
func (uc *CatalogoUseCase) RegistrarPersona(in dto.RegistrarPersonaRequest) (*dto.PersonaResponse, error) {
	if in.Nombre == "" || in.Correo == "" || in.Telefono == "" || in.Pais == "" {
		return nil, domain.ErrEntradaInvalida
	}
	p := &entity.Persona{Nombre: in.Nombre, Correo: in.Correo, Telefono: in.Telefono, Pais: in.Pais}
	id, err := uc.personas.Create(p)
	if err != nil {
		return nil, err
	}
	return &dto.PersonaResponse{IDPersona: id, Nombre: p.Nombre, Correo: p.Correo, Telefono: p.Telefono, Pais: p.Pais}, nil
}

// ListarPersonas lista todas las personas.
func (uc *CatalogoUseCase) ListarPersonas() ([]*dto.PersonaResponse, error) {
	personas, err := uc.personas.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PersonaResponse, 0, len(personas))
	for _, p := range personas {
		out = append(out, &dto.PersonaResponse{IDPersona: p.ID, Nombre: p.Nombre, Correo: p.Correo, Telefono: p.Telefono, Pais: p.Pais})
	}
	return out, nil
}

// ListarUsuarios lista todos los usuarios sin exponer el hash de contraseña.
func (uc *CatalogoUseCase) ListarUsuarios() ([]*dto.UsuarioResponse, error) {
	usuarios, err := uc.usuarios.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UsuarioResponse, 0, len(usuarios))
	for _, u := range usuarios {
		out = append(out, &dto.UsuarioResponse{IDUsuario: u.ID, Correo: u.Correo, Rol: u.Rol, IDPersona: u.IDPersona})
	}
	return out, nil
}
