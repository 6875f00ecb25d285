package repository

import "github.com/construdata/pedidos-api/internal/domain/entity"

// CodigoRepository define el puerto de persistencia para códigos de validación.
type CodigoRepository interface {
	// Create inserta un código activo para el usuario. No impide que el usuario
	// tenga varios códigos activos a la vez.
	Create(codigo *entity.CodigoValidacion) error
	// Consume elimina atómicamente el código (codigo, idUsuario, activo).
	// Devuelve true si lo consumió; false si no había fila coincidente.
	// Bajo validaciones concurrentes del mismo código, exactamente una gana.
	Consume(codigo string, idUsuario int64) (bool, error)
}
