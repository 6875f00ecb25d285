package entity

// Estado de un código de validación. Un código consumido se elimina,
// por lo que el único estado persistido es "activo".
const EstadoCodigoActivo = "activo"

// CodigoValidacion código de un solo uso ligado a un usuario.
// Máquina de estados: emitido(activo) → consumido(eliminado), terminal.
type CodigoValidacion struct {
	Codigo    string
	IDUsuario int64
	Estado    string
}
