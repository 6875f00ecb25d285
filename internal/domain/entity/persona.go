package entity

// Persona datos de contacto de una persona física.
// Se crea una sola vez en el registro de cliente y no se re-asigna después.
type Persona struct {
	ID       int64
	Nombre   string
	Correo   string
	Telefono string
	Pais     string
}
