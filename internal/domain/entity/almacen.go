package entity

import "time"

// Almacen representa un almacén físico. Se identifica en la API por su código
// corto (ej. "LPZ", "CBB", "SCZ").
type Almacen struct {
	ID        string
	Codigo    string
	Nombre    string
	Activo    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
