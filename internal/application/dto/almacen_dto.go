package dto

import "time"

// CrearAlmacenRequest body para POST /api/almacenes.
type CrearAlmacenRequest struct {
	Codigo string `json:"codigo"`
	Nombre string `json:"nombre"`
}

// AlmacenResponse representación de un almacén en la API.
type AlmacenResponse struct {
	ID        string    `json:"id"`
	Codigo    string    `json:"codigo"`
	Nombre    string    `json:"nombre"`
	Activo    bool      `json:"activo"`
	CreatedAt time.Time `json:"created_at"`
}
