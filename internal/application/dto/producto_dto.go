package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CrearProductoRequest body para POST /api/productos.
type CrearProductoRequest struct {
	Nombre    string          `json:"nombre"`
	Categoria string          `json:"categoria"`
	Precio    decimal.Decimal `json:"precio"`
}

// ActualizarProductoRequest body para PUT /api/productos/:id.
type ActualizarProductoRequest struct {
	Nombre    string           `json:"nombre,omitempty"`
	Categoria string           `json:"categoria,omitempty"`
	Precio    *decimal.Decimal `json:"precio,omitempty"`
	Activo    *bool            `json:"activo,omitempty"`
}

// ProductoResponse representación de un producto en la API.
type ProductoResponse struct {
	ID        string          `json:"id"`
	Nombre    string          `json:"nombre"`
	Categoria string          `json:"categoria"`
	Precio    decimal.Decimal `json:"precio"`
	Activo    bool            `json:"activo"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
