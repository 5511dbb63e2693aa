package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto representa un producto farmacéutico del catálogo. El motor de
// kardex solo consulta su existencia y el flag Activo.
type Producto struct {
	ID        string
	Nombre    string
	Categoria string
	Precio    decimal.Decimal
	Activo    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
