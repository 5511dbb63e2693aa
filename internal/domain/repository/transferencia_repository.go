package repository

import "github.com/jcondori/kardex-api/internal/domain/entity"

// TransferenciaRepository puerto de persistencia para transferencias y sus líneas.
type TransferenciaRepository interface {
	// Create persiste la transferencia junto con sus líneas.
	Create(t *entity.Transferencia, lineas []*entity.TransferenciaLinea) error
	GetByID(id string) (*entity.Transferencia, error)
	List(limit, offset int) ([]*entity.Transferencia, error)
	GetLineas(transferenciaID string) ([]*entity.TransferenciaLinea, error)
	GetLinea(transferenciaID, productoID string) (*entity.TransferenciaLinea, error)
	UpdateEstado(id, estado string) error
	UpdateLineaEnviada(transferenciaID, productoID string, cantidad int, lote string) error
	UpdateLineaRecibida(transferenciaID, productoID string, cantidad int, observaciones string) error
}
