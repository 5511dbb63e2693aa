package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jcondori/kardex-api/internal/domain/entity"
	"github.com/jcondori/kardex-api/internal/domain/repository"
)

var _ repository.TransferenciaRepository = (*TransferenciaRepo)(nil)

// TransferenciaRepo implementación sobre PostgreSQL (usable con pool o tx).
type TransferenciaRepo struct {
	q Querier
}

// NewTransferenciaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransferenciaRepository(q Querier) *TransferenciaRepo {
	return &TransferenciaRepo{q: q}
}

// Create persiste la transferencia y sus líneas. Debe invocarse dentro de una
// transacción para que cabecera y líneas queden juntas.
func (r *TransferenciaRepo) Create(t *entity.Transferencia, lineas []*entity.TransferenciaLinea) error {
	ctx := context.Background()
	_, err := r.q.Exec(ctx, `
		INSERT INTO transferencias (id, almacen_origen, almacen_destino, estado, creador, observaciones, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		t.ID, t.AlmacenOrigen, t.AlmacenDestino, t.Estado, t.Creador, t.Observaciones, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transferencia: %w", err)
	}
	for _, l := range lineas {
		err := r.q.QueryRow(ctx, `
			INSERT INTO transferencia_lineas (id_transferencia, id_producto, cantidad_solicitada, lote, observaciones)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
			l.TransferenciaID, l.ProductoID, l.CantidadSolicitada, l.Lote, l.Observaciones,
		).Scan(&l.ID)
		if err != nil {
			return fmt.Errorf("insert transferencia linea: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una transferencia por ID, sin líneas.
func (r *TransferenciaRepo) GetByID(id string) (*entity.Transferencia, error) {
	query := `
		SELECT id, almacen_origen, almacen_destino, estado, creador, observaciones, created_at, updated_at
		FROM transferencias WHERE id = $1`
	var t entity.Transferencia
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.AlmacenOrigen, &t.AlmacenDestino, &t.Estado, &t.Creador, &t.Observaciones, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transferencia: %w", err)
	}
	return &t, nil
}

// List lista transferencias, más reciente primero.
func (r *TransferenciaRepo) List(limit, offset int) ([]*entity.Transferencia, error) {
	query := `
		SELECT id, almacen_origen, almacen_destino, estado, creador, observaciones, created_at, updated_at
		FROM transferencias ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transferencias: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transferencia
	for rows.Next() {
		var t entity.Transferencia
		if err := rows.Scan(&t.ID, &t.AlmacenOrigen, &t.AlmacenDestino, &t.Estado, &t.Creador, &t.Observaciones, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan transferencia: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// GetLineas devuelve las líneas de una transferencia.
func (r *TransferenciaRepo) GetLineas(transferenciaID string) ([]*entity.TransferenciaLinea, error) {
	query := `
		SELECT id, id_transferencia, id_producto, cantidad_solicitada, cantidad_enviada, cantidad_recibida, lote, observaciones
		FROM transferencia_lineas WHERE id_transferencia = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, transferenciaID)
	if err != nil {
		return nil, fmt.Errorf("get lineas: %w", err)
	}
	defer rows.Close()
	var list []*entity.TransferenciaLinea
	for rows.Next() {
		var l entity.TransferenciaLinea
		if err := rows.Scan(&l.ID, &l.TransferenciaID, &l.ProductoID, &l.CantidadSolicitada, &l.CantidadEnviada, &l.CantidadRecibida, &l.Lote, &l.Observaciones); err != nil {
			return nil, fmt.Errorf("scan linea: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// GetLinea devuelve la línea de un producto, o nil si el producto no fue
// solicitado en esa transferencia.
func (r *TransferenciaRepo) GetLinea(transferenciaID, productoID string) (*entity.TransferenciaLinea, error) {
	query := `
		SELECT id, id_transferencia, id_producto, cantidad_solicitada, cantidad_enviada, cantidad_recibida, lote, observaciones
		FROM transferencia_lineas WHERE id_transferencia = $1 AND id_producto = $2`
	var l entity.TransferenciaLinea
	err := r.q.QueryRow(context.Background(), query, transferenciaID, productoID).Scan(
		&l.ID, &l.TransferenciaID, &l.ProductoID, &l.CantidadSolicitada, &l.CantidadEnviada, &l.CantidadRecibida, &l.Lote, &l.Observaciones,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get linea: %w", err)
	}
	return &l, nil
}

// UpdateEstado cambia el estado de la transferencia.
func (r *TransferenciaRepo) UpdateEstado(id, estado string) error {
	_, err := r.q.Exec(context.Background(), `
		UPDATE transferencias SET estado = $2, updated_at = now() WHERE id = $1`,
		id, estado,
	)
	if err != nil {
		return fmt.Errorf("update estado: %w", err)
	}
	return nil
}

// UpdateLineaEnviada registra la cantidad enviada (y el lote efectivo) de una
// línea.
func (r *TransferenciaRepo) UpdateLineaEnviada(transferenciaID, productoID string, cantidad int, lote string) error {
	_, err := r.q.Exec(context.Background(), `
		UPDATE transferencia_lineas
		SET cantidad_enviada = $3, lote = CASE WHEN $4 <> '' THEN $4 ELSE lote END
		WHERE id_transferencia = $1 AND id_producto = $2`,
		transferenciaID, productoID, cantidad, lote,
	)
	if err != nil {
		return fmt.Errorf("update linea enviada: %w", err)
	}
	return nil
}

// UpdateLineaRecibida registra la cantidad recibida y observaciones de una
// línea.
func (r *TransferenciaRepo) UpdateLineaRecibida(transferenciaID, productoID string, cantidad int, observaciones string) error {
	_, err := r.q.Exec(context.Background(), `
		UPDATE transferencia_lineas
		SET cantidad_recibida = $3, observaciones = CASE WHEN $4 <> '' THEN $4 ELSE observaciones END
		WHERE id_transferencia = $1 AND id_producto = $2`,
		transferenciaID, productoID, cantidad, observaciones,
	)
	if err != nil {
		return fmt.Errorf("update linea recibida: %w", err)
	}
	return nil
}
