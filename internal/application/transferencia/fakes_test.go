package transferencia_test

import (
	"context"
	"sort"
	"sync"

	"github.com/jcondori/kardex-api/internal/domain/entity"
	"github.com/jcondori/kardex-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria. El TxRunner implementa tanto el contrato de inventario
// como el de transferencias: serializa con un mutex y revierte por snapshot,
// emulando la transacción por línea del flujo real.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	mu           sync.Mutex
	movimientos  []*entity.Movimiento
	kardex       []*entity.KardexEntrada
	saldos       map[string]*entity.Saldo
	trfs         map[string]*entity.Transferencia
	lineas       []*entity.TransferenciaLinea
	nextKardexID int64
	nextLineaID  int64
}

func newMemStore() *memStore {
	return &memStore{
		saldos: make(map[string]*entity.Saldo),
		trfs:   make(map[string]*entity.Transferencia),
	}
}

func saldoKey(productoID, almacen string) string {
	return productoID + "|" + almacen
}

func (s *memStore) snapshot() *memStore {
	cp := &memStore{
		movimientos:  append([]*entity.Movimiento(nil), s.movimientos...),
		kardex:       append([]*entity.KardexEntrada(nil), s.kardex...),
		saldos:       make(map[string]*entity.Saldo, len(s.saldos)),
		trfs:         make(map[string]*entity.Transferencia, len(s.trfs)),
		lineas:       make([]*entity.TransferenciaLinea, 0, len(s.lineas)),
		nextKardexID: s.nextKardexID,
		nextLineaID:  s.nextLineaID,
	}
	for k, v := range s.saldos {
		c := *v
		cp.saldos[k] = &c
	}
	for k, v := range s.trfs {
		c := *v
		cp.trfs[k] = &c
	}
	for _, l := range s.lineas {
		c := *l
		cp.lineas = append(cp.lineas, &c)
	}
	return cp
}

func (s *memStore) restore(snap *memStore) {
	s.movimientos = snap.movimientos
	s.kardex = snap.kardex
	s.saldos = snap.saldos
	s.trfs = snap.trfs
	s.lineas = snap.lineas
	s.nextKardexID = snap.nextKardexID
	s.nextLineaID = snap.nextLineaID
}

type fakeTxRunner struct {
	store *memStore
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	movRepo repository.MovimientoRepository,
	kardexRepo repository.KardexRepository,
	saldoRepo repository.SaldoRepository,
) error) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	snap := r.store.snapshot()
	err := fn(&fakeMovimientoRepo{r.store}, &fakeKardexRepo{r.store}, &fakeSaldoRepo{r.store})
	if err != nil {
		r.store.restore(snap)
	}
	return err
}

func (r *fakeTxRunner) RunTransferencia(_ context.Context, fn func(
	movRepo repository.MovimientoRepository,
	kardexRepo repository.KardexRepository,
	saldoRepo repository.SaldoRepository,
	trfRepo repository.TransferenciaRepository,
) error) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	snap := r.store.snapshot()
	err := fn(&fakeMovimientoRepo{r.store}, &fakeKardexRepo{r.store}, &fakeSaldoRepo{r.store}, &fakeTrfRepo{r.store})
	if err != nil {
		r.store.restore(snap)
	}
	return err
}

type fakeMovimientoRepo struct{ store *memStore }

func (r *fakeMovimientoRepo) Create(m *entity.Movimiento) error {
	c := *m
	r.store.movimientos = append(r.store.movimientos, &c)
	return nil
}

func (r *fakeMovimientoRepo) GetByID(id string) (*entity.Movimiento, error) {
	for _, m := range r.store.movimientos {
		if m.ID == id {
			c := *m
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeMovimientoRepo) List(almacen, productoID string, limit, offset int) ([]*entity.Movimiento, error) {
	var out []*entity.Movimiento
	for _, m := range r.store.movimientos {
		if almacen != "" && m.Almacen != almacen {
			continue
		}
		if productoID != "" && m.ProductoID != productoID {
			continue
		}
		c := *m
		out = append(out, &c)
	}
	return out, nil
}

type fakeKardexRepo struct{ store *memStore }

func (r *fakeKardexRepo) Append(e *entity.KardexEntrada) error {
	r.store.nextKardexID++
	e.ID = r.store.nextKardexID
	c := *e
	r.store.kardex = append(r.store.kardex, &c)
	return nil
}

func (r *fakeKardexRepo) History(productoID, almacen string, limit, offset int) ([]*entity.KardexEntrada, error) {
	var out []*entity.KardexEntrada
	for _, e := range r.store.kardex {
		if e.ProductoID == productoID && e.Almacen == almacen {
			c := *e
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Fecha.Equal(out[j].Fecha) {
			return out[i].Fecha.Before(out[j].Fecha)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

type fakeSaldoRepo struct{ store *memStore }

func (r *fakeSaldoRepo) Get(productoID, almacen string) (*entity.Saldo, error) {
	if s, ok := r.store.saldos[saldoKey(productoID, almacen)]; ok {
		c := *s
		return &c, nil
	}
	return &entity.Saldo{ProductoID: productoID, Almacen: almacen}, nil
}

func (r *fakeSaldoRepo) GetForUpdate(productoID, almacen string) (*entity.Saldo, error) {
	key := saldoKey(productoID, almacen)
	if _, ok := r.store.saldos[key]; !ok {
		r.store.saldos[key] = &entity.Saldo{ProductoID: productoID, Almacen: almacen}
	}
	c := *r.store.saldos[key]
	return &c, nil
}

func (r *fakeSaldoRepo) Set(s *entity.Saldo) error {
	c := *s
	r.store.saldos[saldoKey(s.ProductoID, s.Almacen)] = &c
	return nil
}

func (r *fakeSaldoRepo) ListByAlmacen(almacen string) ([]*entity.Saldo, error) {
	var out []*entity.Saldo
	for _, s := range r.store.saldos {
		if s.Almacen == almacen {
			c := *s
			out = append(out, &c)
		}
	}
	return out, nil
}

type fakeTrfRepo struct{ store *memStore }

func (r *fakeTrfRepo) Create(t *entity.Transferencia, lineas []*entity.TransferenciaLinea) error {
	c := *t
	r.store.trfs[t.ID] = &c
	for _, l := range lineas {
		r.store.nextLineaID++
		cl := *l
		cl.ID = r.store.nextLineaID
		r.store.lineas = append(r.store.lineas, &cl)
	}
	return nil
}

func (r *fakeTrfRepo) GetByID(id string) (*entity.Transferencia, error) {
	t, ok := r.store.trfs[id]
	if !ok {
		return nil, nil
	}
	c := *t
	return &c, nil
}

func (r *fakeTrfRepo) List(limit, offset int) ([]*entity.Transferencia, error) {
	var out []*entity.Transferencia
	for _, t := range r.store.trfs {
		c := *t
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeTrfRepo) GetLineas(transferenciaID string) ([]*entity.TransferenciaLinea, error) {
	var out []*entity.TransferenciaLinea
	for _, l := range r.store.lineas {
		if l.TransferenciaID == transferenciaID {
			c := *l
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *fakeTrfRepo) GetLinea(transferenciaID, productoID string) (*entity.TransferenciaLinea, error) {
	for _, l := range r.store.lineas {
		if l.TransferenciaID == transferenciaID && l.ProductoID == productoID {
			c := *l
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeTrfRepo) UpdateEstado(id, estado string) error {
	if t, ok := r.store.trfs[id]; ok {
		t.Estado = estado
	}
	return nil
}

func (r *fakeTrfRepo) UpdateLineaEnviada(transferenciaID, productoID string, cantidad int, lote string) error {
	for _, l := range r.store.lineas {
		if l.TransferenciaID == transferenciaID && l.ProductoID == productoID {
			c := cantidad
			l.CantidadEnviada = &c
			if lote != "" {
				l.Lote = lote
			}
			return nil
		}
	}
	return nil
}

func (r *fakeTrfRepo) UpdateLineaRecibida(transferenciaID, productoID string, cantidad int, observaciones string) error {
	for _, l := range r.store.lineas {
		if l.TransferenciaID == transferenciaID && l.ProductoID == productoID {
			c := cantidad
			l.CantidadRecibida = &c
			if observaciones != "" {
				l.Observaciones = observaciones
			}
			return nil
		}
	}
	return nil
}

type fakeProductoRepo struct {
	productos map[string]*entity.Producto
}

func (r *fakeProductoRepo) Create(p *entity.Producto) error {
	r.productos[p.ID] = p
	return nil
}

func (r *fakeProductoRepo) GetByID(id string) (*entity.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, nil
	}
	c := *p
	return &c, nil
}

func (r *fakeProductoRepo) List(limit, offset int) ([]*entity.Producto, error) {
	return r.ListActivos()
}

func (r *fakeProductoRepo) ListActivos() ([]*entity.Producto, error) {
	var out []*entity.Producto
	for _, p := range r.productos {
		if p.Activo {
			c := *p
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *fakeProductoRepo) Update(p *entity.Producto) error {
	r.productos[p.ID] = p
	return nil
}

type fakeAlmacenRepo struct {
	almacenes map[string]*entity.Almacen
}

func (r *fakeAlmacenRepo) Create(a *entity.Almacen) error {
	r.almacenes[a.Codigo] = a
	return nil
}

func (r *fakeAlmacenRepo) GetByID(id string) (*entity.Almacen, error) {
	for _, a := range r.almacenes {
		if a.ID == id {
			c := *a
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeAlmacenRepo) GetByCodigo(codigo string) (*entity.Almacen, error) {
	a, ok := r.almacenes[codigo]
	if !ok {
		return nil, nil
	}
	c := *a
	return &c, nil
}

func (r *fakeAlmacenRepo) List(limit, offset int) ([]*entity.Almacen, error) {
	var out []*entity.Almacen
	for _, a := range r.almacenes {
		c := *a
		out = append(out, &c)
	}
	return out, nil
}
