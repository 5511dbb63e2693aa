package inventario_test

import (
	"context"
	"sort"
	"sync"

	"github.com/jcondori/kardex-api/internal/domain"
	"github.com/jcondori/kardex-api/internal/domain/entity"
	"github.com/jcondori/kardex-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: un almacén de datos compartido, repositorios sobre él y un
// TxRunner que emula la semántica transaccional (serialización + rollback por
// snapshot) para poder ejercitar el caso de uso sin PostgreSQL.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	mu           sync.Mutex
	movimientos  []*entity.Movimiento
	kardex       []*entity.KardexEntrada
	saldos       map[string]*entity.Saldo // clave "producto|almacen"
	nextKardexID int64
}

func newMemStore() *memStore {
	return &memStore{saldos: make(map[string]*entity.Saldo)}
}

func saldoKey(productoID, almacen string) string {
	return productoID + "|" + almacen
}

// snapshot copia el estado para poder revertirlo si la tx falla.
func (s *memStore) snapshot() *memStore {
	cp := &memStore{
		movimientos:  append([]*entity.Movimiento(nil), s.movimientos...),
		kardex:       append([]*entity.KardexEntrada(nil), s.kardex...),
		saldos:       make(map[string]*entity.Saldo, len(s.saldos)),
		nextKardexID: s.nextKardexID,
	}
	for k, v := range s.saldos {
		c := *v
		cp.saldos[k] = &c
	}
	return cp
}

func (s *memStore) restore(snap *memStore) {
	s.movimientos = snap.movimientos
	s.kardex = snap.kardex
	s.saldos = snap.saldos
	s.nextKardexID = snap.nextKardexID
}

// fakeTxRunner serializa las transacciones con el mutex del store (el
// equivalente al bloqueo de fila de saldos) y revierte con snapshot si fn
// devuelve error.
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
	err := fn(
		&fakeMovimientoRepo{store: r.store},
		&fakeKardexRepo{store: r.store},
		&fakeSaldoRepo{store: r.store},
	)
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
	return nil, domain.ErrNotFound
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
	var filtradas []*entity.KardexEntrada
	for _, e := range r.store.kardex {
		if e.ProductoID == productoID && e.Almacen == almacen {
			c := *e
			filtradas = append(filtradas, &c)
		}
	}
	sort.Slice(filtradas, func(i, j int) bool {
		if !filtradas[i].Fecha.Equal(filtradas[j].Fecha) {
			return filtradas[i].Fecha.Before(filtradas[j].Fecha)
		}
		return filtradas[i].ID < filtradas[j].ID
	})
	if offset >= len(filtradas) {
		return nil, nil
	}
	filtradas = filtradas[offset:]
	if limit > 0 && limit < len(filtradas) {
		filtradas = filtradas[:limit]
	}
	return filtradas, nil
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

// fakeProductoRepo catálogo fijo en memoria.
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
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeProductoRepo) Update(p *entity.Producto) error {
	r.productos[p.ID] = p
	return nil
}

// fakeAlmacenRepo almacenes fijos por código.
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
	sort.Slice(out, func(i, j int) bool { return out[i].Codigo < out[j].Codigo })
	return out, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Datos de prueba
// ──────────────────────────────────────────────────────────────────────────────

func catalogoDePrueba() (*fakeProductoRepo, *fakeAlmacenRepo) {
	productos := &fakeProductoRepo{productos: map[string]*entity.Producto{
		"paracetamol": {ID: "paracetamol", Nombre: "Paracetamol 500mg", Categoria: "Analgésicos", Activo: true},
		"amoxicilina": {ID: "amoxicilina", Nombre: "Amoxicilina 250mg", Categoria: "Antibióticos", Activo: true},
		"descontinuado": {ID: "descontinuado", Nombre: "Producto retirado", Activo: false},
	}}
	almacenes := &fakeAlmacenRepo{almacenes: map[string]*entity.Almacen{
		"LPZ": {ID: "a1", Codigo: "LPZ", Nombre: "Almacén La Paz", Activo: true},
		"SCZ": {ID: "a2", Codigo: "SCZ", Nombre: "Almacén Santa Cruz", Activo: true},
		"CER": {ID: "a3", Codigo: "CER", Nombre: "Almacén cerrado", Activo: false},
	}}
	return productos, almacenes
}
