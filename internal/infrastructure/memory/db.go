// Package memory implementa los puertos de persistencia en memoria, con las mismas
// reglas de integridad que el esquema PostgreSQL (FK, únicos, cascada del adjunto).
// Se usa con DB_DRIVER=memory y en las pruebas.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/Activos-api/internal/application/usecase"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

var _ usecase.TxRunner = (*DB)(nil)

type state struct {
	branches    map[string]entity.Branch
	warehouses  map[string]entity.Warehouse
	assets      map[string]entity.FixedAsset
	attachments map[string]entity.Attachment // por asset_id
	users       map[string]entity.User
}

func newState() *state {
	return &state{
		branches:    map[string]entity.Branch{},
		warehouses:  map[string]entity.Warehouse{},
		assets:      map[string]entity.FixedAsset{},
		attachments: map[string]entity.Attachment{},
		users:       map[string]entity.User{},
	}
}

func (s *state) clone() *state {
	c := newState()
	for k, v := range s.branches {
		c.branches[k] = v
	}
	for k, v := range s.warehouses {
		c.warehouses[k] = v
	}
	for k, v := range s.assets {
		c.assets[k] = v
	}
	for k, v := range s.attachments {
		c.attachments[k] = v
	}
	for k, v := range s.users {
		c.users[k] = v
	}
	return c
}

// DB base de datos en memoria compartida por los repositorios.
type DB struct {
	mu   sync.RWMutex
	data *state
}

// NewDB crea una base vacía.
func NewDB() *DB {
	return &DB{data: newState()}
}

// handle es la vista de un repositorio sobre la DB. Dentro de RunAttachment el lock
// ya lo tiene la transacción y los repos no vuelven a bloquear.
type handle struct {
	db   *DB
	inTx bool
}

func (h handle) read(fn func(s *state) error) error {
	if !h.inTx {
		h.db.mu.RLock()
		defer h.db.mu.RUnlock()
	}
	return fn(h.db.data)
}

func (h handle) write(fn func(s *state) error) error {
	if !h.inTx {
		h.db.mu.Lock()
		defer h.db.mu.Unlock()
	}
	return fn(h.db.data)
}

// RunAttachment ejecuta fn en exclusión mutua; si fn falla se restaura el estado previo.
func (db *DB) RunAttachment(ctx context.Context, fn func(
	assetRepo repository.FixedAssetRepository,
	attachmentRepo repository.AttachmentRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	db.mu.Lock()
	defer db.mu.Unlock()

	snapshot := db.data.clone()
	h := handle{db: db, inTx: true}
	if err := fn(&FixedAssetRepo{h: h}, &AttachmentRepo{h: h}); err != nil {
		db.data = snapshot
		return err
	}
	return nil
}

// Repositories agrupa los repositorios en memoria sobre una misma DB.
type Repositories struct {
	Branches    *BranchRepo
	Warehouses  *WarehouseRepo
	Assets      *FixedAssetRepo
	Attachments *AttachmentRepo
	Users       *UserRepo
	Stats       *StatsRepo
}

// Repos devuelve los repositorios atados a db.
func (db *DB) Repos() Repositories {
	h := handle{db: db}
	return Repositories{
		Branches:    &BranchRepo{h: h},
		Warehouses:  &WarehouseRepo{h: h},
		Assets:      &FixedAssetRepo{h: h},
		Attachments: &AttachmentRepo{h: h},
		Users:       &UserRepo{h: h},
		Stats:       &StatsRepo{h: h},
	}
}

func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return items[offset:end]
}
