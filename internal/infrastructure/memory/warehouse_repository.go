package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo bodegas en memoria.
type WarehouseRepo struct {
	h handle
}

// Create exige que la sede exista (ErrInvalidInput).
func (r *WarehouseRepo) Create(_ context.Context, warehouse *entity.Warehouse) error {
	return r.h.write(func(s *state) error {
		if _, ok := s.branches[warehouse.BranchID]; !ok {
			return fmt.Errorf("%w: la sede %s no existe", domain.ErrInvalidInput, warehouse.BranchID)
		}
		if _, ok := s.warehouses[warehouse.ID]; ok {
			return fmt.Errorf("%w: bodega %s", domain.ErrDuplicate, warehouse.ID)
		}
		s.warehouses[warehouse.ID] = copyWarehouse(*warehouse)
		return nil
	})
}

// GetByID devuelve nil, nil si no existe.
func (r *WarehouseRepo) GetByID(_ context.Context, id string) (*entity.Warehouse, error) {
	var out *entity.Warehouse
	err := r.h.read(func(s *state) error {
		if w, ok := s.warehouses[id]; ok {
			c := copyWarehouse(w)
			out = &c
		}
		return nil
	})
	return out, err
}

// Update conserva CreatedAt y exige que la sede exista.
func (r *WarehouseRepo) Update(_ context.Context, warehouse *entity.Warehouse) error {
	return r.h.write(func(s *state) error {
		prev, ok := s.warehouses[warehouse.ID]
		if !ok {
			return domain.ErrNotFound
		}
		if _, ok := s.branches[warehouse.BranchID]; !ok {
			return fmt.Errorf("%w: la sede %s no existe", domain.ErrInvalidInput, warehouse.BranchID)
		}
		w := copyWarehouse(*warehouse)
		w.CreatedAt = prev.CreatedAt
		s.warehouses[warehouse.ID] = w
		return nil
	})
}

// List bodegas ordenadas por nombre; branchID vacío no filtra.
func (r *WarehouseRepo) List(_ context.Context, branchID string, limit, offset int) ([]*entity.Warehouse, int, error) {
	var (
		out   []*entity.Warehouse
		total int
	)
	err := r.h.read(func(s *state) error {
		all := sortedWarehouses(s, func(w entity.Warehouse) bool {
			return branchID == "" || w.BranchID == branchID
		})
		total = len(all)
		out = page(all, limit, offset)
		return nil
	})
	return out, total, err
}

// ListByBranches bodegas de cualquiera de las sedes dadas.
func (r *WarehouseRepo) ListByBranches(_ context.Context, branchIDs []string) ([]*entity.Warehouse, error) {
	ids := make(map[string]struct{}, len(branchIDs))
	for _, id := range branchIDs {
		ids[id] = struct{}{}
	}
	var out []*entity.Warehouse
	err := r.h.read(func(s *state) error {
		out = sortedWarehouses(s, func(w entity.Warehouse) bool {
			_, ok := ids[w.BranchID]
			return ok
		})
		return nil
	})
	return out, err
}

// Delete falla con ErrConflict mientras la bodega tenga activos.
func (r *WarehouseRepo) Delete(_ context.Context, id string) error {
	return r.h.write(func(s *state) error {
		if _, ok := s.warehouses[id]; !ok {
			return domain.ErrNotFound
		}
		for _, a := range s.assets {
			if a.WarehouseID == id {
				return fmt.Errorf("%w: la bodega tiene activos asociados", domain.ErrConflict)
			}
		}
		delete(s.warehouses, id)
		return nil
	})
}

func sortedWarehouses(s *state, keep func(entity.Warehouse) bool) []*entity.Warehouse {
	out := []*entity.Warehouse{}
	for _, w := range s.warehouses {
		if keep(w) {
			c := copyWarehouse(w)
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// copyWarehouse evita compartir el puntero Capacity con el llamador.
func copyWarehouse(w entity.Warehouse) entity.Warehouse {
	if w.Capacity != nil {
		c := *w.Capacity
		w.Capacity = &c
	}
	return w
}
