package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

var _ repository.BranchRepository = (*BranchRepo)(nil)

// BranchRepo sedes en memoria.
type BranchRepo struct {
	h handle
}

// Create guarda la sede.
func (r *BranchRepo) Create(_ context.Context, branch *entity.Branch) error {
	return r.h.write(func(s *state) error {
		if _, ok := s.branches[branch.ID]; ok {
			return fmt.Errorf("%w: sede %s", domain.ErrDuplicate, branch.ID)
		}
		s.branches[branch.ID] = *branch
		return nil
	})
}

// GetByID devuelve nil, nil si no existe.
func (r *BranchRepo) GetByID(_ context.Context, id string) (*entity.Branch, error) {
	var out *entity.Branch
	err := r.h.read(func(s *state) error {
		if b, ok := s.branches[id]; ok {
			out = &b
		}
		return nil
	})
	return out, err
}

// Update reemplaza la sede conservando CreatedAt.
func (r *BranchRepo) Update(_ context.Context, branch *entity.Branch) error {
	return r.h.write(func(s *state) error {
		prev, ok := s.branches[branch.ID]
		if !ok {
			return domain.ErrNotFound
		}
		b := *branch
		b.CreatedAt = prev.CreatedAt
		s.branches[branch.ID] = b
		return nil
	})
}

// List sedes con su conteo de bodegas; search compara como texto literal.
func (r *BranchRepo) List(_ context.Context, search string, limit, offset int) ([]*entity.BranchSummary, int, error) {
	var (
		out   []*entity.BranchSummary
		total int
	)
	err := r.h.read(func(s *state) error {
		counts := map[string]int{}
		for _, w := range s.warehouses {
			counts[w.BranchID]++
		}
		needle := strings.ToLower(search)
		all := make([]*entity.BranchSummary, 0, len(s.branches))
		for _, b := range s.branches {
			if needle != "" && !containsFold(needle, b.Name, b.NameAr, b.Address, b.AddressAr) {
				continue
			}
			all = append(all, &entity.BranchSummary{Branch: b, WarehouseCount: counts[b.ID]})
		}
		sort.Slice(all, func(i, j int) bool {
			if all[i].Name != all[j].Name {
				return all[i].Name < all[j].Name
			}
			return all[i].ID < all[j].ID
		})
		total = len(all)
		out = page(all, limit, offset)
		return nil
	})
	return out, total, err
}

// Delete falla con ErrConflict mientras la sede tenga bodegas.
func (r *BranchRepo) Delete(_ context.Context, id string) error {
	return r.h.write(func(s *state) error {
		if _, ok := s.branches[id]; !ok {
			return domain.ErrNotFound
		}
		for _, w := range s.warehouses {
			if w.BranchID == id {
				return fmt.Errorf("%w: la sede tiene bodegas asociadas", domain.ErrConflict)
			}
		}
		delete(s.branches, id)
		return nil
	})
}

// containsFold indica si alguno de los valores contiene needle (ya en minúsculas).
func containsFold(needle string, values ...string) bool {
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), needle) {
			return true
		}
	}
	return false
}
