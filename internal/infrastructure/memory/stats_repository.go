package memory

import (
	"context"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo conteos sobre el estado en memoria.
type StatsRepo struct {
	h handle
}

// Counts toma una sola lectura consistente de todas las colecciones.
func (r *StatsRepo) Counts(_ context.Context) (*entity.Stats, error) {
	var out entity.Stats
	err := r.h.read(func(s *state) error {
		out.TotalBranches = len(s.branches)
		out.TotalWarehouses = len(s.warehouses)
		out.TotalAssets = len(s.assets)
		for _, a := range s.assets {
			if a.IsActive {
				out.ActiveAssets++
			}
		}
		out.InactiveAssets = out.TotalAssets - out.ActiveAssets
		out.TotalUsers = len(s.users)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
