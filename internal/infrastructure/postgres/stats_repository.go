package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo conteos del panel de administración en una sola consulta.
type StatsRepo struct {
	db Querier
}

// NewStatsRepository construye el adaptador de estadísticas.
func NewStatsRepository(db Querier) *StatsRepo {
	return &StatsRepo{db: db}
}

// Counts devuelve los totales de sedes, bodegas, activos (activos/inactivos) y usuarios.
func (r *StatsRepo) Counts(ctx context.Context) (*entity.Stats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM branches),
			(SELECT COUNT(*) FROM warehouses),
			COUNT(*),
			COUNT(*) FILTER (WHERE is_active),
			COUNT(*) FILTER (WHERE NOT is_active),
			(SELECT COUNT(*) FROM users)
		FROM fixed_assets`
	var s entity.Stats
	if err := r.db.QueryRow(ctx, query).Scan(
		&s.TotalBranches, &s.TotalWarehouses,
		&s.TotalAssets, &s.ActiveAssets, &s.InactiveAssets,
		&s.TotalUsers,
	); err != nil {
		return nil, fmt.Errorf("stats counts: %w", err)
	}
	return &s, nil
}
