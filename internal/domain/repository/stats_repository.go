package repository

import (
	"context"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// StatsRepository conteos agregados para el panel de administración.
type StatsRepository interface {
	Counts(ctx context.Context) (*entity.Stats, error)
}
