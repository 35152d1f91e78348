package repository

import (
	"context"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// BranchRepository define el puerto de persistencia para Branch (DIP).
// GetByID devuelve (nil, nil) si no existe. Delete devuelve domain.ErrNotFound si no existe
// y domain.ErrConflict si la sede todavía tiene bodegas.
type BranchRepository interface {
	Create(ctx context.Context, branch *entity.Branch) error
	GetByID(ctx context.Context, id string) (*entity.Branch, error)
	Update(ctx context.Context, branch *entity.Branch) error
	List(ctx context.Context, search string, limit, offset int) ([]*entity.BranchSummary, int, error)
	Delete(ctx context.Context, id string) error
}
