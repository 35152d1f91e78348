package repository

import (
	"context"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// WarehouseRepository define el puerto de persistencia para Warehouse (DIP).
// branchID vacío en List = todas las sedes. Create/Update devuelven domain.ErrInvalidInput
// si la sede referenciada no existe; Delete devuelve domain.ErrConflict si hay activos.
type WarehouseRepository interface {
	Create(ctx context.Context, warehouse *entity.Warehouse) error
	GetByID(ctx context.Context, id string) (*entity.Warehouse, error)
	Update(ctx context.Context, warehouse *entity.Warehouse) error
	List(ctx context.Context, branchID string, limit, offset int) ([]*entity.Warehouse, int, error)
	ListByBranches(ctx context.Context, branchIDs []string) ([]*entity.Warehouse, error)
	Delete(ctx context.Context, id string) error
}
