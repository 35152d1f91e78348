package repository

import (
	"context"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// FixedAssetRepository define el puerto de persistencia para FixedAsset (DIP).
// Create devuelve domain.ErrDuplicate si el product_code ya existe y domain.ErrInvalidInput
// si la bodega no existe. LockByID bloquea la fila dentro de una transacción.
type FixedAssetRepository interface {
	Create(ctx context.Context, asset *entity.FixedAsset) error
	GetByID(ctx context.Context, id string) (*entity.FixedAsset, error)
	LockByID(ctx context.Context, id string) (bool, error)
	Update(ctx context.Context, asset *entity.FixedAsset) error
	List(ctx context.Context, filter entity.AssetFilter, limit, offset int) ([]*entity.FixedAsset, int, error)
	Delete(ctx context.Context, id string) error
}
