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

var _ repository.FixedAssetRepository = (*FixedAssetRepo)(nil)

// FixedAssetRepo activos fijos en memoria.
type FixedAssetRepo struct {
	h handle
}

// Create exige bodega existente y product_code único (ErrInvalidInput / ErrDuplicate).
func (r *FixedAssetRepo) Create(_ context.Context, asset *entity.FixedAsset) error {
	return r.h.write(func(s *state) error {
		if _, ok := s.warehouses[asset.WarehouseID]; !ok {
			return fmt.Errorf("%w: la bodega %s no existe", domain.ErrInvalidInput, asset.WarehouseID)
		}
		if codeTaken(s, asset.ProductCode, "") {
			return fmt.Errorf("%w: product_code %s ya existe", domain.ErrDuplicate, asset.ProductCode)
		}
		if _, ok := s.assets[asset.ID]; ok {
			return fmt.Errorf("%w: activo %s", domain.ErrDuplicate, asset.ID)
		}
		s.assets[asset.ID] = copyAsset(*asset)
		return nil
	})
}

// GetByID devuelve una copia del activo; nil, nil si no existe.
func (r *FixedAssetRepo) GetByID(_ context.Context, id string) (*entity.FixedAsset, error) {
	var out *entity.FixedAsset
	err := r.h.read(func(s *state) error {
		if a, ok := s.assets[id]; ok {
			c := copyAsset(a)
			out = &c
		}
		return nil
	})
	return out, err
}

// LockByID solo verifica existencia: dentro de RunAttachment el lock de la DB ya es exclusivo.
func (r *FixedAssetRepo) LockByID(_ context.Context, id string) (bool, error) {
	var found bool
	err := r.h.read(func(s *state) error {
		_, found = s.assets[id]
		return nil
	})
	return found, err
}

// Update conserva CreatedAt y aplica las mismas reglas que Create.
func (r *FixedAssetRepo) Update(_ context.Context, asset *entity.FixedAsset) error {
	return r.h.write(func(s *state) error {
		prev, ok := s.assets[asset.ID]
		if !ok {
			return domain.ErrNotFound
		}
		if _, ok := s.warehouses[asset.WarehouseID]; !ok {
			return fmt.Errorf("%w: la bodega %s no existe", domain.ErrInvalidInput, asset.WarehouseID)
		}
		if codeTaken(s, asset.ProductCode, asset.ID) {
			return fmt.Errorf("%w: product_code %s ya existe", domain.ErrDuplicate, asset.ProductCode)
		}
		a := copyAsset(*asset)
		a.CreatedAt = prev.CreatedAt
		s.assets[asset.ID] = a
		return nil
	})
}

// List filtra, ordena por nombre y pagina; devuelve el total previo a paginar.
func (r *FixedAssetRepo) List(_ context.Context, f entity.AssetFilter, limit, offset int) ([]*entity.FixedAsset, int, error) {
	var (
		out   []*entity.FixedAsset
		total int
	)
	needle := strings.ToLower(f.Search)
	err := r.h.read(func(s *state) error {
		all := []*entity.FixedAsset{}
		for _, a := range s.assets {
			if f.WarehouseID != "" && a.WarehouseID != f.WarehouseID {
				continue
			}
			if f.BranchID != "" && s.warehouses[a.WarehouseID].BranchID != f.BranchID {
				continue
			}
			if f.Category != "" && a.Category != f.Category {
				continue
			}
			if needle != "" && !containsFold(needle, a.Name, a.NameAr, a.ProductCode) {
				continue
			}
			if f.Active != nil && a.IsActive != *f.Active {
				continue
			}
			c := copyAsset(a)
			all = append(all, &c)
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

// Delete elimina el activo y en cascada su adjunto.
func (r *FixedAssetRepo) Delete(_ context.Context, id string) error {
	return r.h.write(func(s *state) error {
		if _, ok := s.assets[id]; !ok {
			return domain.ErrNotFound
		}
		delete(s.assets, id)
		delete(s.attachments, id)
		return nil
	})
}

func codeTaken(s *state, code, exceptID string) bool {
	for _, a := range s.assets {
		if a.ProductCode == code && a.ID != exceptID {
			return true
		}
	}
	return false
}

func copyAsset(a entity.FixedAsset) entity.FixedAsset {
	if a.AcquisitionDate != nil {
		d := *a.AcquisitionDate
		a.AcquisitionDate = &d
	}
	return a
}
