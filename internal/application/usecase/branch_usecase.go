package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// BranchUseCase casos de uso CRUD para sedes.
type BranchUseCase struct {
	repo          repository.BranchRepository
	warehouseRepo repository.WarehouseRepository
}

// NewBranchUseCase construye el caso de uso.
func NewBranchUseCase(repo repository.BranchRepository, warehouseRepo repository.WarehouseRepository) *BranchUseCase {
	return &BranchUseCase{repo: repo, warehouseRepo: warehouseRepo}
}

// Create crea una nueva sede. name y address son obligatorios.
func (uc *BranchUseCase) Create(ctx context.Context, in dto.CreateBranchRequest) (*dto.BranchResponse, error) {
	name, err := requireText("name", in.Name)
	if err != nil {
		return nil, err
	}
	address, err := requireText("address", in.Address)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	branch := &entity.Branch{
		ID:        uuid.New().String(),
		Name:      name,
		NameAr:    strings.TrimSpace(in.NameAr),
		Address:   address,
		AddressAr: strings.TrimSpace(in.AddressAr),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, branch); err != nil {
		return nil, err
	}
	return toBranchResponse(branch), nil
}

// GetByID obtiene una sede con el conteo y el listado de sus bodegas.
func (uc *BranchUseCase) GetByID(ctx context.Context, id string) (*dto.BranchResponse, error) {
	branch, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrNotFound
	}
	warehouses, err := uc.warehouseRepo.ListByBranches(ctx, []string{branch.ID})
	if err != nil {
		return nil, err
	}
	out := toBranchResponse(branch)
	count := len(warehouses)
	out.WarehouseCount = &count
	out.Warehouses = make([]dto.WarehouseResponse, 0, len(warehouses))
	for _, w := range warehouses {
		out.Warehouses = append(out.Warehouses, *toWarehouseResponse(w))
	}
	return out, nil
}

// Update actualiza parcialmente una sede.
func (uc *BranchUseCase) Update(ctx context.Context, id string, in dto.UpdateBranchRequest) (*dto.BranchResponse, error) {
	branch, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if branch.Name, err = requireText("name", *in.Name); err != nil {
			return nil, err
		}
	}
	if in.NameAr != nil {
		branch.NameAr = strings.TrimSpace(*in.NameAr)
	}
	if in.Address != nil {
		if branch.Address, err = requireText("address", *in.Address); err != nil {
			return nil, err
		}
	}
	if in.AddressAr != nil {
		branch.AddressAr = strings.TrimSpace(*in.AddressAr)
	}
	branch.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, branch); err != nil {
		return nil, err
	}
	return toBranchResponse(branch), nil
}

// List lista sedes ordenadas por nombre, con el conteo de bodegas.
// Con IncludeWarehouses cada sede trae además sus bodegas.
func (uc *BranchUseCase) List(ctx context.Context, q dto.BranchListQuery, limit, offset int) (*dto.BranchListResponse, error) {
	list, total, err := uc.repo.List(ctx, strings.TrimSpace(q.Search), limit, offset)
	if err != nil {
		return nil, err
	}
	byBranch := map[string][]dto.WarehouseResponse{}
	if q.IncludeWarehouses && len(list) > 0 {
		ids := make([]string, 0, len(list))
		for _, b := range list {
			ids = append(ids, b.ID)
		}
		warehouses, err := uc.warehouseRepo.ListByBranches(ctx, ids)
		if err != nil {
			return nil, err
		}
		for _, w := range warehouses {
			byBranch[w.BranchID] = append(byBranch[w.BranchID], *toWarehouseResponse(w))
		}
	}
	items := make([]dto.BranchResponse, 0, len(list))
	for _, b := range list {
		out := toBranchResponse(&b.Branch)
		count := b.WarehouseCount
		out.WarehouseCount = &count
		if q.IncludeWarehouses {
			out.Warehouses = byBranch[b.ID]
			if out.Warehouses == nil {
				out.Warehouses = []dto.WarehouseResponse{}
			}
		}
		items = append(items, *out)
	}
	return &dto.BranchListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}, nil
}

// Delete elimina una sede. Falla con domain.ErrConflict si todavía tiene bodegas.
func (uc *BranchUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toBranchResponse(b *entity.Branch) *dto.BranchResponse {
	if b == nil {
		return nil
	}
	return &dto.BranchResponse{
		ID:        b.ID,
		Name:      b.Name,
		NameAr:    b.NameAr,
		Address:   b.Address,
		AddressAr: b.AddressAr,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
