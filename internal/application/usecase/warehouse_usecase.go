package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// WarehouseUseCase casos de uso CRUD para bodegas.
type WarehouseUseCase struct {
	repo       repository.WarehouseRepository
	branchRepo repository.BranchRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository, branchRepo repository.BranchRepository) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo, branchRepo: branchRepo}
}

// Create crea una nueva bodega. branch_id debe referenciar una sede existente.
func (uc *WarehouseUseCase) Create(ctx context.Context, in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	name, err := requireText("name", in.Name)
	if err != nil {
		return nil, err
	}
	address, err := requireText("address", in.Address)
	if err != nil {
		return nil, err
	}
	if err := validateCapacity(in.Capacity); err != nil {
		return nil, err
	}
	branchID, err := uc.requireBranch(ctx, in.BranchID)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	warehouse := &entity.Warehouse{
		ID:        uuid.New().String(),
		BranchID:  branchID,
		Name:      name,
		NameAr:    strings.TrimSpace(in.NameAr),
		Address:   address,
		AddressAr: strings.TrimSpace(in.AddressAr),
		Capacity:  in.Capacity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// GetByID obtiene una bodega por ID.
func (uc *WarehouseUseCase) GetByID(ctx context.Context, id string) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	return toWarehouseResponse(warehouse), nil
}

// Update actualiza parcialmente una bodega; permite moverla a otra sede existente.
func (uc *WarehouseUseCase) Update(ctx context.Context, id string, in dto.UpdateWarehouseRequest) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	if in.BranchID != nil {
		if warehouse.BranchID, err = uc.requireBranch(ctx, *in.BranchID); err != nil {
			return nil, err
		}
	}
	if in.Name != nil {
		if warehouse.Name, err = requireText("name", *in.Name); err != nil {
			return nil, err
		}
	}
	if in.NameAr != nil {
		warehouse.NameAr = strings.TrimSpace(*in.NameAr)
	}
	if in.Address != nil {
		if warehouse.Address, err = requireText("address", *in.Address); err != nil {
			return nil, err
		}
	}
	if in.AddressAr != nil {
		warehouse.AddressAr = strings.TrimSpace(*in.AddressAr)
	}
	if in.Capacity != nil {
		if err := validateCapacity(in.Capacity); err != nil {
			return nil, err
		}
		warehouse.Capacity = in.Capacity
	}
	warehouse.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// List lista bodegas; con branchID no vacío solo las de esa sede.
func (uc *WarehouseUseCase) List(ctx context.Context, branchID string, limit, offset int) (*dto.WarehouseListResponse, error) {
	list, total, err := uc.repo.List(ctx, canonicalID(branchID), limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *toWarehouseResponse(w))
	}
	return &dto.WarehouseListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}, nil
}

// ListByBranch lista las bodegas de una sede; domain.ErrNotFound si la sede no existe.
func (uc *WarehouseUseCase) ListByBranch(ctx context.Context, branchID string, limit, offset int) (*dto.WarehouseListResponse, error) {
	branch, err := uc.branchRepo.GetByID(ctx, branchID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrNotFound
	}
	return uc.List(ctx, branch.ID, limit, offset)
}

// Delete elimina una bodega. Falla con domain.ErrConflict si todavía tiene activos.
func (uc *WarehouseUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func (uc *WarehouseUseCase) requireBranch(ctx context.Context, branchID string) (string, error) {
	id, err := requireText("branch_id", branchID)
	if err != nil {
		return "", err
	}
	if _, err := uuid.Parse(id); err != nil {
		return "", fmt.Errorf("%w: branch_id no es un UUID válido", domain.ErrInvalidInput)
	}
	branch, err := uc.branchRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if branch == nil {
		return "", fmt.Errorf("%w: la sede %s no existe", domain.ErrInvalidInput, id)
	}
	return branch.ID, nil
}

func validateCapacity(capacity *int) error {
	if capacity == nil {
		return nil
	}
	if *capacity < 0 {
		return fmt.Errorf("%w: capacity no puede ser negativa", domain.ErrInvalidInput)
	}
	if *capacity > math.MaxInt32 {
		return fmt.Errorf("%w: capacity fuera de rango", domain.ErrInvalidInput)
	}
	return nil
}

func toWarehouseResponse(w *entity.Warehouse) *dto.WarehouseResponse {
	if w == nil {
		return nil
	}
	return &dto.WarehouseResponse{
		ID:        w.ID,
		BranchID:  w.BranchID,
		Name:      w.Name,
		NameAr:    w.NameAr,
		Address:   w.Address,
		AddressAr: w.AddressAr,
		Capacity:  w.Capacity,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}
