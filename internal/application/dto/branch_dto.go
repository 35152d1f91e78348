package dto

import "time"

// CreateBranchRequest entrada para crear una sede.
type CreateBranchRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=255"`
	NameAr    string `json:"name_ar" validate:"max=255"`
	Address   string `json:"address" validate:"required,min=1,max=500"`
	AddressAr string `json:"address_ar" validate:"max=500"`
}

// UpdateBranchRequest entrada para actualizar una sede (parcial).
type UpdateBranchRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=1,max=255"`
	NameAr    *string `json:"name_ar"`
	Address   *string `json:"address" validate:"omitempty,min=1,max=500"`
	AddressAr *string `json:"address_ar"`
}

// BranchResponse salida de una sede.
type BranchResponse struct {
	ID             string              `json:"id"`
	Name           string              `json:"name"`
	NameAr         string              `json:"name_ar"`
	Address        string              `json:"address"`
	AddressAr      string              `json:"address_ar"`
	WarehouseCount *int                `json:"warehouse_count,omitempty"`
	Warehouses     []WarehouseResponse `json:"warehouses,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

// BranchListQuery filtros del listado de sedes.
type BranchListQuery struct {
	Search            string
	IncludeWarehouses bool
}

// BranchListResponse lista paginada de sedes.
type BranchListResponse struct {
	Items []BranchResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
