package dto

import "time"

// CreateWarehouseRequest entrada para crear una bodega.
type CreateWarehouseRequest struct {
	BranchID  string `json:"branch_id" validate:"required,uuid"`
	Name      string `json:"name" validate:"required,min=1,max=255"`
	NameAr    string `json:"name_ar" validate:"max=255"`
	Address   string `json:"address" validate:"required,min=1,max=500"`
	AddressAr string `json:"address_ar" validate:"max=500"`
	Capacity  *int   `json:"capacity" validate:"omitempty,min=0"`
}

// UpdateWarehouseRequest entrada para actualizar una bodega (parcial).
type UpdateWarehouseRequest struct {
	BranchID  *string `json:"branch_id" validate:"omitempty,uuid"`
	Name      *string `json:"name" validate:"omitempty,min=1,max=255"`
	NameAr    *string `json:"name_ar"`
	Address   *string `json:"address" validate:"omitempty,min=1,max=500"`
	AddressAr *string `json:"address_ar"`
	Capacity  *int    `json:"capacity" validate:"omitempty,min=0"`
}

// WarehouseResponse salida de una bodega.
type WarehouseResponse struct {
	ID        string    `json:"id"`
	BranchID  string    `json:"branch_id"`
	Name      string    `json:"name"`
	NameAr    string    `json:"name_ar"`
	Address   string    `json:"address"`
	AddressAr string    `json:"address_ar"`
	Capacity  *int      `json:"capacity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WarehouseListResponse lista paginada de bodegas.
type WarehouseListResponse struct {
	Items []WarehouseResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
