package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout formato de fechas de adquisición (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// CreateAssetRequest entrada para crear un activo fijo.
// ProductCode es opcional: si viene vacío se genera un código único de 6 dígitos.
type CreateAssetRequest struct {
	WarehouseID      string          `json:"warehouse_id" validate:"required,uuid"`
	Name             string          `json:"name" validate:"required,min=1,max=255"`
	NameAr           string          `json:"name_ar" validate:"max=255"`
	Category         string          `json:"category" validate:"max=100"`
	ProductCode      string          `json:"product_code" validate:"max=100"`
	Quantity         int             `json:"quantity" validate:"min=0"`
	AcquisitionValue decimal.Decimal `json:"acquisition_value"`
	AcquisitionDate  string          `json:"acquisition_date" example:"2025-09-24"`
	IsActive         *bool           `json:"is_active"`
}

// UpdateAssetRequest entrada para actualizar un activo fijo (parcial).
type UpdateAssetRequest struct {
	WarehouseID      *string          `json:"warehouse_id" validate:"omitempty,uuid"`
	Name             *string          `json:"name" validate:"omitempty,min=1,max=255"`
	NameAr           *string          `json:"name_ar"`
	Category         *string          `json:"category"`
	Quantity         *int             `json:"quantity" validate:"omitempty,min=0"`
	AcquisitionValue *decimal.Decimal `json:"acquisition_value"`
	AcquisitionDate  *string          `json:"acquisition_date" example:"2025-09-24"`
	IsActive         *bool            `json:"is_active"`
}

// AssetResponse salida de un activo fijo.
type AssetResponse struct {
	ID               string              `json:"id"`
	WarehouseID      string              `json:"warehouse_id"`
	Name             string              `json:"name"`
	NameAr           string              `json:"name_ar"`
	Category         string              `json:"category"`
	ProductCode      string              `json:"product_code"`
	Quantity         int                 `json:"quantity"`
	AcquisitionValue decimal.Decimal     `json:"acquisition_value"`
	AcquisitionDate  *string             `json:"acquisition_date"`
	IsActive         bool                `json:"is_active"`
	Attachment       *AttachmentResponse `json:"attachment,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

// AssetListQuery filtros del listado de activos (query string).
type AssetListQuery struct {
	WarehouseID string
	BranchID    string
	Category    string
	Search      string
	Active      *bool
}

// AssetListResponse lista paginada de activos.
type AssetListResponse struct {
	Items []AssetResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
