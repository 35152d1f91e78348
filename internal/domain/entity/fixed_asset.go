package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// FixedAsset representa un bien durable inventariado dentro de una bodega.
// ProductCode es único (6 dígitos por defecto) y es el valor impreso en el código de barras.
type FixedAsset struct {
	ID               string
	WarehouseID      string
	Name             string
	NameAr           string
	Category         string
	ProductCode      string
	Quantity         int
	AcquisitionValue decimal.Decimal
	AcquisitionDate  *time.Time
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// AssetFilter filtros opcionales para listar activos. Los campos vacíos no filtran.
type AssetFilter struct {
	WarehouseID string
	BranchID    string
	Category    string
	Search      string
	Active      *bool
}
