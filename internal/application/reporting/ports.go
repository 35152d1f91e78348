package reporting

import (
	"context"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// LabelData datos que se imprimen en la etiqueta de un activo.
type LabelData struct {
	Asset     *entity.FixedAsset
	Warehouse *entity.Warehouse
	Branch    *entity.Branch
}

// AssetLabelGenerator genera la etiqueta imprimible (PDF con código de barras) de un activo.
type AssetLabelGenerator interface {
	GenerateAssetLabel(ctx context.Context, data LabelData) ([]byte, error)
}

// AssetSpreadsheetExporter exporta un listado de activos a una hoja de cálculo.
type AssetSpreadsheetExporter interface {
	ExportAssets(ctx context.Context, assets []*entity.FixedAsset, warehouses map[string]*entity.Warehouse) ([]byte, error)
}
