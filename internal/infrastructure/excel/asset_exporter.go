package excel

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Activos-api/internal/application/reporting"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

var _ reporting.AssetSpreadsheetExporter = (*AssetExporter)(nil)

const sheetName = "Activos"

var header = []interface{}{
	"product_code",
	"name",
	"name_ar",
	"category",
	"warehouse_id",
	"warehouse_name",
	"quantity",
	"acquisition_value",
	"acquisition_date",
	"is_active",
}

// AssetExporter exporta activos a XLSX con excelize.
type AssetExporter struct{}

// NewAssetExporter construye el exportador.
func NewAssetExporter() *AssetExporter { return &AssetExporter{} }

// ExportAssets escribe una fila por activo bajo la cabecera y devuelve el archivo XLSX.
func (e *AssetExporter) ExportAssets(ctx context.Context, assets []*entity.FixedAsset, warehouses map[string]*entity.Warehouse) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), sheetName); err != nil {
		return nil, fmt.Errorf("excel: renombrar hoja: %w", err)
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("excel: cabecera: %w", err)
	}

	row := 2
	for _, a := range assets {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		warehouseName := ""
		if w := warehouses[a.WarehouseID]; w != nil {
			warehouseName = w.Name
		}
		acquired := ""
		if a.AcquisitionDate != nil {
			acquired = a.AcquisitionDate.Format("2006-01-02")
		}
		value, _ := a.AcquisitionValue.Float64()
		excelRow := []interface{}{
			a.ProductCode,
			a.Name,
			a.NameAr,
			a.Category,
			a.WarehouseID,
			warehouseName,
			a.Quantity,
			value,
			acquired,
			a.IsActive,
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, fmt.Errorf("excel: celda: %w", err)
		}
		if err := f.SetSheetRow(sheetName, cell, &excelRow); err != nil {
			return nil, fmt.Errorf("excel: fila %d: %w", row, err)
		}
		row++
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("excel: escribir archivo: %w", err)
	}
	return buf.Bytes(), nil
}
