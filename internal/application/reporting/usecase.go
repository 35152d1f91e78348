package reporting

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// exportPageSize tamaño de página al recorrer los activos para exportarlos.
const exportPageSize = 500

// UseCase genera documentos derivados de los activos: etiquetas y exportaciones.
type UseCase struct {
	assetRepo     repository.FixedAssetRepository
	warehouseRepo repository.WarehouseRepository
	branchRepo    repository.BranchRepository
	labels        AssetLabelGenerator
	exporter      AssetSpreadsheetExporter
}

// NewUseCase construye el caso de uso inyectando todas sus dependencias.
func NewUseCase(
	assetRepo repository.FixedAssetRepository,
	warehouseRepo repository.WarehouseRepository,
	branchRepo repository.BranchRepository,
	labels AssetLabelGenerator,
	exporter AssetSpreadsheetExporter,
) *UseCase {
	return &UseCase{
		assetRepo:     assetRepo,
		warehouseRepo: warehouseRepo,
		branchRepo:    branchRepo,
		labels:        labels,
		exporter:      exporter,
	}
}

// AssetLabel genera el PDF de la etiqueta del activo.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si el activo no existe.
//   - domain.ErrInvalidInput     si el activo no tiene product_code.
func (uc *UseCase) AssetLabel(ctx context.Context, assetID string) ([]byte, string, error) {
	asset, err := uc.assetRepo.GetByID(ctx, assetID)
	if err != nil {
		return nil, "", err
	}
	if asset == nil {
		return nil, "", domain.ErrNotFound
	}
	if strings.TrimSpace(asset.ProductCode) == "" {
		return nil, "", fmt.Errorf("%w: el activo no tiene product_code", domain.ErrInvalidInput)
	}
	data := LabelData{Asset: asset}
	if data.Warehouse, err = uc.warehouseRepo.GetByID(ctx, asset.WarehouseID); err != nil {
		return nil, "", err
	}
	if data.Warehouse != nil {
		if data.Branch, err = uc.branchRepo.GetByID(ctx, data.Warehouse.BranchID); err != nil {
			return nil, "", err
		}
	}
	pdf, err := uc.labels.GenerateAssetLabel(ctx, data)
	if err != nil {
		return nil, "", fmt.Errorf("etiqueta: %w", err)
	}
	return pdf, fmt.Sprintf("etiqueta_%s.pdf", asset.ProductCode), nil
}

// ExportAssets exporta a XLSX todos los activos que cumplen el filtro.
func (uc *UseCase) ExportAssets(ctx context.Context, filter entity.AssetFilter) ([]byte, string, error) {
	var all []*entity.FixedAsset
	for offset := 0; ; offset += exportPageSize {
		page, total, err := uc.assetRepo.List(ctx, filter, exportPageSize, offset)
		if err != nil {
			return nil, "", err
		}
		all = append(all, page...)
		if len(page) < exportPageSize || len(all) >= total {
			break
		}
	}

	warehouses := make(map[string]*entity.Warehouse)
	for _, a := range all {
		if _, seen := warehouses[a.WarehouseID]; seen {
			continue
		}
		w, err := uc.warehouseRepo.GetByID(ctx, a.WarehouseID)
		if err != nil {
			return nil, "", err
		}
		warehouses[a.WarehouseID] = w
	}

	data, err := uc.exporter.ExportAssets(ctx, all, warehouses)
	if err != nil {
		return nil, "", fmt.Errorf("exportar activos: %w", err)
	}
	return data, fmt.Sprintf("activos_%s.xlsx", time.Now().Format("20060102_150405")), nil
}
