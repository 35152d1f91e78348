package usecase

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

const (
	// productCodeAttempts intentos para generar un product_code libre antes de rendirse.
	productCodeAttempts = 5
	// maxProductCodeLen largo de la columna product_code VARCHAR(32).
	maxProductCodeLen = 32
	// valueScale decimales de acquisition_value NUMERIC(18,2).
	valueScale = 2
)

// maxAcquisitionValue primer valor que no cabe en NUMERIC(18,2).
var maxAcquisitionValue = decimal.New(1, 16)

// AssetUseCase casos de uso CRUD para activos fijos.
type AssetUseCase struct {
	txRunner       TxRunner
	repo           repository.FixedAssetRepository
	warehouseRepo  repository.WarehouseRepository
	attachmentRepo repository.AttachmentRepository
	files          FileRemover
}

// NewAssetUseCase construye el caso de uso. files puede ser nil (no se borran archivos).
func NewAssetUseCase(
	txRunner TxRunner,
	repo repository.FixedAssetRepository,
	warehouseRepo repository.WarehouseRepository,
	attachmentRepo repository.AttachmentRepository,
	files FileRemover,
) *AssetUseCase {
	return &AssetUseCase{txRunner: txRunner, repo: repo, warehouseRepo: warehouseRepo, attachmentRepo: attachmentRepo, files: files}
}

// Create crea un activo fijo en una bodega existente. Si no se envía product_code
// se genera uno de 6 dígitos, reintentando ante colisiones.
func (uc *AssetUseCase) Create(ctx context.Context, in dto.CreateAssetRequest) (*dto.AssetResponse, error) {
	name, err := requireText("name", in.Name)
	if err != nil {
		return nil, err
	}
	if err := validateQuantity(in.Quantity); err != nil {
		return nil, err
	}
	if err := validateValue(in.AcquisitionValue); err != nil {
		return nil, err
	}
	code := strings.TrimSpace(in.ProductCode)
	if err := validateProductCode(code); err != nil {
		return nil, err
	}
	acquired, err := parseDate("acquisition_date", in.AcquisitionDate)
	if err != nil {
		return nil, err
	}
	warehouseID, err := uc.requireWarehouse(ctx, in.WarehouseID)
	if err != nil {
		return nil, err
	}
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	now := time.Now().UTC()
	asset := &entity.FixedAsset{
		ID:               uuid.New().String(),
		WarehouseID:      warehouseID,
		Name:             name,
		NameAr:           strings.TrimSpace(in.NameAr),
		Category:         strings.TrimSpace(in.Category),
		ProductCode:      code,
		Quantity:         in.Quantity,
		AcquisitionValue: in.AcquisitionValue,
		AcquisitionDate:  acquired,
		IsActive:         active,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if asset.ProductCode != "" {
		if err := uc.repo.Create(ctx, asset); err != nil {
			return nil, err
		}
		return toAssetResponse(asset, nil), nil
	}
	for attempt := 0; attempt < productCodeAttempts; attempt++ {
		asset.ProductCode = NewProductCode()
		err = uc.repo.Create(ctx, asset)
		if err == nil {
			return toAssetResponse(asset, nil), nil
		}
		if !errors.Is(err, domain.ErrDuplicate) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("generar product_code: %w", err)
}

// GetByID obtiene un activo con los metadatos de su adjunto, si tiene.
func (uc *AssetUseCase) GetByID(ctx context.Context, id string) (*dto.AssetResponse, error) {
	asset, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, domain.ErrNotFound
	}
	att, err := uc.attachmentRepo.GetByAssetID(ctx, asset.ID)
	if err != nil {
		return nil, err
	}
	return toAssetResponse(asset, att), nil
}

// Update actualiza parcialmente un activo (valor, cantidad, bodega, estado...).
func (uc *AssetUseCase) Update(ctx context.Context, id string, in dto.UpdateAssetRequest) (*dto.AssetResponse, error) {
	asset, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, domain.ErrNotFound
	}
	if in.WarehouseID != nil {
		if asset.WarehouseID, err = uc.requireWarehouse(ctx, *in.WarehouseID); err != nil {
			return nil, err
		}
	}
	if in.Name != nil {
		if asset.Name, err = requireText("name", *in.Name); err != nil {
			return nil, err
		}
	}
	if in.NameAr != nil {
		asset.NameAr = strings.TrimSpace(*in.NameAr)
	}
	if in.Category != nil {
		asset.Category = strings.TrimSpace(*in.Category)
	}
	if in.Quantity != nil {
		if err := validateQuantity(*in.Quantity); err != nil {
			return nil, err
		}
		asset.Quantity = *in.Quantity
	}
	if in.AcquisitionValue != nil {
		if err := validateValue(*in.AcquisitionValue); err != nil {
			return nil, err
		}
		asset.AcquisitionValue = *in.AcquisitionValue
	}
	if in.AcquisitionDate != nil {
		if asset.AcquisitionDate, err = parseDate("acquisition_date", *in.AcquisitionDate); err != nil {
			return nil, err
		}
	}
	if in.IsActive != nil {
		asset.IsActive = *in.IsActive
	}
	asset.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, asset); err != nil {
		return nil, err
	}
	att, err := uc.attachmentRepo.GetByAssetID(ctx, asset.ID)
	if err != nil {
		return nil, err
	}
	return toAssetResponse(asset, att), nil
}

// List lista activos con filtros opcionales por bodega, sede, categoría, texto y estado.
func (uc *AssetUseCase) List(ctx context.Context, q dto.AssetListQuery, limit, offset int) (*dto.AssetListResponse, error) {
	list, total, err := uc.repo.List(ctx, toAssetFilter(q), limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AssetResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAssetResponse(a, nil))
	}
	return &dto.AssetListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}, nil
}

// ListByWarehouse lista los activos de una bodega; domain.ErrNotFound si la bodega no existe.
func (uc *AssetUseCase) ListByWarehouse(ctx context.Context, warehouseID string, limit, offset int) (*dto.AssetListResponse, error) {
	warehouse, err := uc.warehouseRepo.GetByID(ctx, warehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	return uc.List(ctx, dto.AssetListQuery{WarehouseID: warehouse.ID}, limit, offset)
}

// Delete elimina un activo. El adjunto se borra en cascada y su archivo se elimina del almacén
// después del commit. La fila del activo se bloquea igual que en una subida, así que un adjunto
// subido en paralelo queda antes (y su archivo se borra aquí) o falla con domain.ErrNotFound.
func (uc *AssetUseCase) Delete(ctx context.Context, id string) error {
	var att *entity.Attachment
	err := uc.txRunner.RunAttachment(ctx, func(assetRepo repository.FixedAssetRepository, attachmentRepo repository.AttachmentRepository) error {
		found, err := assetRepo.LockByID(ctx, id)
		if err != nil {
			return err
		}
		if !found {
			return domain.ErrNotFound
		}
		if att, err = attachmentRepo.GetByAssetID(ctx, id); err != nil {
			return err
		}
		return assetRepo.Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	if att != nil && uc.files != nil {
		if err := uc.files.Delete(ctx, att.StorageKey); err != nil {
			log.Warn().Err(err).Str("asset_id", id).Str("storage_key", att.StorageKey).
				Msg("no se pudo borrar el archivo del activo eliminado")
		}
	}
	return nil
}

func (uc *AssetUseCase) requireWarehouse(ctx context.Context, warehouseID string) (string, error) {
	id, err := requireText("warehouse_id", warehouseID)
	if err != nil {
		return "", err
	}
	if _, err := uuid.Parse(id); err != nil {
		return "", fmt.Errorf("%w: warehouse_id no es un UUID válido", domain.ErrInvalidInput)
	}
	warehouse, err := uc.warehouseRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if warehouse == nil {
		return "", fmt.Errorf("%w: la bodega %s no existe", domain.ErrInvalidInput, id)
	}
	return warehouse.ID, nil
}

func validateProductCode(code string) error {
	if utf8.RuneCountInString(code) > maxProductCodeLen {
		return fmt.Errorf("%w: product_code admite máximo %d caracteres", domain.ErrInvalidInput, maxProductCodeLen)
	}
	return nil
}

func validateQuantity(q int) error {
	if q < 0 {
		return fmt.Errorf("%w: quantity no puede ser negativa", domain.ErrInvalidInput)
	}
	if q > math.MaxInt32 {
		return fmt.Errorf("%w: quantity fuera de rango", domain.ErrInvalidInput)
	}
	return nil
}

// validateValue exige un monto representable sin redondeo en NUMERIC(18,2).
func validateValue(v decimal.Decimal) error {
	if v.IsNegative() {
		return fmt.Errorf("%w: acquisition_value no puede ser negativo", domain.ErrInvalidInput)
	}
	if !v.Equal(v.Round(valueScale)) {
		return fmt.Errorf("%w: acquisition_value admite máximo %d decimales", domain.ErrInvalidInput, valueScale)
	}
	if v.GreaterThanOrEqual(maxAcquisitionValue) {
		return fmt.Errorf("%w: acquisition_value fuera de rango", domain.ErrInvalidInput)
	}
	return nil
}

// NewProductCode genera un código numérico de 6 dígitos a partir de un UUID aleatorio.
func NewProductCode() string {
	id := uuid.New()
	n := binary.BigEndian.Uint64(id[:8]) % 1_000_000
	return fmt.Sprintf("%06d", n)
}

func toAssetFilter(q dto.AssetListQuery) entity.AssetFilter {
	return entity.AssetFilter{
		WarehouseID: canonicalID(q.WarehouseID),
		BranchID:    canonicalID(q.BranchID),
		Category:    strings.TrimSpace(q.Category),
		Search:      strings.TrimSpace(q.Search),
		Active:      q.Active,
	}
}

// ToAttachmentResponse convierte los metadatos de un adjunto a su DTO.
func ToAttachmentResponse(a *entity.Attachment) *dto.AttachmentResponse {
	if a == nil {
		return nil
	}
	return &dto.AttachmentResponse{
		ID:          a.ID,
		AssetID:     a.AssetID,
		Filename:    a.Filename,
		ContentType: a.ContentType,
		SizeBytes:   a.SizeBytes,
		SHA256:      a.SHA256,
		CreatedAt:   a.CreatedAt,
	}
}

func toAssetResponse(a *entity.FixedAsset, att *entity.Attachment) *dto.AssetResponse {
	if a == nil {
		return nil
	}
	return &dto.AssetResponse{
		ID:               a.ID,
		WarehouseID:      a.WarehouseID,
		Name:             a.Name,
		NameAr:           a.NameAr,
		Category:         a.Category,
		ProductCode:      a.ProductCode,
		Quantity:         a.Quantity,
		AcquisitionValue: a.AcquisitionValue,
		AcquisitionDate:  formatDate(a.AcquisitionDate),
		IsActive:         a.IsActive,
		Attachment:       ToAttachmentResponse(att),
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}
