package attachment

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/application/usecase"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

const defaultContentType = "application/octet-stream"

// UploadInput archivo recibido para asociar a un activo.
type UploadInput struct {
	Filename    string
	ContentType string
	Content     io.Reader
}

// Download contenido de un adjunto listo para enviarse; el llamador cierra Body.
type Download struct {
	Attachment dto.AttachmentResponse
	Body       io.ReadCloser
}

// UseCase casos de uso de adjuntos de activos fijos.
//
// Política: un activo tiene como máximo un adjunto. Subir uno nuevo reemplaza la fila
// en la misma transacción y borra el archivo anterior después del commit; si la
// transacción falla se borra el archivo recién escrito. No quedan huérfanos.
type UseCase struct {
	txRunner       TxRunner
	assetRepo      repository.FixedAssetRepository
	attachmentRepo repository.AttachmentRepository
	store          Store
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	assetRepo repository.FixedAssetRepository,
	attachmentRepo repository.AttachmentRepository,
	store Store,
) *UseCase {
	return &UseCase{txRunner: txRunner, assetRepo: assetRepo, attachmentRepo: attachmentRepo, store: store}
}

// Upload guarda el archivo en el almacén y lo asocia al activo.
func (uc *UseCase) Upload(ctx context.Context, assetID string, in UploadInput) (*dto.AttachmentResponse, error) {
	filename := sanitizeFilename(in.Filename)
	if filename == "" || in.Content == nil {
		return nil, fmt.Errorf("%w: archivo requerido", domain.ErrInvalidInput)
	}
	asset, err := uc.assetRepo.GetByID(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, domain.ErrNotFound
	}

	obj, err := uc.store.Put(ctx, in.Content, filename)
	if err != nil {
		return nil, err
	}
	if obj.Size == 0 {
		uc.removeFile(ctx, obj.Key, asset.ID)
		return nil, fmt.Errorf("%w: el archivo está vacío", domain.ErrInvalidInput)
	}

	att := &entity.Attachment{
		ID:          uuid.New().String(),
		AssetID:     asset.ID,
		StorageKey:  obj.Key,
		Filename:    filename,
		ContentType: contentTypeFor(in.ContentType, filename),
		SizeBytes:   obj.Size,
		SHA256:      obj.SHA256,
		CreatedAt:   time.Now().UTC(),
	}

	var previous *entity.Attachment
	err = uc.txRunner.RunAttachment(ctx, func(assetRepo repository.FixedAssetRepository, attachmentRepo repository.AttachmentRepository) error {
		found, err := assetRepo.LockByID(ctx, asset.ID)
		if err != nil {
			return err
		}
		if !found {
			return domain.ErrNotFound
		}
		previous, err = attachmentRepo.GetByAssetID(ctx, asset.ID)
		if err != nil {
			return err
		}
		if previous != nil {
			if err := attachmentRepo.DeleteByAssetID(ctx, asset.ID); err != nil {
				return err
			}
		}
		return attachmentRepo.Create(ctx, att)
	})
	if err != nil {
		uc.removeFile(ctx, obj.Key, asset.ID)
		return nil, err
	}
	if previous != nil {
		uc.removeFile(ctx, previous.StorageKey, asset.ID)
	}
	log.Info().Str("asset_id", asset.ID).Str("storage_key", att.StorageKey).
		Int64("size_bytes", att.SizeBytes).Msg("adjunto almacenado")
	return usecase.ToAttachmentResponse(att), nil
}

// Download abre el adjunto del activo. domain.ErrNotFound si el activo no existe o no tiene adjunto.
func (uc *UseCase) Download(ctx context.Context, assetID string) (*Download, error) {
	att, err := uc.attachmentRepo.GetByAssetID(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if att == nil {
		return nil, domain.ErrNotFound
	}
	body, err := uc.store.Open(ctx, att.StorageKey)
	if err != nil {
		return nil, err
	}
	return &Download{Attachment: *usecase.ToAttachmentResponse(att), Body: body}, nil
}

// Delete elimina el adjunto del activo (fila y archivo).
func (uc *UseCase) Delete(ctx context.Context, assetID string) error {
	var removed *entity.Attachment
	err := uc.txRunner.RunAttachment(ctx, func(assetRepo repository.FixedAssetRepository, attachmentRepo repository.AttachmentRepository) error {
		found, err := assetRepo.LockByID(ctx, assetID)
		if err != nil {
			return err
		}
		if !found {
			return domain.ErrNotFound
		}
		removed, err = attachmentRepo.GetByAssetID(ctx, assetID)
		if err != nil {
			return err
		}
		if removed == nil {
			return domain.ErrNotFound
		}
		return attachmentRepo.DeleteByAssetID(ctx, assetID)
	})
	if err != nil {
		return err
	}
	uc.removeFile(ctx, removed.StorageKey, assetID)
	return nil
}

func (uc *UseCase) removeFile(ctx context.Context, key, assetID string) {
	if err := uc.store.Delete(ctx, key); err != nil {
		log.Warn().Err(err).Str("asset_id", assetID).Str("storage_key", key).
			Msg("no se pudo borrar el archivo del almacén")
	}
}

// sanitizeFilename conserva solo el nombre base (sin rutas) del archivo subido.
func sanitizeFilename(name string) string {
	name = strings.TrimSpace(strings.ReplaceAll(name, "\\", "/"))
	if name == "" {
		return ""
	}
	base := filepath.Base(name)
	if base == "." || base == "/" || base == ".." {
		return ""
	}
	return base
}

func contentTypeFor(declared, filename string) string {
	if ct := strings.TrimSpace(declared); ct != "" {
		return ct
	}
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(filename))); ct != "" {
		return ct
	}
	return defaultContentType
}
