package repository

import (
	"context"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// AttachmentRepository define el puerto de persistencia para los metadatos de adjuntos.
// GetByAssetID devuelve (nil, nil) si el activo no tiene adjunto.
type AttachmentRepository interface {
	Create(ctx context.Context, attachment *entity.Attachment) error
	GetByAssetID(ctx context.Context, assetID string) (*entity.Attachment, error)
	DeleteByAssetID(ctx context.Context, assetID string) error
}
