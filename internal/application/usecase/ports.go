package usecase

import (
	"context"

	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// FileRemover borra archivos del almacén de adjuntos (lo implementa storage.FSStore).
type FileRemover interface {
	Delete(ctx context.Context, key string) error
}

// TxRunner ejecuta fn dentro de una transacción de BD con repositorios atados a esa tx.
// Lo usan las operaciones que tocan a la vez un activo y su adjunto.
type TxRunner interface {
	RunAttachment(ctx context.Context, fn func(
		assetRepo repository.FixedAssetRepository,
		attachmentRepo repository.AttachmentRepository,
	) error) error
}
