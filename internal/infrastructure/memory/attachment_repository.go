package memory

import (
	"context"
	"fmt"

	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

var _ repository.AttachmentRepository = (*AttachmentRepo)(nil)

// AttachmentRepo metadatos de adjuntos en memoria, indexados por activo.
type AttachmentRepo struct {
	h handle
}

// Create registra el adjunto; un activo admite uno solo.
func (r *AttachmentRepo) Create(_ context.Context, a *entity.Attachment) error {
	return r.h.write(func(s *state) error {
		if _, ok := s.assets[a.AssetID]; !ok {
			return fmt.Errorf("%w: el activo %s no existe", domain.ErrInvalidInput, a.AssetID)
		}
		if _, ok := s.attachments[a.AssetID]; ok {
			return fmt.Errorf("%w: el activo %s ya tiene adjunto", domain.ErrDuplicate, a.AssetID)
		}
		s.attachments[a.AssetID] = *a
		return nil
	})
}

// GetByAssetID devuelve nil, nil si el activo no tiene adjunto.
func (r *AttachmentRepo) GetByAssetID(_ context.Context, assetID string) (*entity.Attachment, error) {
	var out *entity.Attachment
	err := r.h.read(func(s *state) error {
		if a, ok := s.attachments[assetID]; ok {
			out = &a
		}
		return nil
	})
	return out, err
}

// DeleteByAssetID devuelve ErrNotFound si no había adjunto.
func (r *AttachmentRepo) DeleteByAssetID(_ context.Context, assetID string) error {
	return r.h.write(func(s *state) error {
		if _, ok := s.attachments[assetID]; !ok {
			return domain.ErrNotFound
		}
		delete(s.attachments, assetID)
		return nil
	})
}
