package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

var _ repository.AttachmentRepository = (*AttachmentRepo)(nil)

// AttachmentRepo implementación del puerto AttachmentRepository sobre PostgreSQL.
type AttachmentRepo struct {
	db Querier
}

// NewAttachmentRepository construye el adaptador de persistencia para adjuntos.
func NewAttachmentRepository(db Querier) *AttachmentRepo {
	return &AttachmentRepo{db: db}
}

// Create persiste los metadatos de un adjunto. asset_id es único: un activo, un adjunto.
func (r *AttachmentRepo) Create(ctx context.Context, a *entity.Attachment) error {
	query := `
		INSERT INTO asset_attachments (id, asset_id, storage_key, filename, content_type, size_bytes, sha256, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, query,
		a.ID, a.AssetID, a.StorageKey, a.Filename, a.ContentType, a.SizeBytes, a.SHA256, a.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: el activo %s ya tiene adjunto", domain.ErrDuplicate, a.AssetID)
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: el activo %s no existe", domain.ErrInvalidInput, a.AssetID)
		}
		return fmt.Errorf("insert attachment: %w", err)
	}
	return nil
}

// GetByAssetID obtiene el adjunto de un activo; (nil, nil) si no tiene.
func (r *AttachmentRepo) GetByAssetID(ctx context.Context, assetID string) (*entity.Attachment, error) {
	if !isUUID(assetID) {
		return nil, nil
	}
	query := `
		SELECT id, asset_id, storage_key, filename, content_type, size_bytes, sha256, created_at
		FROM asset_attachments WHERE asset_id = $1`
	var a entity.Attachment
	err := r.db.QueryRow(ctx, query, assetID).Scan(
		&a.ID, &a.AssetID, &a.StorageKey, &a.Filename, &a.ContentType, &a.SizeBytes, &a.SHA256, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get attachment: %w", err)
	}
	return &a, nil
}

// DeleteByAssetID borra el adjunto del activo; domain.ErrNotFound si no tenía.
func (r *AttachmentRepo) DeleteByAssetID(ctx context.Context, assetID string) error {
	if !isUUID(assetID) {
		return domain.ErrNotFound
	}
	cmd, err := r.db.Exec(ctx, `DELETE FROM asset_attachments WHERE asset_id = $1`, assetID)
	if err != nil {
		return fmt.Errorf("delete attachment: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
