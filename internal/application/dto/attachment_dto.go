package dto

import "time"

// AttachmentResponse metadatos de un adjunto (sin el contenido).
type AttachmentResponse struct {
	ID          string    `json:"id"`
	AssetID     string    `json:"asset_id"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	SHA256      string    `json:"sha256"`
	CreatedAt   time.Time `json:"created_at"`
}
