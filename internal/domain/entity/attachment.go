package entity

import "time"

// Attachment es el archivo adjunto de un activo fijo (como máximo uno por activo).
// StorageKey es el nombre generado en el almacén; Filename conserva el nombre original.
type Attachment struct {
	ID          string
	AssetID     string
	StorageKey  string
	Filename    string
	ContentType string
	SizeBytes   int64
	SHA256      string
	CreatedAt   time.Time
}
