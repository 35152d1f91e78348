package attachment

import (
	"context"
	"io"

	"github.com/jhoicas/Activos-api/internal/application/usecase"
)

// StoredObject resultado de escribir un archivo en el almacén.
type StoredObject struct {
	Key    string
	Size   int64
	SHA256 string
}

// Store almacén durable de archivos adjuntos.
// Put no sobrescribe: cada llamada genera una clave nueva y solo retorna cuando el
// archivo completo quedó persistido. Open devuelve domain.ErrNotFound si la clave no existe.
type Store interface {
	Put(ctx context.Context, r io.Reader, filename string) (*StoredObject, error)
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

// TxRunner transacción compartida con usecase.AssetUseCase.
type TxRunner = usecase.TxRunner
