package storage

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/jhoicas/Activos-api/internal/application/attachment"
	"github.com/jhoicas/Activos-api/internal/domain"
)

var _ attachment.Store = (*FSStore)(nil)

const tmpDir = ".tmp"

var (
	extPattern = regexp.MustCompile(`^\.[a-z0-9]{1,10}$`)
	keyPattern = regexp.MustCompile(`^[0-9a-f-]{36}(\.[a-z0-9]{1,10})?$`)
)

// FSStore almacén de adjuntos sobre un afero.Fs. Cada archivo se escribe primero en
// .tmp/, se sincroniza y luego se renombra a su clave definitiva.
type FSStore struct {
	fs afero.Fs
}

// NewFSStore crea el almacén con raíz en dir sobre el sistema de archivos del SO.
func NewFSStore(dir string) (*FSStore, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("%w: crear directorio %s: %v", domain.ErrStorage, dir, err)
	}
	return NewFSStoreWithFs(afero.NewBasePathFs(afero.NewOsFs(), dir))
}

// NewFSStoreWithFs crea el almacén sobre fs (en pruebas, afero.NewMemMapFs()).
func NewFSStoreWithFs(fs afero.Fs) (*FSStore, error) {
	if err := fs.MkdirAll(tmpDir, 0o750); err != nil {
		return nil, fmt.Errorf("%w: crear directorio temporal: %v", domain.ErrStorage, err)
	}
	return &FSStore{fs: fs}, nil
}

// Put guarda el contenido de r bajo una clave nueva (UUID + extensión de filename).
func (s *FSStore) Put(ctx context.Context, r io.Reader, filename string) (*attachment.StoredObject, error) {
	key := uuid.New().String() + extensionOf(filename)
	tmp := path.Join(tmpDir, key+".part")

	f, err := s.fs.OpenFile(tmp, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o640)
	if err != nil {
		return nil, fmt.Errorf("%w: crear temporal: %v", domain.ErrStorage, err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = f.Close()
			_ = s.fs.Remove(tmp)
		}
	}()

	h := sha256.New()
	n, err := io.Copy(io.MultiWriter(f, h), &ctxReader{ctx: ctx, r: r})
	if err != nil {
		return nil, fmt.Errorf("%w: escribir archivo: %v", domain.ErrStorage, err)
	}
	if err := f.Sync(); err != nil {
		return nil, fmt.Errorf("%w: sync: %v", domain.ErrStorage, err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("%w: cerrar archivo: %v", domain.ErrStorage, err)
	}
	if err := s.fs.Rename(tmp, key); err != nil {
		_ = s.fs.Remove(tmp)
		committed = true
		return nil, fmt.Errorf("%w: renombrar archivo: %v", domain.ErrStorage, err)
	}
	committed = true

	return &attachment.StoredObject{Key: key, Size: n, SHA256: hex.EncodeToString(h.Sum(nil))}, nil
}

// Open abre el archivo de la clave; domain.ErrNotFound si no existe.
func (s *FSStore) Open(_ context.Context, key string) (io.ReadCloser, error) {
	if !keyPattern.MatchString(key) {
		return nil, domain.ErrNotFound
	}
	f, err := s.fs.Open(key)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("%w: abrir %s: %v", domain.ErrStorage, key, err)
	}
	return f, nil
}

// Delete borra el archivo de la clave. Borrar una clave inexistente no es error.
func (s *FSStore) Delete(_ context.Context, key string) error {
	if !keyPattern.MatchString(key) {
		return nil
	}
	if err := s.fs.Remove(key); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: borrar %s: %v", domain.ErrStorage, key, err)
	}
	return nil
}

// extensionOf devuelve la extensión en minúsculas si es segura; si no, "".
func extensionOf(filename string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(filename)))
	if !extPattern.MatchString(ext) {
		return ""
	}
	return ext
}

// ctxReader corta la copia si el contexto de la petición se cancela.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
