package storage_test

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/infrastructure/storage"
)

func newStore(t *testing.T) (*storage.FSStore, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	s, err := storage.NewFSStoreWithFs(fs)
	require.NoError(t, err)
	return s, fs
}

func TestPutOpen_RoundTrip(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()
	content := []byte("factura de compra")

	obj, err := s.Put(ctx, bytes.NewReader(content), "Factura.PDF")
	require.NoError(t, err)
	assert.Regexp(t, `^[0-9a-f-]{36}\.pdf$`, obj.Key)
	assert.Equal(t, int64(len(content)), obj.Size)
	sum := sha256.Sum256(content)
	assert.Equal(t, hex.EncodeToString(sum[:]), obj.SHA256)

	rc, err := s.Open(ctx, obj.Key)
	require.NoError(t, err)
	defer rc.Close()
	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestPut_ClavesDistintas(t *testing.T) {
	s, _ := newStore(t)
	a, err := s.Put(context.Background(), bytes.NewReader([]byte("a")), "x.txt")
	require.NoError(t, err)
	b, err := s.Put(context.Background(), bytes.NewReader([]byte("a")), "x.txt")
	require.NoError(t, err)
	assert.NotEqual(t, a.Key, b.Key)
}

func TestPut_ExtensionInseguraSeDescarta(t *testing.T) {
	s, _ := newStore(t)
	obj, err := s.Put(context.Background(), bytes.NewReader([]byte("a")), "../../etc/passwd.sh;rm")
	require.NoError(t, err)
	assert.Regexp(t, `^[0-9a-f-]{36}$`, obj.Key)
}

type failingReader struct{ sent bool }

func (f *failingReader) Read(p []byte) (int, error) {
	if !f.sent {
		f.sent = true
		return copy(p, "parcial"), nil
	}
	return 0, errors.New("conexión cortada")
}

func TestPut_FalloNoDejaArchivoParcial(t *testing.T) {
	s, fs := newStore(t)
	_, err := s.Put(context.Background(), &failingReader{}, "x.bin")
	require.ErrorIs(t, err, domain.ErrStorage)

	tmp, err := afero.ReadDir(fs, ".tmp")
	require.NoError(t, err)
	assert.Empty(t, tmp)
}

func TestOpen_ClaveInexistente(t *testing.T) {
	s, _ := newStore(t)
	_, err := s.Open(context.Background(), "00000000-0000-0000-0000-000000000000.pdf")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = s.Open(context.Background(), "../secreto")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_Idempotente(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()
	obj, err := s.Put(ctx, bytes.NewReader([]byte("a")), "a.txt")
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, obj.Key))
	require.NoError(t, s.Delete(ctx, obj.Key))
	_, err = s.Open(ctx, obj.Key)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
