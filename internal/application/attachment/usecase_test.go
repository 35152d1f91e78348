package attachment_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Activos-api/internal/application/attachment"
	"github.com/jhoicas/Activos-api/internal/application/usecase"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
	"github.com/jhoicas/Activos-api/internal/infrastructure/memory"
)

// fakeStore almacén en memoria que registra las claves borradas.
type fakeStore struct {
	mu      sync.Mutex
	files   map[string][]byte
	deleted []string
}

func newFakeStore() *fakeStore { return &fakeStore{files: map[string][]byte{}} }

func (s *fakeStore) Put(_ context.Context, r io.Reader, _ string) (*attachment.StoredObject, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	key := uuid.New().String()
	s.files[key] = b
	return &attachment.StoredObject{Key: key, Size: int64(len(b)), SHA256: "x"}, nil
}

func (s *fakeStore) Open(_ context.Context, key string) (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.files[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(b)), nil
}

func (s *fakeStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.files, key)
	s.deleted = append(s.deleted, key)
	return nil
}

// failingTx simula un fallo de la transacción después de ejecutar fn.
type failingTx struct{ inner attachment.TxRunner }

func (f failingTx) RunAttachment(ctx context.Context, fn func(repository.FixedAssetRepository, repository.AttachmentRepository) error) error {
	return f.inner.RunAttachment(ctx, func(a repository.FixedAssetRepository, at repository.AttachmentRepository) error {
		if err := fn(a, at); err != nil {
			return err
		}
		return errors.New("commit falló")
	})
}

// interleavedTx ejecuta before una sola vez justo antes de abrir la transacción.
type interleavedTx struct {
	inner  attachment.TxRunner
	before func()
}

func (r *interleavedTx) RunAttachment(ctx context.Context, fn func(repository.FixedAssetRepository, repository.AttachmentRepository) error) error {
	if b := r.before; b != nil {
		r.before = nil
		b()
	}
	return r.inner.RunAttachment(ctx, fn)
}

func setup(t *testing.T) (*memory.DB, memory.Repositories, string) {
	t.Helper()
	db := memory.NewDB()
	repos := db.Repos()
	ctx := context.Background()
	now := time.Now().UTC()
	require.NoError(t, repos.Branches.Create(ctx, &entity.Branch{ID: "b1", Name: "Norte", Address: "x", CreatedAt: now, UpdatedAt: now}))
	require.NoError(t, repos.Warehouses.Create(ctx, &entity.Warehouse{ID: "w1", BranchID: "b1", Name: "A", Address: "x"}))
	require.NoError(t, repos.Assets.Create(ctx, &entity.FixedAsset{ID: "a1", WarehouseID: "w1", Name: "Mesa", ProductCode: "000001"}))
	return db, repos, "a1"
}

func upload(content string, name string) attachment.UploadInput {
	return attachment.UploadInput{Filename: name, Content: bytes.NewReader([]byte(content))}
}

func TestUpload_ReemplazaYBorraArchivoAnterior(t *testing.T) {
	db, repos, assetID := setup(t)
	store := newFakeStore()
	uc := attachment.NewUseCase(db, repos.Assets, repos.Attachments, store)
	ctx := context.Background()

	first, err := uc.Upload(ctx, assetID, upload("uno", "uno.txt"))
	require.NoError(t, err)
	firstRow, err := repos.Attachments.GetByAssetID(ctx, assetID)
	require.NoError(t, err)

	second, err := uc.Upload(ctx, assetID, upload("dos", "dos.txt"))
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, "text/plain; charset=utf-8", second.ContentType)

	assert.Equal(t, []string{firstRow.StorageKey}, store.deleted)
	assert.Len(t, store.files, 1)

	d, err := uc.Download(ctx, assetID)
	require.NoError(t, err)
	defer d.Body.Close()
	body, _ := io.ReadAll(d.Body)
	assert.Equal(t, "dos", string(body))
	assert.Equal(t, "dos.txt", d.Attachment.Filename)
}

func TestUpload_FalloDeTransaccionBorraArchivoNuevo(t *testing.T) {
	db, repos, assetID := setup(t)
	store := newFakeStore()
	uc := attachment.NewUseCase(failingTx{inner: db}, repos.Assets, repos.Attachments, store)

	_, err := uc.Upload(context.Background(), assetID, upload("uno", "uno.txt"))
	require.Error(t, err)
	assert.Empty(t, store.files, "no deben quedar archivos huérfanos")

	att, err := repos.Attachments.GetByAssetID(context.Background(), assetID)
	require.NoError(t, err)
	assert.Nil(t, att)
}

func TestUpload_ArchivoVacio(t *testing.T) {
	db, repos, assetID := setup(t)
	store := newFakeStore()
	uc := attachment.NewUseCase(db, repos.Assets, repos.Attachments, store)

	_, err := uc.Upload(context.Background(), assetID, upload("", "vacio.txt"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, store.files)
}

func TestUpload_ActivoInexistente(t *testing.T) {
	db, repos, _ := setup(t)
	uc := attachment.NewUseCase(db, repos.Assets, repos.Attachments, newFakeStore())

	_, err := uc.Upload(context.Background(), "nope", upload("x", "x.txt"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpload_NombreSinRutas(t *testing.T) {
	db, repos, assetID := setup(t)
	uc := attachment.NewUseCase(db, repos.Assets, repos.Attachments, newFakeStore())

	out, err := uc.Upload(context.Background(), assetID, upload("x", `..\..\windows\factura.pdf`))
	require.NoError(t, err)
	assert.Equal(t, "factura.pdf", out.Filename)
	assert.Equal(t, "application/pdf", out.ContentType)
}

func TestDelete_BorraFilaYArchivo(t *testing.T) {
	db, repos, assetID := setup(t)
	store := newFakeStore()
	uc := attachment.NewUseCase(db, repos.Assets, repos.Attachments, store)
	ctx := context.Background()

	_, err := uc.Upload(ctx, assetID, upload("uno", "uno.txt"))
	require.NoError(t, err)
	require.NoError(t, uc.Delete(ctx, assetID))
	assert.Empty(t, store.files)

	assert.ErrorIs(t, uc.Delete(ctx, assetID), domain.ErrNotFound)
	_, err = uc.Download(ctx, assetID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteAsset_SubidaConcurrenteNoDejaHuerfanos(t *testing.T) {
	db, repos, assetID := setup(t)
	store := newFakeStore()
	ctx := context.Background()
	attachments := attachment.NewUseCase(db, repos.Assets, repos.Attachments, store)
	runner := &interleavedTx{inner: db}
	assets := usecase.NewAssetUseCase(runner, repos.Assets, repos.Warehouses, repos.Attachments, store)

	_, err := attachments.Upload(ctx, assetID, upload("uno", "uno.txt"))
	require.NoError(t, err)
	runner.before = func() {
		_, err := attachments.Upload(ctx, assetID, upload("dos", "dos.txt"))
		require.NoError(t, err)
	}

	require.NoError(t, assets.Delete(ctx, assetID))
	assert.Empty(t, store.files, "el archivo subido durante el borrado también debe eliminarse")

	_, err = attachments.Upload(ctx, assetID, upload("tres", "tres.txt"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, store.files)
}
