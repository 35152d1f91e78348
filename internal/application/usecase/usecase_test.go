package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/application/usecase"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/infrastructure/memory"
)

type fixture struct {
	repos     memory.Repositories
	branch    *usecase.BranchUseCase
	warehouse *usecase.WarehouseUseCase
	asset     *usecase.AssetUseCase
	removed   []string
}

func (f *fixture) Delete(_ context.Context, key string) error {
	f.removed = append(f.removed, key)
	return nil
}

func newFixture() *fixture {
	db := memory.NewDB()
	repos := db.Repos()
	f := &fixture{repos: repos}
	f.branch = usecase.NewBranchUseCase(repos.Branches, repos.Warehouses)
	f.warehouse = usecase.NewWarehouseUseCase(repos.Warehouses, repos.Branches)
	f.asset = usecase.NewAssetUseCase(db, repos.Assets, repos.Warehouses, repos.Attachments, f)
	return f
}

func ptr[T any](v T) *T { return &v }

func TestBranchUseCase_CrearValidaYRecorta(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.branch.Create(ctx, dto.CreateBranchRequest{Name: "  ", Address: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	out, err := f.branch.Create(ctx, dto.CreateBranchRequest{Name: " Norte ", Address: " Calle 1 "})
	require.NoError(t, err)
	assert.Equal(t, "Norte", out.Name)
	assert.Equal(t, "Calle 1", out.Address)
	assert.NotEmpty(t, out.ID)
}

func TestBranchUseCase_ActualizarParcial(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	b, err := f.branch.Create(ctx, dto.CreateBranchRequest{Name: "Norte", Address: "Calle 1"})
	require.NoError(t, err)

	out, err := f.branch.Update(ctx, b.ID, dto.UpdateBranchRequest{NameAr: ptr("الشمال")})
	require.NoError(t, err)
	assert.Equal(t, "Norte", out.Name)
	assert.Equal(t, "الشمال", out.NameAr)

	_, err = f.branch.Update(ctx, b.ID, dto.UpdateBranchRequest{Address: ptr("")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.branch.Update(ctx, "no-existe", dto.UpdateBranchRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWarehouseUseCase_MoverASedeValida(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	b1, _ := f.branch.Create(ctx, dto.CreateBranchRequest{Name: "Norte", Address: "x"})
	b2, _ := f.branch.Create(ctx, dto.CreateBranchRequest{Name: "Sur", Address: "y"})

	w, err := f.warehouse.Create(ctx, dto.CreateWarehouseRequest{BranchID: b1.ID, Name: "A", Address: "x", Capacity: ptr(10)})
	require.NoError(t, err)

	out, err := f.warehouse.Update(ctx, w.ID, dto.UpdateWarehouseRequest{BranchID: ptr(b2.ID)})
	require.NoError(t, err)
	assert.Equal(t, b2.ID, out.BranchID)

	_, err = f.warehouse.Update(ctx, w.ID, dto.UpdateWarehouseRequest{BranchID: ptr("00000000-0000-0000-0000-0000000000ff")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.warehouse.Update(ctx, w.ID, dto.UpdateWarehouseRequest{Capacity: ptr(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.warehouse.Create(ctx, dto.CreateWarehouseRequest{BranchID: "no-es-uuid", Name: "B", Address: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAssetUseCase_CrearGeneraCodigoYValida(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	b, _ := f.branch.Create(ctx, dto.CreateBranchRequest{Name: "Norte", Address: "x"})
	w, _ := f.warehouse.Create(ctx, dto.CreateWarehouseRequest{BranchID: b.ID, Name: "A", Address: "x"})

	out, err := f.asset.Create(ctx, dto.CreateAssetRequest{
		WarehouseID: w.ID, Name: "Mesa", Quantity: 2,
		AcquisitionValue: decimal.RequireFromString("99.90"), AcquisitionDate: "2024-02-29",
	})
	require.NoError(t, err)
	assert.Regexp(t, `^\d{6}$`, out.ProductCode)
	assert.True(t, out.IsActive)
	require.NotNil(t, out.AcquisitionDate)
	assert.Equal(t, "2024-02-29", *out.AcquisitionDate)

	_, err = f.asset.Create(ctx, dto.CreateAssetRequest{WarehouseID: w.ID, Name: "Mesa", AcquisitionDate: "29/02/2024"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = f.asset.Create(ctx, dto.CreateAssetRequest{WarehouseID: w.ID, Name: "Mesa", Quantity: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = f.asset.Create(ctx, dto.CreateAssetRequest{WarehouseID: "00000000-0000-0000-0000-0000000000ff", Name: "Mesa"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAssetUseCase_BorrarQuitaArchivo(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	b, _ := f.branch.Create(ctx, dto.CreateBranchRequest{Name: "Norte", Address: "x"})
	w, _ := f.warehouse.Create(ctx, dto.CreateWarehouseRequest{BranchID: b.ID, Name: "A", Address: "x"})
	a, err := f.asset.Create(ctx, dto.CreateAssetRequest{WarehouseID: w.ID, Name: "Mesa"})
	require.NoError(t, err)
	require.NoError(t, f.repos.Attachments.Create(ctx, &entity.Attachment{ID: "f1", AssetID: a.ID, StorageKey: "clave"}))

	require.NoError(t, f.asset.Delete(ctx, a.ID))
	assert.Equal(t, []string{"clave"}, f.removed)
	assert.ErrorIs(t, f.asset.Delete(ctx, a.ID), domain.ErrNotFound)
}

func TestNewProductCode(t *testing.T) {
	for i := 0; i < 50; i++ {
		assert.Regexp(t, `^\d{6}$`, usecase.NewProductCode())
	}
}
