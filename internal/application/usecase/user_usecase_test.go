package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/application/usecase"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/infrastructure/memory"
)

const (
	adminID  = "11111111-1111-1111-1111-111111111111"
	viewerID = "22222222-2222-2222-2222-222222222222"
)

func newUserFixture(t *testing.T) (*usecase.UserUseCase, memory.Repositories) {
	t.Helper()
	repos := memory.NewDB().Repos()
	ctx := context.Background()
	now := time.Now().UTC()
	require.NoError(t, repos.Users.Create(ctx, &entity.User{
		ID: adminID, Email: "admin@empresa.com", FullName: "Admin", Role: entity.RoleAdmin, Active: true, CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, repos.Users.Create(ctx, &entity.User{
		ID: viewerID, Email: "lector@empresa.com", FullName: "Lector", Role: entity.RoleViewer, Active: true, CreatedAt: now, UpdatedAt: now,
	}))
	return usecase.NewUserUseCase(repos.Users), repos
}

func TestUserUseCase_ActualizarCampos(t *testing.T) {
	uc, _ := newUserFixture(t)
	ctx := context.Background()

	out, err := uc.Update(ctx, adminID, viewerID, dto.UpdateUserRequest{
		Email:    ptr(" Gestor@Empresa.com "),
		FullName: ptr("Gestor"),
		Role:     ptr(entity.RoleManager),
		Active:   ptr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, "gestor@empresa.com", out.Email)
	assert.Equal(t, "Gestor", out.FullName)
	assert.Equal(t, entity.RoleManager, out.Role)
	assert.False(t, out.Active)
	assert.Contains(t, out.Permissions, string(entity.PermAssetEdit))

	_, err = uc.Update(ctx, adminID, viewerID, dto.UpdateUserRequest{Email: ptr("admin@empresa.com")})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	_, err = uc.Update(ctx, adminID, viewerID, dto.UpdateUserRequest{Role: ptr("bodeguero")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Update(ctx, adminID, viewerID, dto.UpdateUserRequest{FullName: ptr("  ")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Update(ctx, adminID, "33333333-3333-3333-3333-333333333333", dto.UpdateUserRequest{Active: ptr(true)})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserUseCase_AdminNoSeBloqueaASiMismo(t *testing.T) {
	uc, _ := newUserFixture(t)
	ctx := context.Background()

	_, err := uc.Update(ctx, adminID, adminID, dto.UpdateUserRequest{Active: ptr(false)})
	assert.ErrorIs(t, err, domain.ErrConflict)
	_, err = uc.Update(ctx, adminID, adminID, dto.UpdateUserRequest{Role: ptr(entity.RoleViewer)})
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.ErrorIs(t, uc.Delete(ctx, adminID, adminID), domain.ErrConflict)

	out, err := uc.Update(ctx, adminID, adminID, dto.UpdateUserRequest{FullName: ptr("Administradora"), Role: ptr(entity.RoleAdmin)})
	require.NoError(t, err)
	assert.Equal(t, "Administradora", out.FullName)
}

func TestUserUseCase_ListarYBorrar(t *testing.T) {
	uc, _ := newUserFixture(t)
	ctx := context.Background()

	out, err := uc.List(ctx, dto.UserListQuery{Search: "lector"}, 20, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, viewerID, out.Items[0].ID)

	out, err = uc.List(ctx, dto.UserListQuery{ID: "  " + adminID + " "}, 20, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "admin@empresa.com", out.Items[0].Email)

	require.NoError(t, uc.Delete(ctx, adminID, viewerID))
	_, err = uc.GetByID(ctx, viewerID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, uc.Delete(ctx, adminID, viewerID), domain.ErrNotFound)
}

func TestStatsUseCase_Totales(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	b, err := f.branch.Create(ctx, dto.CreateBranchRequest{Name: "Norte", Address: "Calle 1"})
	require.NoError(t, err)
	w, err := f.warehouse.Create(ctx, dto.CreateWarehouseRequest{BranchID: b.ID, Name: "A", Address: "Calle 1"})
	require.NoError(t, err)
	a, err := f.asset.Create(ctx, dto.CreateAssetRequest{WarehouseID: w.ID, Name: "Mesa"})
	require.NoError(t, err)
	_, err = f.asset.Create(ctx, dto.CreateAssetRequest{WarehouseID: w.ID, Name: "Silla"})
	require.NoError(t, err)
	_, err = f.asset.Update(ctx, a.ID, dto.UpdateAssetRequest{IsActive: ptr(false)})
	require.NoError(t, err)

	out, err := usecase.NewStatsUseCase(f.repos.Stats).Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, dto.StatsResponse{
		TotalBranches: 1, TotalWarehouses: 1, TotalAssets: 2,
		ActiveAssets: 1, InactiveAssets: 1,
	}, *out)
}
