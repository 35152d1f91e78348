package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Activos-api/internal/application/auth"
	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/application/usecase"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/infrastructure/memory"
	pkgjwt "github.com/jhoicas/Activos-api/pkg/jwt"
)

const secret = "secreto-de-prueba"

func newAuth() *auth.AuthUseCase {
	return auth.NewAuthUseCase(memory.NewDB().Repos().Users, auth.JWTConfig{Secret: secret, ExpMinutes: 5, Issuer: "test"})
}

func TestRegisterUser_RolPorDefectoYPermisos(t *testing.T) {
	uc := newAuth()
	out, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{Email: " Ana@Mail.com ", Password: "12345678"})
	require.NoError(t, err)
	assert.Equal(t, "ana@mail.com", out.Email)
	assert.Equal(t, "viewer", out.Role)
	assert.ElementsMatch(t, []string{"branch:read", "warehouse:read", "asset:read"}, out.Permissions)
}

func TestRegisterUser_Validaciones(t *testing.T) {
	uc := newAuth()
	ctx := context.Background()

	_, err := uc.RegisterUser(ctx, dto.RegisterRequest{Email: "sin-arroba", Password: "12345678"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.RegisterUser(ctx, dto.RegisterRequest{Email: "a@b.co", Password: "corta"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.RegisterUser(ctx, dto.RegisterRequest{Email: "a@b.co", Password: "12345678", Role: "root"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.RegisterUser(ctx, dto.RegisterRequest{Email: "a@b.co", Password: "12345678"})
	require.NoError(t, err)
	_, err = uc.RegisterUser(ctx, dto.RegisterRequest{Email: "A@B.CO", Password: "12345678"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin(t *testing.T) {
	uc := newAuth()
	ctx := context.Background()
	u, err := uc.RegisterUser(ctx, dto.RegisterRequest{Email: "a@b.co", Password: "12345678", Role: "manager"})
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "x@b.co", Password: "12345678"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	_, err = uc.Login(ctx, dto.LoginRequest{Email: "a@b.co", Password: "mala-clave"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	out, err := uc.Login(ctx, dto.LoginRequest{Email: "A@b.co", Password: "12345678"})
	require.NoError(t, err)
	userID, role, err := pkgjwt.Parse(secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, userID)
	assert.Equal(t, "manager", role)

	me, err := uc.Me(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "a@b.co", me.Email)
}

func TestLogin_UsuarioDesactivadoEsProhibido(t *testing.T) {
	users := memory.NewDB().Repos().Users
	uc := auth.NewAuthUseCase(users, auth.JWTConfig{Secret: secret, ExpMinutes: 5, Issuer: "test"})
	ctx := context.Background()
	u, err := uc.RegisterUser(ctx, dto.RegisterRequest{Email: "a@b.co", Password: "12345678"})
	require.NoError(t, err)

	admin := usecase.NewUserUseCase(users)
	off := false
	_, err = admin.Update(ctx, "otro-admin", u.ID, dto.UpdateUserRequest{Active: &off})
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "a@b.co", Password: "12345678"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
