package repository

import (
	"context"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Create y Update devuelven domain.ErrEmailAlreadyExists si el email ya está en uso;
// Update y Delete devuelven domain.ErrNotFound si el usuario no existe.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context, filter entity.UserFilter, limit, offset int) ([]*entity.User, int, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id string) error
}
