package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// UserUseCase administración de usuarios (solo admin). El alta vive en auth.RegisterUser.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List lista usuarios paginados; q.ID filtra por id y q.Search por email o nombre.
func (uc *UserUseCase) List(ctx context.Context, q dto.UserListQuery, limit, offset int) (*dto.UserListResponse, error) {
	filter := entity.UserFilter{ID: canonicalID(q.ID), Search: strings.TrimSpace(q.Search)}
	list, total, err := uc.repo.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *ToUserResponse(u))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}, nil
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, canonicalID(id))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return ToUserResponse(user), nil
}

// Update aplica los campos presentes. Un admin no puede desactivarse ni quitarse el rol
// a sí mismo (ErrConflict).
func (uc *UserUseCase) Update(ctx context.Context, actorID, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, canonicalID(id))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	self := user.ID == canonicalID(actorID)

	if in.Email != nil {
		email := NormalizeEmail(*in.Email)
		if !strings.Contains(email, "@") {
			return nil, fmt.Errorf("%w: email inválido", domain.ErrInvalidInput)
		}
		user.Email = email
	}
	if in.FullName != nil {
		if user.FullName, err = requireText("full_name", *in.FullName); err != nil {
			return nil, err
		}
	}
	if in.Role != nil {
		if !entity.ValidRole(*in.Role) {
			return nil, fmt.Errorf("%w: rol %q no existe", domain.ErrInvalidInput, *in.Role)
		}
		if self && *in.Role != user.Role {
			return nil, fmt.Errorf("%w: no puede cambiar su propio rol", domain.ErrConflict)
		}
		user.Role = *in.Role
	}
	if in.Active != nil {
		if self && !*in.Active {
			return nil, fmt.Errorf("%w: no puede desactivar su propia cuenta", domain.ErrConflict)
		}
		user.Active = *in.Active
	}
	user.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// Delete elimina un usuario distinto del que hace la petición.
func (uc *UserUseCase) Delete(ctx context.Context, actorID, id string) error {
	id = canonicalID(id)
	if id == canonicalID(actorID) {
		return fmt.Errorf("%w: no puede eliminar su propia cuenta", domain.ErrConflict)
	}
	return uc.repo.Delete(ctx, id)
}

// NormalizeEmail forma canónica de un email para guardarlo y buscarlo.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ToUserResponse convierte la entidad a DTO con los permisos del rol; nunca expone el hash.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	perms := entity.PermissionsFor(u.Role)
	names := make([]string, 0, len(perms))
	for _, p := range perms {
		names = append(names, string(p))
	}
	return &dto.UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		FullName:    u.FullName,
		Role:        u.Role,
		Active:      u.Active,
		Permissions: names,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
