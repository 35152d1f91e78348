package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo usuarios en memoria. El email es único sin distinguir mayúsculas.
type UserRepo struct {
	h handle
}

// Create guarda el usuario; ErrEmailAlreadyExists si otro ya usa el email.
func (r *UserRepo) Create(_ context.Context, user *entity.User) error {
	return r.h.write(func(s *state) error {
		if emailTaken(s, user.Email, "") {
			return domain.ErrEmailAlreadyExists
		}
		s.users[user.ID] = *user
		return nil
	})
}

// GetByID devuelve nil, nil si no existe.
func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	var out *entity.User
	err := r.h.read(func(s *state) error {
		if u, ok := s.users[id]; ok {
			out = &u
		}
		return nil
	})
	return out, err
}

// GetByEmail busca sin distinguir mayúsculas; nil, nil si no existe.
func (r *UserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	var out *entity.User
	err := r.h.read(func(s *state) error {
		for _, u := range s.users {
			if strings.EqualFold(u.Email, email) {
				out = &u
				return nil
			}
		}
		return nil
	})
	return out, err
}

// List usuarios ordenados por email, con el total antes de paginar.
func (r *UserRepo) List(_ context.Context, filter entity.UserFilter, limit, offset int) ([]*entity.User, int, error) {
	var (
		out   []*entity.User
		total int
	)
	err := r.h.read(func(s *state) error {
		needle := strings.ToLower(filter.Search)
		all := make([]*entity.User, 0, len(s.users))
		for _, u := range s.users {
			if filter.ID != "" && u.ID != filter.ID {
				continue
			}
			if needle != "" && !containsFold(needle, u.Email, u.FullName) {
				continue
			}
			u := u
			all = append(all, &u)
		}
		sort.Slice(all, func(i, j int) bool {
			if all[i].Email != all[j].Email {
				return all[i].Email < all[j].Email
			}
			return all[i].ID < all[j].ID
		})
		total = len(all)
		out = page(all, limit, offset)
		return nil
	})
	return out, total, err
}

// Update reemplaza el usuario completo.
func (r *UserRepo) Update(_ context.Context, user *entity.User) error {
	return r.h.write(func(s *state) error {
		if _, ok := s.users[user.ID]; !ok {
			return domain.ErrNotFound
		}
		if emailTaken(s, user.Email, user.ID) {
			return domain.ErrEmailAlreadyExists
		}
		s.users[user.ID] = *user
		return nil
	})
}

// Delete elimina el usuario; ErrNotFound si no existe.
func (r *UserRepo) Delete(_ context.Context, id string) error {
	return r.h.write(func(s *state) error {
		if _, ok := s.users[id]; !ok {
			return domain.ErrNotFound
		}
		delete(s.users, id)
		return nil
	})
}

func emailTaken(s *state, email, exceptID string) bool {
	for id, u := range s.users {
		if id != exceptID && strings.EqualFold(u.Email, email) {
			return true
		}
	}
	return false
}
