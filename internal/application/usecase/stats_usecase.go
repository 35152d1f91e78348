package usecase

import (
	"context"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// StatsUseCase resumen global para el panel de administración.
type StatsUseCase struct {
	repo repository.StatsRepository
}

func NewStatsUseCase(repo repository.StatsRepository) *StatsUseCase {
	return &StatsUseCase{repo: repo}
}

func (uc *StatsUseCase) Get(ctx context.Context) (*dto.StatsResponse, error) {
	s, err := uc.repo.Counts(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.StatsResponse{
		TotalBranches:   s.TotalBranches,
		TotalWarehouses: s.TotalWarehouses,
		TotalAssets:     s.TotalAssets,
		ActiveAssets:    s.ActiveAssets,
		InactiveAssets:  s.InactiveAssets,
		TotalUsers:      s.TotalUsers,
	}, nil
}
