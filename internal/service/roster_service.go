package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/triviaswwe/tw-database-web-sub000/internal/domain"
	"github.com/triviaswwe/tw-database-web-sub000/internal/repository"
)

type RosterService struct {
	wrestlerRepo repository.WrestlerRepository
	tagTeamRepo  repository.TagTeamRepository
	logger       zerolog.Logger
}

func NewRosterService(
	wrestlerRepo repository.WrestlerRepository,
	tagTeamRepo repository.TagTeamRepository,
	logger zerolog.Logger,
) *RosterService {
	return &RosterService{
		wrestlerRepo: wrestlerRepo,
		tagTeamRepo:  tagTeamRepo,
		logger:       logger,
	}
}

func (s *RosterService) GetWrestlers(ctx context.Context, limit, offset int) ([]*domain.Wrestler, error) {
	return s.wrestlerRepo.GetAll(ctx, limit, offset)
}

func (s *RosterService) GetWrestler(ctx context.Context, id int64) (*domain.Wrestler, error) {
	return s.wrestlerRepo.GetByID(ctx, id)
}

func (s *RosterService) GetTagTeams(ctx context.Context) ([]*domain.TagTeam, error) {
	return s.tagTeamRepo.GetAll(ctx)
}
