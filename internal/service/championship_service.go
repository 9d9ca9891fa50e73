package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/triviaswwe/tw-database-web-sub000/internal/domain"
	"github.com/triviaswwe/tw-database-web-sub000/internal/repository"
)

type ChampionshipService struct {
	championshipRepo repository.ChampionshipRepository
	reignRepo        repository.ReignRepository
	logger           zerolog.Logger
}

func NewChampionshipService(
	championshipRepo repository.ChampionshipRepository,
	reignRepo repository.ReignRepository,
	logger zerolog.Logger,
) *ChampionshipService {
	return &ChampionshipService{
		championshipRepo: championshipRepo,
		reignRepo:        reignRepo,
		logger:           logger,
	}
}

func (s *ChampionshipService) GetAll(ctx context.Context) ([]*domain.Championship, error) {
	return s.championshipRepo.GetAll(ctx)
}

func (s *ChampionshipService) Get(ctx context.Context, id int64) (*domain.Championship, error) {
	return s.championshipRepo.GetByID(ctx, id)
}

// CurrentChampion scans the championship's reigns for the one still open.
// This is a search over the snapshot on every call, never a cached flag; a
// nil reign means the title is vacant. Reigns with a holder conflict are
// skipped the same way the timeline builder excludes them.
func (s *ChampionshipService) CurrentChampion(ctx context.Context, championshipID int64) (*domain.Reign, error) {
	reigns, err := s.reignRepo.GetByChampionshipID(ctx, championshipID)
	if err != nil {
		return nil, err
	}

	for i := range reigns {
		r := &reigns[i]
		if r.LostAt != nil {
			continue
		}
		if (r.WrestlerID != nil) == (r.TagTeamID != nil) {
			continue
		}
		return r, nil
	}
	return nil, nil
}
