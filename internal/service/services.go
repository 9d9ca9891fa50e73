package service

import (
	"github.com/rs/zerolog"
	"github.com/triviaswwe/tw-database-web-sub000/internal/repository"
)

type Services struct {
	Championship *ChampionshipService
	History      *HistoryService
	Roster       *RosterService
}

func NewServices(repos *repository.Repositories, logger zerolog.Logger) *Services {
	return &Services{
		Championship: NewChampionshipService(repos.Championship, repos.Reign, logger),
		History:      NewHistoryService(repos.Championship, repos.Reign, repos.Match, logger),
		Roster:       NewRosterService(repos.Wrestler, repos.TagTeam, logger),
	}
}
