package postgres

import (
	"github.com/triviaswwe/tw-database-web-sub000/internal/domain"
	"github.com/triviaswwe/tw-database-web-sub000/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	// Auto-migrate tables
	err = db.AutoMigrate(
		&domain.Championship{},
		&domain.Wrestler{},
		&domain.Interpreter{},
		&domain.TagTeam{},
		&domain.Event{},
		&domain.Match{},
		&domain.MatchParticipant{},
		&domain.MatchTeamScore{},
		&domain.Reign{},
		&domain.ReignMember{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		Championship: NewChampionshipRepository(db),
		Reign:        NewReignRepository(db),
		Match:        NewMatchRepository(db),
		Event:        NewEventRepository(db),
		Wrestler:     NewWrestlerRepository(db),
		Interpreter:  NewInterpreterRepository(db),
		TagTeam:      NewTagTeamRepository(db),
	}
}
