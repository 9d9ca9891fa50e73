package repository

import (
	"context"

	"github.com/triviaswwe/tw-database-web-sub000/internal/domain"
)

// The engine treats all of these as read-only fact sources. Write methods
// exist for upstream data-entry tooling and test fixtures; no HTTP mutation
// path is exposed.

type ChampionshipRepository interface {
	Create(ctx context.Context, championship *domain.Championship) error
	GetAll(ctx context.Context) ([]*domain.Championship, error)
	GetByID(ctx context.Context, id int64) (*domain.Championship, error)
}

type ReignRepository interface {
	Create(ctx context.Context, reign *domain.Reign) error
	CreateMember(ctx context.Context, member *domain.ReignMember) error
	GetByID(ctx context.Context, id int64) (*domain.Reign, error)
	// GetByChampionshipID returns all reigns of a championship with Members,
	// holder and winning-event associations preloaded.
	GetByChampionshipID(ctx context.Context, championshipID int64) ([]domain.Reign, error)
}

type MatchRepository interface {
	Create(ctx context.Context, match *domain.Match) error
	CreateParticipant(ctx context.Context, participant *domain.MatchParticipant) error
	CreateTeamScore(ctx context.Context, score *domain.MatchTeamScore) error
	// GetTitleMatchesByChampionshipID returns a championship's title matches
	// with Event, Participants and TeamScores preloaded.
	GetTitleMatchesByChampionshipID(ctx context.Context, championshipID int64) ([]domain.Match, error)
	GetByEventID(ctx context.Context, eventID int64) ([]domain.Match, error)
}

type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
	GetAll(ctx context.Context, limit, offset int) ([]*domain.Event, error)
}

type WrestlerRepository interface {
	Create(ctx context.Context, wrestler *domain.Wrestler) error
	GetByID(ctx context.Context, id int64) (*domain.Wrestler, error)
	GetAll(ctx context.Context, limit, offset int) ([]*domain.Wrestler, error)
}

type InterpreterRepository interface {
	Create(ctx context.Context, interpreter *domain.Interpreter) error
	GetByID(ctx context.Context, id int64) (*domain.Interpreter, error)
}

type TagTeamRepository interface {
	Create(ctx context.Context, team *domain.TagTeam) error
	GetByID(ctx context.Context, id int64) (*domain.TagTeam, error)
	GetAll(ctx context.Context) ([]*domain.TagTeam, error)
}

type Repositories struct {
	Championship ChampionshipRepository
	Reign        ReignRepository
	Match        MatchRepository
	Event        EventRepository
	Wrestler     WrestlerRepository
	Interpreter  InterpreterRepository
	TagTeam      TagTeamRepository
}
