package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/triviaswwe/tw-database-web-sub000/internal/domain"
	"gorm.io/gorm"
)

// ChampionshipBuilder creates test championships with a builder pattern
type ChampionshipBuilder struct {
	name          string
	abbreviation  string
	establishedAt time.Time
}

func NewChampionshipBuilder() *ChampionshipBuilder {
	return &ChampionshipBuilder{
		name:          fmt.Sprintf("Test Championship %s", uuid.New().String()[:8]),
		abbreviation:  "TC",
		establishedAt: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (b *ChampionshipBuilder) WithName(name string) *ChampionshipBuilder {
	b.name = name
	return b
}

func (b *ChampionshipBuilder) WithEstablishedAt(at time.Time) *ChampionshipBuilder {
	b.establishedAt = at
	return b
}

func (b *ChampionshipBuilder) Build(t *testing.T, db *gorm.DB) *domain.Championship {
	t.Helper()

	championship := &domain.Championship{
		Name:          b.name,
		Abbreviation:  b.abbreviation,
		EstablishedAt: b.establishedAt,
	}
	if err := db.Create(championship).Error; err != nil {
		t.Fatalf("failed to create championship: %v", err)
	}
	return championship
}

// WrestlerBuilder creates test wrestlers
type WrestlerBuilder struct {
	name    string
	country string
}

func NewWrestlerBuilder() *WrestlerBuilder {
	return &WrestlerBuilder{
		name:    fmt.Sprintf("wrestler_%s", uuid.New().String()[:8]),
		country: "US",
	}
}

func (b *WrestlerBuilder) WithName(name string) *WrestlerBuilder {
	b.name = name
	return b
}

func (b *WrestlerBuilder) WithCountry(country string) *WrestlerBuilder {
	b.country = country
	return b
}

func (b *WrestlerBuilder) Build(t *testing.T, db *gorm.DB) *domain.Wrestler {
	t.Helper()

	wrestler := &domain.Wrestler{
		Name:    b.name,
		Country: b.country,
	}
	if err := db.Create(wrestler).Error; err != nil {
		t.Fatalf("failed to create wrestler: %v", err)
	}
	return wrestler
}

// InterpreterBuilder creates test interpreters
type InterpreterBuilder struct {
	name string
}

func NewInterpreterBuilder() *InterpreterBuilder {
	return &InterpreterBuilder{
		name: fmt.Sprintf("interpreter_%s", uuid.New().String()[:8]),
	}
}

func (b *InterpreterBuilder) WithName(name string) *InterpreterBuilder {
	b.name = name
	return b
}

func (b *InterpreterBuilder) Build(t *testing.T, db *gorm.DB) *domain.Interpreter {
	t.Helper()

	interpreter := &domain.Interpreter{Name: b.name}
	if err := db.Create(interpreter).Error; err != nil {
		t.Fatalf("failed to create interpreter: %v", err)
	}
	return interpreter
}

// TagTeamBuilder creates test tag teams
type TagTeamBuilder struct {
	name string
}

func NewTagTeamBuilder() *TagTeamBuilder {
	return &TagTeamBuilder{
		name: fmt.Sprintf("team_%s", uuid.New().String()[:8]),
	}
}

func (b *TagTeamBuilder) WithName(name string) *TagTeamBuilder {
	b.name = name
	return b
}

func (b *TagTeamBuilder) Build(t *testing.T, db *gorm.DB) *domain.TagTeam {
	t.Helper()

	team := &domain.TagTeam{Name: b.name}
	if err := db.Create(team).Error; err != nil {
		t.Fatalf("failed to create tag team: %v", err)
	}
	return team
}

// EventBuilder creates test events
type EventBuilder struct {
	name       string
	occurredAt time.Time
}

func NewEventBuilder() *EventBuilder {
	return &EventBuilder{
		name:       fmt.Sprintf("event_%s", uuid.New().String()[:8]),
		occurredAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (b *EventBuilder) WithName(name string) *EventBuilder {
	b.name = name
	return b
}

func (b *EventBuilder) WithOccurredAt(at time.Time) *EventBuilder {
	b.occurredAt = at
	return b
}

func (b *EventBuilder) Build(t *testing.T, db *gorm.DB) *domain.Event {
	t.Helper()

	event := &domain.Event{
		Name:       b.name,
		OccurredAt: b.occurredAt,
	}
	if err := db.Create(event).Error; err != nil {
		t.Fatalf("failed to create event: %v", err)
	}
	return event
}

// ReignBuilder creates test reigns, held by either a wrestler or a tag team
type ReignBuilder struct {
	championshipID int64
	wrestlerID     *int64
	tagTeamID      *int64
	wonAt          time.Time
	lostAt         *time.Time
	wonEventID     *int64
}

func NewReignBuilder(championshipID int64) *ReignBuilder {
	return &ReignBuilder{
		championshipID: championshipID,
		wonAt:          time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (b *ReignBuilder) HeldBy(wrestlerID int64) *ReignBuilder {
	b.wrestlerID = &wrestlerID
	return b
}

func (b *ReignBuilder) HeldByTeam(tagTeamID int64) *ReignBuilder {
	b.tagTeamID = &tagTeamID
	return b
}

func (b *ReignBuilder) Won(at time.Time) *ReignBuilder {
	b.wonAt = at
	return b
}

func (b *ReignBuilder) Lost(at time.Time) *ReignBuilder {
	b.lostAt = &at
	return b
}

func (b *ReignBuilder) WonAtEvent(eventID int64) *ReignBuilder {
	b.wonEventID = &eventID
	return b
}

func (b *ReignBuilder) Build(t *testing.T, db *gorm.DB) *domain.Reign {
	t.Helper()

	reign := &domain.Reign{
		ChampionshipID: b.championshipID,
		WrestlerID:     b.wrestlerID,
		TagTeamID:      b.tagTeamID,
		WonAt:          b.wonAt,
		LostAt:         b.lostAt,
		WonEventID:     b.wonEventID,
	}
	if err := db.Create(reign).Error; err != nil {
		t.Fatalf("failed to create reign: %v", err)
	}
	return reign
}

// AddMember attaches a rotation member to a reign
func AddMember(t *testing.T, db *gorm.DB, reignID, wrestlerID int64, startAt time.Time, endAt *time.Time) *domain.ReignMember {
	t.Helper()

	member := &domain.ReignMember{
		ReignID:    reignID,
		WrestlerID: wrestlerID,
		StartAt:    startAt,
		EndAt:      endAt,
	}
	if err := db.Create(member).Error; err != nil {
		t.Fatalf("failed to create reign member: %v", err)
	}
	return member
}

// MatchBuilder creates test matches with participants and optional scores
type MatchBuilder struct {
	eventID        int64
	championshipID *int64
	isTitleMatch   bool
	titleChanged   bool
	participants   []domain.MatchParticipant
	scores         []domain.MatchTeamScore
}

func NewMatchBuilder(eventID int64) *MatchBuilder {
	return &MatchBuilder{eventID: eventID}
}

func (b *MatchBuilder) ForChampionship(championshipID int64) *MatchBuilder {
	b.championshipID = &championshipID
	b.isTitleMatch = true
	return b
}

func (b *MatchBuilder) WithTitleChange() *MatchBuilder {
	b.titleChanged = true
	return b
}

func (b *MatchBuilder) WithParticipant(wrestlerID int64, teamNumber int, result domain.MatchResult) *MatchBuilder {
	b.participants = append(b.participants, domain.MatchParticipant{
		WrestlerID: wrestlerID,
		TeamNumber: teamNumber,
		Result:     result,
	})
	return b
}

func (b *MatchBuilder) WithTeamScore(teamNumber, score int) *MatchBuilder {
	b.scores = append(b.scores, domain.MatchTeamScore{
		TeamNumber: teamNumber,
		Score:      score,
	})
	return b
}

func (b *MatchBuilder) Build(t *testing.T, db *gorm.DB) *domain.Match {
	t.Helper()

	match := &domain.Match{
		EventID:        b.eventID,
		ChampionshipID: b.championshipID,
		IsTitleMatch:   b.isTitleMatch,
		TitleChanged:   b.titleChanged,
	}
	if err := db.Create(match).Error; err != nil {
		t.Fatalf("failed to create match: %v", err)
	}

	for i := range b.participants {
		b.participants[i].MatchID = match.ID
		if err := db.Create(&b.participants[i]).Error; err != nil {
			t.Fatalf("failed to create match participant: %v", err)
		}
	}
	for i := range b.scores {
		b.scores[i].MatchID = match.ID
		if err := db.Create(&b.scores[i]).Error; err != nil {
			t.Fatalf("failed to create team score: %v", err)
		}
	}

	return match
}
