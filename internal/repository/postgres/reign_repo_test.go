package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/triviaswwe/tw-database-web-sub000/internal/domain"
	"github.com/triviaswwe/tw-database-web-sub000/internal/repository/postgres"
	"github.com/triviaswwe/tw-database-web-sub000/internal/testutil"
)

func TestReignRepository_GetByChampionshipID(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	ctx := context.Background()

	championship := testutil.NewChampionshipBuilder().Build(t, testDB.DB)
	other := testutil.NewChampionshipBuilder().Build(t, testDB.DB)
	wrestler := testutil.NewWrestlerBuilder().WithName("Bastion").Build(t, testDB.DB)
	team := testutil.NewTagTeamBuilder().WithName("The Accord").Build(t, testDB.DB)
	member := testutil.NewWrestlerBuilder().Build(t, testDB.DB)
	interpreter := testutil.NewInterpreterBuilder().WithName("J. Marsh").Build(t, testDB.DB)
	event := testutil.NewEventBuilder().Build(t, testDB.DB)

	testutil.NewReignBuilder(championship.ID).
		HeldBy(wrestler.ID).
		Won(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)).
		Lost(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)).
		WonAtEvent(event.ID).
		Build(t, testDB.DB)
	teamReign := testutil.NewReignBuilder(championship.ID).
		HeldByTeam(team.ID).
		Won(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)).
		Build(t, testDB.DB)
	m := testutil.AddMember(t, testDB.DB, teamReign.ID, member.ID,
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), nil)
	m.InterpreterID = &interpreter.ID
	require.NoError(t, testDB.DB.Save(m).Error)

	// A reign of another championship must not leak into the result.
	testutil.NewReignBuilder(other.ID).HeldBy(wrestler.ID).Build(t, testDB.DB)

	reigns, err := repos.Reign.GetByChampionshipID(ctx, championship.ID)
	require.NoError(t, err)
	require.Len(t, reigns, 2)

	require.NotNil(t, reigns[0].Wrestler)
	assert.Equal(t, "Bastion", reigns[0].Wrestler.Name)
	require.NotNil(t, reigns[0].WonEvent)
	assert.Equal(t, event.ID, reigns[0].WonEvent.ID)

	require.NotNil(t, reigns[1].TagTeam)
	assert.Equal(t, "The Accord", reigns[1].TagTeam.Name)
	require.Len(t, reigns[1].Members, 1)
	require.NotNil(t, reigns[1].Members[0].Wrestler)
	assert.Equal(t, member.ID, reigns[1].Members[0].Wrestler.ID)
	require.NotNil(t, reigns[1].Members[0].Interpreter)
	assert.Equal(t, "J. Marsh", reigns[1].Members[0].Interpreter.Name)
}

func TestReignRepository_GetByID_NotFound(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)

	_, err := repos.Reign.GetByID(context.Background(), 999999)
	assert.ErrorIs(t, err, domain.ErrReignNotFound)
}

func TestInterpreterRepository_GetByID_NotFound(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)

	_, err := repos.Interpreter.GetByID(context.Background(), 999999)
	assert.ErrorIs(t, err, domain.ErrInterpreterNotFound)
}

func TestChampionshipRepository_GetByID(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	ctx := context.Background()

	created := testutil.NewChampionshipBuilder().WithName("Intercontinental").Build(t, testDB.DB)

	found, err := repos.Championship.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Intercontinental", found.Name)

	_, err = repos.Championship.GetByID(ctx, 999999)
	assert.ErrorIs(t, err, domain.ErrChampionshipNotFound)
}

func TestMatchRepository_GetTitleMatchesByChampionshipID(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	ctx := context.Background()

	championship := testutil.NewChampionshipBuilder().Build(t, testDB.DB)
	w1 := testutil.NewWrestlerBuilder().Build(t, testDB.DB)
	w2 := testutil.NewWrestlerBuilder().Build(t, testDB.DB)
	event := testutil.NewEventBuilder().
		WithOccurredAt(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)).
		Build(t, testDB.DB)

	testutil.NewMatchBuilder(event.ID).
		ForChampionship(championship.ID).
		WithParticipant(w1.ID, 1, domain.ResultWin).
		WithParticipant(w2.ID, 2, domain.ResultLoss).
		WithTeamScore(1, 2).
		WithTeamScore(2, 0).
		Build(t, testDB.DB)

	// Non-title matches are never part of the result.
	testutil.NewMatchBuilder(event.ID).
		WithParticipant(w1.ID, 1, domain.ResultWin).
		WithParticipant(w2.ID, 2, domain.ResultLoss).
		Build(t, testDB.DB)

	matches, err := repos.Match.GetTitleMatchesByChampionshipID(ctx, championship.ID)
	require.NoError(t, err)
	require.Len(t, matches, 1)

	match := matches[0]
	require.NotNil(t, match.Event)
	assert.True(t, event.OccurredAt.Equal(match.Event.OccurredAt))
	require.Len(t, match.Participants, 2)
	require.NotNil(t, match.Participants[0].Wrestler)
	require.Len(t, match.TeamScores, 2)
	scoresByTeam := make(map[int]int)
	for _, s := range match.TeamScores {
		scoresByTeam[s.TeamNumber] = s.Score
	}
	assert.Equal(t, 2, scoresByTeam[1])
	assert.Equal(t, 0, scoresByTeam[2])
}
