package handlers_test

import (
	"encoding/json"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/triviaswwe/tw-database-web-sub000/internal/api/handlers"
	"github.com/triviaswwe/tw-database-web-sub000/internal/domain"
	"github.com/triviaswwe/tw-database-web-sub000/internal/testutil"
)

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func TestTimelineEndpoint(t *testing.T) {
	ts := testutil.NewTestServer(t)

	championship := testutil.NewChampionshipBuilder().Build(t, ts.DB.DB)
	w1 := testutil.NewWrestlerBuilder().WithName("Halcyon").Build(t, ts.DB.DB)
	w2 := testutil.NewWrestlerBuilder().WithName("Riptide").Build(t, ts.DB.DB)

	testutil.NewReignBuilder(championship.ID).
		HeldBy(w1.ID).
		Won(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)).
		Lost(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)).
		Build(t, ts.DB.DB)
	testutil.NewReignBuilder(championship.ID).
		HeldBy(w2.ID).
		Won(time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)).
		Build(t, ts.DB.DB)

	resp, err := http.Get(ts.APIURL("/championships/" + formatID(championship.ID) + "/timeline"))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body handlers.TimelineResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Equal(t, championship.ID, body.ChampionshipID)
	require.Len(t, body.Entries, 3)

	assert.Equal(t, "reign", body.Entries[0].Kind)
	assert.Equal(t, "wrestler", body.Entries[0].HolderKind)
	assert.Equal(t, "Halcyon", body.Entries[0].HolderName)
	assert.Equal(t, 1, body.Entries[0].ReignNumber)
	assert.Equal(t, 31, body.Entries[0].DaysHeld)
	assert.Equal(t, "31", body.Entries[0].DaysHeldLabel)
	assert.False(t, body.Entries[0].Ongoing)

	assert.Equal(t, "vacant", body.Entries[1].Kind)
	assert.Equal(t, "2024-02-01T00:00:00Z", body.Entries[1].StartAt)
	assert.Equal(t, "2024-02-10T00:00:00Z", body.Entries[1].EndAt)

	assert.Equal(t, "reign", body.Entries[2].Kind)
	assert.True(t, body.Entries[2].Ongoing)
	assert.Empty(t, body.Entries[2].EndAt)

	assert.Empty(t, body.Diagnostics)
}

func TestTimelineEndpoint_NotFound(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp, err := http.Get(ts.APIURL("/championships/999999/timeline"))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = http.Get(ts.APIURL("/championships/abc/timeline"))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDefensesEndpoint(t *testing.T) {
	ts := testutil.NewTestServer(t)

	championship := testutil.NewChampionshipBuilder().Build(t, ts.DB.DB)
	w1 := testutil.NewWrestlerBuilder().Build(t, ts.DB.DB)
	w2 := testutil.NewWrestlerBuilder().Build(t, ts.DB.DB)

	reign := testutil.NewReignBuilder(championship.ID).
		HeldBy(w1.ID).
		Won(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)).
		Build(t, ts.DB.DB)

	event := testutil.NewEventBuilder().
		WithOccurredAt(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)).
		Build(t, ts.DB.DB)
	testutil.NewMatchBuilder(event.ID).
		ForChampionship(championship.ID).
		WithParticipant(w1.ID, 1, domain.ResultWin).
		WithParticipant(w2.ID, 2, domain.ResultLoss).
		WithTeamScore(1, 2).
		WithTeamScore(2, 1).
		Build(t, ts.DB.DB)

	url := ts.APIURL("/championships/" + formatID(championship.ID) + "/reigns/" + formatID(reign.ID) + "/defenses")
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body handlers.DefensesResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Equal(t, reign.ID, body.ReignID)
	require.Len(t, body.Defenses, 1)
	assert.Equal(t, 1, body.Defenses[0].Order)
	assert.Equal(t, []int64{w2.ID}, body.Defenses[0].OpponentIDs)
	require.NotNil(t, body.Defenses[0].Score)
	assert.Equal(t, 2, body.Defenses[0].Score.Champion)
	assert.Equal(t, 1, body.Defenses[0].Score.Opponent)

	// Reign under a championship it does not belong to.
	other := testutil.NewChampionshipBuilder().Build(t, ts.DB.DB)
	resp, err = http.Get(ts.APIURL("/championships/" + formatID(other.ID) + "/reigns/" + formatID(reign.ID) + "/defenses"))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestStatsEndpoint(t *testing.T) {
	ts := testutil.NewTestServer(t)

	championship := testutil.NewChampionshipBuilder().Build(t, ts.DB.DB)
	w1 := testutil.NewWrestlerBuilder().WithName("Anchor").Build(t, ts.DB.DB)
	w2 := testutil.NewWrestlerBuilder().WithName("Zephyr").Build(t, ts.DB.DB)

	testutil.NewReignBuilder(championship.ID).
		HeldBy(w1.ID).
		Won(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)).
		Lost(time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC)).
		Build(t, ts.DB.DB)
	testutil.NewReignBuilder(championship.ID).
		HeldBy(w2.ID).
		Won(time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC)).
		Lost(time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)).
		Build(t, ts.DB.DB)

	resp, err := http.Get(ts.APIURL("/championships/" + formatID(championship.ID) + "/stats?sort=name&dir=asc"))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body handlers.StatsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Equal(t, "name", body.SortKey)
	assert.Equal(t, "asc", body.SortDirection)
	require.Len(t, body.Rows, 2)
	assert.Equal(t, "Anchor", body.Rows[0].Name)
	assert.Equal(t, 10, body.Rows[0].TotalDays)
	assert.Equal(t, "Zephyr", body.Rows[1].Name)
	assert.Equal(t, 5, body.Rows[1].TotalDays)

	// Unknown sort key.
	resp, err = http.Get(ts.APIURL("/championships/" + formatID(championship.ID) + "/stats?sort=bogus"))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
