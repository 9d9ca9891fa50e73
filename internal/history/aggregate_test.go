package history_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/triviaswwe/tw-database-web-sub000/internal/domain"
	"github.com/triviaswwe/tw-database-web-sub000/internal/history"
)

func computeHistory(t *testing.T, reigns []domain.Reign, matches []domain.Match, now time.Time, spec history.SortSpec) history.History {
	t.Helper()
	return history.Compute(history.Snapshot{
		Reigns:  reigns,
		Matches: matches,
		Now:     now,
	}, spec)
}

func findRow(t *testing.T, rows []history.AggregateRow, wrestlerID int64) history.AggregateRow {
	t.Helper()
	for _, r := range rows {
		if r.WrestlerID == wrestlerID {
			return r
		}
	}
	t.Fatalf("no aggregate row for wrestler %d", wrestlerID)
	return history.AggregateRow{}
}

func TestAggregate_SinglesTotals(t *testing.T) {
	now := date(2024, time.January, 21)
	reigns := []domain.Reign{
		singlesReign(1, 10, 100, date(2024, time.January, 1), timePtr(date(2024, time.January, 11))),
		singlesReign(2, 10, 200, date(2024, time.January, 11), nil),
	}

	result := computeHistory(t, reigns, nil, now, history.DefaultSort())

	w100 := findRow(t, result.Aggregates, 100)
	assert.Equal(t, 1, w100.ReignCount)
	assert.Equal(t, 10, w100.TotalDays)
	assert.Equal(t, "10", w100.TotalDaysLabel)
	assert.False(t, w100.IsCurrent)

	w200 := findRow(t, result.Aggregates, 200)
	assert.Equal(t, 1, w200.ReignCount)
	assert.Equal(t, 10, w200.TotalDays)
	assert.Equal(t, "10+", w200.TotalDaysLabel)
	assert.True(t, w200.IsCurrent)
}

func TestAggregate_MultipleReignsSum(t *testing.T) {
	now := date(2024, time.June, 1)
	reigns := []domain.Reign{
		singlesReign(1, 10, 100, date(2024, time.January, 1), timePtr(date(2024, time.January, 11))),
		singlesReign(2, 10, 200, date(2024, time.January, 11), timePtr(date(2024, time.February, 1))),
		singlesReign(3, 10, 100, date(2024, time.February, 1), timePtr(date(2024, time.February, 21))),
	}

	result := computeHistory(t, reigns, nil, now, history.DefaultSort())

	w100 := findRow(t, result.Aggregates, 100)
	assert.Equal(t, 2, w100.ReignCount)
	assert.Equal(t, 30, w100.TotalDays)
	assert.False(t, w100.IsCurrent)
}

func TestAggregate_OverlappingMembersBothCredited(t *testing.T) {
	now := date(2024, time.June, 1)
	reigns := []domain.Reign{
		teamReign(1, 10, 500, date(2024, time.January, 1), nil,
			member(1, 1, 101, date(2024, time.January, 1), nil),
			member(2, 1, 102, date(2024, time.January, 15), nil),
		),
	}
	matches := []domain.Match{
		titleMatch(1, 10, date(2024, time.January, 20), []int64{101, 102}, []int64{201, 202}),
	}

	result := computeHistory(t, reigns, matches, now, history.DefaultSort())

	w101 := findRow(t, result.Aggregates, 101)
	w102 := findRow(t, result.Aggregates, 102)

	assert.Equal(t, 1, w101.DefenseCount)
	assert.Equal(t, 1, w102.DefenseCount)
	assert.Equal(t, 1, w101.ReignCount)
	assert.Equal(t, 1, w102.ReignCount)
	assert.True(t, w101.IsCurrent)
	assert.True(t, w102.IsCurrent)
}

func TestAggregate_RotationGapDefenseNotAttributed(t *testing.T) {
	now := date(2024, time.June, 1)
	reigns := []domain.Reign{
		teamReign(1, 10, 500, date(2024, time.January, 1), nil,
			member(1, 1, 101, date(2024, time.January, 1), timePtr(date(2024, time.January, 10))),
		),
	}
	matches := []domain.Match{
		titleMatch(1, 10, date(2024, time.January, 20), []int64{101}, []int64{200}),
	}

	result := computeHistory(t, reigns, matches, now, history.DefaultSort())

	require.Len(t, result.DefensesByReign[1], 1, "the team's defense is still counted")
	w101 := findRow(t, result.Aggregates, 101)
	assert.Zero(t, w101.DefenseCount, "no individual credit without rotation evidence")
}

func TestAggregate_UnscoredDefenseStillCounts(t *testing.T) {
	now := date(2024, time.June, 1)
	reigns := []domain.Reign{
		singlesReign(1, 10, 100, date(2024, time.January, 1), nil),
	}
	matches := []domain.Match{
		titleMatch(1, 10, date(2024, time.January, 20), []int64{100}, []int64{200}),
	}

	result := computeHistory(t, reigns, matches, now, history.DefaultSort())

	require.Len(t, result.DefensesByReign[1], 1)
	assert.Nil(t, result.DefensesByReign[1][0].Score)

	w100 := findRow(t, result.Aggregates, 100)
	assert.Equal(t, 1, w100.DefenseCount)
}

func TestAggregate_MalformedReignExcluded(t *testing.T) {
	now := date(2024, time.June, 1)
	reigns := []domain.Reign{
		singlesReign(1, 10, 100, date(2024, time.March, 1), timePtr(date(2024, time.January, 1))),
	}

	result := computeHistory(t, reigns, nil, now, history.DefaultSort())

	assert.Empty(t, result.Aggregates)
	require.Len(t, result.Diagnostics, 1)
	assert.Equal(t, history.DiagMalformedInterval, result.Diagnostics[0].Kind)
}

func TestAggregate_Idempotent(t *testing.T) {
	now := date(2024, time.June, 1)
	reigns := []domain.Reign{
		singlesReign(1, 10, 100, date(2024, time.January, 1), timePtr(date(2024, time.February, 1))),
		singlesReign(2, 10, 200, date(2024, time.February, 10), nil),
	}
	matches := []domain.Match{
		titleMatch(1, 10, date(2024, time.January, 15), []int64{100}, []int64{200}),
		titleMatch(2, 10, date(2024, time.March, 1), []int64{200}, []int64{100}),
	}

	spec := history.SortSpec{Key: history.SortByDefenses, Direction: history.SortDesc}
	first := computeHistory(t, reigns, matches, now, spec)
	second := computeHistory(t, reigns, matches, now, spec)

	assert.Equal(t, first.Aggregates, second.Aggregates)
	assert.Equal(t, first.Timeline, second.Timeline)
	assert.Equal(t, first.DefensesByReign, second.DefensesByReign)
}

func namedReign(id, championshipID, wrestlerID int64, name string, wonAt time.Time, lostAt *time.Time) domain.Reign {
	r := singlesReign(id, championshipID, wrestlerID, wonAt, lostAt)
	r.Wrestler = &domain.Wrestler{ID: wrestlerID, Name: name}
	return r
}

func TestAggregate_Sorting(t *testing.T) {
	now := date(2024, time.June, 1)
	reigns := []domain.Reign{
		namedReign(1, 10, 3, "alpha", date(2024, time.January, 1), timePtr(date(2024, time.January, 11))),
		namedReign(2, 10, 1, "Bravo", date(2024, time.January, 11), timePtr(date(2024, time.February, 11))),
		namedReign(3, 10, 2, "charlie", date(2024, time.February, 11), nil),
	}

	tests := []struct {
		name    string
		spec    history.SortSpec
		wantIDs []int64
	}{
		{
			name:    "name ascending is case-insensitive",
			spec:    history.SortSpec{Key: history.SortByName, Direction: history.SortAsc},
			wantIDs: []int64{3, 1, 2},
		},
		{
			name:    "name descending",
			spec:    history.SortSpec{Key: history.SortByName, Direction: history.SortDesc},
			wantIDs: []int64{2, 1, 3},
		},
		{
			name:    "days descending",
			spec:    history.SortSpec{Key: history.SortByDays, Direction: history.SortDesc},
			wantIDs: []int64{2, 1, 3},
		},
		{
			name:    "id ascending",
			spec:    history.SortSpec{Key: history.SortByID, Direction: history.SortAsc},
			wantIDs: []int64{1, 2, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := computeHistory(t, reigns, nil, now, tt.spec)

			got := make([]int64, 0, len(result.Aggregates))
			for _, r := range result.Aggregates {
				got = append(got, r.WrestlerID)
			}
			assert.Equal(t, tt.wantIDs, got)
		})
	}
}

func TestAggregate_TieBreakByAscendingID(t *testing.T) {
	now := date(2024, time.June, 1)
	// Equal reign counts for every holder, so the key ties everywhere.
	reigns := []domain.Reign{
		namedReign(1, 10, 7, "x", date(2024, time.January, 1), timePtr(date(2024, time.January, 2))),
		namedReign(2, 10, 3, "y", date(2024, time.January, 2), timePtr(date(2024, time.January, 3))),
		namedReign(3, 10, 5, "z", date(2024, time.January, 3), timePtr(date(2024, time.January, 4))),
	}

	for _, dir := range []history.SortDirection{history.SortAsc, history.SortDesc} {
		result := computeHistory(t, reigns, nil, now, history.SortSpec{Key: history.SortByReigns, Direction: dir})

		got := make([]int64, 0, len(result.Aggregates))
		for _, r := range result.Aggregates {
			got = append(got, r.WrestlerID)
		}
		assert.Equal(t, []int64{3, 5, 7}, got, "ties always break by ascending id (direction %s)", dir)
	}
}
