package history_test

import (
	"time"

	"github.com/triviaswwe/tw-database-web-sub000/internal/domain"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func int64Ptr(v int64) *int64 {
	return &v
}

func singlesReign(id, championshipID, wrestlerID int64, wonAt time.Time, lostAt *time.Time) domain.Reign {
	return domain.Reign{
		ID:             id,
		ChampionshipID: championshipID,
		WrestlerID:     &wrestlerID,
		WonAt:          wonAt,
		LostAt:         lostAt,
	}
}

func teamReign(id, championshipID, tagTeamID int64, wonAt time.Time, lostAt *time.Time, members ...domain.ReignMember) domain.Reign {
	return domain.Reign{
		ID:             id,
		ChampionshipID: championshipID,
		TagTeamID:      &tagTeamID,
		WonAt:          wonAt,
		LostAt:         lostAt,
		Members:        members,
	}
}

func member(id, reignID, wrestlerID int64, startAt time.Time, endAt *time.Time) domain.ReignMember {
	return domain.ReignMember{
		ID:         id,
		ReignID:    reignID,
		WrestlerID: wrestlerID,
		StartAt:    startAt,
		EndAt:      endAt,
	}
}

// titleMatch builds a non-title-changing title match with participants split
// into two sides: champion-side wrestlers on team 1, opponents on team 2.
func titleMatch(id, championshipID int64, at time.Time, championSide, opponentSide []int64) domain.Match {
	m := domain.Match{
		ID:             id,
		EventID:        id,
		ChampionshipID: &championshipID,
		IsTitleMatch:   true,
		Event: &domain.Event{
			ID:         id,
			Name:       "Show",
			OccurredAt: at,
		},
	}
	for _, w := range championSide {
		m.Participants = append(m.Participants, domain.MatchParticipant{
			MatchID:    id,
			WrestlerID: w,
			TeamNumber: 1,
			Result:     domain.ResultWin,
		})
	}
	for _, w := range opponentSide {
		m.Participants = append(m.Participants, domain.MatchParticipant{
			MatchID:    id,
			WrestlerID: w,
			TeamNumber: 2,
			Result:     domain.ResultLoss,
		})
	}
	return m
}
