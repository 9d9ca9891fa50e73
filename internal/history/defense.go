package history

import (
	"sort"

	"github.com/triviaswwe/tw-database-web-sub000/internal/domain"
)

// ResolveDefenses returns the chronologically ordered defenses of one reign.
// A match counts iff it is a title match for the reign's championship, did
// not change the title, and its event date falls inside the reign's window
// (start inclusive, end exclusive; an open-ended reign has no upper bound).
// Matches must carry their Event, Participants and TeamScores. Vacant
// timeline entries have no reign and no defenses; callers never invoke this
// for them.
func ResolveDefenses(reign *domain.Reign, matches []domain.Match) ([]DefenseRecord, []Diagnostic) {
	// Callers may hand in a reign that never went through timeline
	// validation; a rejected record yields no defenses, only the diagnostic.
	if diag, ok := reignDiagnostic(reign); ok {
		return nil, []Diagnostic{diag}
	}

	members, diags := validMembers(reign.ID, reign.Members)

	// The champion side of a match is any participant matching the holder:
	// the reign's wrestler, or any rostered member of the reign's tag team.
	holder := make(map[int64]bool)
	if reign.WrestlerID != nil {
		holder[*reign.WrestlerID] = true
	} else {
		for _, m := range members {
			holder[m.WrestlerID] = true
		}
	}

	var qualifying []domain.Match
	for _, m := range matches {
		if m.ChampionshipID == nil || *m.ChampionshipID != reign.ChampionshipID {
			continue
		}
		if !m.IsTitleMatch || m.TitleChanged {
			continue
		}
		if m.Event == nil {
			continue
		}
		at := m.Event.OccurredAt
		if at.Before(reign.WonAt) {
			continue
		}
		if reign.LostAt != nil && !at.Before(*reign.LostAt) {
			continue
		}
		qualifying = append(qualifying, m)
	}

	sort.SliceStable(qualifying, func(i, j int) bool {
		di, dj := qualifying[i].Event.OccurredAt, qualifying[j].Event.OccurredAt
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return qualifying[i].ID < qualifying[j].ID
	})

	records := make([]DefenseRecord, 0, len(qualifying))
	for i := range qualifying {
		rec := resolveDefense(reign, holder, members, &qualifying[i])
		rec.Order = len(records) + 1
		if len(rec.OpponentIDs) == 0 {
			// Recorded with a null opponent rather than dropped, so the
			// defense count is never silently lost.
			diags = append(diags, Diagnostic{
				Kind:    DiagUnresolvedOpponent,
				ReignID: reign.ID,
				MatchID: qualifying[i].ID,
				Detail:  "no opposing participant on record for title defense",
			})
		}
		records = append(records, rec)
	}

	return records, diags
}

func resolveDefense(reign *domain.Reign, holder map[int64]bool, members []domain.ReignMember, m *domain.Match) DefenseRecord {
	champTeams := make(map[int]bool)
	for _, p := range m.Participants {
		if holder[p.WrestlerID] {
			champTeams[p.TeamNumber] = true
		}
	}

	// Opponents are the participants of the complementary team numbers. For
	// a team opponent this yields only the individuals who wrestled that
	// night, not the team's full roster.
	var opponentIDs []int64
	seen := make(map[int64]bool)
	if len(champTeams) > 0 {
		for _, p := range m.Participants {
			if champTeams[p.TeamNumber] {
				continue
			}
			if !seen[p.WrestlerID] {
				seen[p.WrestlerID] = true
				opponentIDs = append(opponentIDs, p.WrestlerID)
			}
		}
	}

	kind := OpponentIndividual
	if len(opponentIDs) > 1 || (len(opponentIDs) == 0 && reign.TagTeamID != nil) {
		kind = OpponentTeam
	}

	var score *ScorePair
	if len(champTeams) > 0 {
		var champScore, oppScore *int
		for _, s := range m.TeamScores {
			v := s.Score
			if champTeams[s.TeamNumber] {
				if champScore == nil {
					champScore = &v
				}
			} else if oppScore == nil {
				oppScore = &v
			}
		}
		if champScore != nil && oppScore != nil {
			score = &ScorePair{Champion: *champScore, Opponent: *oppScore}
		}
	}

	var defenders []int64
	if reign.WrestlerID != nil {
		defenders = []int64{*reign.WrestlerID}
	} else {
		defenders = OccupantsAt(members, m.Event.OccurredAt)
	}

	return DefenseRecord{
		MatchID:      m.ID,
		EventID:      m.EventID,
		EventDate:    m.Event.OccurredAt,
		OpponentKind: kind,
		OpponentIDs:  opponentIDs,
		Score:        score,
		DefenderIDs:  defenders,
	}
}
