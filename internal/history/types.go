package history

import (
	"time"

	"github.com/triviaswwe/tw-database-web-sub000/internal/domain"
)

// Snapshot is the immutable set of fact records for one championship. The
// engine never mutates it; every computation is a pure function of a snapshot
// and an evaluation instant.
type Snapshot struct {
	Championship domain.Championship
	// Reigns for this championship, with Members and holder associations
	// preloaded.
	Reigns []domain.Reign
	// Matches are the championship's title matches, with Event, Participants
	// and TeamScores preloaded.
	Matches []domain.Match
	// Now is the evaluation instant used to close open-ended intervals.
	Now time.Time
}

type EntryKind string

const (
	EntryReign  EntryKind = "reign"
	EntryVacant EntryKind = "vacant"
)

// TimelineEntry is one segment of a championship's timeline: either a reign
// projection or a synthesized vacancy between two reigns.
type TimelineEntry struct {
	Kind EntryKind `json:"kind"`
	// Reign is nil for vacant entries.
	Reign *domain.Reign `json:"reign,omitempty"`
	// ReignNumber is the ordinal of this holder's reigns on the title,
	// recomputed from the ordered timeline. Zero for vacant entries.
	ReignNumber int        `json:"reignNumber,omitempty"`
	StartAt     time.Time  `json:"startAt"`
	EndAt       *time.Time `json:"endAt,omitempty"`
	// Ongoing is true when the segment has no end yet; DaysHeld then counts
	// up to the snapshot's evaluation instant.
	Ongoing       bool   `json:"ongoing"`
	DaysHeld      int    `json:"daysHeld"`
	DaysHeldLabel string `json:"daysHeldLabel"`
}

type OpponentKind string

const (
	OpponentIndividual OpponentKind = "individual"
	OpponentTeam       OpponentKind = "team"
)

// ScorePair is the champion/opponent score of a scored stipulation.
type ScorePair struct {
	Champion int `json:"champion"`
	Opponent int `json:"opponent"`
}

// DefenseRecord is one successful title defense attributed to a reign.
type DefenseRecord struct {
	Order     int       `json:"order"`
	MatchID   int64     `json:"matchId"`
	EventID   int64     `json:"eventId"`
	EventDate time.Time `json:"eventDate"`
	// OpponentIDs lists only the wrestlers who actually competed against the
	// champion side in this match. Empty when no opposing participant is on
	// record (see DiagUnresolvedOpponent).
	OpponentKind OpponentKind `json:"opponentKind"`
	OpponentIDs  []int64      `json:"opponentIds"`
	// Score is nil when the match has no team score rows.
	Score *ScorePair `json:"score"`
	// DefenderIDs are the individuals credited with this defense: the sole
	// holder for singles reigns, or the rotation occupants active on the
	// event date for tag-team reigns. Empty when rotation data has a gap, in
	// which case the defense counts toward the team only.
	DefenderIDs []int64 `json:"defenderIds"`
}

// AggregateRow is the per-individual rollup across a championship's history.
type AggregateRow struct {
	WrestlerID      int64  `json:"wrestlerId"`
	Name            string `json:"name"`
	InterpreterName string `json:"interpreterName,omitempty"`
	Country         string `json:"country,omitempty"`
	ReignCount      int    `json:"reignCount"`
	DefenseCount    int    `json:"defenseCount"`
	TotalDays       int    `json:"totalDays"`
	// TotalDaysLabel carries the open-ended suffix iff IsCurrent.
	TotalDaysLabel string `json:"totalDaysLabel"`
	IsCurrent      bool   `json:"isCurrent"`
}

type DiagnosticKind string

const (
	DiagMalformedInterval  DiagnosticKind = "MALFORMED_INTERVAL"
	DiagAmbiguousHolder    DiagnosticKind = "AMBIGUOUS_HOLDER"
	DiagUnresolvedOpponent DiagnosticKind = "UNRESOLVED_OPPONENT"
)

// Diagnostic flags a fact record the engine excluded or could not fully
// resolve. Diagnostics ride alongside the data; they never abort the
// computation of the rest of the championship.
type Diagnostic struct {
	Kind    DiagnosticKind `json:"kind"`
	ReignID int64          `json:"reignId,omitempty"`
	MatchID int64          `json:"matchId,omitempty"`
	Detail  string         `json:"detail"`
}

// History is the full derived view for one championship.
type History struct {
	Timeline []TimelineEntry `json:"timeline"`
	// DefensesByReign maps reign id to its chronologically ordered defenses.
	DefensesByReign map[int64][]DefenseRecord `json:"defensesByReign"`
	Aggregates      []AggregateRow            `json:"aggregates"`
	Diagnostics     []Diagnostic              `json:"diagnostics"`
}
