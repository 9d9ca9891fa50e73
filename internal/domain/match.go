package domain

import "time"

type MatchResult string

const (
	ResultWin  MatchResult = "WIN"
	ResultLoss MatchResult = "LOSS"
	ResultDraw MatchResult = "DRAW"
)

// Match is a bout on an event's card. A title match that changed the title is
// the terminal match of the losing reign and the originating match of the new
// one; a title match that did not change it is a defense of the active reign.
type Match struct {
	ID             int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	EventID        int64     `json:"eventId" gorm:"not null;index"`
	ChampionshipID *int64    `json:"championshipId" gorm:"index"`
	Stipulation    string    `json:"stipulation"`
	IsTitleMatch   bool      `json:"isTitleMatch" gorm:"not null;default:false"`
	TitleChanged   bool      `json:"titleChanged" gorm:"not null;default:false"`
	CreatedAt      time.Time `json:"createdAt"`

	Event        *Event             `json:"event,omitempty" gorm:"foreignKey:EventID"`
	Participants []MatchParticipant `json:"participants,omitempty" gorm:"foreignKey:MatchID"`
	TeamScores   []MatchTeamScore   `json:"teamScores,omitempty" gorm:"foreignKey:MatchID"`
}

type MatchParticipant struct {
	ID            int64       `json:"id" gorm:"primaryKey;autoIncrement"`
	MatchID       int64       `json:"matchId" gorm:"not null;index"`
	WrestlerID    int64       `json:"wrestlerId" gorm:"not null;index"`
	InterpreterID *int64      `json:"interpreterId"`
	TeamNumber    int         `json:"teamNumber" gorm:"not null"`
	Result        MatchResult `json:"result"`

	Wrestler    *Wrestler    `json:"wrestler,omitempty" gorm:"foreignKey:WrestlerID"`
	Interpreter *Interpreter `json:"interpreter,omitempty" gorm:"foreignKey:InterpreterID"`
}

// MatchTeamScore is a per-team score for scored stipulations (iron man
// matches and the like). Most matches have no score rows at all.
type MatchTeamScore struct {
	ID         int64 `json:"id" gorm:"primaryKey;autoIncrement"`
	MatchID    int64 `json:"matchId" gorm:"not null;index"`
	TeamNumber int   `json:"teamNumber" gorm:"not null"`
	Score      int   `json:"score" gorm:"not null"`
}
