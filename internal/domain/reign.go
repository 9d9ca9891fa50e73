package domain

import "time"

// Reign is a continuous interval during which one holder (a single wrestler
// or a tag team, never both) possesses a championship. LostAt is exclusive
// and nil while the reign is ongoing.
type Reign struct {
	ID             int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	ChampionshipID int64      `json:"championshipId" gorm:"not null;index"`
	WrestlerID     *int64     `json:"wrestlerId" gorm:"index"`
	TagTeamID      *int64     `json:"tagTeamId" gorm:"index"`
	WonAt          time.Time  `json:"wonAt" gorm:"not null"`
	LostAt         *time.Time `json:"lostAt"`
	WonEventID     *int64     `json:"wonEventId"`
	WonMatchID     *int64     `json:"wonMatchId"`
	CreatedAt      time.Time  `json:"createdAt"`

	Championship *Championship `json:"championship,omitempty" gorm:"foreignKey:ChampionshipID"`
	Wrestler     *Wrestler     `json:"wrestler,omitempty" gorm:"foreignKey:WrestlerID"`
	TagTeam      *TagTeam      `json:"tagTeam,omitempty" gorm:"foreignKey:TagTeamID"`
	WonEvent     *Event        `json:"wonEvent,omitempty" gorm:"foreignKey:WonEventID"`
	Members      []ReignMember `json:"members,omitempty" gorm:"foreignKey:ReignID"`
}

// IsActive reports whether the reign is still ongoing. This is always derived
// from LostAt on the current snapshot, never stored as a flag.
func (r *Reign) IsActive() bool {
	return r.LostAt == nil
}

// ReignMember is a sub-interval of a tag-team reign naming the individual
// wrestler occupying a slot. Members of the same reign may overlap (a pair
// holding the title together) or rotate over time.
type ReignMember struct {
	ID            int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	ReignID       int64      `json:"reignId" gorm:"not null;index"`
	WrestlerID    int64      `json:"wrestlerId" gorm:"not null;index"`
	InterpreterID *int64     `json:"interpreterId"`
	StartAt       time.Time  `json:"startAt" gorm:"not null"`
	EndAt         *time.Time `json:"endAt"`

	Wrestler    *Wrestler    `json:"wrestler,omitempty" gorm:"foreignKey:WrestlerID"`
	Interpreter *Interpreter `json:"interpreter,omitempty" gorm:"foreignKey:InterpreterID"`
}
