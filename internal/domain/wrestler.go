package domain

import (
	"time"

	"gorm.io/datatypes"
)

type Wrestler struct {
	ID        int64          `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string         `json:"name" gorm:"not null"`
	Country   string         `json:"country"`                   // ISO 3166-1 alpha-2
	Aliases   datatypes.JSON `json:"aliases" gorm:"type:jsonb"` // prior ring names
	DebutedAt *time.Time     `json:"debutedAt"`
	CreatedAt time.Time      `json:"createdAt"`
}

// Interpreter is the real-world performer portraying a wrestler. A wrestler
// character can be portrayed by different interpreters over time.
type Interpreter struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"not null"`
	Country   string    `json:"country"`
	CreatedAt time.Time `json:"createdAt"`
}

type TagTeam struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"not null;uniqueIndex"`
	CreatedAt time.Time `json:"createdAt"`
}
