package domain

import "time"

// Event is a dated show. Matches belong to exactly one event.
type Event struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name       string    `json:"name" gorm:"not null"`
	Venue      string    `json:"venue"`
	Country    string    `json:"country"`
	OccurredAt time.Time `json:"occurredAt" gorm:"not null;index"`
	CreatedAt  time.Time `json:"createdAt"`

	Matches []Match `json:"matches,omitempty" gorm:"foreignKey:EventID"`
}
