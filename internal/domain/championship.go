package domain

import "time"

type Championship struct {
	ID            int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name          string    `json:"name" gorm:"not null;uniqueIndex"`
	Abbreviation  string    `json:"abbreviation"`
	EstablishedAt time.Time `json:"establishedAt" gorm:"not null"`
	CreatedAt     time.Time `json:"createdAt"`
}
