package models

import (
	"time"

	"gigbook/src/types"
)

type Show struct {
	ID        uint       `gorm:"primarykey" json:"id"`
	VenueID   uint       `gorm:"not null" json:"venue_id"`
	ArtistID  uint       `gorm:"not null" json:"artist_id"`
	StartTime *time.Time `json:"start_time,omitempty"`

	Venue  Venue  `gorm:"foreignKey:venue_id" json:"-"`
	Artist Artist `gorm:"foreignKey:artist_id" json:"-"`

	types.Timestamps
}
