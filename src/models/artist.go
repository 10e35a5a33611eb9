package models

import (
	"gigbook/src/types"
)

type Artist struct {
	ID                 uint            `gorm:"primarykey" json:"id"`
	Name               string          `json:"name"`
	City               string          `gorm:"size:120" json:"city,omitempty"`
	State              string          `gorm:"size:120" json:"state,omitempty"`
	Phone              string          `gorm:"size:120" json:"phone,omitempty"`
	Genres             types.GenreList `gorm:"size:120" json:"genres,omitempty"`
	ImageLink          string          `gorm:"size:500" json:"image_link,omitempty"`
	FacebookLink       string          `gorm:"size:120" json:"facebook_link,omitempty"`
	Website            string          `gorm:"size:120" json:"website,omitempty"`
	SeekingVenue       bool            `json:"seeking_venue"`
	SeekingDescription string          `gorm:"size:120" json:"seeking_description,omitempty"`

	Shows []Show `gorm:"constraint:OnDelete:CASCADE" json:"shows,omitempty"`

	types.Timestamps
}
