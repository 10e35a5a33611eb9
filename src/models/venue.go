package models

import (
	"gigbook/src/types"
)

type Venue struct {
	ID                 uint            `gorm:"primarykey" json:"id"`
	Name               string          `json:"name"`
	City               string          `gorm:"size:120" json:"city,omitempty"`
	State              string          `gorm:"size:120" json:"state,omitempty"`
	Address            string          `gorm:"size:120" json:"address,omitempty"`
	Genres             types.GenreList `gorm:"size:120" json:"genres,omitempty"`
	Phone              string          `gorm:"size:120" json:"phone,omitempty"`
	ImageLink          string          `gorm:"size:500" json:"image_link,omitempty"`
	FacebookLink       string          `gorm:"size:120" json:"facebook_link,omitempty"`
	Website            string          `gorm:"size:120" json:"website,omitempty"`
	SeekingTalent      bool            `json:"seeking_talent"`
	SeekingDescription string          `gorm:"size:120" json:"seeking_description,omitempty"`

	Shows []Show `gorm:"constraint:OnDelete:CASCADE" json:"shows,omitempty"`

	types.Timestamps
}
