package common

import (
	"errors"
	"fmt"
	"log"

	"gigbook/src/models"
	"gigbook/src/types"
	"gigbook/src/utils"

	"gorm.io/gorm"
)

// CreateVenue inserts a venue inside one transaction and returns the fresh
// id plus a confirmation message for the caller to surface.
func (m *Mutations) CreateVenue(params *types.CreateVenueRequestBody) (uint, string, error) {
	venue := models.Venue{
		Name:               params.Name,
		City:               params.City,
		State:              params.State,
		Address:            params.Address,
		Phone:              params.Phone,
		Genres:             types.GenreList(params.Genres),
		ImageLink:          params.ImageLink,
		FacebookLink:       params.FacebookLink,
		Website:            params.Website,
		SeekingTalent:      params.SeekingTalent,
		SeekingDescription: params.SeekingDescription,
	}
	if err := m.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&venue).Error
	}); err != nil {
		log.Printf("Error creating venue [%s]: %s\n", params.Name, err.Error())
		return 0, "", ErrCreationFailed
	}
	return venue.ID, fmt.Sprintf("Venue %s was successfully listed!", venue.Name), nil
}

func (m *Mutations) CreateArtist(params *types.CreateArtistRequestBody) (uint, string, error) {
	artist := models.Artist{
		Name:               params.Name,
		City:               params.City,
		State:              params.State,
		Phone:              params.Phone,
		Genres:             types.GenreList(params.Genres),
		ImageLink:          params.ImageLink,
		FacebookLink:       params.FacebookLink,
		Website:            params.Website,
		SeekingVenue:       params.SeekingVenue,
		SeekingDescription: params.SeekingDescription,
	}
	if err := m.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&artist).Error
	}); err != nil {
		log.Printf("Error creating artist [%s]: %s\n", params.Name, err.Error())
		return 0, "", ErrCreationFailed
	}
	return artist.ID, fmt.Sprintf("Artist %s was successfully listed!", artist.Name), nil
}

// CreateShow books an artist into a venue. The referenced ids are checked by
// the store's foreign keys, not here; a violation surfaces as a creation
// failure.
func (m *Mutations) CreateShow(params *types.CreateShowRequestBody) (uint, string, error) {
	show := models.Show{
		ArtistID: params.ArtistID,
		VenueID:  params.VenueID,
	}
	if params.StartTime != nil {
		startTime, err := utils.ParseShowTime(*params.StartTime)
		if err != nil {
			log.Printf("Error parsing start_time [%s]: %s\n", *params.StartTime, err.Error())
			return 0, "", ErrCreationFailed
		}
		show.StartTime = &startTime
	}
	if err := m.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&show).Error
	}); err != nil {
		log.Printf("Error creating show for artist %d at venue %d: %s\n", params.ArtistID, params.VenueID, err.Error())
		return 0, "", ErrCreationFailed
	}
	return show.ID, "Show was successfully listed!", nil
}

// UpdateVenue overwrites every mutable field of an existing venue. Updates
// go through a column map so cleared booleans and emptied strings stick.
func (m *Mutations) UpdateVenue(id uint, params *types.CreateVenueRequestBody) error {
	err := m.db.Transaction(func(tx *gorm.DB) error {
		var venue models.Venue
		if err := tx.First(&venue, id).Error; err != nil {
			return err
		}
		return tx.
			Model(&models.Venue{}).
			Where("id = ?", id).
			Updates(map[string]any{
				"name":                params.Name,
				"city":                params.City,
				"state":               params.State,
				"address":             params.Address,
				"phone":               params.Phone,
				"genres":              types.GenreList(params.Genres),
				"image_link":          params.ImageLink,
				"facebook_link":       params.FacebookLink,
				"website":             params.Website,
				"seeking_talent":      params.SeekingTalent,
				"seeking_description": params.SeekingDescription,
			}).
			Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		log.Printf("Error updating venue %d: %s\n", id, err.Error())
		return ErrUpdateFailed
	}
	return nil
}

func (m *Mutations) UpdateArtist(id uint, params *types.CreateArtistRequestBody) error {
	err := m.db.Transaction(func(tx *gorm.DB) error {
		var artist models.Artist
		if err := tx.First(&artist, id).Error; err != nil {
			return err
		}
		return tx.
			Model(&models.Artist{}).
			Where("id = ?", id).
			Updates(map[string]any{
				"name":                params.Name,
				"city":                params.City,
				"state":               params.State,
				"phone":               params.Phone,
				"genres":              types.GenreList(params.Genres),
				"image_link":          params.ImageLink,
				"facebook_link":       params.FacebookLink,
				"website":             params.Website,
				"seeking_venue":       params.SeekingVenue,
				"seeking_description": params.SeekingDescription,
			}).
			Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		log.Printf("Error updating artist %d: %s\n", id, err.Error())
		return ErrUpdateFailed
	}
	return nil
}

// DeleteVenue removes a venue by id. A missing id is a no-op, matching
// filter-then-delete semantics; dependent shows go with the venue via the
// store's cascade rule.
func (m *Mutations) DeleteVenue(id uint) error {
	if err := m.db.Transaction(func(tx *gorm.DB) error {
		return tx.Where("id = ?", id).Delete(&models.Venue{}).Error
	}); err != nil {
		log.Printf("Error deleting venue %d: %s\n", id, err.Error())
		return ErrDeleteFailed
	}
	return nil
}
