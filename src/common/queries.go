package common

import (
	"errors"
	"log"
	"strings"
	"time"

	"gigbook/src/models"
	"gigbook/src/models/scopes"
	"gigbook/src/types"
	"gigbook/src/utils"

	"gorm.io/gorm"
)

// ListVenuesGroupedByLocation returns every distinct (city, state) pair with
// its member venues. Locations are ordered by city then state and venues by
// id so repeated calls see the same order.
func (q *Queries) ListVenuesGroupedByLocation() ([]types.VenueLocationGroup, error) {
	now := time.Now()
	var locations []struct {
		City  string
		State string
	}
	if err := q.db.
		Model(&models.Venue{}).
		Distinct("city", "state").
		Order("city, state").
		Find(&locations).
		Error; err != nil {
		log.Printf("Error listing venue locations: %s\n", err.Error())
		return nil, err
	}

	groups := make([]types.VenueLocationGroup, 0, len(locations))
	for _, location := range locations {
		var venues []models.Venue
		if err := q.db.
			Where("city = ? AND state = ?", location.City, location.State).
			Order("id").
			Find(&venues).
			Error; err != nil {
			return nil, err
		}
		group := types.VenueLocationGroup{
			City:   location.City,
			State:  location.State,
			Venues: make([]types.VenueOverview, 0, len(venues)),
		}
		for _, venue := range venues {
			count, err := q.countUpcomingShows(venue.ID, now)
			if err != nil {
				return nil, err
			}
			group.Venues = append(group.Venues, types.VenueOverview{
				ID:               venue.ID,
				Name:             venue.Name,
				NumUpcomingShows: count,
			})
		}
		groups = append(groups, group)
	}
	return groups, nil
}

// SearchVenues matches the term case-insensitively anywhere in the venue
// name. An empty term matches every venue.
func (q *Queries) SearchVenues(term string) (*types.VenueSearchResults, error) {
	now := time.Now()
	var venues []models.Venue
	if err := q.db.
		Where("lower(name) LIKE ?", likePattern(term)).
		Order("id").
		Find(&venues).
		Error; err != nil {
		log.Printf("Error searching venues for [%s]: %s\n", term, err.Error())
		return nil, err
	}
	results := types.VenueSearchResults{
		Count: len(venues),
		Data:  make([]types.VenueOverview, 0, len(venues)),
	}
	for _, venue := range venues {
		count, err := q.countUpcomingShows(venue.ID, now)
		if err != nil {
			return nil, err
		}
		results.Data = append(results.Data, types.VenueOverview{
			ID:               venue.ID,
			Name:             venue.Name,
			NumUpcomingShows: count,
		})
	}
	return &results, nil
}

func (q *Queries) SearchArtists(term string) (*types.ArtistSearchResults, error) {
	var artists []models.Artist
	if err := q.db.
		Where("lower(name) LIKE ?", likePattern(term)).
		Order("id").
		Find(&artists).
		Error; err != nil {
		log.Printf("Error searching artists for [%s]: %s\n", term, err.Error())
		return nil, err
	}
	results := types.ArtistSearchResults{
		Count: len(artists),
		Data:  make([]types.ArtistOverview, 0, len(artists)),
	}
	for _, artist := range artists {
		results.Data = append(results.Data, types.ArtistOverview{
			ID:   artist.ID,
			Name: artist.Name,
		})
	}
	return &results, nil
}

// GetVenueDetail assembles a venue's full record plus its shows partitioned
// into past and upcoming relative to the time of the call.
func (q *Queries) GetVenueDetail(id uint) (*types.VenueDetail, error) {
	now := time.Now()
	var venue models.Venue
	if err := q.db.Scopes(scopes.WithID(id)).First(&venue).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		log.Printf("Error retrieving venue %d: %s\n", id, err.Error())
		return nil, err
	}

	past, upcoming, err := q.venueShows(id, now)
	if err != nil {
		return nil, err
	}
	detail := types.VenueDetail{
		ID:                 venue.ID,
		Name:               venue.Name,
		Genres:             []string(venue.Genres),
		Address:            venue.Address,
		City:               venue.City,
		State:              venue.State,
		Phone:              venue.Phone,
		Website:            venue.Website,
		FacebookLink:       venue.FacebookLink,
		SeekingTalent:      venue.SeekingTalent,
		SeekingDescription: venue.SeekingDescription,
		ImageLink:          venue.ImageLink,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
	return &detail, nil
}

func (q *Queries) GetArtistDetail(id uint) (*types.ArtistDetail, error) {
	now := time.Now()
	var artist models.Artist
	if err := q.db.Scopes(scopes.WithID(id)).First(&artist).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		log.Printf("Error retrieving artist %d: %s\n", id, err.Error())
		return nil, err
	}

	past, upcoming, err := q.artistShows(id, now)
	if err != nil {
		return nil, err
	}
	detail := types.ArtistDetail{
		ID:                 artist.ID,
		Name:               artist.Name,
		Genres:             []string(artist.Genres),
		City:               artist.City,
		State:              artist.State,
		Phone:              artist.Phone,
		Website:            artist.Website,
		FacebookLink:       artist.FacebookLink,
		SeekingVenue:       artist.SeekingVenue,
		SeekingDescription: artist.SeekingDescription,
		ImageLink:          artist.ImageLink,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
	return &detail, nil
}

func (q *Queries) ListArtists() ([]models.Artist, error) {
	var artists []models.Artist
	if err := q.db.Order("id").Find(&artists).Error; err != nil {
		log.Printf("Error listing artists: %s\n", err.Error())
		return nil, err
	}
	return artists, nil
}

// ListShows returns every show joined with its venue name and artist
// identity, ordered by id.
func (q *Queries) ListShows() ([]types.ShowListing, error) {
	var shows []models.Show
	if err := q.db.
		Preload("Venue").
		Preload("Artist").
		Order("id").
		Find(&shows).
		Error; err != nil {
		log.Printf("Error listing shows: %s\n", err.Error())
		return nil, err
	}
	listings := make([]types.ShowListing, 0, len(shows))
	for _, show := range shows {
		listings = append(listings, types.ShowListing{
			VenueID:         show.VenueID,
			VenueName:       show.Venue.Name,
			ArtistID:        show.ArtistID,
			ArtistName:      show.Artist.Name,
			ArtistImageLink: show.Artist.ImageLink,
			StartTime:       utils.FormatShowTime(show.StartTime),
		})
	}
	return listings, nil
}

func (q *Queries) countUpcomingShows(venueID uint, now time.Time) (int64, error) {
	var count int64
	err := q.db.
		Model(&models.Show{}).
		Where(&models.Show{VenueID: venueID}).
		Scopes(scopes.Upcoming(now)).
		Count(&count).
		Error
	return count, err
}

func (q *Queries) venueShows(venueID uint, now time.Time) (past []types.VenueShowEntry, upcoming []types.VenueShowEntry, err error) {
	past = []types.VenueShowEntry{}
	upcoming = []types.VenueShowEntry{}
	var shows []models.Show
	if err = q.db.
		Preload("Artist").
		Where(&models.Show{VenueID: venueID}).
		Order("id").
		Find(&shows).
		Error; err != nil {
		return nil, nil, err
	}
	for _, show := range shows {
		entry := types.VenueShowEntry{
			ArtistID:        show.ArtistID,
			ArtistName:      show.Artist.Name,
			ArtistImageLink: show.Artist.ImageLink,
			StartTime:       utils.FormatShowTime(show.StartTime),
		}
		if isUpcoming(show.StartTime, now) {
			upcoming = append(upcoming, entry)
		} else {
			past = append(past, entry)
		}
	}
	return past, upcoming, nil
}

func (q *Queries) artistShows(artistID uint, now time.Time) (past []types.ArtistShowEntry, upcoming []types.ArtistShowEntry, err error) {
	past = []types.ArtistShowEntry{}
	upcoming = []types.ArtistShowEntry{}
	var shows []models.Show
	if err = q.db.
		Preload("Venue").
		Where(&models.Show{ArtistID: artistID}).
		Order("id").
		Find(&shows).
		Error; err != nil {
		return nil, nil, err
	}
	for _, show := range shows {
		entry := types.ArtistShowEntry{
			VenueID:        show.VenueID,
			VenueName:      show.Venue.Name,
			VenueImageLink: show.Venue.ImageLink,
			StartTime:      utils.FormatShowTime(show.StartTime),
		}
		if isUpcoming(show.StartTime, now) {
			upcoming = append(upcoming, entry)
		} else {
			past = append(past, entry)
		}
	}
	return past, upcoming, nil
}

// isUpcoming mirrors the scopes: strictly after now is upcoming, everything
// else (including a missing start time) is past.
func isUpcoming(t *time.Time, now time.Time) bool {
	return t != nil && t.After(now)
}

func likePattern(term string) string {
	return "%" + strings.ToLower(term) + "%"
}
