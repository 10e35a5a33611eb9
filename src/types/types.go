package types

import (
	"database/sql/driver"
	"errors"
	"strings"
	"time"
)

type Timestamps struct {
	CreatedAt time.Time `gorm:"autoCreateTime:nano" json:"created_at,omitempty"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:nano" json:"updated_at,omitempty"`
}

// GenreList is the canonical representation of an entity's genre tags. It is
// persisted as a single braced, comma-delimited column value ("{Rock,Jazz}")
// so the same column works for both venues and artists regardless of whether
// the backing store has a native array type.
type GenreList []string

func (g GenreList) Value() (driver.Value, error) {
	return "{" + strings.Join(g, ",") + "}", nil
}

func (g *GenreList) Scan(value any) error {
	var s string
	switch v := value.(type) {
	case []byte:
		s = string(v)
	case string:
		s = v
	case nil:
		*g = nil
		return nil
	default:
		return errors.New("unsupported column type for genre list")
	}
	s = strings.TrimFunc(s, func(r rune) bool {
		return r == '{' || r == '}'
	})
	if s == "" {
		*g = GenreList{}
		return nil
	}
	*g = GenreList(strings.Split(s, ","))
	return nil
}

type SimpleRequestParams struct {
	ID uint `uri:"id" binding:"required"`
}

type SearchRequestBody struct {
	SearchTerm string `json:"search_term"`
}

type CreateVenueRequestBody struct {
	Name               string   `json:"name" binding:"required"`
	City               string   `json:"city" binding:"required"`
	State              string   `json:"state" binding:"required,usstate"`
	Address            string   `json:"address,omitempty"`
	Phone              string   `json:"phone,omitempty"`
	Genres             []string `json:"genres" binding:"required"`
	ImageLink          string   `json:"image_link,omitempty" binding:"omitempty,url"`
	FacebookLink       string   `json:"facebook_link,omitempty" binding:"omitempty,url"`
	Website            string   `json:"website,omitempty" binding:"omitempty,url"`
	SeekingTalent      bool     `json:"seeking_talent,omitempty"`
	SeekingDescription string   `json:"seeking_description,omitempty"`
}

type CreateArtistRequestBody struct {
	Name               string   `json:"name" binding:"required"`
	City               string   `json:"city" binding:"required"`
	State              string   `json:"state" binding:"required,usstate"`
	Phone              string   `json:"phone,omitempty"`
	Genres             []string `json:"genres" binding:"required"`
	ImageLink          string   `json:"image_link,omitempty" binding:"omitempty,url"`
	FacebookLink       string   `json:"facebook_link,omitempty" binding:"omitempty,url"`
	Website            string   `json:"website,omitempty" binding:"omitempty,url"`
	SeekingVenue       bool     `json:"seeking_venue,omitempty"`
	SeekingDescription string   `json:"seeking_description,omitempty"`
}

type CreateShowRequestBody struct {
	ArtistID  uint    `json:"artist_id" binding:"required"`
	VenueID   uint    `json:"venue_id" binding:"required"`
	StartTime *string `json:"start_time,omitempty" binding:"omitempty,showdate"`
}

// VenueOverview is a single row in grouped listings and search results.
type VenueOverview struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int64  `json:"num_upcoming_shows"`
}

type VenueLocationGroup struct {
	City   string          `json:"city"`
	State  string          `json:"state"`
	Venues []VenueOverview `json:"venues"`
}

type VenueSearchResults struct {
	Count int             `json:"count"`
	Data  []VenueOverview `json:"data"`
}

type ArtistOverview struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type ArtistSearchResults struct {
	Count int              `json:"count"`
	Data  []ArtistOverview `json:"data"`
}

// VenueShowEntry is a show as seen from a venue detail page: the counterpart
// is the booked artist.
type VenueShowEntry struct {
	ArtistID        uint   `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// ArtistShowEntry is a show as seen from an artist detail page: the
// counterpart is the hosting venue.
type ArtistShowEntry struct {
	VenueID        uint   `json:"venue_id"`
	VenueName      string `json:"venue_name"`
	VenueImageLink string `json:"venue_image_link"`
	StartTime      string `json:"start_time"`
}

type VenueDetail struct {
	ID                 uint             `json:"id"`
	Name               string           `json:"name"`
	Genres             []string         `json:"genres"`
	Address            string           `json:"address"`
	City               string           `json:"city"`
	State              string           `json:"state"`
	Phone              string           `json:"phone"`
	Website            string           `json:"website"`
	FacebookLink       string           `json:"facebook_link"`
	SeekingTalent      bool             `json:"seeking_talent"`
	SeekingDescription string           `json:"seeking_description"`
	ImageLink          string           `json:"image_link"`
	PastShows          []VenueShowEntry `json:"past_shows"`
	UpcomingShows      []VenueShowEntry `json:"upcoming_shows"`
	PastShowsCount     int              `json:"past_shows_count"`
	UpcomingShowsCount int              `json:"upcoming_shows_count"`
}

type ArtistDetail struct {
	ID                 uint              `json:"id"`
	Name               string            `json:"name"`
	Genres             []string          `json:"genres"`
	City               string            `json:"city"`
	State              string            `json:"state"`
	Phone              string            `json:"phone"`
	Website            string            `json:"website"`
	FacebookLink       string            `json:"facebook_link"`
	SeekingVenue       bool              `json:"seeking_venue"`
	SeekingDescription string            `json:"seeking_description"`
	ImageLink          string            `json:"image_link"`
	PastShows          []ArtistShowEntry `json:"past_shows"`
	UpcomingShows      []ArtistShowEntry `json:"upcoming_shows"`
	PastShowsCount     int               `json:"past_shows_count"`
	UpcomingShowsCount int               `json:"upcoming_shows_count"`
}

// ShowListing is a row on the shows page: every show joined with its venue
// name and artist identity.
type ShowListing struct {
	VenueID         uint   `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	ArtistID        uint   `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}
