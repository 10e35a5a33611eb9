package common

import (
	"fmt"
	"testing"
	"time"

	"gigbook/src/models"
	"gigbook/src/types"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a fresh in-memory store with foreign keys enforced so the
// cascade rules behave the same as in production.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("error opening test database: %s", err.Error())
	}
	if err := db.AutoMigrate(&models.Venue{}, &models.Artist{}, &models.Show{}); err != nil {
		t.Fatalf("error migrating test database: %s", err.Error())
	}
	return db
}

func seedVenue(t *testing.T, db *gorm.DB, name, city, state string) *models.Venue {
	t.Helper()
	venue := models.Venue{
		Name:   name,
		City:   city,
		State:  state,
		Genres: types.GenreList{"Rock"},
	}
	if err := db.Create(&venue).Error; err != nil {
		t.Fatalf("error seeding venue: %s", err.Error())
	}
	return &venue
}

func seedArtist(t *testing.T, db *gorm.DB, name, city, state string) *models.Artist {
	t.Helper()
	artist := models.Artist{
		Name:   name,
		City:   city,
		State:  state,
		Genres: types.GenreList{"Jazz"},
	}
	if err := db.Create(&artist).Error; err != nil {
		t.Fatalf("error seeding artist: %s", err.Error())
	}
	return &artist
}

func seedShow(t *testing.T, db *gorm.DB, venueID, artistID uint, startTime *time.Time) *models.Show {
	t.Helper()
	show := models.Show{
		VenueID:   venueID,
		ArtistID:  artistID,
		StartTime: startTime,
	}
	if err := db.Create(&show).Error; err != nil {
		t.Fatalf("error seeding show: %s", err.Error())
	}
	return &show
}

func timePtr(t time.Time) *time.Time {
	return &t
}
