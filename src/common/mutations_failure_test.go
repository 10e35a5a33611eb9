package common

import (
	"errors"
	"testing"

	"gigbook/src/types"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("An error '%s' was not expected when opening a stub database connection", err)
	}
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	if err != nil {
		t.Fatalf("An error '%s' was not expected when opening gorm database", err)
	}

	return gormDB, mock
}

func TestCreateVenueRollsBackOnStoreError(t *testing.T) {
	gormDB, mock := newMockDB(t)
	mutations := NewMutations(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "venues"`).WillReturnError(errors.New("store unavailable"))
	mock.ExpectRollback()

	id, _, err := mutations.CreateVenue(&types.CreateVenueRequestBody{
		Name:   "The Fillmore",
		City:   "San Francisco",
		State:  "CA",
		Genres: []string{"Rock"},
	})
	assert.Zero(t, id)
	assert.ErrorIs(t, err, ErrCreationFailed)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestCreateShowRollsBackOnStoreError(t *testing.T) {
	gormDB, mock := newMockDB(t)
	mutations := NewMutations(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "shows"`).WillReturnError(errors.New("store unavailable"))
	mock.ExpectRollback()

	id, _, err := mutations.CreateShow(&types.CreateShowRequestBody{
		ArtistID: 1,
		VenueID:  1,
	})
	assert.Zero(t, id)
	assert.ErrorIs(t, err, ErrCreationFailed)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestUpdateVenueRollsBackOnStoreError(t *testing.T) {
	gormDB, mock := newMockDB(t)
	mutations := NewMutations(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "venues"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "The Fillmore"))
	mock.ExpectExec(`UPDATE "venues"`).WillReturnError(errors.New("store unavailable"))
	mock.ExpectRollback()

	err := mutations.UpdateVenue(1, &types.CreateVenueRequestBody{
		Name:   "The Fillmore West",
		City:   "San Francisco",
		State:  "CA",
		Genres: []string{"Rock"},
	})
	assert.ErrorIs(t, err, ErrUpdateFailed)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestUpdateArtistRollsBackOnStoreError(t *testing.T) {
	gormDB, mock := newMockDB(t)
	mutations := NewMutations(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "artists"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "Guided By Voices"))
	mock.ExpectExec(`UPDATE "artists"`).WillReturnError(errors.New("store unavailable"))
	mock.ExpectRollback()

	err := mutations.UpdateArtist(1, &types.CreateArtistRequestBody{
		Name:   "Guided By Voices",
		City:   "Dayton",
		State:  "OH",
		Genres: []string{"Indie"},
	})
	assert.ErrorIs(t, err, ErrUpdateFailed)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestDeleteVenueFailsOnStoreError(t *testing.T) {
	gormDB, mock := newMockDB(t)
	mutations := NewMutations(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "venues"`).WillReturnError(errors.New("store unavailable"))
	mock.ExpectRollback()

	err := mutations.DeleteVenue(1)
	assert.ErrorIs(t, err, ErrDeleteFailed)
	assert.Nil(t, mock.ExpectationsWereMet())
}
