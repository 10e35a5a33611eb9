package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenreListValue(t *testing.T) {
	genres := GenreList{"Rock", "Classical", "Jazz"}
	val, err := genres.Value()
	assert.Nil(t, err)
	assert.Equal(t, "{Rock,Classical,Jazz}", val)

	empty := GenreList{}
	val, err = empty.Value()
	assert.Nil(t, err)
	assert.Equal(t, "{}", val)
}

func TestGenreListScan(t *testing.T) {
	var genres GenreList
	err := genres.Scan("{Rock,Classical,Jazz}")
	assert.Nil(t, err)
	assert.Equal(t, GenreList{"Rock", "Classical", "Jazz"}, genres)

	// legacy rows were stored without braces
	err = genres.Scan([]byte("Rock,Jazz"))
	assert.Nil(t, err)
	assert.Equal(t, GenreList{"Rock", "Jazz"}, genres)

	err = genres.Scan("{}")
	assert.Nil(t, err)
	assert.Empty(t, genres)

	err = genres.Scan(nil)
	assert.Nil(t, err)
	assert.Nil(t, genres)

	err = genres.Scan(42)
	assert.NotNil(t, err)
}

func TestGenreListRoundTrip(t *testing.T) {
	genres := GenreList{"Hip-Hop", "R&B"}
	val, err := genres.Value()
	assert.Nil(t, err)

	var scanned GenreList
	err = scanned.Scan(val)
	assert.Nil(t, err)
	assert.Equal(t, genres, scanned)
}
