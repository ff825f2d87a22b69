package tests

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArtistCreateGetUpdateDelete(t *testing.T) {
	env := setupTestEnv(t)
	c := env.newClient()

	artistId, err := c.createArtist(testArtist("Guns N Petals"))
	require.NoError(t, err)

	artist, err := c.getArtist(artistId)
	require.NoError(t, err)
	assert.Equal(t, "Guns N Petals", artist.Name)
	assert.Equal(t, []string{"Rock n Roll"}, artist.Genres)

	updated := testArtist("Guns N Petals")
	updated.City = "Oakland"
	updated.SeekingVenue = true
	updated.SeekingDescription = "Seeking venues!"
	require.NoError(t, c.updateArtist(artistId, updated))

	artist, err = c.getArtist(artistId)
	require.NoError(t, err)
	assert.Equal(t, "Oakland", artist.City)
	assert.True(t, artist.SeekingVenue)

	require.NoError(t, c.deleteArtist(artistId))

	_, err = c.getArtist(artistId)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestArtistRequiredFields(t *testing.T) {
	env := setupTestEnv(t)
	c := env.newClient()

	missingCity := testArtist("Guns N Petals")
	missingCity.City = ""
	_, err := c.createArtist(missingCity)
	assert.ErrorIs(t, err, ErrUnprocessable)
}

func TestArtistList(t *testing.T) {
	env := setupTestEnv(t)
	c := env.newClient()

	_, err := c.createArtist(testArtist("Guns N Petals"))
	require.NoError(t, err)

	_, err = c.createArtist(testArtist("Matt Quevedo"))
	require.NoError(t, err)

	artists, err := c.listArtists()
	require.NoError(t, err)
	require.Len(t, artists, 2)

	names := []string{artists[0].Name, artists[1].Name}
	assert.Contains(t, names, "Guns N Petals")
	assert.Contains(t, names, "Matt Quevedo")
}

func TestArtistSearchReportsUpcomingCounts(t *testing.T) {
	env := setupTestEnv(t)
	c := env.newClient()

	saxId, err := c.createArtist(testArtist("The Wild Sax Band"))
	require.NoError(t, err)

	_, err = c.createArtist(testArtist("Matt Quevedo"))
	require.NoError(t, err)

	venueId, err := c.createVenue(testVenue("Park Square Live Music & Coffee", "San Francisco", "CA"))
	require.NoError(t, err)

	require.NoError(t, c.createShow(saxId, venueId, testNow.Add(24*time.Hour)))
	require.NoError(t, c.createShow(saxId, venueId, testNow.Add(-24*time.Hour)))

	res, err := c.searchArtists("SAX")
	require.NoError(t, err)
	require.Equal(t, 1, res.Count)
	assert.Equal(t, saxId, res.Data[0].Id)
	assert.EqualValues(t, 1, res.Data[0].NumUpcomingShows)
}

func TestArtistShowPartition(t *testing.T) {
	env := setupTestEnv(t)
	c := env.newClient()

	artistId, err := c.createArtist(testArtist("The Wild Sax Band"))
	require.NoError(t, err)

	venue1, err := c.createVenue(testVenue("The Musical Hop", "San Francisco", "CA"))
	require.NoError(t, err)

	venue2, err := c.createVenue(testVenue("The Dueling Pianos Bar", "New York", "NY"))
	require.NoError(t, err)

	require.NoError(t, c.createShow(artistId, venue1, testNow.Add(-24*time.Hour)))
	require.NoError(t, c.createShow(artistId, venue2, testNow.Add(24*time.Hour)))
	require.NoError(t, c.createShow(artistId, venue2, testNow.Add(48*time.Hour)))

	artist, err := c.getArtist(artistId)
	require.NoError(t, err)

	require.Equal(t, 1, artist.PastShowsCount)
	require.Equal(t, 2, artist.UpcomingShowsCount)

	// The artist view carries the venue for each show.
	assert.Equal(t, venue1, artist.PastShows[0].VenueId)
	assert.Equal(t, "The Musical Hop", artist.PastShows[0].VenueName)
	assert.Equal(t, venue2, artist.UpcomingShows[0].VenueId)
	assert.Equal(t, "The Dueling Pianos Bar", artist.UpcomingShows[0].VenueName)
}

func TestArtistDeleteCascadesToShows(t *testing.T) {
	env := setupTestEnv(t)
	c := env.newClient()

	artist1, err := c.createArtist(testArtist("Guns N Petals"))
	require.NoError(t, err)

	artist2, err := c.createArtist(testArtist("Matt Quevedo"))
	require.NoError(t, err)

	venueId, err := c.createVenue(testVenue("The Musical Hop", "San Francisco", "CA"))
	require.NoError(t, err)

	require.NoError(t, c.createShow(artist1, venueId, testNow.Add(24*time.Hour)))
	require.NoError(t, c.createShow(artist2, venueId, testNow.Add(24*time.Hour)))

	require.NoError(t, c.deleteArtist(artist1))

	shows, err := c.listShows()
	require.NoError(t, err)
	require.Len(t, shows, 1)
	assert.Equal(t, artist2, shows[0].ArtistId)

	// The venue's own partition is unaffected apart from the removed show.
	venue, err := c.getVenue(venueId)
	require.NoError(t, err)
	assert.Equal(t, 1, venue.UpcomingShowsCount)
}
