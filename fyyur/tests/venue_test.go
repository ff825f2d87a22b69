package tests

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testVenue(name, city, state string) venueParams {
	return venueParams{
		Name:    name,
		City:    city,
		State:   state,
		Address: "1015 Folsom Street",
		Phone:   "123-123-1234",
		Genres:  []string{"Jazz", "Reggae", "Swing"},
	}
}

func testArtist(name string) artistParams {
	return artistParams{
		Name:   name,
		City:   "San Francisco",
		State:  "CA",
		Phone:  "326-123-5000",
		Genres: []string{"Rock n Roll"},
	}
}

func TestVenueCreateGetUpdateDelete(t *testing.T) {
	env := setupTestEnv(t)
	c := env.newClient()

	venueId, err := c.createVenue(testVenue("The Musical Hop", "San Francisco", "CA"))
	require.NoError(t, err)

	venue, err := c.getVenue(venueId)
	require.NoError(t, err)
	assert.Equal(t, "The Musical Hop", venue.Name)
	assert.Equal(t, "San Francisco", venue.City)
	assert.Equal(t, []string{"Jazz", "Reggae", "Swing"}, venue.Genres)
	assert.Empty(t, venue.PastShows)
	assert.Empty(t, venue.UpcomingShows)

	updated := testVenue("The Musical Hop", "Oakland", "CA")
	updated.Genres = []string{"Folk"}
	updated.SeekingTalent = true
	updated.SeekingDescription = "Seeking talents!"
	require.NoError(t, c.updateVenue(venueId, updated))

	venue, err = c.getVenue(venueId)
	require.NoError(t, err)
	assert.Equal(t, "Oakland", venue.City)
	assert.Equal(t, []string{"Folk"}, venue.Genres)
	assert.True(t, venue.SeekingTalent)
	assert.Equal(t, "Seeking talents!", venue.SeekingDescription)

	require.NoError(t, c.deleteVenue(venueId))

	_, err = c.getVenue(venueId)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestVenueRequiredFields(t *testing.T) {
	env := setupTestEnv(t)
	c := env.newClient()

	missingName := testVenue("", "San Francisco", "CA")
	_, err := c.createVenue(missingName)
	assert.ErrorIs(t, err, ErrUnprocessable)

	missingPhone := testVenue("The Musical Hop", "San Francisco", "CA")
	missingPhone.Phone = ""
	_, err = c.createVenue(missingPhone)
	assert.ErrorIs(t, err, ErrUnprocessable)

	venueId, err := c.createVenue(testVenue("The Musical Hop", "San Francisco", "CA"))
	require.NoError(t, err)

	err = c.updateVenue(venueId, missingName)
	assert.ErrorIs(t, err, ErrUnprocessable)
}

func TestVenueSearchCaseInsensitive(t *testing.T) {
	env := setupTestEnv(t)
	c := env.newClient()

	hopId, err := c.createVenue(testVenue("The Musical Hop", "San Francisco", "CA"))
	require.NoError(t, err)

	_, err = c.createVenue(testVenue("Example", "New York", "NY"))
	require.NoError(t, err)

	for _, term := range []string{"hop", "HOP", "hOp"} {
		res, err := c.searchVenues(term)
		require.NoError(t, err)
		require.Equal(t, 1, res.Count, "term %v", term)
		assert.Equal(t, hopId, res.Data[0].Id)
		assert.Equal(t, "The Musical Hop", res.Data[0].Name)
	}

	// An empty term is a match-all, not an error.
	res, err := c.searchVenues("")
	require.NoError(t, err)
	assert.Equal(t, 2, res.Count)

	// Zero matches is a valid result, not an error.
	res, err = c.searchVenues("zzzz")
	require.NoError(t, err)
	assert.Equal(t, 0, res.Count)
}

func TestVenueListGroupedByLocation(t *testing.T) {
	env := setupTestEnv(t)
	c := env.newClient()

	hopId, err := c.createVenue(testVenue("The Musical Hop", "San Francisco", "CA"))
	require.NoError(t, err)

	_, err = c.createVenue(testVenue("Park Square Live Music & Coffee", "San Francisco", "CA"))
	require.NoError(t, err)

	_, err = c.createVenue(testVenue("The Dueling Pianos Bar", "New York", "NY"))
	require.NoError(t, err)

	artistId, err := c.createArtist(testArtist("Guns N Petals"))
	require.NoError(t, err)

	// Two upcoming shows and one past show at The Musical Hop.
	require.NoError(t, c.createShow(artistId, hopId, testNow.Add(24*time.Hour)))
	require.NoError(t, c.createShow(artistId, hopId, testNow.Add(48*time.Hour)))
	require.NoError(t, c.createShow(artistId, hopId, testNow.Add(-24*time.Hour)))

	areas, err := c.listVenues()
	require.NoError(t, err)
	require.Len(t, areas, 2)

	// Areas are ordered by (city, state).
	assert.Equal(t, "New York", areas[0].City)
	assert.Equal(t, "NY", areas[0].State)
	require.Len(t, areas[0].Venues, 1)
	assert.EqualValues(t, 0, areas[0].Venues[0].NumUpcomingShows)

	assert.Equal(t, "San Francisco", areas[1].City)
	assert.Equal(t, "CA", areas[1].State)
	require.Len(t, areas[1].Venues, 2)

	counts := map[string]int64{}
	for _, venue := range areas[1].Venues {
		counts[venue.Name] = venue.NumUpcomingShows
	}
	assert.EqualValues(t, 2, counts["The Musical Hop"])
	assert.EqualValues(t, 0, counts["Park Square Live Music & Coffee"])
}

func TestVenueShowPartition(t *testing.T) {
	env := setupTestEnv(t)
	c := env.newClient()

	venueId, err := c.createVenue(testVenue("The Musical Hop", "San Francisco", "CA"))
	require.NoError(t, err)

	artistId, err := c.createArtist(testArtist("Guns N Petals"))
	require.NoError(t, err)

	past1 := testNow.Add(-72 * time.Hour)
	past2 := testNow.Add(-24 * time.Hour)
	future1 := testNow.Add(24 * time.Hour)
	future2 := testNow.Add(72 * time.Hour)

	// Inserted out of order to verify the chronological sort.
	require.NoError(t, c.createShow(artistId, venueId, future2))
	require.NoError(t, c.createShow(artistId, venueId, past2))
	require.NoError(t, c.createShow(artistId, venueId, future1))
	require.NoError(t, c.createShow(artistId, venueId, past1))

	// A show starting exactly at the evaluation instant is in neither bucket.
	require.NoError(t, c.createShow(artistId, venueId, testNow))

	venue, err := c.getVenue(venueId)
	require.NoError(t, err)

	require.Equal(t, 2, venue.PastShowsCount)
	require.Equal(t, 2, venue.UpcomingShowsCount)

	assert.True(t, venue.PastShows[0].StartTime.Equal(past1))
	assert.True(t, venue.PastShows[1].StartTime.Equal(past2))
	assert.True(t, venue.UpcomingShows[0].StartTime.Equal(future1))
	assert.True(t, venue.UpcomingShows[1].StartTime.Equal(future2))

	for _, show := range append(venue.PastShows, venue.UpcomingShows...) {
		assert.Equal(t, artistId, show.ArtistId)
		assert.Equal(t, "Guns N Petals", show.ArtistName)
	}
}

func TestVenueDeleteCascadesToShows(t *testing.T) {
	env := setupTestEnv(t)
	c := env.newClient()

	venue1, err := c.createVenue(testVenue("The Musical Hop", "San Francisco", "CA"))
	require.NoError(t, err)

	venue2, err := c.createVenue(testVenue("The Dueling Pianos Bar", "New York", "NY"))
	require.NoError(t, err)

	artistId, err := c.createArtist(testArtist("Guns N Petals"))
	require.NoError(t, err)

	require.NoError(t, c.createShow(artistId, venue1, testNow.Add(24*time.Hour)))
	require.NoError(t, c.createShow(artistId, venue1, testNow.Add(48*time.Hour)))
	require.NoError(t, c.createShow(artistId, venue2, testNow.Add(24*time.Hour)))

	require.NoError(t, c.deleteVenue(venue1))

	// Only the deleted venue's shows are removed.
	shows, err := c.listShows()
	require.NoError(t, err)
	require.Len(t, shows, 1)
	assert.Equal(t, venue2, shows[0].VenueId)

	_, err = c.getVenue(venue1)
	assert.ErrorIs(t, err, ErrNotFound)

	if err := c.deleteVenue(venue1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("deleting a missing venue should report not found, got %v", err)
	}
}
