package tests

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowList(t *testing.T) {
	env := setupTestEnv(t)
	c := env.newClient()

	venueId, err := c.createVenue(testVenue("The Musical Hop", "San Francisco", "CA"))
	require.NoError(t, err)

	artistId, err := c.createArtist(testArtist("Guns N Petals"))
	require.NoError(t, err)

	first := testNow.Add(-24 * time.Hour)
	second := testNow.Add(24 * time.Hour)

	require.NoError(t, c.createShow(artistId, venueId, second))
	require.NoError(t, c.createShow(artistId, venueId, first))

	shows, err := c.listShows()
	require.NoError(t, err)
	require.Len(t, shows, 2)

	assert.True(t, shows[0].StartTime.Equal(first))
	assert.True(t, shows[1].StartTime.Equal(second))
	assert.Equal(t, "Guns N Petals", shows[0].ArtistName)
	assert.Equal(t, "The Musical Hop", shows[0].VenueName)
}

func TestShowRequiresExistingParents(t *testing.T) {
	env := setupTestEnv(t)
	c := env.newClient()

	venueId, err := c.createVenue(testVenue("The Musical Hop", "San Francisco", "CA"))
	require.NoError(t, err)

	artistId, err := c.createArtist(testArtist("Guns N Petals"))
	require.NoError(t, err)

	err = c.createShow(uuid.New(), venueId, testNow.Add(24*time.Hour))
	assert.ErrorIs(t, err, ErrNotFound)

	err = c.createShow(artistId, uuid.New(), testNow.Add(24*time.Hour))
	assert.ErrorIs(t, err, ErrNotFound)

	// Neither failed attempt left a show behind.
	shows, err := c.listShows()
	require.NoError(t, err)
	assert.Empty(t, shows)
}

func TestDuplicateShowRejected(t *testing.T) {
	env := setupTestEnv(t)
	c := env.newClient()

	venueId, err := c.createVenue(testVenue("The Musical Hop", "San Francisco", "CA"))
	require.NoError(t, err)

	artistId, err := c.createArtist(testArtist("Guns N Petals"))
	require.NoError(t, err)

	startTime := testNow.Add(24 * time.Hour)
	require.NoError(t, c.createShow(artistId, venueId, startTime))

	err = c.createShow(artistId, venueId, startTime)
	assert.ErrorIs(t, err, ErrConflict)

	shows, err := c.listShows()
	require.NoError(t, err)
	assert.Len(t, shows, 1)

	// The same pair at a different time is a different show.
	require.NoError(t, c.createShow(artistId, venueId, startTime.Add(time.Hour)))

	shows, err = c.listShows()
	require.NoError(t, err)
	assert.Len(t, shows, 2)
}
