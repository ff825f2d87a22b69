package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenresRoundTrip(t *testing.T) {
	genres := []string{"Jazz", "Reggae", "Swing"}

	encoded := EncodeGenres(genres)
	assert.Equal(t, "Jazz,Reggae,Swing", encoded)
	assert.Equal(t, genres, DecodeGenres(encoded))
}

func TestGenresEmpty(t *testing.T) {
	assert.Equal(t, "", EncodeGenres(nil))
	assert.Equal(t, "", EncodeGenres([]string{}))

	// An empty column must decode to an empty list, not [""].
	assert.Equal(t, []string{}, DecodeGenres(""))
}

func TestGenresSingle(t *testing.T) {
	assert.Equal(t, []string{"Folk"}, DecodeGenres(EncodeGenres([]string{"Folk"})))
}
