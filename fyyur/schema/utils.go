package schema

import (
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrVenueNotFound  = errors.New("venue not found")
	ErrArtistNotFound = errors.New("artist not found")
	ErrDbAccessFailed = errors.New("db access failed")
)

func GetVenue(venueId uuid.UUID, db *gorm.DB) (Venue, error) {
	var venue Venue

	result := db.First(&venue, "id = ?", venueId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return venue, ErrVenueNotFound
		}
		slog.Error("sql error in get venue", "venue_id", venueId, "error", result.Error)
		return venue, ErrDbAccessFailed
	}

	return venue, nil
}

func GetArtist(artistId uuid.UUID, db *gorm.DB) (Artist, error) {
	var artist Artist

	result := db.First(&artist, "id = ?", artistId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return artist, ErrArtistNotFound
		}
		slog.Error("sql error in get artist", "artist_id", artistId, "error", result.Error)
		return artist, ErrDbAccessFailed
	}

	return artist, nil
}
