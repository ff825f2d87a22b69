package services

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"fsnd_platform/fyyur/schema"
	"fsnd_platform/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// showFK is the show column a temporal query is keyed on. Only these two
// constants are ever interpolated into queries.
type showFK string

const (
	byVenue  showFK = "venue_id"
	byArtist showFK = "artist_id"
)

func countUpcomingShows(db *gorm.DB, fk showFK, id uuid.UUID, now time.Time) (int64, error) {
	var count int64
	result := db.Model(&schema.Show{}).Where(string(fk)+" = ? AND start_time > ?", id, now).Count(&count)
	if result.Error != nil {
		slog.Error("sql error counting upcoming shows", "column", fk, "id", id, "error", result.Error)
		return 0, utils.CodedError(schema.ErrDbAccessFailed, http.StatusInternalServerError)
	}
	return count, nil
}

// partitionShows splits an entity's shows into past and upcoming relative to
// now. The comparisons are strict, a show starting exactly at now lands in
// neither bucket. Both buckets are sorted ascending by start time.
func partitionShows(db *gorm.DB, fk showFK, id uuid.UUID, now time.Time) (past, upcoming []schema.Show, err error) {
	result := db.Preload("Artist").Preload("Venue").Order("start_time asc").
		Find(&past, string(fk)+" = ? AND start_time < ?", id, now)
	if result.Error != nil {
		slog.Error("sql error listing past shows", "column", fk, "id", id, "error", result.Error)
		return nil, nil, utils.CodedError(schema.ErrDbAccessFailed, http.StatusInternalServerError)
	}

	result = db.Preload("Artist").Preload("Venue").Order("start_time asc").
		Find(&upcoming, string(fk)+" = ? AND start_time > ?", id, now)
	if result.Error != nil {
		slog.Error("sql error listing upcoming shows", "column", fk, "id", id, "error", result.Error)
		return nil, nil, utils.CodedError(schema.ErrDbAccessFailed, http.StatusInternalServerError)
	}

	return past, upcoming, nil
}

func checkVenueExists(txn *gorm.DB, venueId uuid.UUID) error {
	if _, err := schema.GetVenue(venueId, txn); err != nil {
		if errors.Is(err, schema.ErrVenueNotFound) {
			return utils.CodedError(err, http.StatusNotFound)
		}
		return utils.CodedError(err, http.StatusInternalServerError)
	}
	return nil
}

func checkArtistExists(txn *gorm.DB, artistId uuid.UUID) error {
	if _, err := schema.GetArtist(artistId, txn); err != nil {
		if errors.Is(err, schema.ErrArtistNotFound) {
			return utils.CodedError(err, http.StatusNotFound)
		}
		return utils.CodedError(err, http.StatusInternalServerError)
	}
	return nil
}
