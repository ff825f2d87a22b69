package services

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"fsnd_platform/fyyur/schema"
	"fsnd_platform/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ShowService struct {
	db *gorm.DB
}

func (s *ShowService) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", s.List)
	r.Post("/", s.Create)

	return r
}

type showListEntry struct {
	ArtistId        uuid.UUID `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	VenueId         uuid.UUID `json:"venue_id"`
	VenueName       string    `json:"venue_name"`
	StartTime       time.Time `json:"start_time"`
}

func (s *ShowService) List(w http.ResponseWriter, r *http.Request) {
	var shows []schema.Show
	result := s.db.Preload("Artist").Preload("Venue").Order("start_time asc").Find(&shows)
	if result.Error != nil {
		slog.Error("sql error listing shows", "error", result.Error)
		http.Error(w, schema.ErrDbAccessFailed.Error(), http.StatusInternalServerError)
		return
	}

	entries := make([]showListEntry, 0, len(shows))
	for _, show := range shows {
		entry := showListEntry{ArtistId: show.ArtistId, VenueId: show.VenueId, StartTime: show.StartTime}
		if show.Artist != nil {
			entry.ArtistName = show.Artist.Name
			entry.ArtistImageLink = show.Artist.ImageLink
		}
		if show.Venue != nil {
			entry.VenueName = show.Venue.Name
		}
		entries = append(entries, entry)
	}

	utils.WriteJsonResponse(w, entries)
}

type createShowRequest struct {
	ArtistId  uuid.UUID `json:"artist_id"`
	VenueId   uuid.UUID `json:"venue_id"`
	StartTime time.Time `json:"start_time"`
}

// Create books an artist at a venue. Both parties must exist and the
// (artist, venue, start time) triple must be new, all verified in the same
// transaction as the insert.
func (s *ShowService) Create(w http.ResponseWriter, r *http.Request) {
	var params createShowRequest
	if !utils.ParseRequestBody(w, r, &params) {
		return
	}

	if params.ArtistId == uuid.Nil || params.VenueId == uuid.Nil || params.StartTime.IsZero() {
		http.Error(w, "artist_id, venue_id, and start_time must be specified", http.StatusUnprocessableEntity)
		return
	}

	err := s.db.Transaction(func(txn *gorm.DB) error {
		if err := checkArtistExists(txn, params.ArtistId); err != nil {
			return err
		}
		if err := checkVenueExists(txn, params.VenueId); err != nil {
			return err
		}

		var existing schema.Show
		result := txn.Limit(1).Find(&existing, "artist_id = ? AND venue_id = ? AND start_time = ?",
			params.ArtistId, params.VenueId, params.StartTime)
		if result.Error != nil {
			slog.Error("sql error checking for duplicate show", "error", result.Error)
			return utils.CodedError(schema.ErrDbAccessFailed, http.StatusInternalServerError)
		}
		if result.RowsAffected != 0 {
			return utils.CodedError(fmt.Errorf("show for artist %v at venue %v starting %v already exists",
				params.ArtistId, params.VenueId, params.StartTime), http.StatusConflict)
		}

		newShow := schema.Show{ArtistId: params.ArtistId, VenueId: params.VenueId, StartTime: params.StartTime}

		result = txn.Create(&newShow)
		if result.Error != nil {
			slog.Error("sql error creating show", "error", result.Error)
			return utils.CodedError(schema.ErrDbAccessFailed, http.StatusInternalServerError)
		}

		return nil
	})

	if err != nil {
		http.Error(w, fmt.Sprintf("error creating show: %v", err), utils.GetResponseCode(err))
		return
	}

	slog.Info("show created", "artist_id", params.ArtistId, "venue_id", params.VenueId, "start_time", params.StartTime)

	utils.WriteSuccess(w)
}
