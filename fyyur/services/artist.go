package services

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"fsnd_platform/fyyur/schema"
	"fsnd_platform/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ArtistService struct {
	db  *gorm.DB
	now func() time.Time
}

func (s *ArtistService) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", s.List)
	r.Get("/search", s.Search)
	r.Post("/", s.Create)

	r.Route("/{artist_id}", func(r chi.Router) {
		r.Get("/", s.Get)
		r.Put("/", s.Update)
		r.Delete("/", s.Delete)
	})

	return r
}

type artistListEntry struct {
	Id               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	NumUpcomingShows int64     `json:"num_upcoming_shows"`
}

func (s *ArtistService) List(w http.ResponseWriter, r *http.Request) {
	var artists []schema.Artist
	result := s.db.Find(&artists)
	if result.Error != nil {
		slog.Error("sql error listing artists", "error", result.Error)
		http.Error(w, schema.ErrDbAccessFailed.Error(), http.StatusInternalServerError)
		return
	}

	entries := make([]artistListEntry, 0, len(artists))
	for _, artist := range artists {
		entries = append(entries, artistListEntry{Id: artist.Id, Name: artist.Name})
	}

	utils.WriteJsonResponse(w, entries)
}

type artistSearchResponse struct {
	Count int               `json:"count"`
	Data  []artistListEntry `json:"data"`
}

func (s *ArtistService) Search(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("term")
	now := s.now()

	var artists []schema.Artist
	result := s.db.Find(&artists, "lower(name) LIKE ?", "%"+strings.ToLower(term)+"%")
	if result.Error != nil {
		slog.Error("sql error searching artists", "term", term, "error", result.Error)
		http.Error(w, schema.ErrDbAccessFailed.Error(), http.StatusInternalServerError)
		return
	}

	entries := make([]artistListEntry, 0, len(artists))
	for _, artist := range artists {
		count, err := countUpcomingShows(s.db, byArtist, artist.Id, now)
		if err != nil {
			http.Error(w, err.Error(), utils.GetResponseCode(err))
			return
		}
		entries = append(entries, artistListEntry{Id: artist.Id, Name: artist.Name, NumUpcomingShows: count})
	}

	utils.WriteJsonResponse(w, artistSearchResponse{Count: len(entries), Data: entries})
}

type venueShowSummary struct {
	VenueId        uuid.UUID `json:"venue_id"`
	VenueName      string    `json:"venue_name"`
	VenueImageLink string    `json:"venue_image_link"`
	StartTime      time.Time `json:"start_time"`
}

type artistDetailResponse struct {
	Id                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	City               string    `json:"city"`
	State              string    `json:"state"`
	Phone              string    `json:"phone"`
	Genres             []string  `json:"genres"`
	Website            string    `json:"website"`
	SeekingVenue       bool      `json:"seeking_venue"`
	SeekingDescription string    `json:"seeking_description"`
	ImageLink          string    `json:"image_link"`
	FacebookLink       string    `json:"facebook_link"`

	PastShows          []venueShowSummary `json:"past_shows"`
	UpcomingShows      []venueShowSummary `json:"upcoming_shows"`
	PastShowsCount     int                `json:"past_shows_count"`
	UpcomingShowsCount int                `json:"upcoming_shows_count"`
}

func venueSummaries(shows []schema.Show) []venueShowSummary {
	summaries := make([]venueShowSummary, 0, len(shows))
	for _, show := range shows {
		summary := venueShowSummary{VenueId: show.VenueId, StartTime: show.StartTime}
		if show.Venue != nil {
			summary.VenueName = show.Venue.Name
			summary.VenueImageLink = show.Venue.ImageLink
		}
		summaries = append(summaries, summary)
	}
	return summaries
}

func (s *ArtistService) Get(w http.ResponseWriter, r *http.Request) {
	artistId, err := utils.URLParamUUID(r, "artist_id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	artist, err := schema.GetArtist(artistId, s.db)
	if err != nil {
		if errors.Is(err, schema.ErrArtistNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	past, upcoming, err := partitionShows(s.db, byArtist, artistId, s.now())
	if err != nil {
		http.Error(w, err.Error(), utils.GetResponseCode(err))
		return
	}

	res := artistDetailResponse{
		Id:                 artist.Id,
		Name:               artist.Name,
		City:               artist.City,
		State:              artist.State,
		Phone:              artist.Phone,
		Genres:             schema.DecodeGenres(artist.Genres),
		Website:            artist.Website,
		SeekingVenue:       artist.SeekingVenue,
		SeekingDescription: artist.SeekingDescription,
		ImageLink:          artist.ImageLink,
		FacebookLink:       artist.FacebookLink,
		PastShows:          venueSummaries(past),
		UpcomingShows:      venueSummaries(upcoming),
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}

	utils.WriteJsonResponse(w, res)
}

type artistRequest struct {
	Name               string   `json:"name"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Phone              string   `json:"phone"`
	Genres             []string `json:"genres"`
	Website            string   `json:"website"`
	SeekingVenue       bool     `json:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description"`
	ImageLink          string   `json:"image_link"`
	FacebookLink       string   `json:"facebook_link"`
}

func (p *artistRequest) validate() error {
	required := map[string]string{
		"name": p.Name, "city": p.City, "state": p.State, "phone": p.Phone,
	}
	for field, value := range required {
		if value == "" {
			return fmt.Errorf("artist field '%v' must be specified", field)
		}
	}
	return nil
}

func (s *ArtistService) Create(w http.ResponseWriter, r *http.Request) {
	var params artistRequest
	if !utils.ParseRequestBody(w, r, &params) {
		return
	}

	if err := params.validate(); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	newArtist := schema.Artist{
		Id:                 uuid.New(),
		Name:               params.Name,
		City:               params.City,
		State:              params.State,
		Phone:              params.Phone,
		Genres:             schema.EncodeGenres(params.Genres),
		Website:            params.Website,
		SeekingVenue:       params.SeekingVenue,
		SeekingDescription: params.SeekingDescription,
		ImageLink:          params.ImageLink,
		FacebookLink:       params.FacebookLink,
	}

	result := s.db.Create(&newArtist)
	if result.Error != nil {
		slog.Error("sql error creating artist", "error", result.Error)
		http.Error(w, schema.ErrDbAccessFailed.Error(), http.StatusInternalServerError)
		return
	}

	slog.Info("artist created", "artist_id", newArtist.Id, "name", newArtist.Name)

	utils.WriteJsonResponse(w, createResponse{Id: newArtist.Id})
}

func (s *ArtistService) Update(w http.ResponseWriter, r *http.Request) {
	artistId, err := utils.URLParamUUID(r, "artist_id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var params artistRequest
	if !utils.ParseRequestBody(w, r, &params) {
		return
	}

	if err := params.validate(); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	err = s.db.Transaction(func(txn *gorm.DB) error {
		artist, err := schema.GetArtist(artistId, txn)
		if err != nil {
			if errors.Is(err, schema.ErrArtistNotFound) {
				return utils.CodedError(err, http.StatusNotFound)
			}
			return utils.CodedError(err, http.StatusInternalServerError)
		}

		artist.Name = params.Name
		artist.City = params.City
		artist.State = params.State
		artist.Phone = params.Phone
		artist.Genres = schema.EncodeGenres(params.Genres)
		artist.Website = params.Website
		artist.SeekingVenue = params.SeekingVenue
		artist.SeekingDescription = params.SeekingDescription
		artist.ImageLink = params.ImageLink
		artist.FacebookLink = params.FacebookLink

		result := txn.Save(&artist)
		if result.Error != nil {
			slog.Error("sql error updating artist", "artist_id", artistId, "error", result.Error)
			return utils.CodedError(schema.ErrDbAccessFailed, http.StatusInternalServerError)
		}

		return nil
	})

	if err != nil {
		http.Error(w, fmt.Sprintf("error updating artist: %v", err), utils.GetResponseCode(err))
		return
	}

	slog.Info("artist updated", "artist_id", artistId)

	utils.WriteSuccess(w)
}

// Delete removes an artist along with every show the artist is booked for,
// in one transaction.
func (s *ArtistService) Delete(w http.ResponseWriter, r *http.Request) {
	artistId, err := utils.URLParamUUID(r, "artist_id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err = s.db.Transaction(func(txn *gorm.DB) error {
		if err := checkArtistExists(txn, artistId); err != nil {
			return err
		}

		result := txn.Where("artist_id = ?", artistId).Delete(&schema.Show{})
		if result.Error != nil {
			slog.Error("sql error deleting artist shows", "artist_id", artistId, "error", result.Error)
			return utils.CodedError(schema.ErrDbAccessFailed, http.StatusInternalServerError)
		}

		result = txn.Delete(&schema.Artist{}, "id = ?", artistId)
		if result.Error != nil {
			slog.Error("sql error deleting artist", "artist_id", artistId, "error", result.Error)
			return utils.CodedError(schema.ErrDbAccessFailed, http.StatusInternalServerError)
		}

		return nil
	})

	if err != nil {
		http.Error(w, fmt.Sprintf("error deleting artist: %v", err), utils.GetResponseCode(err))
		return
	}

	slog.Info("artist deleted", "artist_id", artistId)

	utils.WriteSuccess(w)
}
