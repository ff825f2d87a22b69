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

type VenueService struct {
	db  *gorm.DB
	now func() time.Time
}

func (s *VenueService) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", s.List)
	r.Get("/search", s.Search)
	r.Post("/", s.Create)

	r.Route("/{venue_id}", func(r chi.Router) {
		r.Get("/", s.Get)
		r.Put("/", s.Update)
		r.Delete("/", s.Delete)
	})

	return r
}

type venueListEntry struct {
	Id               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	NumUpcomingShows int64     `json:"num_upcoming_shows"`
}

type venueArea struct {
	City   string           `json:"city"`
	State  string           `json:"state"`
	Venues []venueListEntry `json:"venues"`
}

// List groups venues by location. Venues within an area are matched by city
// only, the state is the one reported for the distinct (city, state) pair.
func (s *VenueService) List(w http.ResponseWriter, r *http.Request) {
	now := s.now()

	var locations []struct {
		City  string
		State string
	}
	result := s.db.Model(&schema.Venue{}).Distinct("city", "state").Order("city, state").Find(&locations)
	if result.Error != nil {
		slog.Error("sql error listing venue locations", "error", result.Error)
		http.Error(w, schema.ErrDbAccessFailed.Error(), http.StatusInternalServerError)
		return
	}

	areas := make([]venueArea, 0, len(locations))
	for _, location := range locations {
		var venues []schema.Venue
		result := s.db.Find(&venues, "city = ?", location.City)
		if result.Error != nil {
			slog.Error("sql error listing venues in city", "city", location.City, "error", result.Error)
			http.Error(w, schema.ErrDbAccessFailed.Error(), http.StatusInternalServerError)
			return
		}

		entries := make([]venueListEntry, 0, len(venues))
		for _, venue := range venues {
			count, err := countUpcomingShows(s.db, byVenue, venue.Id, now)
			if err != nil {
				http.Error(w, err.Error(), utils.GetResponseCode(err))
				return
			}
			entries = append(entries, venueListEntry{Id: venue.Id, Name: venue.Name, NumUpcomingShows: count})
		}

		areas = append(areas, venueArea{City: location.City, State: location.State, Venues: entries})
	}

	utils.WriteJsonResponse(w, areas)
}

type venueSearchResponse struct {
	Count int              `json:"count"`
	Data  []venueListEntry `json:"data"`
}

// Search matches the term as a case insensitive substring of venue names. An
// empty term matches every venue.
func (s *VenueService) Search(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("term")
	now := s.now()

	var venues []schema.Venue
	result := s.db.Find(&venues, "lower(name) LIKE ?", "%"+strings.ToLower(term)+"%")
	if result.Error != nil {
		slog.Error("sql error searching venues", "term", term, "error", result.Error)
		http.Error(w, schema.ErrDbAccessFailed.Error(), http.StatusInternalServerError)
		return
	}

	entries := make([]venueListEntry, 0, len(venues))
	for _, venue := range venues {
		count, err := countUpcomingShows(s.db, byVenue, venue.Id, now)
		if err != nil {
			http.Error(w, err.Error(), utils.GetResponseCode(err))
			return
		}
		entries = append(entries, venueListEntry{Id: venue.Id, Name: venue.Name, NumUpcomingShows: count})
	}

	utils.WriteJsonResponse(w, venueSearchResponse{Count: len(entries), Data: entries})
}

type artistShowSummary struct {
	ArtistId        uuid.UUID `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

type venueDetailResponse struct {
	Id                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	City               string    `json:"city"`
	State              string    `json:"state"`
	Address            string    `json:"address"`
	Phone              string    `json:"phone"`
	Genres             []string  `json:"genres"`
	Website            string    `json:"website"`
	SeekingTalent      bool      `json:"seeking_talent"`
	SeekingDescription string    `json:"seeking_description"`
	ImageLink          string    `json:"image_link"`
	FacebookLink       string    `json:"facebook_link"`

	PastShows          []artistShowSummary `json:"past_shows"`
	UpcomingShows      []artistShowSummary `json:"upcoming_shows"`
	PastShowsCount     int                 `json:"past_shows_count"`
	UpcomingShowsCount int                 `json:"upcoming_shows_count"`
}

func artistSummaries(shows []schema.Show) []artistShowSummary {
	summaries := make([]artistShowSummary, 0, len(shows))
	for _, show := range shows {
		summary := artistShowSummary{ArtistId: show.ArtistId, StartTime: show.StartTime}
		if show.Artist != nil {
			summary.ArtistName = show.Artist.Name
			summary.ArtistImageLink = show.Artist.ImageLink
		}
		summaries = append(summaries, summary)
	}
	return summaries
}

func (s *VenueService) Get(w http.ResponseWriter, r *http.Request) {
	venueId, err := utils.URLParamUUID(r, "venue_id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	venue, err := schema.GetVenue(venueId, s.db)
	if err != nil {
		if errors.Is(err, schema.ErrVenueNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	past, upcoming, err := partitionShows(s.db, byVenue, venueId, s.now())
	if err != nil {
		http.Error(w, err.Error(), utils.GetResponseCode(err))
		return
	}

	res := venueDetailResponse{
		Id:                 venue.Id,
		Name:               venue.Name,
		City:               venue.City,
		State:              venue.State,
		Address:            venue.Address,
		Phone:              venue.Phone,
		Genres:             schema.DecodeGenres(venue.Genres),
		Website:            venue.Website,
		SeekingTalent:      venue.SeekingTalent,
		SeekingDescription: venue.SeekingDescription,
		ImageLink:          venue.ImageLink,
		FacebookLink:       venue.FacebookLink,
		PastShows:          artistSummaries(past),
		UpcomingShows:      artistSummaries(upcoming),
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}

	utils.WriteJsonResponse(w, res)
}

type venueRequest struct {
	Name               string   `json:"name"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Address            string   `json:"address"`
	Phone              string   `json:"phone"`
	Genres             []string `json:"genres"`
	Website            string   `json:"website"`
	SeekingTalent      bool     `json:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description"`
	ImageLink          string   `json:"image_link"`
	FacebookLink       string   `json:"facebook_link"`
}

func (p *venueRequest) validate() error {
	required := map[string]string{
		"name": p.Name, "city": p.City, "state": p.State, "address": p.Address, "phone": p.Phone,
	}
	for field, value := range required {
		if value == "" {
			return fmt.Errorf("venue field '%v' must be specified", field)
		}
	}
	return nil
}

type createResponse struct {
	Id uuid.UUID `json:"id"`
}

func (s *VenueService) Create(w http.ResponseWriter, r *http.Request) {
	var params venueRequest
	if !utils.ParseRequestBody(w, r, &params) {
		return
	}

	if err := params.validate(); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	newVenue := schema.Venue{
		Id:                 uuid.New(),
		Name:               params.Name,
		City:               params.City,
		State:              params.State,
		Address:            params.Address,
		Phone:              params.Phone,
		Genres:             schema.EncodeGenres(params.Genres),
		Website:            params.Website,
		SeekingTalent:      params.SeekingTalent,
		SeekingDescription: params.SeekingDescription,
		ImageLink:          params.ImageLink,
		FacebookLink:       params.FacebookLink,
	}

	result := s.db.Create(&newVenue)
	if result.Error != nil {
		slog.Error("sql error creating venue", "error", result.Error)
		http.Error(w, schema.ErrDbAccessFailed.Error(), http.StatusInternalServerError)
		return
	}

	slog.Info("venue created", "venue_id", newVenue.Id, "name", newVenue.Name)

	utils.WriteJsonResponse(w, createResponse{Id: newVenue.Id})
}

func (s *VenueService) Update(w http.ResponseWriter, r *http.Request) {
	venueId, err := utils.URLParamUUID(r, "venue_id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var params venueRequest
	if !utils.ParseRequestBody(w, r, &params) {
		return
	}

	if err := params.validate(); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	err = s.db.Transaction(func(txn *gorm.DB) error {
		venue, err := schema.GetVenue(venueId, txn)
		if err != nil {
			if errors.Is(err, schema.ErrVenueNotFound) {
				return utils.CodedError(err, http.StatusNotFound)
			}
			return utils.CodedError(err, http.StatusInternalServerError)
		}

		venue.Name = params.Name
		venue.City = params.City
		venue.State = params.State
		venue.Address = params.Address
		venue.Phone = params.Phone
		venue.Genres = schema.EncodeGenres(params.Genres)
		venue.Website = params.Website
		venue.SeekingTalent = params.SeekingTalent
		venue.SeekingDescription = params.SeekingDescription
		venue.ImageLink = params.ImageLink
		venue.FacebookLink = params.FacebookLink

		result := txn.Save(&venue)
		if result.Error != nil {
			slog.Error("sql error updating venue", "venue_id", venueId, "error", result.Error)
			return utils.CodedError(schema.ErrDbAccessFailed, http.StatusInternalServerError)
		}

		return nil
	})

	if err != nil {
		http.Error(w, fmt.Sprintf("error updating venue: %v", err), utils.GetResponseCode(err))
		return
	}

	slog.Info("venue updated", "venue_id", venueId)

	utils.WriteSuccess(w)
}

// Delete removes a venue and every show booked at it. The cascade and the
// parent delete run in one transaction so a failure leaves both intact.
func (s *VenueService) Delete(w http.ResponseWriter, r *http.Request) {
	venueId, err := utils.URLParamUUID(r, "venue_id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err = s.db.Transaction(func(txn *gorm.DB) error {
		if err := checkVenueExists(txn, venueId); err != nil {
			return err
		}

		result := txn.Where("venue_id = ?", venueId).Delete(&schema.Show{})
		if result.Error != nil {
			slog.Error("sql error deleting venue shows", "venue_id", venueId, "error", result.Error)
			return utils.CodedError(schema.ErrDbAccessFailed, http.StatusInternalServerError)
		}

		result = txn.Delete(&schema.Venue{}, "id = ?", venueId)
		if result.Error != nil {
			slog.Error("sql error deleting venue", "venue_id", venueId, "error", result.Error)
			return utils.CodedError(schema.ErrDbAccessFailed, http.StatusInternalServerError)
		}

		return nil
	})

	if err != nil {
		http.Error(w, fmt.Sprintf("error deleting venue: %v", err), utils.GetResponseCode(err))
		return
	}

	slog.Info("venue deleted", "venue_id", venueId)

	utils.WriteSuccess(w)
}
