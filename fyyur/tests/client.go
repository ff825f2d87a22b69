package tests

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type httpTestRequest struct {
	api http.Handler

	method   string
	endpoint string
	json     interface{}
	body     io.Reader
}

func newHttpTestRequest(api http.Handler, method, endpoint string) *httpTestRequest {
	return &httpTestRequest{
		api:      api,
		method:   method,
		endpoint: endpoint,
		json:     nil,
		body:     nil,
	}
}

func (r *httpTestRequest) Json(data interface{}) *httpTestRequest {
	r.json = data
	return r
}

var (
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("conflict")
	ErrUnprocessable = errors.New("unprocessable")
)

// response body will be parsed into result, passing nil indicates that no result is returned.
func (r *httpTestRequest) Do(result interface{}) error {
	if r.json != nil {
		body := new(bytes.Buffer)
		err := json.NewEncoder(body).Encode(r.json)
		if err != nil {
			return fmt.Errorf("error encoding json body for endpoint %v: %w", r.endpoint, err)
		}
		r.body = body
	}

	req := httptest.NewRequest(r.method, r.endpoint, r.body)

	w := httptest.NewRecorder()

	r.api.ServeHTTP(w, req)

	res := w.Result()
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		switch res.StatusCode {
		case http.StatusNotFound:
			return ErrNotFound
		case http.StatusConflict:
			return ErrConflict
		case http.StatusUnprocessableEntity:
			return ErrUnprocessable
		}
		return fmt.Errorf("%v request to endpoint %v returned status %d, content '%v'", r.method, r.endpoint, res.StatusCode, w.Body.String())
	}

	if result != nil {
		err := json.NewDecoder(res.Body).Decode(result)
		if err != nil {
			return fmt.Errorf("error parsing %v response from endpoint %v: %w", r.method, r.endpoint, err)
		}
	}

	return nil
}

type client struct {
	api chi.Router
}

func (c *client) Get(endpoint string) *httpTestRequest {
	return newHttpTestRequest(c.api, "GET", endpoint)
}

func (c *client) Post(endpoint string) *httpTestRequest {
	return newHttpTestRequest(c.api, "POST", endpoint)
}

func (c *client) Put(endpoint string) *httpTestRequest {
	return newHttpTestRequest(c.api, "PUT", endpoint)
}

func (c *client) Delete(endpoint string) *httpTestRequest {
	return newHttpTestRequest(c.api, "DELETE", endpoint)
}

type venueParams struct {
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

type artistParams struct {
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

type listEntry struct {
	Id               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	NumUpcomingShows int64     `json:"num_upcoming_shows"`
}

type area struct {
	City   string      `json:"city"`
	State  string      `json:"state"`
	Venues []listEntry `json:"venues"`
}

type searchResults struct {
	Count int         `json:"count"`
	Data  []listEntry `json:"data"`
}

type showSummary struct {
	ArtistId        uuid.UUID `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	VenueId         uuid.UUID `json:"venue_id"`
	VenueName       string    `json:"venue_name"`
	VenueImageLink  string    `json:"venue_image_link"`
	StartTime       time.Time `json:"start_time"`
}

type venueDetail struct {
	Id                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	City               string    `json:"city"`
	State              string    `json:"state"`
	Address            string    `json:"address"`
	Phone              string    `json:"phone"`
	Genres             []string  `json:"genres"`
	SeekingTalent      bool      `json:"seeking_talent"`
	SeekingDescription string    `json:"seeking_description"`

	PastShows          []showSummary `json:"past_shows"`
	UpcomingShows      []showSummary `json:"upcoming_shows"`
	PastShowsCount     int           `json:"past_shows_count"`
	UpcomingShowsCount int           `json:"upcoming_shows_count"`
}

type artistDetail struct {
	Id                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	City               string    `json:"city"`
	State              string    `json:"state"`
	Phone              string    `json:"phone"`
	Genres             []string  `json:"genres"`
	SeekingVenue       bool      `json:"seeking_venue"`
	SeekingDescription string    `json:"seeking_description"`

	PastShows          []showSummary `json:"past_shows"`
	UpcomingShows      []showSummary `json:"upcoming_shows"`
	PastShowsCount     int           `json:"past_shows_count"`
	UpcomingShowsCount int           `json:"upcoming_shows_count"`
}

func (c *client) createVenue(params venueParams) (uuid.UUID, error) {
	var res struct {
		Id uuid.UUID `json:"id"`
	}
	err := c.Post("/venues/").Json(params).Do(&res)
	return res.Id, err
}

func (c *client) listVenues() ([]area, error) {
	var res []area
	err := c.Get("/venues/").Do(&res)
	return res, err
}

func (c *client) searchVenues(term string) (searchResults, error) {
	var res searchResults
	err := c.Get(fmt.Sprintf("/venues/search?term=%v", term)).Do(&res)
	return res, err
}

func (c *client) getVenue(id uuid.UUID) (venueDetail, error) {
	var res venueDetail
	err := c.Get(fmt.Sprintf("/venues/%v", id)).Do(&res)
	return res, err
}

func (c *client) updateVenue(id uuid.UUID, params venueParams) error {
	return c.Put(fmt.Sprintf("/venues/%v", id)).Json(params).Do(nil)
}

func (c *client) deleteVenue(id uuid.UUID) error {
	return c.Delete(fmt.Sprintf("/venues/%v", id)).Do(nil)
}

func (c *client) createArtist(params artistParams) (uuid.UUID, error) {
	var res struct {
		Id uuid.UUID `json:"id"`
	}
	err := c.Post("/artists/").Json(params).Do(&res)
	return res.Id, err
}

func (c *client) listArtists() ([]listEntry, error) {
	var res []listEntry
	err := c.Get("/artists/").Do(&res)
	return res, err
}

func (c *client) searchArtists(term string) (searchResults, error) {
	var res searchResults
	err := c.Get(fmt.Sprintf("/artists/search?term=%v", term)).Do(&res)
	return res, err
}

func (c *client) getArtist(id uuid.UUID) (artistDetail, error) {
	var res artistDetail
	err := c.Get(fmt.Sprintf("/artists/%v", id)).Do(&res)
	return res, err
}

func (c *client) updateArtist(id uuid.UUID, params artistParams) error {
	return c.Put(fmt.Sprintf("/artists/%v", id)).Json(params).Do(nil)
}

func (c *client) deleteArtist(id uuid.UUID) error {
	return c.Delete(fmt.Sprintf("/artists/%v", id)).Do(nil)
}

func (c *client) listShows() ([]showSummary, error) {
	var res []showSummary
	err := c.Get("/shows/").Do(&res)
	return res, err
}

func (c *client) createShow(artistId, venueId uuid.UUID, startTime time.Time) error {
	body := map[string]interface{}{
		"artist_id": artistId, "venue_id": venueId, "start_time": startTime,
	}
	return c.Post("/shows/").Json(body).Do(nil)
}
