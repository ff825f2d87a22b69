package services

import (
	"log"
	"net/http"
	"os"
	"time"

	"fsnd_platform/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"gorm.io/gorm"
)

// Fyyur bundles the venue, artist, and show services over a shared database
// handle and clock. The clock is injectable so temporal queries can be tested
// against a fixed instant.
type Fyyur struct {
	venue  VenueService
	artist ArtistService
	show   ShowService
}

func NewFyyur(db *gorm.DB, now func() time.Time) Fyyur {
	if now == nil {
		now = time.Now
	}

	return Fyyur{
		venue:  VenueService{db: db, now: now},
		artist: ArtistService{db: db, now: now},
		show:   ShowService{db: db},
	}
}

func (f *Fyyur) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger: log.New(os.Stderr, "", log.LstdFlags), NoColor: false,
	}))

	r.Mount("/venues", f.venue.Routes())
	r.Mount("/artists", f.artist.Routes())
	r.Mount("/shows", f.show.Routes())

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.WriteSuccess(w)
	})

	return r
}
