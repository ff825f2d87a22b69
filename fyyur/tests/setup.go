package tests

import (
	"testing"
	"time"

	"fsnd_platform/fyyur/schema"
	"fsnd_platform/fyyur/services"

	"github.com/go-chi/chi/v5"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// testNow is the fixed evaluation instant used for every temporal query in
// the tests.
var testNow = time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

type testEnv struct {
	fyyur services.Fyyur
	api   chi.Router
	db    *gorm.DB
}

func setupTestEnv(t *testing.T) *testEnv {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatal(err)
	}

	err = db.AutoMigrate(&schema.Venue{}, &schema.Artist{}, &schema.Show{})
	if err != nil {
		t.Fatal(err)
	}

	fyyur := services.NewFyyur(db, func() time.Time { return testNow })

	return &testEnv{fyyur: fyyur, api: fyyur.Routes(), db: db}
}

func (t *testEnv) newClient() client {
	return client{api: t.api}
}
