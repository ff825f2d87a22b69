package tests

import (
	"testing"

	"fsnd_platform/trivia/schema"
	"fsnd_platform/trivia/services"

	"github.com/go-chi/chi/v5"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testEnv struct {
	trivia services.Trivia
	api    chi.Router
	db     *gorm.DB
}

func setupTestEnv(t *testing.T) *testEnv {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatal(err)
	}

	err = db.AutoMigrate(&schema.Category{}, &schema.Question{})
	if err != nil {
		t.Fatal(err)
	}

	trivia := services.NewTrivia(db)

	return &testEnv{trivia: trivia, api: trivia.Routes(), db: db}
}

func (t *testEnv) newClient() client {
	return client{api: t.api}
}

// seedCategories inserts the given category types and returns their ids.
func (env *testEnv) seedCategories(t *testing.T, types ...string) []uint {
	c := env.newClient()

	ids := make([]uint, 0, len(types))
	for _, categoryType := range types {
		id, err := c.createCategory(categoryType)
		if err != nil {
			t.Fatal(err)
		}
		ids = append(ids, id)
	}
	return ids
}
