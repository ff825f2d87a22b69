package versions

import (
	fyyur "fsnd_platform/fyyur/schema"
	trivia "fsnd_platform/trivia/schema"

	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

func InitialFyyur() *gormigrate.Migration {
	return &gormigrate.Migration{
		ID: "0_initial_fyyur",
		Migrate: func(txn *gorm.DB) error {
			return txn.Migrator().AutoMigrate(&fyyur.Venue{}, &fyyur.Artist{}, &fyyur.Show{})
		},
		Rollback: func(txn *gorm.DB) error {
			return txn.Migrator().DropTable(&fyyur.Show{}, &fyyur.Artist{}, &fyyur.Venue{})
		},
	}
}

func InitialTrivia() *gormigrate.Migration {
	return &gormigrate.Migration{
		ID: "0_initial_trivia",
		Migrate: func(txn *gorm.DB) error {
			return txn.Migrator().AutoMigrate(&trivia.Category{}, &trivia.Question{})
		},
		Rollback: func(txn *gorm.DB) error {
			return txn.Migrator().DropTable(&trivia.Question{}, &trivia.Category{})
		},
	}
}
