package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	fyyurschema "fsnd_platform/fyyur/schema"
	triviaschema "fsnd_platform/trivia/schema"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type venueFixture struct {
	Name               string   `yaml:"name"`
	City               string   `yaml:"city"`
	State              string   `yaml:"state"`
	Address            string   `yaml:"address"`
	Phone              string   `yaml:"phone"`
	Genres             []string `yaml:"genres"`
	Website            string   `yaml:"website"`
	SeekingTalent      bool     `yaml:"seeking_talent"`
	SeekingDescription string   `yaml:"seeking_description"`
	ImageLink          string   `yaml:"image_link"`
	FacebookLink       string   `yaml:"facebook_link"`
}

type artistFixture struct {
	Name               string   `yaml:"name"`
	City               string   `yaml:"city"`
	State              string   `yaml:"state"`
	Phone              string   `yaml:"phone"`
	Genres             []string `yaml:"genres"`
	Website            string   `yaml:"website"`
	SeekingVenue       bool     `yaml:"seeking_venue"`
	SeekingDescription string   `yaml:"seeking_description"`
	ImageLink          string   `yaml:"image_link"`
	FacebookLink       string   `yaml:"facebook_link"`
}

// Shows reference their artist and venue by name, resolved after both are
// inserted.
type showFixture struct {
	Artist    string    `yaml:"artist"`
	Venue     string    `yaml:"venue"`
	StartTime time.Time `yaml:"start_time"`
}

type questionFixture struct {
	Question   string `yaml:"question"`
	Answer     string `yaml:"answer"`
	Difficulty int    `yaml:"difficulty"`
	Category   string `yaml:"category"`
}

type seedFile struct {
	Fyyur struct {
		Venues  []venueFixture  `yaml:"venues"`
		Artists []artistFixture `yaml:"artists"`
		Shows   []showFixture   `yaml:"shows"`
	} `yaml:"fyyur"`
	Trivia struct {
		Categories []string          `yaml:"categories"`
		Questions  []questionFixture `yaml:"questions"`
	} `yaml:"trivia"`
}

func loadSeedFile(path string) (seedFile, error) {
	var seed seedFile

	data, err := os.ReadFile(path)
	if err != nil {
		return seed, fmt.Errorf("error reading seed file '%v': %w", path, err)
	}

	if err := yaml.Unmarshal(data, &seed); err != nil {
		return seed, fmt.Errorf("error parsing seed file '%v': %w", path, err)
	}

	return seed, nil
}

func seedFyyur(txn *gorm.DB, seed seedFile) error {
	venueIds := make(map[string]uuid.UUID, len(seed.Fyyur.Venues))
	for _, fixture := range seed.Fyyur.Venues {
		venue := fyyurschema.Venue{
			Id:                 uuid.New(),
			Name:               fixture.Name,
			City:               fixture.City,
			State:              fixture.State,
			Address:            fixture.Address,
			Phone:              fixture.Phone,
			Genres:             fyyurschema.EncodeGenres(fixture.Genres),
			Website:            fixture.Website,
			SeekingTalent:      fixture.SeekingTalent,
			SeekingDescription: fixture.SeekingDescription,
			ImageLink:          fixture.ImageLink,
			FacebookLink:       fixture.FacebookLink,
		}
		if err := txn.Create(&venue).Error; err != nil {
			return fmt.Errorf("error seeding venue '%v': %w", fixture.Name, err)
		}
		venueIds[fixture.Name] = venue.Id
	}

	artistIds := make(map[string]uuid.UUID, len(seed.Fyyur.Artists))
	for _, fixture := range seed.Fyyur.Artists {
		artist := fyyurschema.Artist{
			Id:                 uuid.New(),
			Name:               fixture.Name,
			City:               fixture.City,
			State:              fixture.State,
			Phone:              fixture.Phone,
			Genres:             fyyurschema.EncodeGenres(fixture.Genres),
			Website:            fixture.Website,
			SeekingVenue:       fixture.SeekingVenue,
			SeekingDescription: fixture.SeekingDescription,
			ImageLink:          fixture.ImageLink,
			FacebookLink:       fixture.FacebookLink,
		}
		if err := txn.Create(&artist).Error; err != nil {
			return fmt.Errorf("error seeding artist '%v': %w", fixture.Name, err)
		}
		artistIds[fixture.Name] = artist.Id
	}

	for _, fixture := range seed.Fyyur.Shows {
		artistId, ok := artistIds[fixture.Artist]
		if !ok {
			return fmt.Errorf("show references unknown artist '%v'", fixture.Artist)
		}
		venueId, ok := venueIds[fixture.Venue]
		if !ok {
			return fmt.Errorf("show references unknown venue '%v'", fixture.Venue)
		}

		show := fyyurschema.Show{ArtistId: artistId, VenueId: venueId, StartTime: fixture.StartTime}
		if err := txn.Create(&show).Error; err != nil {
			return fmt.Errorf("error seeding show '%v' at '%v': %w", fixture.Artist, fixture.Venue, err)
		}
	}

	return nil
}

func seedTrivia(txn *gorm.DB, seed seedFile) error {
	categoryIds := make(map[string]uint, len(seed.Trivia.Categories))
	for _, categoryType := range seed.Trivia.Categories {
		category := triviaschema.Category{Type: categoryType}
		if err := txn.Create(&category).Error; err != nil {
			return fmt.Errorf("error seeding category '%v': %w", categoryType, err)
		}
		categoryIds[categoryType] = category.Id
	}

	for _, fixture := range seed.Trivia.Questions {
		categoryId, ok := categoryIds[fixture.Category]
		if !ok {
			return fmt.Errorf("question references unknown category '%v'", fixture.Category)
		}

		question := triviaschema.Question{
			QuestionText: fixture.Question,
			AnswerText:   fixture.Answer,
			Difficulty:   fixture.Difficulty,
			CategoryId:   categoryId,
		}
		if err := txn.Create(&question).Error; err != nil {
			return fmt.Errorf("error seeding question '%v': %w", fixture.Question, err)
		}
	}

	return nil
}

func main() {
	envFile := flag.String("env", "", "File to load env variables from.")
	seedPath := flag.String("seed", "fixtures/seed.yaml", "Path to the yaml seed file.")

	flag.Parse()

	if *envFile != "" {
		if err := godotenv.Load(*envFile); err != nil {
			log.Fatalf("error loading .env file '%v': %v", *envFile, err)
		}
	}

	uri := os.Getenv("DATABASE_URI")
	if uri == "" {
		log.Fatal("required env var DATABASE_URI is missing")
	}

	seed, err := loadSeedFile(*seedPath)
	if err != nil {
		log.Fatal(err)
	}

	db, err := gorm.Open(postgres.Open(uri), &gorm.Config{})
	if err != nil {
		log.Fatalf("error opening database connection: %v", err)
	}

	err = db.Transaction(func(txn *gorm.DB) error {
		if err := seedFyyur(txn, seed); err != nil {
			return err
		}
		return seedTrivia(txn, seed)
	})
	if err != nil {
		log.Fatalf("seeding failed: %v", err)
	}

	slog.Info("seeding complete",
		"venues", len(seed.Fyyur.Venues), "artists", len(seed.Fyyur.Artists), "shows", len(seed.Fyyur.Shows),
		"categories", len(seed.Trivia.Categories), "questions", len(seed.Trivia.Questions))
}
