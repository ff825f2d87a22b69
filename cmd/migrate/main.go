package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"fsnd_platform/cmd/migrate/versions"

	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func migrations(domain string) []*gormigrate.Migration {
	switch domain {
	case "fyyur":
		return []*gormigrate.Migration{versions.InitialFyyur()}
	case "trivia":
		return []*gormigrate.Migration{versions.InitialTrivia()}
	case "all":
		return []*gormigrate.Migration{versions.InitialFyyur(), versions.InitialTrivia()}
	default:
		log.Fatalf("unknown domain '%v', must be one of 'fyyur', 'trivia', 'all'", domain)
		return nil
	}
}

func main() {
	envFile := flag.String("env", "", "File to load env variables from.")
	domain := flag.String("domain", "all", "Which schema to migrate: 'fyyur', 'trivia', or 'all'.")
	rollback := flag.Bool("rollback", false, "Roll back the last applied migration instead of migrating.")

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

	db, err := gorm.Open(postgres.Open(uri), &gorm.Config{})
	if err != nil {
		log.Fatalf("error opening database connection: %v", err)
	}

	m := gormigrate.New(db, gormigrate.DefaultOptions, migrations(*domain))

	if *rollback {
		if err := m.RollbackLast(); err != nil {
			log.Fatalf("rollback failed: %v", err)
		}
		slog.Info("rollback complete", "domain", *domain)
		return
	}

	if err := m.Migrate(); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	slog.Info("migration complete", "domain", *domain)
}
