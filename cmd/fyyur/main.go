package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"

	"fsnd_platform/fyyur/schema"
	"fsnd_platform/fyyur/services"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type fyyurEnv struct {
	DatabaseUri    string
	AllowedOrigins string
	LogFile        string
}

func loadEnvFile(envFile string) {
	slog.Info(fmt.Sprintf("loading env from file %v", envFile))
	err := godotenv.Load(envFile)
	if err != nil {
		log.Fatalf("error loading .env file '%v': %v", envFile, err)
	}
}

func loadEnv() fyyurEnv {
	env := fyyurEnv{
		DatabaseUri:    os.Getenv("DATABASE_URI"),
		AllowedOrigins: os.Getenv("ALLOWED_ORIGINS"),
		LogFile:        os.Getenv("LOG_FILE"),
	}

	if env.DatabaseUri == "" {
		log.Fatal("required env var DATABASE_URI is missing")
	}
	if env.AllowedOrigins == "" {
		env.AllowedOrigins = "*"
	}

	return env
}

func initLogging(path string) {
	log.SetFlags(log.Lshortfile | log.Ltime | log.Ldate)
	if path == "" {
		return
	}

	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_RDWR, 0666)
	if err != nil {
		log.Fatalf("error opening log file: %v", err)
	}
	log.SetOutput(io.MultiWriter(logFile, os.Stderr))
	slog.Info("logging initialized", "log_file", path)
}

func initDb(uri string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(uri), &gorm.Config{})
	if err != nil {
		log.Fatalf("error opening database connection: %v", err)
	}

	err = db.AutoMigrate(&schema.Venue{}, &schema.Artist{}, &schema.Show{})
	if err != nil {
		log.Fatalf("error migrating db schema: %v", err)
	}

	return db
}

func main() {
	envFile := flag.String("env", "", "File to load env variables from. If not specified will just load them from the environment variables already defined.")
	port := flag.Int("port", 8000, "Port to run server on")

	flag.Parse()

	if *envFile != "" {
		loadEnvFile(*envFile)
	}
	env := loadEnv()

	initLogging(env.LogFile)

	db := initDb(env.DatabaseUri)

	fyyur := services.NewFyyur(db, nil)

	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{env.AllowedOrigins},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Mount("/api", fyyur.Routes())

	slog.Info("starting fyyur server", "port", *port)
	err := http.ListenAndServe(fmt.Sprintf(":%d", *port), r)
	if err != nil {
		log.Fatalf("listen and serve returned error: %v", err.Error())
	}
}
