package main

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"

	"github.com/envelope-zero/personal-budget/internal/budget"
	"github.com/envelope-zero/personal-budget/internal/controllers"
	"github.com/envelope-zero/personal-budget/internal/models"
	"github.com/envelope-zero/personal-budget/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

func main() {
	// Load .env file for local development. A missing file is not an error.
	_ = godotenv.Load()

	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	apiURL := getenv("API_URL", "http://localhost:8080")
	url, err := url.Parse(apiURL)
	if err != nil || url.Scheme == "" || url.Host == "" {
		log.Fatal().Str("API_URL", apiURL).Msg("environment variable API_URL must be a valid URL")
	}

	db, err := connect()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	store := models.NewStore(db)
	defer store.Close()

	r, teardown, err := router.Config(url)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer teardown()

	router.AttachRoutes(controllers.New(budget.New(store)), r.Group(url.Path))

	if err := r.Run(":" + getenv("PORT", "8080")); err != nil {
		log.Fatal().Msg(err.Error())
	}
}

// connect opens the PostgreSQL database if DB_HOST is set and a sqlite
// database in DATA_DIR otherwise.
func connect() (*gorm.DB, error) {
	if host, ok := os.LookupEnv("DB_HOST"); ok {
		log.Info().Str("host", host).Msg("Using PostgreSQL database")

		return models.ConnectPostgres(fmt.Sprintf("host=%s user=%s password=%s dbname=%s",
			host,
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			getenv("DB_NAME", "personal_budget"),
		))
	}

	// Create data directory
	dataDir := getenv("DATA_DIR", "data")
	err := os.MkdirAll(dataDir, os.ModePerm)
	if err != nil {
		return nil, err
	}

	return models.Connect(filepath.Join(dataDir, "gorm.db"))
}

func getenv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
