package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vkosev/design-site-backend/api"
	"github.com/vkosev/design-site-backend/config"
	"github.com/vkosev/design-site-backend/database"
)

func main() {
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	zlog.Info().Msg("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		zlog.Warn().Err(err).Msg("Error loading .env file")
	}

	cfg := config.New()

	// The backing database connection values are mandatory: without them the
	// whole application refuses to initialize.
	host, err := config.Require(cfg, "SUPABASE_DB_HOST")
	if err != nil {
		zlog.Fatal().Err(err).Msg("missing database configuration")
	}
	password, err := config.Require(cfg, "SUPABASE_DB_PASSWORD")
	if err != nil {
		zlog.Fatal().Err(err).Msg("missing database configuration")
	}

	connStr := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=require",
		host,
		config.GetString(cfg, "SUPABASE_DB_USER", "postgres"),
		password,
		config.GetString(cfg, "SUPABASE_DB_NAME", "postgres"),
		config.GetString(cfg, "SUPABASE_DB_PORT", "5432"),
	)

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  connStr,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		PrepareStmt: false,
		Logger:      newLogger,
	})
	if err != nil {
		zlog.Fatal().Err(err).Msg("Error connecting to database")
	}

	// Test database connection
	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		zlog.Fatal().Err(err).Msg("Error testing database connection")
	}

	if err := database.Migrate(db); err != nil {
		zlog.Fatal().Err(err).Msg("Error migrating database schema")
	}

	currentDB := database.New(db)

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(currentDB)
	if err != nil {
		zlog.Fatal().Err(err).Msg("Error initializing server")
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	zlog.Info().Msgf("Closing server: %v", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
