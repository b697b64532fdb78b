// Package main is the entry point for the book registry API server.
// It wires together configuration, the seeded registry, and the HTTP router.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/aoideee/book-registry/internal/data"
	"github.com/aoideee/book-registry/internal/validator"
)

// appVersion is the current version of the API, shown in logs and the healthcheck.
const appVersion = "1.0.0"

// serverConfig holds all the values that can be tweaked at startup.
// Environment variables provide the defaults; command-line flags override them.
type serverConfig struct {
	port        int    // TCP port the HTTP server listens on (default 3000)
	environment string // Runtime environment: development, staging, or production
	logLevel    string // Minimum slog level: debug, info, warn, or error
	seedFile    string // Optional YAML/TOML file replacing the built-in seed
	limiter     struct {
		rps     float64 // Tokens added per second for each client IP
		burst   int     // Bucket capacity for each client IP
		enabled bool
	}
}

// applicationDependencies bundles every shared resource that HTTP handlers need.
// A pointer to this struct is passed as the receiver on all handler and route methods.
type applicationDependencies struct {
	config serverConfig // Server configuration loaded from env and flags
	logger *slog.Logger // Structured logger that writes to stdout
	models data.Models  // Book registry
}

// main is the application entry point.
// It loads configuration, seeds the registry, wires up dependencies, and starts the HTTP server.
func main() {
	settings, err := loadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	// Create a structured logger that writes human-readable text to stdout.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(settings.logLevel)}))

	seed, err := loadSeed(settings)
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
	logger.Info("book registry seeded", "books", len(seed), "seed_file", settings.seedFile)

	appInstance := &applicationDependencies{
		config: settings,
		logger: logger,
		models: data.NewModels(seed),
	}

	err = appInstance.serve()
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

// envConfig mirrors serverConfig with exported fields so the env parser can set them.
type envConfig struct {
	Port           int     `env:"BOOKS_PORT" envDefault:"3000"`
	Environment    string  `env:"BOOKS_ENV" envDefault:"development"`
	LogLevel       string  `env:"BOOKS_LOG_LEVEL" envDefault:"info"`
	SeedFile       string  `env:"BOOKS_SEED_FILE"`
	LimiterRPS     float64 `env:"BOOKS_LIMITER_RPS" envDefault:"2"`
	LimiterBurst   int     `env:"BOOKS_LIMITER_BURST" envDefault:"4"`
	LimiterEnabled bool    `env:"BOOKS_LIMITER_ENABLED" envDefault:"true"`
}

// loadConfig reads environment defaults and then parses args as command-line flags.
func loadConfig(args []string) (serverConfig, error) {
	var defaults envConfig
	if err := env.Parse(&defaults); err != nil {
		return serverConfig{}, fmt.Errorf("parse env: %w", err)
	}

	var settings serverConfig
	fs := flag.NewFlagSet("api", flag.ContinueOnError)

	// Register command-line flags so operators can override defaults at runtime.
	fs.IntVar(&settings.port, "port", defaults.Port, "Server port")
	fs.StringVar(&settings.environment, "env", defaults.Environment, "Environment(development|staging|production)")
	fs.StringVar(&settings.logLevel, "log-level", defaults.LogLevel, "Log level(debug|info|warn|error)")
	fs.StringVar(&settings.seedFile, "seed-file", defaults.SeedFile, "YAML or TOML file with the initial books")
	fs.Float64Var(&settings.limiter.rps, "limiter-rps", defaults.LimiterRPS, "Rate limiter maximum requests per second")
	fs.IntVar(&settings.limiter.burst, "limiter-burst", defaults.LimiterBurst, "Rate limiter maximum burst")
	fs.BoolVar(&settings.limiter.enabled, "limiter-enabled", defaults.LimiterEnabled, "Enable rate limiter")

	if err := fs.Parse(args); err != nil {
		return serverConfig{}, err
	}

	v := validator.New()
	v.Check(settings.port > 0 && settings.port <= 65535, "port", "port must be between 1 and 65535")
	v.Check(validator.In(settings.environment, "development", "staging", "production"), "env", "env must be development, staging or production")
	v.Check(validator.In(settings.logLevel, "debug", "info", "warn", "error"), "log-level", "log level must be debug, info, warn or error")
	if settings.limiter.enabled {
		v.Check(settings.limiter.rps > 0, "limiter-rps", "limiter rps must be greater than zero")
		v.Check(settings.limiter.burst > 0, "limiter-burst", "limiter burst must be greater than zero")
	}
	if !v.Valid() {
		return serverConfig{}, fmt.Errorf("invalid configuration: %s", v.First())
	}

	return settings, nil
}

// loadSeed returns the seed file's books when one is configured, otherwise the built-in seed.
func loadSeed(settings serverConfig) ([]data.Book, error) {
	now := time.Now()
	if settings.seedFile == "" {
		return data.DefaultSeed(now), nil
	}
	return data.LoadSeed(settings.seedFile, now)
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}
