package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            int
	DatabaseURL     string
	DatabaseType    string
	AuthorKeySalt   string
	FeedTimeout     time.Duration
	FeedConcurrency int
	Seed            bool
}

// ParseFlags validates flags and applies environment fallbacks.
// A .env file in the working directory is loaded first, if present.
func ParseFlags(args []string) (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	var feedTimeoutMS int

	fs := flag.NewFlagSet("stackit", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL or SQLite file path")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AuthorKeySalt, "author-salt", "", "Author key salt (prefer env)")

	// Feed aggregation tuning
	fs.IntVar(&feedTimeoutMS, "feed-timeout", 0, "Per-question answer fetch timeout in ms")
	fs.IntVar(&cfg.FeedConcurrency, "feed-concurrency", 0, "Max concurrent answer fetches")

	fs.BoolVar(&cfg.Seed, "seed", false, "Seed the database with demo data")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 5000 // default
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == "postgres" {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = "stackit.db"
	}

	// Secrets - MUST be provided
	if cfg.AuthorKeySalt == "" {
		cfg.AuthorKeySalt = os.Getenv("AUTHOR_KEY_SALT")
	}
	if cfg.AuthorKeySalt == "" {
		return Config{}, errors.New("AUTHOR_KEY_SALT required")
	}

	if feedTimeoutMS == 0 {
		if s := os.Getenv("FEED_TIMEOUT_MS"); s != "" {
			ms, err := strconv.Atoi(s)
			if err != nil || ms <= 0 {
				return Config{}, errors.New("invalid FEED_TIMEOUT_MS env variable")
			}
			feedTimeoutMS = ms
		} else {
			feedTimeoutMS = 2000
		}
	}
	cfg.FeedTimeout = time.Duration(feedTimeoutMS) * time.Millisecond

	if cfg.FeedConcurrency == 0 {
		if s := os.Getenv("FEED_CONCURRENCY"); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil || n <= 0 {
				return Config{}, errors.New("invalid FEED_CONCURRENCY env variable")
			}
			cfg.FeedConcurrency = n
		} else {
			cfg.FeedConcurrency = 8
		}
	}

	return cfg, nil
}
