package main

import (
	"io/fs"
	"os"
	"strconv"

	"github.com/go-faster/errors"
	"github.com/joho/godotenv"
)

type Config struct {
	Promotions     string
	DBPath         string
	RabbitURL      string
	RabbitExchange string
	LogLevel       string
	CacheSize      int
}

// LoadConfig reads the environment after merging the given dotenv files
// (".env" when none are named). Missing files are ignored; variables already
// set in the environment win.
func LoadConfig(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(err, "load %s", f)
		}
	}

	cacheSize, err := strconv.Atoi(getenv("RECEIPT_CACHE_SIZE", "128"))
	if err != nil || cacheSize <= 0 {
		return nil, errors.Errorf("RECEIPT_CACHE_SIZE must be a positive integer, got %q", os.Getenv("RECEIPT_CACHE_SIZE"))
	}

	return &Config{
		Promotions:     getenv("CHECKOUT_PROMOTIONS", ""),
		DBPath:         getenv("CHECKOUT_DB_PATH", ""),
		RabbitURL:      getenv("RABBIT_URL", ""),
		RabbitExchange: getenv("RABBIT_EXCHANGE", "domain_events"),
		LogLevel:       getenv("LOG_LEVEL", "info"),
		CacheSize:      cacheSize,
	}, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
