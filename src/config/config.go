package config

import (
	"fmt"
	"os"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetDSN assembles the store connection string from the environment. Host,
// user, password and name have no sensible defaults and must be set; the
// rest fall back to a local development setup.
func GetDSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		os.Getenv("DATABASE_HOST"),
		os.Getenv("DATABASE_USER"),
		os.Getenv("DATABASE_PASSWORD"),
		os.Getenv("DATABASE_NAME"),
		envOr("DATABASE_PORT", "5432"),
		envOr("DATABASE_SSLMODE", "disable"),
		envOr("DATABASE_TIMEZONE", "UTC"),
	)
}

// TIME_PARSE_FORMAT is the layout accepted on show submissions.
const TIME_PARSE_FORMAT = "2006-01-02 15:04:05"

// TIME_DISPLAY_FORMAT is the layout used wherever a show time is rendered.
const TIME_DISPLAY_FORMAT = "01/02/2006, 15:04"
