package config

import "os"

// Get returns the environment variable value, or fallback when unset
// or empty. Composition roots load .env beforehand via godotenv.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
