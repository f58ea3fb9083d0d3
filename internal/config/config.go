// Package config reads the server configuration from the environment.
package config

import "os"

// Config holds the runtime settings of the server.
type Config struct {
	// Addr is the listen address.
	Addr string
	// DBPath is the SQLite file. Empty selects the in-memory store.
	DBPath string
	// ExportPath is the file used by the native save/load tier. Empty
	// disables the tier and save/load go through the paste modal.
	ExportPath string
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

// Load reads the configuration. An explicitly empty DB_PATH or
// EXPORT_PATH is kept empty.
func Load() Config {
	return Config{
		Addr:       getEnv("ADDR", ":8080"),
		DBPath:     lookupEnv("DB_PATH", "./data/yardsale.db"),
		ExportPath: lookupEnv("EXPORT_PATH", ""),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func lookupEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
