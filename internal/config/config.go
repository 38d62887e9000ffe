// Package config loads the comparison-service settings from the
// environment. Configuration is env-only: no flags, no files.
package config

import (
	"os"
	"strings"
)

// Config holds the runtime settings of the pathfindd service.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string

	// DBPath is the SQLite file for run persistence; ":memory:" keeps
	// runs for the process lifetime only.
	DBPath string

	// CORSOrigins lists the allowed browser origins.
	CORSOrigins []string
}

// Load reads the configuration from the environment, falling back to
// local-development defaults.
//
//	PATHFIND_ADDR          listen address     (default ":8080")
//	PATHFIND_DB            sqlite path        (default ":memory:")
//	PATHFIND_CORS_ORIGINS  comma-separated    (default "*")
func Load() *Config {
	return &Config{
		Addr:        getEnv("PATHFIND_ADDR", ":8080"),
		DBPath:      getEnv("PATHFIND_DB", ":memory:"),
		CORSOrigins: getEnvAsList("PATHFIND_CORS_ORIGINS", []string{"*"}),
	}
}

// getEnv returns the variable's value, or def when unset.
func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}

	return def
}

// getEnvAsList splits a comma-separated variable, trimming whitespace
// around each element. Empty elements are dropped.
func getEnvAsList(key string, def []string) []string {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return def
	}

	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}

	return out
}
