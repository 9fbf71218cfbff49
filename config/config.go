// Package config loads roadmap settings from environment variables.
// Command-line flags (package cli) override what is loaded here.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config aggregates application configuration values.
type Config struct {
	Graph   GraphConfig
	Search  SearchConfig
	Logging LoggingConfig
}

// GraphConfig selects where the graph snapshot comes from.
type GraphConfig struct {
	Path   string
	Format string // json|hcl|neo4j; empty infers from Path

	Neo4jURI            string
	Neo4jDatabase       string
	Neo4jUsername       string
	Neo4jPassword       string
	Neo4jMaxConnections int
}

// SearchConfig tunes the path search.
type SearchConfig struct {
	IgnoreCentral bool
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level  string
	Format string // text|json
}

const (
	defaultGraphPath        = "node.json"
	defaultLoggingLevel     = "info"
	defaultLoggingFormat    = "text"
	defaultNeo4jMaxSessions = 10
	envPrefix               = "ROADMAP_"
)

// Load reads configuration from environment variables, applying defaults.
func Load() (Config, error) {
	cfg := Config{
		Graph: GraphConfig{
			Path:                valueOrDefault("GRAPH_PATH", defaultGraphPath),
			Format:              strings.ToLower(os.Getenv(envPrefix + "GRAPH_FORMAT")),
			Neo4jURI:            os.Getenv(envPrefix + "NEO4J_URI"),
			Neo4jDatabase:       os.Getenv(envPrefix + "NEO4J_DATABASE"),
			Neo4jUsername:       os.Getenv(envPrefix + "NEO4J_USERNAME"),
			Neo4jPassword:       os.Getenv(envPrefix + "NEO4J_PASSWORD"),
			Neo4jMaxConnections: defaultNeo4jMaxSessions,
		},
		Logging: LoggingConfig{
			Level:  strings.ToLower(valueOrDefault("LOG_LEVEL", defaultLoggingLevel)),
			Format: strings.ToLower(valueOrDefault("LOG_FORMAT", defaultLoggingFormat)),
		},
	}

	ignore, err := parseBoolWithDefault("IGNORE_CENTRAL", false)
	if err != nil {
		return Config{}, err
	}
	cfg.Search.IgnoreCentral = ignore

	if v := os.Getenv(envPrefix + "NEO4J_MAX_CONNECTIONS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("invalid %sNEO4J_MAX_CONNECTIONS value %q", envPrefix, v)
		}
		cfg.Graph.Neo4jMaxConnections = n
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks enumerated fields.
func (c Config) Validate() error {
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q: must be 'text' or 'json'", c.Logging.Format)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", c.Logging.Level)
	}

	switch c.Graph.Format {
	case "", "json", "hcl", "neo4j":
	default:
		return fmt.Errorf("invalid graph format %q: must be 'json', 'hcl' or 'neo4j'", c.Graph.Format)
	}

	return nil
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(envPrefix + key); v != "" {
		return v
	}
	return fallback
}

func parseBoolWithDefault(key string, fallback bool) (bool, error) {
	v := os.Getenv(envPrefix + key)
	if v == "" {
		return fallback, nil
	}
	val, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s%s value %q: %w", envPrefix, key, v, err)
	}
	return val, nil
}
