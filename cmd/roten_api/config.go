package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/rotenkr/roten-api/internal/rules"
	"github.com/rotenkr/roten-api/pkg/config/env"
)

type SourceBackend string

const (
	BackendPG  SourceBackend = "pg"
	BackendMem SourceBackend = "mem"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type Settings struct {
	Backend     SourceBackend
	DatabaseURL string
	PageSize    int
	Rules       *rules.Table
}

// Load resolves the upstream configuration once at startup. A missing
// connection string is a startup failure, not something to work around with
// fallback credentials at request time.
func (c *AppConfig) Load() (*Settings, error) {
	if err := env.LoadDotEnv(c.ENV, "cmd/roten_api/.env"); err != nil {
		slog.Info("Skipping .env ...", "error", err)
	}

	backend := SourceBackend(os.Getenv("SOURCE_BACKEND"))
	if backend == "" {
		backend = BackendPG
	}
	if backend != BackendPG && backend != BackendMem {
		return nil, fmt.Errorf("invalid SOURCE_BACKEND value: %s, expected one of %v",
			backend, []SourceBackend{BackendPG, BackendMem})
	}

	dbURL := os.Getenv("DATABASE_URL")
	if backend == BackendPG && dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	pageSize := 0
	if raw := os.Getenv("SOURCE_PAGE_SIZE"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid SOURCE_PAGE_SIZE value: %s", raw)
		}
		pageSize = n
	}

	table := rules.Default()
	if path := os.Getenv("RULES_PATH"); path != "" {
		loaded, err := rules.LoadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load rules from %s: %w", path, err)
		}
		table = loaded
		slog.Info("Loaded rules override", "path", path, "version", table.Version)
	}

	return &Settings{
		Backend:     backend,
		DatabaseURL: dbURL,
		PageSize:    pageSize,
		Rules:       table,
	}, nil
}
