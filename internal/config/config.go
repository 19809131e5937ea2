// Package config reads run parameters from the environment. Flags on the
// CLI override anything loaded here.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type SimConfig struct {
	Players         int
	StartingBalance int
	Games           int
	Seed            int64
	BoardPath       string
	DBPath          string
	Verbose         bool
}

type APIConfig struct {
	Addr   string
	DBPath string
}

func LoadSimFromEnv() SimConfig {
	return SimConfig{
		Players:         envIntDefault("MOPOLY_PLAYERS", 4),
		StartingBalance: envIntDefault("MOPOLY_BALANCE", 1500),
		Games:           envIntDefault("MOPOLY_GAMES", 1),
		Seed:            envInt64Default("MOPOLY_SEED", 0),
		BoardPath:       strings.TrimSpace(os.Getenv("MOPOLY_BOARD")),
		DBPath:          strings.TrimSpace(os.Getenv("MOPOLY_DB")),
		Verbose:         envBoolDefault("MOPOLY_VERBOSE", false),
	}
}

func LoadAPIFromEnv() (APIConfig, error) {
	addr := strings.TrimSpace(os.Getenv("PORT"))
	if addr != "" {
		if !strings.HasPrefix(addr, ":") {
			addr = ":" + addr
		}
	} else {
		addr = envDefault("MOPOLY_API_ADDR", ":8080")
	}
	cfg := APIConfig{
		Addr:   addr,
		DBPath: strings.TrimSpace(os.Getenv("MOPOLY_DB")),
	}
	if cfg.DBPath == "" {
		return cfg, fmt.Errorf("MOPOLY_DB is required")
	}
	return cfg, nil
}

func envDefault(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func envIntDefault(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envInt64Default(key string, fallback int64) int64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}

func envBoolDefault(key string, fallback bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
