package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"war/game"
)

// Config carries everything main needs to assemble a game. A zero Seed means
// seed from the wall clock.
type Config struct {
	PlayerFaction string `env:"WAR_PLAYER_FACTION" envDefault:"Blue"`
	Territories   int    `env:"WAR_TERRITORIES" envDefault:"5"`
	Seed          uint64 `env:"WAR_SEED" envDefault:"0"`
	MapFile       string `env:"WAR_MAP_FILE"`
	LogLevel      string `env:"WAR_LOG_LEVEL" envDefault:"info"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if !game.KnownFaction(cfg.PlayerFaction) {
		return Config{}, fmt.Errorf("unknown player faction %q, known factions: %v", cfg.PlayerFaction, game.Factions())
	}
	return cfg, nil
}

// mapFile is the YAML schema for a custom territory table.
type mapFile struct {
	Territories []struct {
		Name    string `yaml:"name"`
		Faction string `yaml:"faction"`
		Troops  int    `yaml:"troops"`
	} `yaml:"territories"`
}

// LoadMapFile reads a custom territory seed table from a YAML file.
func LoadMapFile(path string) ([]game.Seed, error) {
	b, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read map file: %w", err)
	}
	var mf mapFile
	if err := yaml.Unmarshal(b, &mf); err != nil {
		return nil, fmt.Errorf("parse map file: %w", err)
	}
	seeds := make([]game.Seed, len(mf.Territories))
	for i, t := range mf.Territories {
		seeds[i] = game.Seed{Name: t.Name, Faction: t.Faction, Troops: t.Troops}
	}
	return seeds, nil
}
