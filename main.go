package main

import (
	"os"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"

	"war/config"
	"war/engine"
	"war/game"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: colorable.NewColorableStderr()}).
		With().Timestamp().Logger()

	cfg, err := config.ParseEnv()
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid log level")
	}
	logger = logger.Level(level)

	registry, err := buildRegistry(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not build the map")
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))

	mission := game.GenerateMission(rng, cfg.PlayerFaction)
	logger.Debug().Uint64("seed", seed).Str("mission", mission.Description).Msg("game set up")

	e := engine.New(registry, mission, cfg.PlayerFaction,
		game.NewDie(rng), game.NewStandardRules(),
		os.Stdin, colorable.NewColorableStdout(), logger)
	e.Run()
}

// buildRegistry assembles the territory registry from the default map data,
// or from a custom YAML map file when one is configured.
func buildRegistry(cfg config.Config) (game.Registry, error) {
	if cfg.MapFile != "" {
		seeds, err := config.LoadMapFile(cfg.MapFile)
		if err != nil {
			return nil, err
		}
		return game.NewRegistryFromSeeds(seeds)
	}
	return game.NewRegistry(cfg.Territories)
}
