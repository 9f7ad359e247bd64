package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"catan/agent"
	"catan/engine"
	"catan/experiments"
	"catan/store"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type config struct {
	Players    string `env:"CATAN_PLAYERS" envDefault:"alice,bob,carol"`
	Agent      string `env:"CATAN_AGENT" envDefault:"greedy"`
	Seed       uint64 `env:"CATAN_SEED" envDefault:"0"`
	DBPath     string `env:"CATAN_DB" envDefault:"data/catan.db"`
	OutDir     string `env:"CATAN_OUT" envDefault:"out"`
	Games      int    `env:"CATAN_GAMES" envDefault:"10"`
	Experiment bool   `env:"CATAN_EXPERIMENT" envDefault:"false"`
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	cfg := config{}
	if err := env.Parse(&cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to parse environment")
	}

	flag.StringVar(&cfg.Players, "players", cfg.Players, "Comma-separated player names (3 or 4)")
	flag.StringVar(&cfg.Agent, "agent", cfg.Agent, "Agent kind for all seats: random, greedy or mcts")
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Game seed (0 picks the current time)")
	flag.StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite database path for game records")
	flag.StringVar(&cfg.OutDir, "out", cfg.OutDir, "Output directory for experiment CSVs")
	flag.IntVar(&cfg.Games, "games", cfg.Games, "Games per matchup in experiment mode")
	flag.BoolVar(&cfg.Experiment, "experiment", cfg.Experiment, "Run the baseline experiment instead of a single game")
	flag.Parse()

	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	if cfg.Experiment {
		if err := experiments.RunBaselines(cfg.OutDir, cfg.Games, cfg.Seed); err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
		return
	}

	if err := playOne(cfg); err != nil {
		log.Fatal().Err(err).Msg("game failed")
	}
}

func playOne(cfg config) error {
	names := strings.Split(cfg.Players, ",")
	agents := make([]agent.Agent, len(names))
	for seat := range agents {
		seed := cfg.Seed + uint64(seat)*1000
		switch cfg.Agent {
		case "random":
			agents[seat] = agent.NewRandomAgent(seed)
		case "mcts":
			agents[seat] = agent.NewMCTSAgent(seed)
		default:
			agents[seat] = agent.NewGreedyAgent(seed)
		}
	}

	e, err := engine.NewLocal(names, agents, cfg.Seed)
	if err != nil {
		return err
	}
	result, err := e.Run()
	if err != nil {
		return err
	}

	db, err := store.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	id, err := db.SaveGame(result.Final, result.TotalMoves)
	if err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}
	log.Info().Str("game_id", id).Str("winner", result.Winner).Msg("game recorded")
	return nil
}
