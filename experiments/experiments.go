// Package experiments runs batch self-play matchups between agent kinds and
// writes the results as CSV for offline analysis.
package experiments

import (
	"fmt"
	"time"

	"catan/agent"
	"catan/engine"

	"github.com/rs/zerolog/log"
)

// AgentConfig identifies one agent build in a matchup.
type AgentConfig struct {
	ID   int
	Kind string // "random", "greedy" or "mcts"
}

// GameRecord summarizes one completed game of a matchup.
type GameRecord struct {
	ID         int
	Agents     []int // AgentConfig.ID per seat
	Winner     string
	WinnerSeat int
	TotalMoves int
	Turns      int
	StartTime  time.Time
	Duration   time.Duration
}

// Matchup is a set of seats to fill for each game.
type Matchup []AgentConfig

// RunBaselines pits greedy agents against random baselines over three-seat
// tables and writes the records under outDir.
func RunBaselines(outDir string, numGames int, seed uint64) error {
	random := AgentConfig{ID: 0, Kind: "random"}
	greedy := AgentConfig{ID: 1, Kind: "greedy"}
	mcts := AgentConfig{ID: 2, Kind: "mcts"}

	matchUps := []Matchup{
		{random, random, random},
		{greedy, random, random},
		{greedy, greedy, random},
		{greedy, greedy, greedy},
		{mcts, greedy, random},
	}
	return Run("baselines", outDir, []AgentConfig{random, greedy, mcts}, matchUps, numGames, seed)
}

// Run plays numGames games per matchup and writes agent configs plus game
// records as CSV.
func Run(name, outDir string, configs []AgentConfig, matchUps []Matchup, numGames int, seed uint64) error {
	log.Info().Str("experiment", name).Int("matchups", len(matchUps)).
		Int("games_per_matchup", numGames).Msg("starting experiment")

	count := 0
	var records []GameRecord
	for mi, matchup := range matchUps {
		log.Info().Int("matchup", mi+1).Int("of", len(matchUps)).Msg("starting matchup")

		for i := 0; i < numGames; i++ {
			count++
			seed++
			record, err := runGame(count, matchup, seed)
			if err != nil {
				return fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			records = append(records, record)

			log.Info().Int("game", count).Str("winner", record.Winner).
				Int("moves", record.TotalMoves).Msg("game complete")
		}
	}

	log.Info().Str("experiment", name).Int("games", count).Msg("experiment complete")

	writer, err := NewWriter(outDir, name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return err
	}
	return writer.WriteGameRecords(records)
}

func runGame(id int, matchup Matchup, seed uint64) (GameRecord, error) {
	names := make([]string, len(matchup))
	agents := make([]agent.Agent, len(matchup))
	agentIDs := make([]int, len(matchup))
	for seat, config := range matchup {
		names[seat] = fmt.Sprintf("%s-%d", config.Kind, seat)
		agentIDs[seat] = config.ID
		// Distinct per-seat seeds so seats do not mirror each other.
		agents[seat] = buildAgent(config, seed+uint64(seat)*1000)
	}

	e, err := engine.NewLocal(names, agents, seed)
	if err != nil {
		return GameRecord{}, err
	}

	start := time.Now()
	result, err := e.Run()
	if err != nil {
		return GameRecord{}, err
	}

	return GameRecord{
		ID:         id,
		Agents:     agentIDs,
		Winner:     result.Winner,
		WinnerSeat: result.WinnerID,
		TotalMoves: result.TotalMoves,
		Turns:      result.TurnNumber,
		StartTime:  start,
		Duration:   time.Since(start),
	}, nil
}

func buildAgent(config AgentConfig, seed uint64) agent.Agent {
	switch config.Kind {
	case "greedy":
		return agent.NewGreedyAgent(seed)
	case "mcts":
		return agent.NewMCTSAgent(seed, agent.WithEpisodes(100), agent.WithCutoff(80))
	default:
		return agent.NewRandomAgent(seed)
	}
}
