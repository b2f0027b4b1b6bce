package experiments

import (
	"fmt"

	"zones/config"
	"zones/engine"
	"zones/experiments/metrics"
	"zones/game"
	"zones/gamemaster"
	"zones/searcher"
	"zones/searcher/agent"

	"github.com/rs/zerolog/log"
)

// Results holds everything an experiment produced.
type Results struct {
	Configs   []metrics.AgentConfig
	Games     []metrics.GameRecord
	Moves     []metrics.MoveRecord
	Summaries []metrics.Summary
}

// Run plays cfg.Games games for every matchup and writes the records to a
// fresh directory under cfg.Output, returned with the results.
func Run(cfg config.Experiment) (Results, string, error) {
	results, err := Play(cfg)
	if err != nil {
		return Results{}, "", err
	}

	writer, err := metrics.NewWriter(cfg.Output, cfg.Name)
	if err != nil {
		return Results{}, "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(results.Configs); err != nil {
		return Results{}, "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")
	if err := writer.WriteGameRecords(results.Games); err != nil {
		return Results{}, "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")
	if err := writer.WriteMoveRecords(results.Moves); err != nil {
		return Results{}, "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return results, writer.Dir(), nil
}

// Play runs the experiment in memory. Games are seeded from cfg.Seed so a
// rerun with the same config replays the same games.
func Play(cfg config.Experiment) (Results, error) {
	evaluate, err := evaluation(cfg.Evaluation)
	if err != nil {
		return Results{}, err
	}
	s := searcher.NewSearcher(
		searcher.WithGoroutines(cfg.Goroutines),
		searcher.WithEvaluationFn(evaluate),
		searcher.WithMetrics(),
	)

	// One agent config per distinct name
	ids := map[string]int{}
	var results Results
	register := func(name string) int {
		if id, ok := ids[name]; ok {
			return id
		}
		id := len(results.Configs) + 1
		ids[name] = id
		results.Configs = append(results.Configs, metrics.AgentConfig{
			ID:         id,
			Difficulty: name,
			Goroutines: cfg.Goroutines,
			Evaluation: cfg.Evaluation,
		})
		return id
	}

	log.Info().Msgf("starting %s experiment...", cfg.Name)

	byAgent := map[string][]metrics.MoveMetric{}
	count := 0
	for mi, matchup := range cfg.Matchups {
		greenID, redID := register(matchup.Green), register(matchup.Red)
		log.Info().Msgf("starting matchup %d of %d between green=%s and red=%s...", mi+1, len(cfg.Matchups), matchup.Green, matchup.Red)

		for i := 0; i < cfg.Games; i++ {
			count++
			seed := cfg.Seed + uint64(count)*3
			gameMetric, moveMetrics, err := playGame(s, matchup, seed, cfg.MaxTurns)
			if err != nil {
				return Results{}, err
			}

			results.Games = append(results.Games, metrics.GameRecord{
				ID:         count,
				Green:      greenID,
				Red:        redID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				results.Moves = append(results.Moves, metrics.MoveRecord{Game: count, MoveMetric: mm})
				name := matchup.Green
				if mm.Player == game.Red.String() {
					name = matchup.Red
				}
				byAgent[name] = append(byAgent[name], mm)
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(cfg.Matchups), i+1, gameMetric.Winner)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(cfg.Matchups))
	}

	results.Summaries = metrics.Summarize(byAgent)
	for _, summary := range results.Summaries {
		log.Info().Msgf("%s: %d moves, %d searched, %.0f±%.0f nodes, %.4fs per search",
			summary.Player, summary.Moves, summary.Searched, summary.MeanNodes, summary.StdDevNodes, summary.MeanDuration)
	}
	log.Info().Msgf("completed %s experiment", cfg.Name)
	return results, nil
}

// playGame executes a single game between two agents.
func playGame(s *searcher.Searcher, matchup config.Matchup, seed uint64, maxTurns int) (metrics.GameMetric, []metrics.MoveMetric, error) {
	green, err := agent.New(matchup.Green, s, agent.NewRandom(seed+1))
	if err != nil {
		return metrics.GameMetric{}, nil, fmt.Errorf("green agent: %w", err)
	}
	red, err := agent.New(matchup.Red, s, agent.NewRandom(seed+2))
	if err != nil {
		return metrics.GameMetric{}, nil, fmt.Errorf("red agent: %w", err)
	}

	session := gamemaster.NewSession(agent.NewRandom(seed))
	e := engine.LocalEngine(session, green, red, engine.WithMaxTurns(maxTurns))
	gameMetric, moveMetrics := e.Run()
	return gameMetric, moveMetrics, nil
}

func evaluation(name string) (game.Evaluation, error) {
	switch name {
	case "", "zones":
		return game.Evaluate, nil
	case "painted":
		return game.EvaluatePainted, nil
	default:
		return nil, fmt.Errorf("unknown evaluation %q", name)
	}
}
