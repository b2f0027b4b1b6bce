package agent

import (
	"fmt"

	"zones/experiments/metrics"
	"zones/game"
	"zones/searcher"

	"github.com/rs/zerolog/log"
)

type difficultyAgent struct {
	difficulty Difficulty
	selector   *Selector
}

// NewDifficultyAgent returns an agent playing at the given difficulty.
func NewDifficultyAgent(difficulty Difficulty, s *searcher.Searcher, random Random) Agent {
	return difficultyAgent{
		difficulty: difficulty,
		selector:   NewSelector(s, random),
	}
}

func (a difficultyAgent) FindMove(node game.Node) (game.Position, metrics.SearchMetric) {
	move, metric := a.selector.Choose(node, a.difficulty.Policy())
	log.Debug().
		Str("agent", a.Name()).
		Stringer("turn", node.Turn).
		Stringer("move", move).
		Bool("random", metric.Random).
		Bool("pass", metric.Pass).
		Msg("selected move")
	return move, metric
}

func (a difficultyAgent) Name() string {
	return fmt.Sprintf("minimax-%s", a.difficulty)
}
