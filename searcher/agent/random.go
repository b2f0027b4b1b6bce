package agent

import (
	"zones/experiments/metrics"
	"zones/game"
)

type randomAgent struct {
	random Random
}

// NewRandomAgent returns an agent playing uniformly random legal moves.
func NewRandomAgent(random Random) Agent {
	return randomAgent{random: random}
}

func (a randomAgent) FindMove(node game.Node) (game.Position, metrics.SearchMetric) {
	moves := node.LegalMoves()
	if len(moves) == 0 {
		return node.Mover(), metrics.SearchMetric{Pass: true}
	}
	return moves[a.random.Intn(len(moves))], metrics.SearchMetric{Random: true}
}

func (a randomAgent) Name() string {
	return RandomName
}
