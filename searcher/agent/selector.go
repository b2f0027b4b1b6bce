package agent

import (
	"zones/experiments/metrics"
	"zones/game"
	"zones/searcher"
)

// Selector picks the automated move: a random legal move with the policy's
// random chance, the best searched move otherwise.
type Selector struct {
	searcher *searcher.Searcher
	random   Random
}

func NewSelector(s *searcher.Searcher, random Random) *Selector {
	if s == nil {
		s = searcher.NewSearcher()
	}
	return &Selector{searcher: s, random: random}
}

// SelectMove returns the move of the side to move at the given difficulty.
func (s *Selector) SelectMove(node game.Node, difficulty Difficulty) game.Position {
	move, _ := s.Choose(node, difficulty.Policy())
	return move
}

// Choose applies policy to node. With no legal move the mover's own square
// is returned, the caller passes the turn. Green plays the highest scored
// move and Red the lowest, ties go to the first move in generation order.
func (s *Selector) Choose(node game.Node, policy Policy) (game.Position, metrics.SearchMetric) {
	moves := node.LegalMoves()
	if len(moves) == 0 {
		return node.Mover(), metrics.SearchMetric{Depth: policy.Depth, Pass: true}
	}

	if s.random.Float64() < policy.RandomChance {
		return moves[s.random.Intn(len(moves))], metrics.SearchMetric{Depth: policy.Depth, Random: true}
	}

	scored, metric := s.searcher.ScoreMoves(node, policy.Depth)
	best, _ := searcher.Best(scored, node.Turn)
	return best.Move, metric
}
