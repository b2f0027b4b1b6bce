package searcher

import (
	"zones/experiments/metrics"
	"zones/game"
)

// Minimax returns the value of node searched depth plies deep, Green
// maximizing and Red minimizing. The side to move is given by maximizing.
// Branches are cut once beta <= alpha, which never changes the value
// returned for a full (NegInf, Inf) window.
func (s *Searcher) Minimax(node game.Node, depth, alpha, beta int, maximizing bool) int {
	return s.minimax(node, depth, alpha, beta, maximizing, metrics.NewDummyCollector())
}

func (s *Searcher) minimax(node game.Node, depth, alpha, beta int, maximizing bool, c metrics.Collector) int {
	c.AddNode()

	if depth <= 0 {
		c.AddLeaf()
		return s.evaluate(node)
	}

	mover := moverOf(maximizing)
	moves := node.MovesFor(mover)
	if len(moves) == 0 { // Stuck mover, passing is left to the caller
		c.AddLeaf()
		return s.evaluate(node)
	}

	if maximizing {
		best := NegInf
		for _, move := range moves {
			score := s.minimax(node.PlayAs(mover, move), depth-1, alpha, beta, false, c)
			best = max(best, score)
			alpha = max(alpha, score)
			if beta <= alpha {
				c.AddCutoff()
				break
			}
		}
		return best
	}

	best := Inf
	for _, move := range moves {
		score := s.minimax(node.PlayAs(mover, move), depth-1, alpha, beta, true, c)
		best = min(best, score)
		beta = min(beta, score)
		if beta <= alpha {
			c.AddCutoff()
			break
		}
	}
	return best
}
