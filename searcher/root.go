package searcher

import (
	"sync"

	"zones/experiments/metrics"
	"zones/game"
)

// ScoredMove is a root move with the minimax value of the node it leads to.
type ScoredMove struct {
	Move  game.Position
	Score int
}

// ScoreMoves scores every legal move of the side to move, in move
// generation order. Each child is searched depth-1 plies with a full window,
// so scores do not depend on the order or concurrency of the root loop.
func (s *Searcher) ScoreMoves(node game.Node, depth int) ([]ScoredMove, metrics.SearchMetric) {
	c := s.collector()
	c.Start(depth, s.goroutines)
	c.AddNode()

	moves := node.LegalMoves()
	scored := make([]ScoredMove, len(moves))
	// Children are played by the opponent of the side to move
	maximizing := node.Turn != game.Green

	score := func(i int) {
		child := node.Play(moves[i])
		scored[i] = ScoredMove{
			Move:  moves[i],
			Score: s.minimax(child, depth-1, NegInf, Inf, maximizing, c),
		}
	}

	if s.goroutines <= 1 || len(moves) < 2 {
		for i := range moves {
			score(i)
		}
		return scored, c.Complete()
	}

	task := make(chan int, len(moves))
	for i := range moves {
		task <- i
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < min(s.goroutines, len(moves)); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := range task {
				score(i)
			}
		}()
	}
	wg.Wait()

	return scored, c.Complete()
}

// Best returns the strictly best scored move for color: highest for Green,
// lowest for Red. Ties keep the first move in generation order.
func Best(scored []ScoredMove, color game.Color) (ScoredMove, bool) {
	if len(scored) == 0 {
		return ScoredMove{}, false
	}
	best := scored[0]
	for _, sm := range scored[1:] {
		if (color == game.Red && sm.Score < best.Score) || (color != game.Red && sm.Score > best.Score) {
			best = sm
		}
	}
	return best, true
}
