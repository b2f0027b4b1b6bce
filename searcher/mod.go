package searcher

import (
	"math"

	"zones/experiments/metrics"
	"zones/game"
)

// Infinite search window bounds.
const (
	Inf    = math.MaxInt
	NegInf = -math.MaxInt
)

type Option func(s *Searcher)

// Searcher runs depth-bounded alpha-beta minimax over game nodes. It holds
// configuration only, every search works on freshly copied nodes.
type Searcher struct {
	goroutines int
	evaluate   game.Evaluation
	collector  func() metrics.Collector
}

// WithGoroutines scores root moves concurrently on up to n goroutines.
func WithGoroutines(n int) Option {
	return func(s *Searcher) {
		if n > 0 {
			s.goroutines = n
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluation) Option {
	return func(s *Searcher) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.collector = metrics.NewCollector
	}
}

func NewSearcher(options ...Option) *Searcher {
	s := &Searcher{ // Default values
		goroutines: 1,
		evaluate:   game.Evaluate,
		collector:  metrics.NewDummyCollector,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Goroutines returns the number of goroutines used to score root moves.
func (s *Searcher) Goroutines() int {
	return s.goroutines
}

// Evaluate scores node with the configured evaluation.
func (s *Searcher) Evaluate(node game.Node) int {
	return s.evaluate(node)
}

// moverOf maps the maximizing flag to the side to move: Green maximizes.
func moverOf(maximizing bool) game.Color {
	if maximizing {
		return game.Green
	}
	return game.Red
}
