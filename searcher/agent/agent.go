package agent

import (
	"zones/experiments/metrics"
	"zones/game"
	"zones/searcher"

	"golang.org/x/exp/rand"
)

type Agent interface {
	// FindMove returns the destination for the side to move and the search
	// metrics (if collected). A stuck mover gets its own square back.
	FindMove(node game.Node) (game.Position, metrics.SearchMetric)
	Name() string
}

// Random is the only source of nondeterminism of move selection.
type Random interface {
	Float64() float64
	Intn(n int) int
}

// NewRandom returns a seeded Random. It is not safe for concurrent use.
func NewRandom(seed uint64) Random {
	return rand.New(rand.NewSource(seed))
}

// RandomName names the uniformly random agent next to the difficulties.
const RandomName = "random"

// New builds the agent named by a difficulty or RandomName.
func New(name string, s *searcher.Searcher, random Random) (Agent, error) {
	if name == RandomName {
		return NewRandomAgent(random), nil
	}
	difficulty, err := ParseDifficulty(name)
	if err != nil {
		return nil, err
	}
	return NewDifficultyAgent(difficulty, s, random), nil
}
