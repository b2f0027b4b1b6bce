package metrics

import (
	"sync/atomic"
	"time"
)

// SearchMetric describes the work done to choose a single move.
type SearchMetric struct {
	Depth      int
	Goroutines int
	Duration   time.Duration
	Nodes      int
	Leaves     int
	Cutoffs    int
	Random     bool // Move sampled without searching
	Pass       bool // No legal move was available
}

type MoveMetric struct {
	Step   int
	Player string // Color of the mover
	SearchMetric
}

type GameMetric struct {
	Winner     string // Color, "none" on a draw
	GreenZones int
	RedZones   int
	Turns      int
	Passes     int
	Painted    int
	Stalled    bool
	Complete   bool // Every zone cell painted, false when the turn limit stopped the game
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
}

type Collector interface {
	Start(depth, goroutines int)
	AddNode()
	AddLeaf()
	AddCutoff()
	Complete() SearchMetric
}

type collector struct {
	depth      int
	goroutines int
	startTime  time.Time
	nodes      atomic.Int64
	leaves     atomic.Int64
	cutoffs    atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth, goroutines int) {
	m.startTime = time.Now()
	m.depth = depth
	m.goroutines = goroutines
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.cutoffs.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:      m.depth,
		Goroutines: m.goroutines,
		Duration:   time.Since(m.startTime),
		Nodes:      int(m.nodes.Load()),
		Leaves:     int(m.leaves.Load()),
		Cutoffs:    int(m.cutoffs.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth, goroutines int) {}
func (m *dummyCollector) AddNode()                    {}
func (m *dummyCollector) AddLeaf()                    {}
func (m *dummyCollector) AddCutoff()                  {}
func (m *dummyCollector) Complete() SearchMetric      { return SearchMetric{} }
